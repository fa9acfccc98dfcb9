// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package hostlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Load reads the list of sweep targets from the named text file, one target
// per line. See [Read] for what constitutes a target line.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot load host list: %w", err)
	}
	defer f.Close()
	hosts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load host list %q: %w", path, err)
	}
	return hosts, nil
}

// Read reads a list of sweep targets from r, one target per line. Lines get
// trimmed of surrounding whitespace and empty lines are skipped; everything
// else is taken verbatim and in order, duplicates included, as every
// requested target is to be swept exactly once. A leading BOM is skipped and
// UTF-16 encoded lists are transparently decoded, because that is how host
// lists tend to arrive when they were last touched on Windows.
func Read(r io.Reader) ([]string, error) {
	hosts := []string{}
	scanner := bufio.NewScanner(transform.NewReader(
		r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	for scanner.Scan() {
		host := strings.TrimSpace(scanner.Text())
		if host == "" {
			continue
		}
		hosts = append(hosts, host)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return hosts, nil
}
