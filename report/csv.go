// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/siemens/pingsweep/types"
)

// utf8BOM gets prepended to CSV reports so that Excel detects the encoding
// instead of guessing it from the Windows ANSI code page du jour.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the report as CSV to w: the header first, then one line
// per result, in the given order.
func WriteCSV(w io.Writer, results []types.ProbeResult) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, result := range results {
		if err := cw.Write(row(result)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the report as a CSV file at path.
func SaveCSV(path string, results []types.ProbeResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write report: %w", err)
	}
	if err := WriteCSV(f, results); err != nil {
		f.Close()
		return fmt.Errorf("cannot write report %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot write report %q: %w", path, err)
	}
	return nil
}
