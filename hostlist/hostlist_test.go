// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package hostlist

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var _ = Describe("loading host lists", func() {

	It("keeps targets in order, skipping blanks and trimming whitespace", func() {
		hosts := Successful(Read(strings.NewReader(
			"web01.example.com\n\n  web02.example.com  \n\t\n10.0.0.1\r\nweb01.example.com\n")))
		Expect(hosts).To(Equal([]string{
			"web01.example.com", "web02.example.com", "10.0.0.1", "web01.example.com",
		}), "duplicates must survive, every requested target gets swept")
	})

	It("returns an empty list for an empty file", func() {
		Expect(Successful(Read(strings.NewReader("")))).To(BeEmpty())
		Expect(Successful(Read(strings.NewReader("\n \n\t\n")))).To(BeEmpty())
	})

	It("skips a leading UTF-8 BOM", func() {
		hosts := Successful(Read(strings.NewReader("﻿web01\nweb02\n")))
		Expect(hosts).To(Equal([]string{"web01", "web02"}))
	})

	It("decodes UTF-16 lists as saved by Windows tooling", func() {
		var buf bytes.Buffer
		enc := transform.NewWriter(&buf,
			unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder())
		Successful(enc.Write([]byte("web01\r\nweb02\r\n")))
		Expect(enc.Close()).To(Succeed())

		hosts := Successful(Read(&buf))
		Expect(hosts).To(Equal([]string{"web01", "web02"}))
	})

	It("loads targets from a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "hosts.txt")
		Expect(os.WriteFile(path, []byte("alpha\nbravo\n"), 0o644)).To(Succeed())
		Expect(Successful(Load(path))).To(Equal([]string{"alpha", "bravo"}))
	})

	It("reports a missing host list file", func() {
		_, err := Load(filepath.Join(GinkgoT().TempDir(), "no-such-list.txt"))
		Expect(err).To(MatchError(fs.ErrNotExist))
		Expect(err).To(MatchError(ContainSubstring("cannot load host list")))
	})

})
