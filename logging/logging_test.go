// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package logging

import (
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

var regexpRunIDs = regexp.MustCompile(`"run":"([0-9a-f-]{36})"`)

var _ = Describe("diagnostic logging", func() {

	It("creates the log directory and writes tagged JSON lines", func() {
		dir := filepath.Join(GinkgoT().TempDir(), "logs")
		logger := Successful(New(dir, false))
		logger.Info("probing commenced", zap.Int("targets", 3))

		content := string(Successful(os.ReadFile(filepath.Join(dir, "pingsweep.log"))))
		Expect(content).To(ContainSubstring(`"msg":"probing commenced"`))
		Expect(content).To(ContainSubstring(`"targets":3`))
		Expect(content).To(MatchRegexp(`"run":"[0-9a-f-]{36}"`))
	})

	It("stays quiet below its level unless debugging", func() {
		dir := filepath.Join(GinkgoT().TempDir(), "logs")
		logger := Successful(New(dir, false))
		logger.Debug("nobody will ever read this")
		logger.Info("but this")

		content := string(Successful(os.ReadFile(filepath.Join(dir, "pingsweep.log"))))
		Expect(content).NotTo(ContainSubstring("nobody will ever read this"))
		Expect(content).To(ContainSubstring("but this"))
	})

	It("tags each logger with its own run ID", func() {
		dir := filepath.Join(GinkgoT().TempDir(), "logs")
		first := Successful(New(dir, false))
		second := Successful(New(dir, false))
		first.Info("first run")
		second.Info("second run")

		content := string(Successful(os.ReadFile(filepath.Join(dir, "pingsweep.log"))))
		runs := map[string]struct{}{}
		for _, match := range regexpRunIDs.FindAllStringSubmatch(content, -1) {
			runs[match[1]] = struct{}{}
		}
		Expect(runs).To(HaveLen(2))
	})

})
