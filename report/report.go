// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/siemens/pingsweep/types"
)

// Header spells out the report's three columns. The third column kept its
// historically grown name even after the status taxonomy outgrew a simple
// online/offline dichotomy; downstream tooling matches on it, so don't "fix"
// it.
var Header = []string{"HostName", "IP", "Online/Offline"}

// Sheet is the name of the worksheet in Excel-format reports.
const Sheet = "Ping Results"

// ipPlaceholder fills the IP column of targets that never resolved.
const ipPlaceholder = "N/A"

// filenameLayout renders report timestamps, "23-Aug-26_14-01-02" style.
const filenameLayout = "02-Jan-06_15-04-05"

// Format selects the report file format.
type Format string

// The supported report file formats.
const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// ParseFormat returns the Format going by the given name, such as from a
// command line flag, or an error for anything it has never heard of.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case CSV:
		return CSV, nil
	case XLSX:
		return XLSX, nil
	}
	return "", fmt.Errorf("unknown report format %q (supported: csv, xlsx)", s)
}

// Label returns the format's name for human consumption in log messages.
func (f Format) Label() string {
	if f == XLSX {
		return "Excel"
	}
	return "CSV"
}

// Ext returns the format's filename extension, dot included.
func (f Format) Ext() string {
	return "." + string(f)
}

// Filename returns the timestamped report filename for a report written at
// the given time, "ping_results_23-Aug-26_14-01-02.csv" style.
func Filename(f Format, now time.Time) string {
	return "ping_results_" + now.Format(filenameLayout) + f.Ext()
}

// Save writes the report file for the given results at path, in the given
// format.
func Save(path string, f Format, results []types.ProbeResult) error {
	if f == XLSX {
		return SaveXLSX(path, results)
	}
	return SaveCSV(path, results)
}

// row renders a single probe result into its report columns; targets without
// a resolved address show the placeholder in the IP column.
func row(result types.ProbeResult) []string {
	addr := result.Addr
	if addr == "" {
		addr = ipPlaceholder
	}
	return []string{result.Host, addr, result.Status.String()}
}
