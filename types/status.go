// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "fmt"

// Status classifies the liveness of a single swept target. Every target
// submitted to a sweep ends up in exactly one of the non-Unknown states.
type Status int

// The liveness states of a swept target.
const (
	Unknown        Status = iota // target not yet probed; never part of a final result.
	Online                       // target answered the probe.
	Offline                      // target gave a negative answer or the probe failed.
	BadHost                      // target name did not resolve to any address.
	RequestTimeout               // target stayed silent until the probe deadline.
)

// String returns the clear-text representation of a Status value. These are
// the exact labels written into the report's status column, so don't get
// creative here.
func (s Status) String() string {
	switch s {
	case Online:
		return "Online"
	case Offline:
		return "Offline"
	case BadHost:
		return "BadHost"
	case RequestTimeout:
		return "RequestTimeout"
	case Unknown:
		return "Unknown"
	}
	return fmt.Sprintf("Status(%d)", s)
}

// Terminal returns true if the status is one of the final classifications a
// sweep is allowed to report, that is, anything but Unknown.
func (s Status) Terminal() bool {
	switch s {
	case Online, Offline, BadHost, RequestTimeout:
		return true
	default:
		return false
	}
}
