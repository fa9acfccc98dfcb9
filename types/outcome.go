// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import "time"

// Verdict is the raw, wire-level result of a single probe attempt, before it
// gets mapped onto the [Status] taxonomy. Probers report verdicts; they never
// classify themselves.
type Verdict int

// The raw probe verdicts. The zero value deliberately is Failed, so that a
// forgotten assignment can never masquerade as a live target.
const (
	Failed      Verdict = iota // the probe itself keeled over (socket error, missing privileges, ...).
	Replied                    // positive evidence of life arrived in time.
	Unreachable                // a negative signal came back, such as an ICMP unreachable.
	TimedOut                   // nothing at all came back within the deadline.
)

// Outcome is what a prober hands back for a single address: the verdict,
// optionally the measured round-trip time, and optionally the error that made
// the probe fail.
type Outcome struct {
	Verdict Verdict
	Rtt     time.Duration // round-trip time; only meaningful for Replied.
	Err     error         // details for Failed (and sometimes Unreachable) verdicts.
}

// Classify maps a raw probe outcome onto the closed status taxonomy of a
// sweep. The mapping is total: whatever verdict a prober comes up with, the
// result is one of the terminal states, with anything unexpected landing in
// Offline.
func (o Outcome) Classify() Status {
	switch o.Verdict {
	case Replied:
		return Online
	case Unreachable:
		return Offline
	case TimedOut:
		return RequestTimeout
	default:
		return Offline
	}
}
