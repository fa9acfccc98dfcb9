// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"fmt"
	"time"
)

// ProbeResult is the terminal outcome of sweeping a single target: the
// target's name as it was loaded, the address it resolved to (if it did), and
// its final liveness classification.
type ProbeResult struct {
	Host   string        `json:"host"`           // target name, exactly as submitted.
	Addr   string        `json:"addr,omitempty"` // resolved IP address; empty if and only if Status is BadHost.
	Status Status        `json:"status"`
	Rtt    time.Duration `json:"rtt,omitempty"` // measured round-trip time, if any.
	Err    error         `json:"-"`             // optional diagnostic detail (resolution or probe error).
}

// Progress is a point-in-time snapshot of a running sweep, suitable for
// rendering a live progress display.
type Progress struct {
	Done     int // targets with a terminal classification so far.
	Total    int // targets submitted to the sweep.
	Online   int
	Offline  int
	BadHosts int
	TimedOut int
}

// Percent returns the completed share of the sweep in percent. An empty sweep
// is always 100% done.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 100.0
	}
	return float64(p.Done) / float64(p.Total) * 100.0
}

// RunSummary totals up a finished sweep.
type RunSummary struct {
	Total    int
	Online   int
	Offline  int
	BadHosts int
	TimedOut int
	Elapsed  time.Duration
}

// Summarize derives a RunSummary from the final probe results; it doesn't
// matter in which order the results arrived.
func Summarize(results []ProbeResult, elapsed time.Duration) RunSummary {
	summary := RunSummary{
		Total:   len(results),
		Elapsed: elapsed,
	}
	for _, result := range results {
		switch result.Status {
		case Online:
			summary.Online++
		case Offline:
			summary.Offline++
		case BadHost:
			summary.BadHosts++
		case RequestTimeout:
			summary.TimedOut++
		}
	}
	return summary
}

// Counters returns the per-status totals as a single human-readable line, in
// the time-honored format of the sweep run logs.
func (s RunSummary) Counters() string {
	return fmt.Sprintf("Online: %d | Offline: %d | Bad Host: %d | Request Timeout: %d",
		s.Online, s.Offline, s.BadHosts, s.TimedOut)
}
