// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"sync"

	"github.com/siemens/pingsweep/types"
)

// Tally gathers the probe results of a sweep as they complete, preserving
// their completion order and maintaining the running per-status counters. A
// typical use case is to consume the result channel of a [Sweeper] from a
// separate goroutine using [Tally.Track] while the main goroutine renders
// progress snapshots.
type Tally struct {
	mu       sync.Mutex
	total    int
	results  []types.ProbeResult
	online   int
	offline  int
	badhosts int
	timedout int
}

// NewTally returns a new and properly initialized Tally for a sweep over the
// given total number of targets.
func NewTally(total int) *Tally {
	return &Tally{
		total:   total,
		results: make([]types.ProbeResult, 0, total),
	}
}

// Add records a single terminal probe result.
func (t *Tally) Add(result types.ProbeResult) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results = append(t.results, result)
	switch result.Status {
	case types.Online:
		t.online++
	case types.Offline:
		t.offline++
	case types.BadHost:
		t.badhosts++
	case types.RequestTimeout:
		t.timedout++
	}
}

// Track records probe results received from the specified result channel
// until the channel is closed or the context done. Track only returns after
// processing all results or when the context is done.
func (t *Tally) Track(ctx context.Context, results <-chan types.ProbeResult) error {
	for {
		select {
		case result, ok := <-results:
			if !ok {
				return nil
			}
			t.Add(result)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Progress returns a point-in-time snapshot of the sweep's progress,
// including the running per-status counters.
func (t *Tally) Progress() types.Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return types.Progress{
		Done:     len(t.results),
		Total:    t.total,
		Online:   t.online,
		Offline:  t.offline,
		BadHosts: t.badhosts,
		TimedOut: t.timedout,
	}
}

// Results returns a copy of the probe results gathered so far, in completion
// order.
func (t *Tally) Results() []types.ProbeResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	results := make([]types.ProbeResult, len(t.results))
	copy(results, t.results)
	return results
}
