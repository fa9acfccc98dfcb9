// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/siemens/pingsweep/ping"
	"github.com/siemens/pingsweep/resolve"
	"github.com/siemens/pingsweep/types"

	"github.com/gammazero/workerpool"
)

// Resolver turns a target name into a single probeable IP address. It is
// satisfied by [resolve.System] and [resolve.DNSPool] alike.
type Resolver interface {
	Resolve(ctx context.Context, host string) (string, error)
}

// Prober checks a resolved IP address for liveness, reporting the raw
// outcome. It is satisfied by [ping.ICMP] and [ping.TCP] alike.
type Prober interface {
	Probe(ctx context.Context, addr string) types.Outcome
}

// Sweeper sweeps targets by resolving and probing each one as a single unit
// of work on a goroutine-limited worker pool, streaming exactly one terminal
// [types.ProbeResult] per target to the result channel handed out along with
// the new Sweeper.
type Sweeper struct {
	resolver Resolver
	prober   Prober
	workers  *workerpool.WorkerPool
	results  chan types.ProbeResult
	stopOnce sync.Once
}

// Option can be passed to New when creating new Sweeper objects.
type Option func(*Sweeper)

// New returns a new [Sweeper] with a maximum worker pool of the specified
// size, together with its result stream. Unless configured otherwise using
// [WithResolver] and [WithProber], a Sweeper resolves targets through the
// system resolver and probes them with single ICMP echoes.
func New(size int, options ...Option) (*Sweeper, <-chan types.ProbeResult) {
	results := make(chan types.ProbeResult, size)
	sweeper := &Sweeper{
		resolver: &resolve.System{},
		prober:   ping.NewICMP(),
		workers:  workerpool.New(size),
		results:  results,
	}
	for _, opt := range options {
		opt(sweeper)
	}
	return sweeper, results
}

// WithResolver sets the resolver turning target names into addresses.
func WithResolver(r Resolver) Option {
	return func(s *Sweeper) {
		s.resolver = r
	}
}

// WithProber sets the prober deciding the liveness of resolved addresses.
func WithProber(p Prober) Option {
	return func(s *Sweeper) {
		s.prober = p
	}
}

// SweepList submits all targets of a host list in order. It only enqueues;
// the results trickle in on the result channel as the workers get around to
// the individual targets.
func (s *Sweeper) SweepList(ctx context.Context, hosts []string) {
	for _, host := range hosts {
		s.Sweep(ctx, host)
	}
}

// Sweep submits a single target for resolving and probing. Exactly one
// terminal result for the target will eventually appear on the result
// channel: resolution failures classify as BadHost, probe outcomes classify
// as their [types.Outcome.Classify] says, and probe errors count as Offline.
//
// If the specified context gets cancelled, then pending results are
// forfeited rather than delivered to a consumer that has already packed up;
// due to the uncontrollable order of result sending and cancellation
// detection, spurious results might still appear on the result channel.
func (s *Sweeper) Sweep(ctx context.Context, host string) {
	s.workers.Submit(func() {
		result := types.ProbeResult{
			Host:   host,
			Status: types.Offline,
		}
		defer func() {
			if r := recover(); r != nil {
				// Whatever just blew up, the target still gets a terminal
				// classification instead of silently going missing from the
				// sweep.
				result.Rtt = 0
				result.Err = fmt.Errorf("probe panicked: %v", r)
				result.Status = types.Offline
				if result.Addr == "" {
					result.Status = types.BadHost
				}
			}
			// Allow cancelling a blocked result send to avoid leaking
			// goroutines when the consumer is long gone.
			select {
			case s.results <- result:
			case <-ctx.Done():
			}
		}()
		addr, err := s.resolver.Resolve(ctx, host)
		if err != nil {
			result.Status = types.BadHost
			result.Err = err
			return
		}
		result.Addr = addr
		outcome := s.prober.Probe(ctx, addr)
		result.Status = outcome.Classify()
		result.Rtt = outcome.Rtt
		result.Err = outcome.Err
	})
}

// StopWait waits for all enqueued sweep tasks to finish and then finally
// closes the result channel.
func (s *Sweeper) StopWait() {
	s.stopOnce.Do(func() {
		s.workers.StopWait()
		close(s.results)
	})
}
