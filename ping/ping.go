// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ping

import (
	"context"
	"time"

	"github.com/siemens/pingsweep/types"

	"github.com/go-ping/ping"
)

// DefaultTimeout is the deadline for a single probe. Roughly a second, as a
// sweep values steady forward progress over patience with stragglers.
const DefaultTimeout = time.Second

// DefaultPayloadSize is the ICMP echo payload size in bytes, the same as the
// time-honored default of the Windows ping command.
const DefaultPayloadSize = 32

// ICMP probes IP addresses by sending a single ICMP echo request and then
// waiting for the reply, up to a fixed deadline. The single echo is very much
// on purpose: a sweep decides each target on exactly one probe, and a host
// that cannot be bothered to answer within a second counts as not answering.
type ICMP struct {
	timeout      time.Duration // deadline for the echo reply to arrive.
	size         int           // echo payload size in bytes.
	unprivileged bool          // if true, uses UDP-based pings instead of privileged ICMPs.
}

// ICMPOption can be passed to NewICMP when creating new ICMP probers.
type ICMPOption func(*ICMP)

// NewICMP returns a new [ICMP] prober. It defaults to a probe deadline of
// [DefaultTimeout] and an echo payload of [DefaultPayloadSize] bytes;
// [WithTimeout] and [WithPayloadSize] configure these. Probes use raw ICMP
// sockets and thus need the necessary privileges, unless switched to
// UDP-based pings using [AsUnprivileged].
func NewICMP(options ...ICMPOption) *ICMP {
	p := &ICMP{
		timeout: DefaultTimeout,
		size:    DefaultPayloadSize,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// WithTimeout sets the deadline for a probe's reply to arrive.
func WithTimeout(timeout time.Duration) ICMPOption {
	return func(p *ICMP) {
		p.timeout = timeout
	}
}

// WithPayloadSize sets the ICMP echo payload size in bytes.
func WithPayloadSize(size uint) ICMPOption {
	return func(p *ICMP) {
		p.size = int(size)
	}
}

// AsUnprivileged tells the prober to carry out unprivileged pings using UDP
// instead of raw ICMP sockets.
func AsUnprivileged() ICMPOption {
	return func(p *ICMP) {
		p.unprivileged = true
	}
}

// Probe sends a single echo request to the given IP address and reports the
// raw outcome: the reply with its round-trip time, silence until the
// deadline, or a probe that keeled over (for lack of raw socket privileges,
// say). Pass IP address literals, not DNS names: resolving is somebody
// else's job and the only way to control which address actually gets probed.
//
// Probing is aborted when the passed context gets cancelled; the outcome
// then is a failed probe, not a timed-out target.
func (p *ICMP) Probe(ctx context.Context, addr string) types.Outcome {
	pinger, err := ping.NewPinger(addr)
	if err != nil {
		return types.Outcome{Verdict: types.Failed, Err: err}
	}
	pinger.SetPrivileged(!p.unprivileged)
	pinger.Count = 1
	pinger.Size = p.size
	pinger.Timeout = p.timeout
	// While the ping is running, we need to monitor the context in case it
	// becomes "done" by either getting cancelled or reaching its deadline.
	// The done channel here works "the other way round" in the sense that it
	// terminates the concurrent context monitoring.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pinger.Stop()
		case <-done:
		}
	}()
	// Now make some noise...
	if err := pinger.Run(); err != nil {
		return types.Outcome{Verdict: types.Failed, Err: err}
	}
	// Was the context done?
	if err := ctx.Err(); err != nil {
		return types.Outcome{Verdict: types.Failed, Err: err}
	}
	stats := pinger.Statistics()
	if stats.PacketsRecv > 0 {
		// With a single echo the average is that one round-trip time.
		return types.Outcome{Verdict: types.Replied, Rtt: stats.AvgRtt}
	}
	return types.Outcome{Verdict: types.TimedOut}
}
