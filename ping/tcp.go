// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ping

import (
	"context"
	"errors"
	"net"
	"strconv"
	"syscall"
	"time"

	"github.com/siemens/pingsweep/types"
)

// DefaultTCPPorts are the ports a [TCP] prober knocks on, in order: a
// pragmatic lineup of what tends to answer in a mixed estate, namely HTTP,
// HTTPS, SSH, and RDP.
var DefaultTCPPorts = []int{80, 443, 22, 3389}

// TCP probes IP addresses by attempting plain TCP connections instead of
// ICMP echos, for estates where ICMP is filtered at the border or raw
// sockets are out of reach. Any definite answer from the address counts as
// life, and that explicitly includes a connection refusal: an RST only ever
// comes from a living host.
type TCP struct {
	timeout time.Duration // deadline for the whole multi-port attempt.
	ports   []int         // ports to knock on, in order.
}

// TCPOption can be passed to NewTCP when creating new TCP probers.
type TCPOption func(*TCP)

// NewTCP returns a new [TCP] prober, knocking on [DefaultTCPPorts] with an
// overall deadline of [DefaultTimeout], unless configured otherwise using
// [WithTCPPorts] and [WithTCPTimeout].
func NewTCP(options ...TCPOption) *TCP {
	p := &TCP{
		timeout: DefaultTimeout,
	}
	for _, opt := range options {
		opt(p)
	}
	if len(p.ports) == 0 {
		p.ports = DefaultTCPPorts
	}
	return p
}

// WithTCPTimeout sets the deadline for the whole connection attempt; it
// spans all port knocks together, not each individual one.
func WithTCPTimeout(timeout time.Duration) TCPOption {
	return func(p *TCP) {
		p.timeout = timeout
	}
}

// WithTCPPorts replaces the default port lineup with the given ports, tried
// in the given order.
func WithTCPPorts(ports ...int) TCPOption {
	return func(p *TCP) {
		p.ports = ports
	}
}

// Probe tries to open TCP connections to the address's probe ports in turn,
// reporting life on the first definite sign of it: an accepted connection or
// a connection refusal. An ICMP unreachable bubbling up from the stack means
// a definite "no"; running into the deadline without any definite answer
// means silence.
func (p *TCP) Probe(ctx context.Context, addr string) types.Outcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	var dialer net.Dialer
	var lastErr error
	for _, port := range p.ports {
		start := time.Now()
		conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(addr, strconv.Itoa(port)))
		if err == nil {
			conn.Close()
			return types.Outcome{Verdict: types.Replied, Rtt: time.Since(start)}
		}
		switch {
		case errors.Is(err, syscall.ECONNREFUSED):
			// Refused means something answered, and that is all a liveness
			// sweep asks for.
			return types.Outcome{Verdict: types.Replied, Rtt: time.Since(start)}
		case errors.Is(err, syscall.EHOSTUNREACH), errors.Is(err, syscall.ENETUNREACH):
			return types.Outcome{Verdict: types.Unreachable, Err: err}
		}
		if ctx.Err() != nil {
			break
		}
		lastErr = err
	}
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return types.Outcome{Verdict: types.TimedOut}
		}
		return types.Outcome{Verdict: types.Failed, Err: err}
	}
	return types.Outcome{Verdict: types.Failed, Err: lastErr}
}
