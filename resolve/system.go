// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"fmt"
	"net"
	"time"
)

// DefaultTimeout bounds a single name resolution through the system
// resolver.
const DefaultTimeout = 3 * time.Second

// System resolves target names through the operating system's resolver, so a
// sweep sees exactly the same name-to-address world as everything else on
// the box. The zero System is ready to use.
type System struct {
	// Timeout bounds a single lookup; DefaultTimeout applies when zero.
	Timeout time.Duration

	resolver net.Resolver
}

// Resolve returns the probeable IP address for the given target, preferring
// an IPv4 address when the name resolves to several address families.
func (s *System) Resolve(ctx context.Context, host string) (string, error) {
	if addr, ok := Literal(host); ok {
		return addr, nil
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ips, err := s.resolver.LookupIP(ctx, "ip", host)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %q: %w", host, err)
	}
	if len(ips) == 0 {
		return "", fmt.Errorf("cannot resolve %q: no addresses", host)
	}
	return preferIPv4(ips).String(), nil
}

// preferIPv4 picks the first IPv4 address, falling back to the first address
// of whatever family there is.
func preferIPv4(ips []net.IP) net.IP {
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip
		}
	}
	return ips[0]
}
