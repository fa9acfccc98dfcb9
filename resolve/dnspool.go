// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"fmt"
	"sync"

	"github.com/miekg/dns"
)

// DNSPool resolves target names by asking one specific DNS server directly,
// reusing a fixed-size pool of pre-dialed client connections instead of
// dialing the server anew for every single target of a sweep.
type DNSPool struct {
	client *dns.Client
	mu     sync.Mutex // protects the pool of DNS connections
	free   []*dns.Conn
}

// NewDNSPool returns a pool of size pre-dialed DNS client connections, all
// talking to the DNS server at addr (in "host:port" form). The passed
// context is used for dialing the client connections only.
//
// size must be at least the number of goroutines concurrently calling
// [DNSPool.Resolve]; a sweep simply sizes the pool to its worker budget so
// that a free connection is always at hand.
func NewDNSPool(ctx context.Context, size int, client *dns.Client, addr string) (*DNSPool, error) {
	free := make([]*dns.Conn, 0, size)
	for i := 0; i < size; i++ {
		conn, err := client.DialContext(ctx, addr)
		if err != nil {
			// Immediately release all connections created so far.
			for _, conn := range free {
				conn.Close()
			}
			return nil, fmt.Errorf("cannot dial DNS server %s: %w", addr, err)
		}
		free = append(free, conn)
	}
	return &DNSPool{
		client: client,
		free:   free,
	}, nil
}

// Resolve returns the probeable IP address for the given target. It queries
// A records first and only asks for AAAA records when there are no IPv4
// answers, so IPv4 addresses win where there is a choice.
//
// The context is only checked between queries, as the underlying exchange
// runs on a pooled connection with the client's own timeouts applying.
func (p *DNSPool) Resolve(ctx context.Context, host string) (string, error) {
	if addr, ok := Literal(host); ok {
		return addr, nil
	}
	conn := p.get()
	defer p.put(conn)
	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}
		msg := new(dns.Msg)
		msg.SetQuestion(dns.Fqdn(host), qtype)
		r, _, err := p.client.ExchangeWithConn(msg, conn)
		if err != nil {
			return "", fmt.Errorf("cannot resolve %q: %w", host, err)
		}
		for _, rr := range r.Answer {
			switch addr := rr.(type) {
			case *dns.A:
				return addr.A.String(), nil
			case *dns.AAAA:
				return addr.AAAA.String(), nil
			}
		}
	}
	return "", fmt.Errorf("cannot resolve %q: no A or AAAA answers", host)
}

// get pops a free DNS client connection off the pool,
// https://ueokande.github.io/go-slice-tricks/.
func (p *DNSPool) get() *dns.Conn {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == 0 {
		panic("no free DNS client connection available")
	}
	last := len(p.free) - 1
	conn := p.free[last]
	p.free = p.free[:last]
	return conn
}

// put pushes a DNS client connection back into the free list.
func (p *DNSPool) put(conn *dns.Conn) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, conn)
}

// Close closes all pooled client connections. Only call it after the last
// Resolve has returned.
func (p *DNSPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, conn := range p.free {
		conn.Close()
	}
	p.free = nil
}
