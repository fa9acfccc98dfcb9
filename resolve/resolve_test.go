// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/miekg/dns"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
	. "github.com/thediveo/success"
)

var _ = Describe("address literals", func() {

	DescribeTable("spotting literals",
		func(host string, expectedAddr string, expectedOk bool) {
			addr, ok := Literal(host)
			Expect(ok).To(Equal(expectedOk))
			Expect(addr).To(Equal(expectedAddr))
		},
		Entry(nil, "192.0.2.1", "192.0.2.1", true),
		Entry(nil, "::1", "::1", true),
		Entry(nil, "fe80::1%eth0", "fe80::1%eth0", true),
		Entry(nil, "web01.example.com", "", false),
		Entry(nil, "256.1.2.3", "", false),
		Entry(nil, "", "", false),
	)

})

var _ = Describe("system resolver", func() {

	It("prefers IPv4 addresses where there is a choice", func() {
		Expect(preferIPv4([]net.IP{
			net.ParseIP("2001:db8::1"), net.ParseIP("192.0.2.1"),
		}).String()).To(Equal("192.0.2.1"))
		Expect(preferIPv4([]net.IP{
			net.ParseIP("2001:db8::1"),
		}).String()).To(Equal("2001:db8::1"))
	})

	It("resolves localhost", NodeTimeout(30*time.Second), func(ctx context.Context) {
		var r System
		addr := Successful(r.Resolve(ctx, "localhost"))
		Expect(net.ParseIP(addr)).NotTo(BeNil(), "not an IP address: %q", addr)
	})

	It("passes literals through without any resolver", NodeTimeout(10*time.Second), func(ctx context.Context) {
		var r System
		Expect(Successful(r.Resolve(ctx, "192.0.2.99"))).To(Equal("192.0.2.99"))
	})

	It("reports unresolvable names", NodeTimeout(30*time.Second), func(ctx context.Context) {
		var r System
		_, err := r.Resolve(ctx, "no-such-host.invalid")
		Expect(err).To(MatchError(ContainSubstring("cannot resolve")))
	})

})

var _ = Describe("DNS client connection pool", func() {

	// The test zone served by our in-process DNS server.
	records := map[string]map[uint16]string{
		"quad.example.": {
			dns.TypeA:    "192.0.2.1",
			dns.TypeAAAA: "2001:db8::1",
		},
		"six.example.": {
			dns.TypeAAAA: "2001:db8::6",
		},
	}

	var serverAddr string

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(3 * time.Second).WithPolling(250 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})

		mux := dns.NewServeMux()
		mux.HandleFunc("example.", func(w dns.ResponseWriter, r *dns.Msg) {
			defer GinkgoRecover()
			m := new(dns.Msg)
			m.SetReply(r)
			q := r.Question[0]
			if value, ok := records[q.Name][q.Qtype]; ok {
				rrtype := "A"
				if q.Qtype == dns.TypeAAAA {
					rrtype = "AAAA"
				}
				m.Answer = append(m.Answer,
					Successful(dns.NewRR(fmt.Sprintf("%s 60 IN %s %s", q.Name, rrtype, value))))
			}
			Expect(w.WriteMsg(m)).To(Succeed())
		})
		pc := Successful(net.ListenPacket("udp", "127.0.0.1:0"))
		srv := &dns.Server{PacketConn: pc, Handler: mux}
		go func() {
			defer GinkgoRecover()
			srv.ActivateAndServe()
		}()
		serverAddr = pc.LocalAddr().String()
		DeferCleanup(func() { Expect(srv.Shutdown()).To(Succeed()) })
	})

	It("prefers IPv4 answers", NodeTimeout(30*time.Second), func(ctx context.Context) {
		pool := Successful(NewDNSPool(ctx, 2, &dns.Client{Timeout: 2 * time.Second}, serverAddr))
		defer pool.Close()
		Expect(Successful(pool.Resolve(ctx, "quad.example"))).To(Equal("192.0.2.1"))
	})

	It("falls back to AAAA answers for IPv6-only names", NodeTimeout(30*time.Second), func(ctx context.Context) {
		pool := Successful(NewDNSPool(ctx, 1, &dns.Client{Timeout: 2 * time.Second}, serverAddr))
		defer pool.Close()
		Expect(Successful(pool.Resolve(ctx, "six.example"))).To(Equal("2001:db8::6"))
	})

	It("reports names without any answers", NodeTimeout(30*time.Second), func(ctx context.Context) {
		pool := Successful(NewDNSPool(ctx, 1, &dns.Client{Timeout: 2 * time.Second}, serverAddr))
		defer pool.Close()
		_, err := pool.Resolve(ctx, "missing.example")
		Expect(err).To(MatchError(ContainSubstring("no A or AAAA answers")))
	})

	It("passes literals through without touching the server", NodeTimeout(30*time.Second), func(ctx context.Context) {
		pool := Successful(NewDNSPool(ctx, 1, &dns.Client{Timeout: 2 * time.Second}, serverAddr))
		defer pool.Close()
		Expect(Successful(pool.Resolve(ctx, "192.0.2.99"))).To(Equal("192.0.2.99"))
	})

	It("serves concurrent resolvers from the connection pool", NodeTimeout(30*time.Second), func(ctx context.Context) {
		const poolsize = 3

		pool := Successful(NewDNSPool(ctx, poolsize, &dns.Client{Timeout: 2 * time.Second}, serverAddr))
		defer pool.Close()

		var wg sync.WaitGroup
		for i := 0; i < poolsize; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				for j := 0; j < 2; j++ {
					Expect(Successful(pool.Resolve(ctx, "quad.example"))).To(Equal("192.0.2.1"))
				}
			}()
		}
		wg.Wait()
	})

	It("refuses to dial an unreachable DNS server", NodeTimeout(30*time.Second), func(ctx context.Context) {
		_, err := NewDNSPool(ctx, 1, &dns.Client{Net: "tcp", Timeout: time.Second}, "127.0.0.1:1")
		Expect(err).To(MatchError(ContainSubstring("cannot dial DNS server")))
	})

})
