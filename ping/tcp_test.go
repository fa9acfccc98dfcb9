// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package ping

import (
	"context"
	"net"
	"time"

	"github.com/siemens/pingsweep/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
	. "github.com/thediveo/success"
)

// listen returns a listening TCP socket on loopback together with its
// (ephemeral) port number.
func listen() (net.Listener, int) {
	listener := Successful(net.Listen("tcp", "127.0.0.1:0"))
	return listener, listener.Addr().(*net.TCPAddr).Port
}

var _ = Describe("TCP prober", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(3 * time.Second).WithPolling(250 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	It("hears an open port answer", NodeTimeout(30*time.Second), func(ctx context.Context) {
		listener, port := listen()
		defer listener.Close()

		outcome := NewTCP(WithTCPPorts(port)).Probe(ctx, "127.0.0.1")
		Expect(outcome.Verdict).To(Equal(types.Replied))
		Expect(outcome.Classify()).To(Equal(types.Online))
	})

	It("takes a slammed door as a sign of life", NodeTimeout(30*time.Second), func(ctx context.Context) {
		listener, port := listen()
		listener.Close() // free the port again so that knocking gets refused.

		outcome := NewTCP(WithTCPPorts(port)).Probe(ctx, "127.0.0.1")
		Expect(outcome.Verdict).To(Equal(types.Replied))
		Expect(outcome.Classify()).To(Equal(types.Online))
	})

	It("declares a blackholed address timed out", NodeTimeout(30*time.Second), func(ctx context.Context) {
		// 192.0.2.1 sits in TEST-NET-1; depending on the local routing setup
		// knocking there either goes unanswered or bounces as unreachable.
		outcome := NewTCP(WithTCPTimeout(250 * time.Millisecond)).Probe(ctx, "192.0.2.1")
		Expect(outcome.Verdict).To(BeElementOf(types.TimedOut, types.Unreachable))
		Expect(outcome.Classify()).To(BeElementOf(types.RequestTimeout, types.Offline))
	})

	It("aborts knocking when the context gets cancelled", NodeTimeout(30*time.Second), func(ctx context.Context) {
		cancelledctx, cancel := context.WithCancel(ctx)
		cancel()
		outcome := NewTCP().Probe(cancelledctx, "127.0.0.1")
		Expect(outcome.Verdict).To(Equal(types.Failed))
		Expect(outcome.Classify()).To(Equal(types.Offline))
	})

	It("knocks on the well-known ports by default", func() {
		Expect(NewTCP().ports).To(Equal([]int{80, 443, 22, 3389}))
	})

})
