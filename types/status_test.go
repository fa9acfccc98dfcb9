// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package types

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("liveness taxonomy", func() {

	DescribeTable("rendering status labels",
		func(s Status, expected string) {
			Expect(s.String()).To(Equal(expected))
		},
		Entry(nil, Unknown, "Unknown"),
		Entry(nil, Online, "Online"),
		Entry(nil, Offline, "Offline"),
		Entry(nil, BadHost, "BadHost"),
		Entry(nil, RequestTimeout, "RequestTimeout"),
		Entry(nil, Status(42), "Status(42)"),
	)

	It("knows which states are terminal", func() {
		Expect(Unknown.Terminal()).To(BeFalse())
		for _, s := range []Status{Online, Offline, BadHost, RequestTimeout} {
			Expect(s.Terminal()).To(BeTrue(), "status %s", s)
		}
	})

	DescribeTable("classifying raw probe outcomes",
		func(o Outcome, expected Status) {
			Expect(o.Classify()).To(Equal(expected))
			Expect(o.Classify()).To(Equal(expected), "classification must be repeatable")
			Expect(o.Classify().Terminal()).To(BeTrue())
		},
		Entry("a reply means online", Outcome{Verdict: Replied, Rtt: time.Millisecond}, Online),
		Entry("an unreachable means offline", Outcome{Verdict: Unreachable}, Offline),
		Entry("silence means a request timeout", Outcome{Verdict: TimedOut}, RequestTimeout),
		Entry("a keeled-over probe means offline", Outcome{Verdict: Failed, Err: errors.New("no socket for you")}, Offline),
		Entry("even a zero outcome means offline", Outcome{}, Offline),
	)

})
