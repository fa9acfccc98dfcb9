/*
Package ping implements the actual liveness probes of a sweep: give it one IP
address, get back one raw [types.Outcome].

	         +-------+
	string-->| Probe +-->Outcome
	         +-------+

Two probers are on offer. [ICMP] sends a single ICMP(v4/v6) echo request and
waits for the reply, which is the classic and preferred way of asking "are
you there?". [TCP] instead knocks on a short lineup of well-known TCP ports,
for estates where ICMP is filtered or raw sockets are unavailable; here even
a slammed door (RST) counts as a sign of life.

Probers are deliberately dumb and synchronous: no pooling, no classification,
no retries. Fanning probes out over a bounded worker pool is the sweep
coordinator's business, and mapping raw outcomes onto the reported status
taxonomy is [types.Outcome.Classify]'s. This keeps probers trivially
swappable, also for testing.
*/
package ping
