/*
Package sweep coordinates a complete liveness sweep: it fans a list of
targets out over a goroutine-limited worker pool, where each worker resolves
and probes one target end to end, and it streams exactly one terminal
[types.ProbeResult] per target into a completion channel.

	         +---------+
	hosts--->| Sweeper +-->ch ProbeResult-->Tally
	         +---------+

The worker budget is the one and only concurrency limit: resolving and
probing a target happen back to back on the same worker, so a budget of ten
means at most ten targets in flight, no matter how the work splits between
resolver and prober. Results arrive in completion order, not submission
order; a [Tally] gathers them and keeps the running counters that the live
progress display feeds on.

The guarantee downstream report writers rely on: a sweep of N targets
delivers exactly N results, duplicates included. Even a panicking resolver
or prober only ever costs the affected target its real verdict, never its
result.

# Acknowledgements

Under its hood, [Sweeper] leverages [gammazero/workerpool] as the limiting
goroutine pool.

[gammazero/workerpool]: https://github.com/gammazero/workerpool
*/
package sweep
