/*
Package types defines pingsweep's information model. Which is rather simple
and revolves around the closed liveness taxonomy of [Status], the raw probe
[Outcome] that gets classified into it, and the per-target [ProbeResult] that
sweeps emit.

The split between [Verdict] and [Status] is deliberate: probers only ever
report what happened on the wire (a reply arrived, an unreachable came back,
nothing happened, the probe fell flat on its face), while the mapping onto the
reported taxonomy lives in exactly one place, [Outcome.Classify]. This keeps
the probers free of reporting policy and makes the classification trivially
testable: same outcome in, same status out, no hidden state anywhere.

[Progress] and [RunSummary] are plain value types derived from the stream of
probe results; they carry no behavior beyond rendering helpers and can be
copied around freely, also across goroutines.
*/
package types
