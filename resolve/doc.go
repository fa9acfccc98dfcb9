/*
Package resolve turns sweep target names into probeable IP addresses.

Two resolvers are on offer: [System] asks the standard library's resolver and
thus plays by the box's usual rules (hosts file, NSS configuration, DNS),
while [DNSPool] bypasses all that and asks one specific DNS server directly,
over a fixed-size pool of pre-dialed client connections. Both treat IP
address literals as already resolved without bothering any resolver
infrastructure, and both prefer IPv4 addresses where there is a choice, true
to the sweep's ICMPv4 heritage.
*/
package resolve
