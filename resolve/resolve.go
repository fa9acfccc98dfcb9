// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package resolve

import "net/netip"

// Literal reports whether the target already is an IP address literal,
// returning its canonical textual form. Literal targets skip name resolution
// altogether, so a host list of raw addresses sweeps without any working
// resolver infrastructure.
func Literal(host string) (string, bool) {
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return "", false
	}
	return addr.String(), true
}
