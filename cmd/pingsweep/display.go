// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/siemens/pingsweep/types"
)

// renderer renders the terminal display, based on the tallied progress
// information passed to its Render method.
type renderer struct {
	w       io.Writer
	spinner *spinner
}

// newRenderer returns a renderer object rendering to the specified io.Writer.
func newRenderer(w io.Writer) *renderer {
	sp := newSpinner()
	sp.Start(*spinnerInterval)
	return &renderer{
		w:       w,
		spinner: sp,
	}
}

// Stop the renderer's background ticker.
func (r *renderer) Stop() {
	r.spinner.Stop()
}

// Render the given sweep progress: a headline with the overall state, the
// progress counter and the per-status counters.
func (r *renderer) Render(p types.Progress) {
	if p.Total == 0 {
		fmt.Fprintln(r.w, "nothing to ping: the host list is empty")
		return
	}
	total := totalStyle.Styled(strconv.Itoa(p.Total))
	if p.Done < p.Total {
		fmt.Fprintf(r.w, "%spinging %s hostnames...\n", r.spinner.Spinner(), total)
	} else {
		fmt.Fprintf(r.w, "%spinged %s hostnames\n", onlineStyle.Styled("✔ "), total)
	}
	fmt.Fprintf(r.w, "Progress: %d/%d (%.2f%%)\n", p.Done, p.Total, p.Percent())
	fmt.Fprintf(r.w, "%s: %d | %s: %d | %s: %d | %s: %d\n",
		onlineStyle.Styled("Online"), p.Online,
		offlineStyle.Styled("Offline"), p.Offline,
		badHostStyle.Styled("Bad Host"), p.BadHosts,
		timeoutStyle.Styled("Request Timeout"), p.TimedOut)
}
