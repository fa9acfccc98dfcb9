// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/siemens/pingsweep/hostlist"
	"github.com/siemens/pingsweep/logging"
	"github.com/siemens/pingsweep/ping"
	"github.com/siemens/pingsweep/report"
	"github.com/siemens/pingsweep/resolve"
	"github.com/siemens/pingsweep/runlog"
	"github.com/siemens/pingsweep/sweep"
	"github.com/siemens/pingsweep/types"

	"github.com/gosuri/uilive"
	"github.com/miekg/dns"
	"go.uber.org/zap"
)

// SweepAndReport loads the list of hosts to ping from the named file and then
// sweeps over it: every host gets resolved and probed exactly once, with at
// most conf.Workers hosts in flight at any time. Results stream in as probes
// complete and get rendered live to the terminal; in the end they are written
// to a timestamped report file and the run gets summarized in the run log.
func SweepAndReport(ctx context.Context, hostfile string) error {
	diag, err := logging.New(conf.Log.DebugDir, *debug)
	if err != nil {
		return fmt.Errorf("cannot set up diagnostic logging: %w", err)
	}
	defer func() { _ = diag.Sync() }()

	// The run log lines also go to the terminal, bypassing the live progress
	// area below so they scroll off instead of getting repainted over.
	term := uilive.New()
	rl := runlog.New(conf.Log.File,
		runlog.WithEcho(term.Bypass()),
		runlog.WithRetention(conf.Log.Retention.D()))

	hosts, err := hostlist.Load(hostfile)
	if err != nil {
		diag.Error("unusable host list", zap.String("hostfile", hostfile), zap.Error(err))
		return err
	}
	diag.Info("host list loaded",
		zap.String("hostfile", hostfile), zap.Int("hosts", len(hosts)))

	// The first run log line doubles as the canary for an unusable log file:
	// no point in sweeping when we cannot log the outcome.
	if err := rl.Printf("Starting to ping %d hostnames...", len(hosts)); err != nil {
		return fmt.Errorf("cannot write run log: %w", err)
	}
	logRun := func(format string, args ...any) {
		if err := rl.Printf(format, args...); err != nil {
			diag.Warn("run log write failed", zap.Error(err))
		}
	}
	start := time.Now()

	// Now lets put the required processing elements and their plumbing in
	// place.
	//
	//   - Resolver turning host names into addresses, either the system's
	//     or a pool of connections to an explicitly named DNS server.
	//   - Prober checking one address for liveness, ICMP or TCP connect.
	//   - Sweeper running resolve+probe per host under the worker budget,
	//     streaming ProbeResults as they complete.
	//   - Tally consuming the results, keeping score.
	//
	// Rendering is done on the information collected by the Tally.
	resolver := sweep.Resolver(&resolve.System{Timeout: conf.ResolveTimeout.D()})
	if conf.DNS != "" {
		pool, err := resolve.NewDNSPool(ctx, int(conf.Workers),
			&dns.Client{Timeout: conf.ResolveTimeout.D()}, conf.DNS)
		if err != nil {
			diag.Error("unusable DNS server", zap.String("dns", conf.DNS), zap.Error(err))
			return fmt.Errorf("cannot use DNS server %q: %w", conf.DNS, err)
		}
		defer pool.Close()
		resolver = pool
	}
	var prober sweep.Prober
	if conf.TCP {
		prober = ping.NewTCP(
			ping.WithTCPTimeout(conf.Timeout.D()),
			ping.WithTCPPorts(conf.TCPPorts...))
	} else {
		options := []ping.ICMPOption{
			ping.WithTimeout(conf.Timeout.D()),
			ping.WithPayloadSize(conf.PayloadSize),
		}
		if conf.Unprivileged {
			options = append(options, ping.AsUnprivileged())
		}
		prober = ping.NewICMP(options...)
	}
	sweeper, results := sweep.New(int(conf.Workers),
		sweep.WithResolver(resolver), sweep.WithProber(prober))
	tally := sweep.NewTally(len(hosts))

	// Fire off the rendering goroutine. The rendering will only stop after
	// tracking has finished because the result stream channel has been
	// closed. We then render a final update and end rendering, signalling
	// the end of our activities via renderingDone.
	trackingDone := make(chan struct{})
	renderingDone := make(chan struct{})
	go func() {
		// uilive's background updating mode using Start() may trigger anytime
		// with the rendering into the buffer not yet complete, making the
		// terminal output very flickery. So we avoid Start() and instead
		// trigger an explicit flush to the terminal after having completed
		// the rendering.
		renderer := newRenderer(term)
		defer func() {
			renderProgress(term, renderer, tally)
			renderer.Stop()
			close(renderingDone)
		}()
		renderProgress(term, renderer, tally)
		ticker := time.NewTicker(20 * time.Millisecond)
		for {
			select {
			case <-ticker.C:
				renderProgress(term, renderer, tally)
			case <-trackingDone:
				return
			}
		}
	}()

	// Surface probe errors into the run log the moment they happen, then pass
	// the results on unmodified for tallying.
	news := make(chan types.ProbeResult)
	go func() {
		defer close(news)
		for result := range results {
			if result.Err != nil {
				logRun("%s generated an exception: %v", result.Host, result.Err)
				diag.Debug("probe failed",
					zap.String("host", result.Host), zap.Error(result.Err))
			}
			select {
			case news <- result:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		_ = tally.Track(ctx, news)
		close(trackingDone)
	}()

	// Finally feed the hosts into the Sweeper, so they can be resolved and
	// probed and their results move through the stages above. Then close the
	// input stream and wait for all the data to pass the stages and finally
	// get rendered a last time.
	go func() {
		sweeper.SweepList(ctx, hosts)
		sweeper.StopWait()
	}()
	<-renderingDone

	// Writing the report file counts into the total sweep time.
	name := report.Filename(reportFormat, time.Now())
	path := filepath.Join(conf.OutputDir, name)
	if err := report.Save(path, reportFormat, tally.Results()); err != nil {
		diag.Error("cannot write report", zap.String("path", path), zap.Error(err))
		return err
	}
	summary := types.Summarize(tally.Results(), time.Since(start))

	logRun("Finished pinging. Total time: %.2f seconds", summary.Elapsed.Seconds())
	logRun("Total hostnames/machines pinged: %d", summary.Total)
	logRun("%s", summary.Counters())
	logRun("Output %s file: %s", reportFormat.Label(), path)
	diag.Info("sweep complete",
		zap.Duration("elapsed", summary.Elapsed),
		zap.Int("hosts", summary.Total),
		zap.String("report", path))
	return nil
}

// renderProgress takes a snapshot of the tallied sweep progress and then
// renders (and flushes) it to the terminal.
func renderProgress(term *uilive.Writer, r *renderer, tally *sweep.Tally) {
	r.Render(tally.Progress())
	term.Flush()
}
