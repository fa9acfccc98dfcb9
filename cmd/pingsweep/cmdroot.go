// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/siemens/pingsweep/config"
	"github.com/siemens/pingsweep/report"

	"github.com/spf13/cobra"
)

var (
	configPath      *string
	workerNumber    *uint
	probeTimeout    *time.Duration
	resolveTimeout  *time.Duration
	payloadSize     *uint
	unprivileged    *bool
	dnsServer       *string
	tcpProbes       *bool
	tcpPorts        *[]int
	formatName      *string
	outputDir       *string
	logFile         *string
	logRetention    *time.Duration
	spinnerInterval *time.Duration
	debug           *bool
)

// conf is the effective configuration of this run: the built-in defaults,
// overlaid by an optional --config YAML file, overlaid by whatever flags were
// explicitly set on the command line. reportFormat is conf.Format, parsed.
// Both get set in stone before the run command proper starts.
var (
	conf         config.Config
	reportFormat report.Format
)

func newRootCmd() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:     "pingsweep [flags] hostfile",
		Short:   "pingsweep pings every host named in a host list file and reports who's dead or alive",
		Version: "0.9",
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if conf, err = effectiveConfig(cmd); err != nil {
				return err
			}
			if reportFormat, err = report.ParseFormat(conf.Format); err != nil {
				return err
			}
			if conf.Workers < 1 || conf.Workers > 512 {
				return fmt.Errorf("--workers out of range [1..512]")
			}
			if conf.Timeout.D() <= 0 {
				return fmt.Errorf("--timeout must be positive")
			}
			if conf.ResolveTimeout.D() <= 0 {
				return fmt.Errorf("--resolve-timeout must be positive")
			}
			// go-ping needs the first 24 payload bytes for its timestamp and
			// tracker UUID; the upper bound is ping's traditional -l limit.
			if conf.PayloadSize < 24 || conf.PayloadSize > 65500 {
				return fmt.Errorf("--size out of range [24..65500]")
			}
			if conf.TCP {
				if len(conf.TCPPorts) == 0 {
					return fmt.Errorf("--tcp-ports must name at least one port")
				}
				for _, port := range conf.TCPPorts {
					if port < 1 || port > 65535 {
						return fmt.Errorf("--tcp-ports contains invalid port %d", port)
					}
				}
			}
			if conf.Log.Retention.D() < 0 {
				return fmt.Errorf("--log-retention cannot be negative")
			}
			if *spinnerInterval < 10*time.Millisecond {
				return fmt.Errorf("--spinner must be at least 10ms")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return SweepAndReport(context.Background(), args[0])
		},
	}
	// Sets up the flags; their defaults double as the configuration defaults,
	// so both always agree.
	defaults := config.Default()
	debug = rootCmd.PersistentFlags().Bool(
		"debug", false, "enable debug logging to stderr")
	configPath = rootCmd.PersistentFlags().String(
		"config", "", "YAML configuration file; explicit flags still win")
	workerNumber = rootCmd.PersistentFlags().Uint(
		"workers", defaults.Workers, "number of concurrent ping workers")
	probeTimeout = rootCmd.PersistentFlags().Duration(
		"timeout", defaults.Timeout.D(), "per-host probe deadline")
	resolveTimeout = rootCmd.PersistentFlags().Duration(
		"resolve-timeout", defaults.ResolveTimeout.D(), "per-host name resolution deadline")
	payloadSize = rootCmd.PersistentFlags().Uint(
		"size", defaults.PayloadSize, "ICMP echo payload size in bytes")
	unprivileged = rootCmd.PersistentFlags().Bool(
		"unprivileged", defaults.Unprivileged, "send UDP pings instead of raw-socket ICMP pings")
	dnsServer = rootCmd.PersistentFlags().String(
		"dns", defaults.DNS, "resolve via this DNS server (\"host:port\") instead of the system resolver")
	tcpProbes = rootCmd.PersistentFlags().Bool(
		"tcp", defaults.TCP, "probe with TCP connects instead of ICMP echoes")
	tcpPorts = rootCmd.PersistentFlags().IntSlice(
		"tcp-ports", defaults.TCPPorts, "ports to try for TCP connect probes")
	formatName = rootCmd.PersistentFlags().String(
		"format", defaults.Format, "report file format, \"csv\" or \"xlsx\"")
	outputDir = rootCmd.PersistentFlags().String(
		"output-dir", defaults.OutputDir, "directory to drop the report file into")
	logFile = rootCmd.PersistentFlags().String(
		"log", defaults.Log.File, "run log file")
	logRetention = rootCmd.PersistentFlags().Duration(
		"log-retention", defaults.Log.Retention.D(), "how long run log lines are kept, 0 keeps them forever")
	spinnerInterval = rootCmd.PersistentFlags().Duration(
		"spinner", 100*time.Millisecond, "spinner interval")
	return
}

// effectiveConfig merges the built-in defaults, the optional --config YAML
// file and the flags explicitly set on the command line, in ascending order
// of preference.
func effectiveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return config.Config{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = *workerNumber
	}
	if flags.Changed("timeout") {
		cfg.Timeout = config.Duration(*probeTimeout)
	}
	if flags.Changed("resolve-timeout") {
		cfg.ResolveTimeout = config.Duration(*resolveTimeout)
	}
	if flags.Changed("size") {
		cfg.PayloadSize = *payloadSize
	}
	if flags.Changed("unprivileged") {
		cfg.Unprivileged = *unprivileged
	}
	if flags.Changed("dns") {
		cfg.DNS = *dnsServer
	}
	if flags.Changed("tcp") {
		cfg.TCP = *tcpProbes
	}
	if flags.Changed("tcp-ports") {
		cfg.TCPPorts = append([]int(nil), (*tcpPorts)...)
	}
	if flags.Changed("format") {
		cfg.Format = *formatName
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = *outputDir
	}
	if flags.Changed("log") {
		cfg.Log.File = *logFile
	}
	if flags.Changed("log-retention") {
		cfg.Log.Retention = config.Duration(*logRetention)
	}
	return cfg, nil
}
