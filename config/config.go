// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Package config holds the tunables of a sweep run and optionally reads them
// from a YAML file, so that recurring sweeps don't need a screenful of
// command line flags every time.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/siemens/pingsweep/ping"
	"github.com/siemens/pingsweep/report"
	"github.com/siemens/pingsweep/resolve"
	"github.com/siemens/pingsweep/runlog"

	"gopkg.in/yaml.v3"
)

// DefaultWorkers is the worker budget a sweep runs with when nobody says
// otherwise: ten targets in flight at most.
const DefaultWorkers = 10

// Config collects the tunables of a sweep run. Command line flags take
// precedence over the file contents, which in turn take precedence over the
// built-in defaults of [Default].
type Config struct {
	Workers        uint     `yaml:"workers"`         // worker pool size.
	Timeout        Duration `yaml:"timeout"`         // per-probe deadline.
	ResolveTimeout Duration `yaml:"resolve_timeout"` // per-target resolution deadline.
	PayloadSize    uint     `yaml:"payload_size"`    // ICMP echo payload size in bytes.
	Unprivileged   bool     `yaml:"unprivileged"`    // UDP pings instead of raw ICMP sockets.
	DNS            string   `yaml:"dns"`             // DNS server "host:port"; empty uses the system resolver.
	TCP            bool     `yaml:"tcp"`             // TCP connect probes instead of ICMP echoes.
	TCPPorts       []int    `yaml:"tcp_ports"`       // ports for TCP connect probes.
	Format         string   `yaml:"format"`          // report format, "csv" or "xlsx".
	OutputDir      string   `yaml:"output_dir"`      // where report files end up.
	Log            Log      `yaml:"log"`
}

// Log collects the run log and diagnostic log settings.
type Log struct {
	File      string   `yaml:"file"`      // run log file.
	Retention Duration `yaml:"retention"` // how long run log lines live.
	DebugDir  string   `yaml:"debug_dir"` // directory for rotated diagnostic logs.
}

// Default returns the configuration a sweep runs with when nobody says
// otherwise.
func Default() Config {
	return Config{
		Workers:        DefaultWorkers,
		Timeout:        Duration(ping.DefaultTimeout),
		ResolveTimeout: Duration(resolve.DefaultTimeout),
		PayloadSize:    ping.DefaultPayloadSize,
		TCPPorts:       append([]int(nil), ping.DefaultTCPPorts...),
		Format:         string(report.CSV),
		OutputDir:      ".",
		Log: Log{
			File:      "ping_log.txt",
			Retention: Duration(runlog.DefaultRetention),
			DebugDir:  "logs",
		},
	}
}

// Load returns the built-in defaults layered under the settings from the
// YAML file at path; settings the file doesn't mention stay at their
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot load configuration: %w", err)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot load configuration %q: %w", path, err)
	}
	return cfg, nil
}

// Duration is a [time.Duration] that travels in YAML as a friendly "1s" or
// "500ms" string instead of a bare nanosecond count.
type Duration time.Duration

// D returns the duration as a stock [time.Duration].
func (d Duration) D() time.Duration { return time.Duration(d) }

// UnmarshalYAML decodes a Go duration string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML encodes the duration as its string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
