// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package runlog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"
)

// TimeLayout is the timestamp format of run log lines, down to full seconds
// and in local time, as that is what the consumers of these logs expect.
const TimeLayout = "2006-01-02 15:04:05"

// DefaultRetention is how long a run log line is kept before it gets pruned;
// a week of sweep history has proven to be plenty.
const DefaultRetention = 7 * 24 * time.Hour

// separator sits between the timestamp and the message of a log line.
const separator = " - "

// Log appends timestamped lines to a run log file, pruning expired lines on
// every append. The zero Log is not usable; use [New]. A Log is safe for
// concurrent use.
type Log struct {
	mu        sync.Mutex
	path      string
	retention time.Duration
	echo      io.Writer
	now       func() time.Time
}

// Option configures a run log when creating it with [New].
type Option func(*Log)

// WithEcho additionally copies every appended line to w, typically a
// terminal, so users see live what lands in the log.
func WithEcho(w io.Writer) Option {
	return func(l *Log) { l.echo = w }
}

// WithRetention sets the retention window for log lines. A zero or negative
// window switches pruning off entirely.
func WithRetention(d time.Duration) Option {
	return func(l *Log) { l.retention = d }
}

// WithClock lets tests supply their own idea of "now".
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// New returns a run log writing to the file at path, creating the file on
// the first append if needed.
func New(path string, options ...Option) *Log {
	l := &Log{
		path:      path,
		retention: DefaultRetention,
		now:       time.Now,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

// Printf formats a message and appends it as a new timestamped line,
// pruning expired lines along the way.
func (l *Log) Printf(format string, args ...any) error {
	return l.append(fmt.Sprintf(format, args...))
}

// append rewrites the log file so that it consists of the still-fresh
// existing lines followed by the new line.
func (l *Log) append(message string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	line := now.Format(TimeLayout) + separator + message
	retained, err := l.freshLines(now)
	if err != nil {
		return fmt.Errorf("cannot update run log: %w", err)
	}
	retained = append(retained, line)
	if err := os.WriteFile(l.path,
		[]byte(strings.Join(retained, "\n")+"\n"), 0o644); err != nil {
		return fmt.Errorf("cannot update run log: %w", err)
	}
	if l.echo != nil {
		fmt.Fprintln(l.echo, line)
	}
	return nil
}

// freshLines returns the log lines still within the retention window. A
// missing log file simply means no lines yet. Lines without a parseable
// timestamp prefix are dropped, as there is no way of telling their age.
func (l *Log) freshLines(now time.Time) ([]string, error) {
	content, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	if l.retention <= 0 {
		return splitLines(content), nil
	}
	cutoff := now.Add(-l.retention)
	retained := []string{}
	for _, line := range splitLines(content) {
		stamp, _, ok := strings.Cut(line, separator)
		if !ok {
			continue
		}
		t, err := time.ParseInLocation(TimeLayout, stamp, time.Local)
		if err != nil {
			continue
		}
		if t.Before(cutoff) {
			continue
		}
		retained = append(retained, line)
	}
	return retained, nil
}

func splitLines(content []byte) []string {
	lines := []string{}
	for _, line := range strings.Split(string(content), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
