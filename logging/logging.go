// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

// Package logging wires up the diagnostic logger of a sweep: structured JSON
// lines into a size-rotated file, with an optional console tee for debugging
// sessions. This logger is for diagnosing the sweep tool itself; the
// user-facing sweep history lives in package runlog instead.
package logging

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns the diagnostic logger, writing JSON lines to a size-rotated
// "pingsweep.log" inside dir, creating dir first if needed. With debug
// enabled, the level drops from Info to Debug and the log is additionally
// teed to stderr in a console-friendly format.
//
// Every logger gets tagged with a fresh run ID, so the interleaved lines of
// overlapping sweep runs can be told apart again afterwards.
func New(dir string, debug bool) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(dir, "pingsweep.log"),
			MaxSize:    10, // MiB
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}),
		level)
	if debug {
		core = zapcore.NewTee(core,
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.Lock(os.Stderr),
				level))
	}
	return zap.New(core).With(zap.String("run", uuid.NewString())), nil
}
