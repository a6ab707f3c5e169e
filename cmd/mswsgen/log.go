// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/dcrd/crypto/msws"
	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// log is the logger used by the command.
var log = slog.Disabled

// logWriter implements an io.Writer that outputs to both standard error and
// an optional log rotator.
type logWriter struct {
	rotator *rotator.Rotator
}

func (w logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if w.rotator != nil {
		w.rotator.Write(p)
	}
	return len(p), nil
}

// logSubsystems holds the loggers created by setupLogging keyed by subsystem.
type logSubsystems struct {
	rotator *rotator.Rotator
	loggers map[string]slog.Logger
}

// setupLogging creates the loggers for the command and the msws package at the
// requested level.  When logFile is not empty, output is also written to a
// rotated log file.  The returned value must be closed to flush the log file.
func setupLogging(logFile, level string) (*logSubsystems, error) {
	lvl, ok := slog.LevelFromString(level)
	if !ok {
		return nil, fmt.Errorf("invalid debug level %q", level)
	}

	var r *rotator.Rotator
	if logFile != "" {
		logDir, _ := filepath.Split(logFile)
		if logDir != "" {
			if err := os.MkdirAll(logDir, 0700); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w",
					err)
			}
		}
		var err error
		r, err = rotator.New(logFile, 10*1024, false, 3)
		if err != nil {
			return nil, fmt.Errorf("failed to create file rotator: %w", err)
		}
	}

	backend := slog.NewBackend(logWriter{rotator: r})
	subsystems := &logSubsystems{
		rotator: r,
		loggers: map[string]slog.Logger{
			"GEN":  backend.Logger("GEN"),
			"MSWS": backend.Logger("MSWS"),
		},
	}
	for _, l := range subsystems.loggers {
		l.SetLevel(lvl)
	}
	log = subsystems.loggers["GEN"]
	msws.UseLogger(subsystems.loggers["MSWS"])
	return subsystems, nil
}

// Close flushes and closes the log rotator, if any.
func (s *logSubsystems) Close() error {
	log = slog.Disabled
	msws.UseLogger(slog.Disabled)
	if s.rotator == nil {
		return nil
	}
	return s.rotator.Close()
}
