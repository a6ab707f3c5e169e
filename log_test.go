// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msws

import (
	"strings"
	"testing"

	"github.com/decred/slog"
)

type testWriter struct {
	strings.Builder
}

// TestUseLogger ensures the package logger is replaced and receives trace
// output from reseeding.
func TestUseLogger(t *testing.T) {
	var w testWriter
	testLogger := slog.NewBackend(&w).Logger("TEST")
	testLogger.SetLevel(slog.LevelTrace)
	UseLogger(testLogger)
	defer UseLogger(slog.Disabled)

	if log != testLogger {
		t.Fatalf("Expected log to be set to testLogger, got %v", log)
	}

	NewFromIndex(1).Reseed(2)
	if !strings.Contains(w.String(), "Reseeding generator from index 2") {
		t.Fatalf("missing reseed log entry in %q", w.String())
	}
}
