// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decred/dcrd/crypto/msws"
	flags "github.com/jessevdk/go-flags"
)

// fixedEntropy is an entropy source that always returns the same value.
type fixedEntropy uint64

func (e fixedEntropy) StrongUint64() (uint64, error) {
	return uint64(e), nil
}

// failingEntropy is an entropy source that always fails.
type failingEntropy struct{}

func (failingEntropy) StrongUint64() (uint64, error) {
	return 0, msws.ErrEntropyUnavailable
}

// TestLoadConfig ensures command line arguments are parsed and validated.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string   // test description
		args    []string // command line arguments
		want    *config  // expected config
		wantErr bool     // whether an error is expected
	}{{
		name: "defaults to one random seed",
		args: nil,
		want: &config{Random: 1, DebugLevel: "info"},
	}, {
		name: "indices only",
		args: []string{"-n", "1", "--index=12345"},
		want: &config{Indices: []uint64{1, 12345}, DebugLevel: "info"},
	}, {
		name: "all options",
		args: []string{"-n", "7", "-r", "2", "-c", "3", "-x", "-d", "trace"},
		want: &config{Indices: []uint64{7}, Random: 2, Count: 3, Hex: true,
			DebugLevel: "trace"},
	}, {
		name:    "negative random count",
		args:    []string{"-r", "-1"},
		wantErr: true,
	}, {
		name:    "excessive output count",
		args:    []string{"-c", "2000000"},
		wantErr: true,
	}, {
		name:    "positional arguments",
		args:    []string{"extra"},
		wantErr: true,
	}, {
		name:    "invalid index",
		args:    []string{"-n", "abc"},
		wantErr: true,
	}}

	for _, test := range tests {
		cfg, err := loadConfig(test.args)
		if test.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if cfg.Random != test.want.Random || cfg.Count != test.want.Count ||
			cfg.Hex != test.want.Hex ||
			cfg.DebugLevel != test.want.DebugLevel ||
			len(cfg.Indices) != len(test.want.Indices) {

			t.Errorf("%q: unexpected config -- got %+v, want %+v",
				test.name, cfg, test.want)
			continue
		}
		for i := range cfg.Indices {
			if cfg.Indices[i] != test.want.Indices[i] {
				t.Errorf("%q: unexpected index %d -- got %d, want %d",
					test.name, i, cfg.Indices[i], test.want.Indices[i])
			}
		}
	}
}

// TestLoadConfigHelp ensures requesting help returns the usage text.
func TestLoadConfigHelp(t *testing.T) {
	_, err := loadConfig([]string{"-h"})
	var e *flags.Error
	if !errors.As(err, &e) || e.Type != flags.ErrHelp {
		t.Fatalf("unexpected error -- got %v, want help error", err)
	}
	if !strings.Contains(e.Message, "--index") {
		t.Fatalf("help text missing options: %q", e.Message)
	}
}

// TestRun ensures the command writes the expected seeds and streams.
func TestRun(t *testing.T) {
	tests := []struct {
		name string  // test description
		cfg  *config // command configuration
		want string  // expected output
	}{{
		name: "decimal index",
		cfg:  &config{Indices: []uint64{12345}},
		want: "12345 5100209874706590349\n",
	}, {
		name: "hex index with stream",
		cfg:  &config{Indices: []uint64{12345}, Count: 3, Hex: true},
		want: "12345 46c795dbe5d36a8d\n" +
			"\t70d9862e\n\td9bee1e4\n\te479f150\n",
	}, {
		name: "hex random seed from fixed entropy",
		cfg:  &config{Random: 1, Hex: true},
		want: "random 46c795dbe5d36a8d\n",
	}, {
		name: "leading zero digit",
		cfg:  &config{Indices: []uint64{42}, Hex: true},
		want: "42 0a5d93cf526ba9f7\n",
	}}

	for _, test := range tests {
		var buf bytes.Buffer
		if err := run(&buf, test.cfg, fixedEntropy(12345)); err != nil {
			t.Errorf("%q: unexpected error: %v", test.name, err)
			continue
		}
		if got := buf.String(); got != test.want {
			t.Errorf("%q: unexpected output -- got %q, want %q", test.name,
				got, test.want)
		}
	}
}

// TestRunEntropyFailure ensures entropy failures are reported.
func TestRunEntropyFailure(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, &config{Random: 1}, failingEntropy{})
	if !errors.Is(err, msws.ErrEntropyUnavailable) {
		t.Fatalf("unexpected error -- got %v, want %v", err,
			msws.ErrEntropyUnavailable)
	}
}

// TestSetupLogging ensures log output is written to the requested file and
// invalid levels are rejected.
func TestSetupLogging(t *testing.T) {
	if _, err := setupLogging("", "bogus"); err == nil {
		t.Fatal("expected error for invalid debug level")
	}

	logFile := filepath.Join(t.TempDir(), "logs", "mswsgen.log")
	logs, err := setupLogging(logFile, "debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	log.Debug("test entry")
	if err := logs.Close(); err != nil {
		t.Fatalf("unexpected error closing logs: %v", err)
	}

	contents, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("unable to read log file: %v", err)
	}
	if !strings.Contains(string(contents), "test entry") {
		t.Fatalf("log file missing entry: %q", contents)
	}
}
