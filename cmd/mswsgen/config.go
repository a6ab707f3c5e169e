// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultCount      = 0
	defaultDebugLevel = "info"
	maxCount          = 1 << 20
)

// config defines the configuration options for mswsgen.
type config struct {
	Indices    []uint64 `short:"n" long:"index" description:"derive a seed for the index; may be specified multiple times"`
	Random     int      `short:"r" long:"random" description:"number of seeds to derive from the system entropy source"`
	Count      int      `short:"c" long:"count" description:"number of generator outputs to print after each seed"`
	Hex        bool     `short:"x" long:"hex" description:"print values in hexadecimal"`
	DebugLevel string   `short:"d" long:"debuglevel" description:"logging level {trace, debug, info, warn, error, critical}"`
	LogFile    string   `long:"logfile" description:"also write log output to this file, rotated at 10 MiB"`
}

// loadConfig parses the provided command line arguments into a config with
// defaults applied and validates the result.  A *flags.Error of type
// flags.ErrHelp carrying the usage text is returned when help is requested.
func loadConfig(args []string) (*config, error) {
	cfg := config{
		Count:      defaultCount,
		DebugLevel: defaultDebugLevel,
	}
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Usage = "[OPTIONS]"
	remaining, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(remaining) != 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", remaining)
	}

	if cfg.Random < 0 {
		return nil, fmt.Errorf("random seed count %d must not be negative",
			cfg.Random)
	}
	if cfg.Count < 0 || cfg.Count > maxCount {
		return nil, fmt.Errorf("output count %d must be between 0 and %d",
			cfg.Count, maxCount)
	}
	if len(cfg.Indices) == 0 && cfg.Random == 0 {
		cfg.Random = 1
	}
	return &cfg, nil
}
