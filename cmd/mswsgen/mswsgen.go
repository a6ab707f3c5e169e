// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// mswsgen prints seeds produced by the msws seed derivation routine along with
// optional generator output streams.  Seeds are derived from the indices given
// with -n and from the system entropy source for each requested -r.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/decred/dcrd/crypto/msws"
	flags "github.com/jessevdk/go-flags"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// formatValue returns v as a fixed width hexadecimal string or as a decimal
// string.
func formatValue(v uint64, width int, hex bool) string {
	if hex {
		return fmt.Sprintf("%0*x", width, v)
	}
	return fmt.Sprintf("%d", v)
}

// writeSeed writes a line with the label and seed followed by count outputs
// of a generator seeded with it.
func writeSeed(w io.Writer, cfg *config, label string, seed uint64) error {
	if _, err := fmt.Fprintf(w, "%s %s\n", label,
		formatValue(seed, 16, cfg.Hex)); err != nil {
		return err
	}
	g := msws.New(seed)
	for i := 0; i < cfg.Count; i++ {
		out := formatValue(uint64(g.Step()), 8, cfg.Hex)
		if _, err := fmt.Fprintf(w, "\t%s\n", out); err != nil {
			return err
		}
	}
	return nil
}

// run writes the seeds and streams requested by cfg to w, reading entropy
// from src for random seeds.
func run(w io.Writer, cfg *config, src msws.EntropySource) error {
	bw := bufio.NewWriter(w)
	for _, n := range cfg.Indices {
		seed := msws.DeriveSeed(n)
		log.Debugf("Derived seed %016x for index %d", seed, n)
		if err := writeSeed(bw, cfg, fmt.Sprintf("%d", n), seed); err != nil {
			return err
		}
	}
	for i := 0; i < cfg.Random; i++ {
		seed, err := msws.RandomSeedFrom(src)
		if err != nil {
			return err
		}
		log.Debug("Derived seed from system entropy")
		if err := writeSeed(bw, cfg, "random", seed); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, e.Message)
			os.Exit(0)
		}
		fatalf("%v\n", err)
	}

	logs, err := setupLogging(cfg.LogFile, cfg.DebugLevel)
	if err != nil {
		fatalf("%v\n", err)
	}

	log.Debugf("Generating %d indexed and %d random seeds", len(cfg.Indices),
		cfg.Random)
	err = run(os.Stdout, cfg, msws.SystemEntropy())
	if err != nil {
		log.Errorf("Unable to generate seeds: %v", err)
	}
	logs.Close()
	if err != nil {
		os.Exit(1)
	}
}
