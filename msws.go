// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msws

import (
	"math/bits"
)

// Generator is a Middle Square Weyl Sequence pseudorandom number generator.
//
// The state consists of three 64-bit words: x is the running value the output
// is taken from, w is the Weyl sequence which advances by s on every step, and
// s is an odd constant that remains fixed until the generator is reseeded.
// All arithmetic wraps modulo 2^64.
//
// Generator methods are not safe for concurrent access.
type Generator struct {
	x, w, s uint64
}

// New returns a generator with all three state words set to seed.  The seed
// should be a value produced by DeriveSeed or RandomSeed so that the Weyl
// increment is odd and has well mixed digits.
func New(seed uint64) *Generator {
	return &Generator{x: seed, w: seed, s: seed}
}

// NewFromIndex returns a generator seeded with DeriveSeed(n).  Generators
// created with the same index always produce the same stream.
func NewFromIndex(n uint64) *Generator {
	return New(DeriveSeed(n))
}

// NewRandom returns a generator seeded from the system entropy source.  An
// error wrapping ErrEntropyUnavailable is returned when no strong entropy
// could be obtained.
func NewRandom() (*Generator, error) {
	return NewRandomFrom(SystemEntropy())
}

// NewRandomFrom returns a generator seeded from the provided entropy source.
func NewRandomFrom(src EntropySource) (*Generator, error) {
	seed, err := RandomSeedFrom(src)
	if err != nil {
		return nil, err
	}
	return New(seed), nil
}

// NewFromState returns a generator with the exact provided state.  No checks
// are performed on s, so a poorly chosen (even or zero) increment results in a
// degenerate stream.  It is primarily useful for reproducing a stream captured
// with State.
func NewFromState(x, w, s uint64) *Generator {
	return &Generator{x: x, w: w, s: s}
}

// State returns the current state words of the generator.
func (g *Generator) State() (x, w, s uint64) {
	return g.x, g.w, g.s
}

// Step advances the generator and returns the next 32-bit output.
//
// The running value is squared, the Weyl sequence is advanced and added, and
// the upper and lower halves of the result are swapped.  The output is the
// low 32 bits of the swapped value, which is the middle of the square.
func (g *Generator) Step() uint32 {
	g.x *= g.x
	g.w += g.s
	g.x += g.w
	g.x = bits.RotateLeft64(g.x, 32)
	return uint32(g.x)
}

// Reseed discards all state and reinitializes the generator with
// DeriveSeed(n).
func (g *Generator) Reseed(n uint64) {
	log.Tracef("Reseeding generator from index %d", n)
	seed := DeriveSeed(n)
	g.x, g.w, g.s = seed, seed, seed
}

// ReseedRandom discards all state and reinitializes the generator with a seed
// obtained from src.  The generator is left unmodified when an error is
// returned.
func (g *Generator) ReseedRandom(src EntropySource) error {
	seed, err := RandomSeedFrom(src)
	if err != nil {
		return err
	}
	log.Trace("Reseeding generator from entropy source")
	g.x, g.w, g.s = seed, seed, seed
	return nil
}
