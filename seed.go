// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msws

import (
	"errors"
	"fmt"
)

const (
	// indexSplit is the decimal base the index is split on.  The remainder
	// selects a position within the stream of a table constant while the
	// quotient selects the table constant.
	indexSplit = 100_000_000

	// numSeedConsts is the number of entries in seedConsts.
	numSeedConsts = 30
)

// seedConsts are the Weyl increments used by the throwaway generator inside
// DeriveSeed.  Each entry provides 100 million unique outputs, which makes
// DeriveSeed injective for all indices below three billion.
//
// These values must be reproduced exactly.  Any change alters every derived
// seed and invalidates the uniqueness bound.
var seedConsts = [numSeedConsts]uint64{
	0x8b5ad4ce914ecdf7, 0xdbc8915f4b1cd961, 0x3a16e0c51fa593d9, 0x1794da529ec6d70b,
	0x8fc49b2a752f643b, 0xde07a518fba03571, 0xb1d2e4762d58906b, 0x478f6219da719b05,
	0x41857dc34a2fdc05, 0xb9425ed8e351a06f, 0x9235eb64c35eab7d, 0x91f0e7b8e0536af7,
	0x4f0581abb194f75b, 0xdab4e53c95408d1f, 0xf23ba0c5410ceb3b, 0x912a0b4ce102a36d,
	0x92a73b40b46a2e71, 0x46ca273b5fde168d, 0xf9b8ad61743910b5, 0x490ceb3d865e4bc9,
	0xa12e0dcfbf6471cf, 0xa54c91db6dc0fe37, 0x08c3564a5c031727, 0xe3296d17c14795bd,
	0x5387014db793f24f, 0x6d47af052931fe47, 0xd138c9ef735c0e8f, 0xa790fbc8ebf02d3b,
	0x4a1b027867c953fb, 0x49a180de9567182d,
}

// abs64 returns the absolute value of n interpreted as a two's complement
// signed integer.  The most negative value maps to 1<<63.
func abs64(n uint64) uint64 {
	if int64(n) < 0 {
		return -n
	}
	return n
}

// distinctDigits packs 8 pairwise distinct hexadecimal digits drawn from g
// into a 32-bit word.  Nibbles are taken from each output word starting with
// the least significant one and digits that were already used are skipped, so
// the number of steps consumed depends on the stream.  The first accepted
// digit occupies the least significant nibble of the result.
func distinctDigits(g *Generator) uint32 {
	var digits uint32
	var used uint16
	for shift := 0; shift < 32; {
		word := g.Step()
		for i := 0; i < 32 && shift < 32; i += 4 {
			k := (word >> i) & 0xf
			if used&(1<<k) != 0 {
				continue
			}
			used |= 1 << k
			digits |= k << shift
			shift += 4
		}
	}
	return digits
}

// digitGenerator returns the throwaway generator DeriveSeed extracts digits
// from for index n.  Its increment is a table constant selected by the index.
func digitGenerator(n uint64) Generator {
	n = abs64(n)

	r := n / indexSplit
	t := n % indexSplit
	s := seedConsts[r%numSeedConsts]
	r /= numSeedConsts

	x := t*s + r*s*indexSplit
	return Generator{x: x, w: x, s: s}
}

// DeriveSeed returns a 64-bit constant for the given index that is suitable
// for seeding a Generator.  The upper eight hexadecimal digits of the result
// are pairwise distinct.  The lower eight digits are pairwise distinct before
// the least significant bit is set, so setting it may turn an even lowest
// digit into a copy of one of the other seven.  The result is always odd.
//
// The same index always produces the same seed.  Indices below three billion
// produce unique seeds, while larger indices may produce a seed that was
// already produced by a smaller one.  The index is interpreted as a two's
// complement signed value and its absolute value is used, so n and -n
// produce the same seed.
func DeriveSeed(n uint64) uint64 {
	g := digitGenerator(n)
	hi := distinctDigits(&g)
	lo := distinctDigits(&g)
	return uint64(hi)<<32 | uint64(lo) | 1
}

// RandomSeed returns DeriveSeed applied to a value read from the system
// entropy source.  The result differs on practically every call and must not
// be used where reproducibility is required.
//
// An error wrapping ErrEntropyUnavailable is returned when the system entropy
// source fails.  The read may block until the operating system has gathered
// enough entropy.
func RandomSeed() (uint64, error) {
	return RandomSeedFrom(SystemEntropy())
}

// RandomSeedFrom returns DeriveSeed applied to a value read from src.  Errors
// returned by src always wrap ErrEntropyUnavailable.
func RandomSeedFrom(src EntropySource) (uint64, error) {
	n, err := src.StrongUint64()
	if err != nil {
		log.Debugf("Unable to read entropy: %v", err)
		if !errors.Is(err, ErrEntropyUnavailable) {
			str := fmt.Sprintf("unable to read entropy: %v", err)
			err = makeError(ErrEntropyUnavailable, str, err)
		}
		return 0, err
	}
	return DeriveSeed(n), nil
}
