// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package msws implements the Middle Square Weyl Sequence pseudorandom number
generator along with a seed derivation routine that maps a 64-bit index to a
well-distributed odd constant suitable for seeding it.

The generator is fast and small, but it is NOT cryptographically secure and
must not be used for keys, nonces, or anything else where an adversary
predicting the output matters.  Use crypto/rand or
github.com/decred/dcrd/crypto/rand for those purposes.

# Generators

A Generator holds three 64-bit words of state and produces one 32-bit output
per call to Step.  Generators are not safe for concurrent access.  Each
goroutine that needs random numbers should own its own Generator, which is
cheap to create:

	g := msws.NewFromIndex(42)   // reproducible stream
	g, err := msws.NewRandom()   // unpredictable stream

A Generator also satisfies math/rand.Source64 and math/rand/v2.Source and
provides the usual uniform helpers such as Uint64N, IntN, Float64 and Shuffle.

# Seed Derivation

DeriveSeed maps an index to a 64-bit constant whose upper eight hexadecimal
digits are pairwise distinct, whose lower eight hexadecimal digits are
pairwise distinct before the least significant bit is set, and which is
always odd.  The mapping is deterministic and is guaranteed to produce
unique constants for all indices below three billion.  Larger indices may
repeat constants produced by smaller ones.

RandomSeed passes a value obtained from the system entropy source through
DeriveSeed.  Failure to obtain entropy is reported as ErrEntropyUnavailable
and is never papered over with a weaker source.

# Pools

A Pool hands out exclusively owned, randomly seeded generators and recycles
them when returned.  It replaces package-level shared generators with an
explicit factory that callers construct and pass around.
*/
package msws
