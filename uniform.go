// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.
//
// Uniform random algorithms modified from the Go math/rand/v2 package with
// the following license:
//
// Copyright (c) 2009 The Go Authors. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package msws

import (
	"encoding/binary"
	"math/bits"
	mathrand "math/rand"
	mathrandv2 "math/rand/v2"
	"time"
)

var (
	_ mathrand.Source64 = (*Generator)(nil)
	_ mathrandv2.Source = (*Generator)(nil)
)

// Uint32 returns a uniform random uint32.  It is equivalent to Step.
func (g *Generator) Uint32() uint32 {
	return g.Step()
}

// Uint64 returns a uniform random uint64 made of two consecutive outputs with
// the first one occupying the upper 32 bits.
func (g *Generator) Uint64() uint64 {
	hi := g.Step()
	lo := g.Step()
	return uint64(hi)<<32 | uint64(lo)
}

// Seed discards all state and reseeds the generator with DeriveSeed applied
// to seed.  It exists to satisfy math/rand.Source.
func (g *Generator) Seed(seed int64) {
	g.Reseed(uint64(seed))
}

// Read fills s with random bytes.  Each group of up to four bytes consumes one
// output in little endian order; unused bytes of the final output are
// discarded.  Read never errors.
func (g *Generator) Read(s []byte) (n int, err error) {
	for len(s) >= 4 {
		binary.LittleEndian.PutUint32(s, g.Step())
		s = s[4:]
		n += 4
	}
	if len(s) > 0 {
		v := g.Step()
		for i := range s {
			s[i] = byte(v)
			v >>= 8
		}
		n += len(s)
	}
	return n, nil
}

// Uint32N returns a random uint32 in range [0,n) without modulo bias.
// Panics if n == 0.
func (g *Generator) Uint32N(n uint32) uint32 {
	if n == 0 {
		panic("msws: invalid argument to Uint32N")
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return g.Step() & (n - 1)
	}

	// The high half of the 64-bit product of a 32-bit output and n is in
	// [0,n).  Products whose low half falls below 2³² % n are rejected to
	// remove the bias, which is only ever possible when the low half is
	// less than n.
	hi, lo := bits.Mul32(g.Step(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul32(g.Step(), n)
		}
	}
	return hi
}

// Uint64N returns a random uint64 in range [0,n) without modulo bias.
// Panics if n == 0.
func (g *Generator) Uint64N(n uint64) uint64 {
	if n == 0 {
		panic("msws: invalid argument to Uint64N")
	}
	if uint64(uint32(n)) == n {
		return uint64(g.Uint32N(uint32(n)))
	}
	if n&(n-1) == 0 { // n is power of two, can mask
		return g.Uint64() & (n - 1)
	}

	// See https://lemire.me/blog/2016/06/27/a-fast-alternative-to-the-modulo-reduction
	hi, lo := bits.Mul64(g.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(g.Uint64(), n)
		}
	}
	return hi
}

// Int31 returns a random 31-bit non-negative integer as an int32.
func (g *Generator) Int31() int32 {
	return int32(g.Step() >> 1)
}

// Int32 returns a random 31-bit non-negative integer as an int32.
func (g *Generator) Int32() int32 {
	return int32(g.Step() & 0x7FFFFFFF)
}

// Int32N returns, as an int32, a random 31-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func (g *Generator) Int32N(n int32) int32 {
	if n <= 0 {
		panic("msws: invalid argument to Int32N")
	}
	return int32(g.Uint32N(uint32(n)))
}

// Int63 returns a random 63-bit non-negative integer as an int64.  It exists
// to satisfy math/rand.Source.
func (g *Generator) Int63() int64 {
	return int64(g.Uint64() & 0x7FFFFFFF_FFFFFFFF)
}

// Int64 returns a random 63-bit non-negative integer as an int64.
func (g *Generator) Int64() int64 {
	return g.Int63()
}

// Int64N returns, as an int64, a random 63-bit non-negative integer in [0,n)
// without modulo bias.
// Panics if n <= 0.
func (g *Generator) Int64N(n int64) int64 {
	if n <= 0 {
		panic("msws: invalid argument to Int64N")
	}
	return int64(g.Uint64N(uint64(n)))
}

// Int returns a non-negative integer without bias.
func (g *Generator) Int() int {
	return int(uint(g.Uint64()) << 1 >> 1)
}

// IntN returns, as an int, a random non-negative integer in [0,n) without
// modulo bias.
// Panics if n <= 0.
func (g *Generator) IntN(n int) int {
	if n <= 0 {
		panic("msws: invalid argument to IntN")
	}
	return int(g.Uint64N(uint64(n)))
}

// UintN returns, as an uint, a random integer in [0,n) without modulo bias.
// Panics if n == 0.
func (g *Generator) UintN(n uint) uint {
	return uint(g.Uint64N(uint64(n)))
}

// Float64 returns a random float64 in [0.0,1.0).
func (g *Generator) Float64() float64 {
	return float64(g.Uint64()<<11>>11) / (1 << 53)
}

// Float32 returns a random float32 in [0.0,1.0).
func (g *Generator) Float32() float32 {
	return float32(g.Step()<<8>>8) / (1 << 24)
}

// Bool returns a random boolean.
func (g *Generator) Bool() bool {
	return g.Step()&(1<<31) != 0
}

// Duration returns a random duration in [0,n) without modulo bias.
// Panics if n <= 0.
func (g *Generator) Duration(n time.Duration) time.Duration {
	if n <= 0 {
		panic("msws: invalid argument to Duration")
	}
	return time.Duration(g.Uint64N(uint64(n)))
}

// Shuffle randomizes the order of n elements by swapping the elements at
// indexes i and j.
// Panics if n < 0.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	if n < 0 {
		panic("msws: invalid argument to Shuffle")
	}

	// Fisher-Yates shuffle: https://en.wikipedia.org/wiki/Fisher%E2%80%93Yates_shuffle
	for i := n - 1; i > 0; i-- {
		j := int(g.Uint64N(uint64(i + 1)))
		swap(i, j)
	}
}
