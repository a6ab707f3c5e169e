// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msws

import (
	"encoding/binary"
	"fmt"
	"io"
)

// EntropySource provides unpredictable 64-bit values from a strong source of
// randomness.  Implementations must report failures instead of falling back
// to weaker sources such as clocks or counters.
type EntropySource interface {
	// StrongUint64 returns a value read from the underlying source.  The
	// returned error, if any, wraps ErrEntropyUnavailable.
	StrongUint64() (uint64, error)
}

// readerEntropy is an EntropySource backed by an io.Reader.
type readerEntropy struct {
	r io.Reader
}

// ReaderEntropy returns an EntropySource which reads values from r.  The
// reader must itself be a strong source of randomness such as
// crypto/rand.Reader.
func ReaderEntropy(r io.Reader) EntropySource {
	return readerEntropy{r: r}
}

// StrongUint64 reads 8 bytes from the underlying reader.
func (e readerEntropy) StrongUint64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(e.r, b[:]); err != nil {
		str := fmt.Sprintf("read of entropy source failed: %v", err)
		return 0, makeError(ErrEntropyUnavailable, str, err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
