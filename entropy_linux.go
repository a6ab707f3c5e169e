// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build linux

package msws

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// getrandomEntropy reads entropy directly with the getrandom(2) system call,
// which blocks until the kernel entropy pool has been initialized.
type getrandomEntropy struct{}

// SystemEntropy returns the strongest entropy source available on the
// platform.
func SystemEntropy() EntropySource {
	return getrandomEntropy{}
}

// StrongUint64 returns a value read with getrandom(2).  Kernels predating the
// system call are served by crypto/rand, which reads /dev/urandom after
// waiting for the pool to be initialized.
func (getrandomEntropy) StrongUint64() (uint64, error) {
	var b [8]byte
	for n := 0; n < len(b); {
		read, err := unix.Getrandom(b[n:], 0)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.ENOSYS):
			log.Debug("getrandom unsupported, reading crypto/rand")
			return ReaderEntropy(cryptorand.Reader).StrongUint64()
		case err != nil:
			str := fmt.Sprintf("getrandom failed: %v", err)
			return 0, makeError(ErrEntropyUnavailable, str, err)
		}
		n += read
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
