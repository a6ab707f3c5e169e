// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:build !linux

package msws

import (
	cryptorand "crypto/rand"
)

// SystemEntropy returns the strongest entropy source available on the
// platform.
func SystemEntropy() EntropySource {
	return ReaderEntropy(cryptorand.Reader)
}
