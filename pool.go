// Copyright (c) 2024 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package msws

import "sync"

// Pool hands out randomly seeded generators and recycles generators that are
// returned to it.  It is intended for callers that need a generator per
// goroutine without creating and seeding a new one every time.
//
// Pool methods are safe for concurrent access, however the generators it
// returns are owned exclusively by the caller until they are passed to Put.
type Pool struct {
	src  EntropySource
	pool sync.Pool
}

// NewPool returns a pool whose new generators are seeded from src.  The
// system entropy source is used when src is nil.
func NewPool(src EntropySource) *Pool {
	if src == nil {
		src = SystemEntropy()
	}
	return &Pool{src: src}
}

// Get returns a generator owned exclusively by the caller.  A previously
// returned generator is reused when available, otherwise a new one is seeded
// from the pool's entropy source.  An error wrapping ErrEntropyUnavailable is
// returned when seeding fails.
func (p *Pool) Get() (*Generator, error) {
	if g, ok := p.pool.Get().(*Generator); ok {
		return g, nil
	}
	log.Trace("Seeding new pooled generator")
	return NewRandomFrom(p.src)
}

// Put returns a generator to the pool.  The caller must not use g afterwards.
func (p *Pool) Put(g *Generator) {
	if g == nil {
		return
	}
	p.pool.Put(g)
}
