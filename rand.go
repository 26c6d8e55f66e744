// Copyright (c) 2024 The tinyecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tinyecc

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"encoding/binary"
)

// CryptoRNG is the production RNG implementation, backed by crypto/rand.
// Its zero value is ready to use.
type CryptoRNG struct{}

// Uint32 returns a uniformly distributed 32-bit value read from
// crypto/rand. A failure to read from the system entropy source is
// treated as unrecoverable, the same way the standard library's own
// crypto packages do internally, since an RNG interface has no error
// return to surface it through.
func (CryptoRNG) Uint32() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("tinyecc: crypto/rand unavailable: " + err.Error())
	}
	return binary.BigEndian.Uint32(b[:])
}

// DeterministicRNG is a seedable, reproducible RNG for tests that need
// the same draws across runs. It expands a seed into an arbitrarily long
// stream of 32-bit values using the same HMAC-SHA512 construction the
// teacher's BIP-32 child-key derivation uses, keyed by the seed instead
// of a parent key and walking a counter instead of a derivation index.
type DeterministicRNG struct {
	key     []byte
	counter uint64
	buf     []byte
}

// NewDeterministicRNG returns a DeterministicRNG seeded with seed. Two
// DeterministicRNGs created with the same seed produce identical draws.
func NewDeterministicRNG(seed []byte) *DeterministicRNG {
	key := make([]byte, len(seed))
	copy(key, seed)
	return &DeterministicRNG{key: key}
}

// Uint32 returns the next value in the deterministic stream.
func (d *DeterministicRNG) Uint32() uint32 {
	if len(d.buf) < 4 {
		d.buf = append(d.buf, d.nextBlock()...)
	}
	v := binary.BigEndian.Uint32(d.buf[:4])
	d.buf = d.buf[4:]
	return v
}

func (d *DeterministicRNG) nextBlock() []byte {
	mac := hmac.New(sha512.New, d.key)
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], d.counter)
	mac.Write(ctr[:])
	d.counter++
	return mac.Sum(nil)
}
