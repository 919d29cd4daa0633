// Copyright 2024, The d64make Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil holds small helpers shared by the codec packages' tests:
// a deterministic byte generator for round-trip fuzzing.
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand is a deterministic pseudo-random generator seeded by an int. Unlike
// math/rand, its output sequence is fixed by construction (repeated AES
// encryption of a block that starts at zero) rather than by an implementation
// detail of the standard
// library that could drift between Go versions.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

// NewRand returns a generator seeded by seed.
func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	blk, _ := aes.NewCipher(key[:])
	return &Rand{Block: blk}
}

// Bytes returns a freshly generated byte slice of length n.
func (r *Rand) Bytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		r.Encrypt(r.blk[:], r.blk[:])
		out[i] = r.blk[0]
	}
	return out
}

// Intn returns a pseudo-random integer in [0, n).
func (r *Rand) Intn(n int) int {
	r.Encrypt(r.blk[:], r.blk[:])
	var x uint32
	x |= uint32(r.blk[0]) << 0
	x |= uint32(r.blk[1]) << 8
	x |= uint32(r.blk[2]) << 16
	x |= uint32(r.blk[3]&0x7f) << 24
	return int(x) % n
}

// RepeatingPattern returns a byte slice formed by repeating pattern until it
// reaches length n, useful for exercising the LZ back-reference path.
func RepeatingPattern(pattern []byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
	return out
}
