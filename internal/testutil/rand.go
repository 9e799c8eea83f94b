// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]) << 32
	x |= int(r.blk[5]) << 40
	x |= int(r.blk[6]) << 48
	x |= int(r.blk[7]&0x3f) << 56
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// RandText returns n symbols drawn uniformly from the inclusive range [lo, hi].
func RandText[T Symbol](r *Rand, n, lo, hi int) []T {
	t := make([]T, n)
	for i := range t {
		t[i] = T(lo + r.Intn(hi-lo+1))
	}
	return t
}

// Repeats returns n bytes made mostly of copies of earlier data at distances
// and lengths spread over several orders of magnitude, interspersed with
// short random runs. The result has many long repeated substrings.
func Repeats(r *Rand, n int) []byte {
	randLen := func() int {
		k := r.Intn(7)
		return 4<<uint(k) + r.Intn(4<<uint(k))
	}
	randDist := func(max int) int {
		k := r.Intn(15)
		if d := 1<<uint(k) + r.Intn(1<<uint(k)); d <= max {
			return d
		}
		return 1 + r.Intn(max)
	}

	b := r.Bytes(randLen())
	for len(b) < n {
		if r.Intn(10) == 0 {
			b = append(b, r.Bytes(randLen())...)
			continue
		}
		d, l := randDist(len(b)), randLen()
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}
	return b[:n]
}
