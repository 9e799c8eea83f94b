// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package auxindex computes the sampling rate and length of auxiliary indexes.
//
// An auxiliary index samples the position of every r-th suffix in the sorted
// rotation matrix of a Burrows-Wheeler transform, where the rate r is a power
// of two no smaller than MinRate. Since only the array is usually persisted,
// the rate must be recoverable from the text size and the array length alone.
// RateExact and LengthExact are inverses of each other for that purpose.
package auxindex

import "math/bits"

const (
	// MinRate is the smallest sampling rate of an auxiliary index.
	MinRate = 2

	// MinLength is the smallest length of an auxiliary index.
	// Even the empty text carries one sample.
	MinLength = 1
)

// LengthMax reports the length of the longest auxiliary index that fits
// within capacity for a text of size n. It reports false if none fits.
func LengthMax(n, capacity int) (int, bool) {
	r, ok := RateMin(n, capacity)
	if !ok {
		return 0, false
	}
	return LengthExact(n, r)
}

// RateMin reports the smallest sampling rate whose auxiliary index for a text
// of size n fits within capacity. It reports false if capacity is zero or the
// rate cannot be represented.
func RateMin(n, capacity int) (int, bool) {
	if n < 0 || capacity <= 0 {
		return 0, false
	}
	r, ok := nextPowerOfTwo(divCeil(n, capacity))
	if !ok {
		return 0, false
	}
	if r < MinRate {
		r = MinRate
	}
	return r, true
}

// RateExact reports the sampling rate of an auxiliary index of the given
// length for a text of size n. It reports false unless length is exactly the
// length produced by the smallest rate that fits.
func RateExact(n, length int) (int, bool) {
	r, ok := RateMin(n, length)
	if !ok {
		return 0, false
	}
	if m, ok := LengthExact(n, r); !ok || m != length {
		return 0, false
	}
	return r, true
}

// LengthExact reports the length of the auxiliary index sampled at rate r for
// a text of size n. It reports false if r is not a power of two no smaller
// than MinRate.
func LengthExact(n, r int) (int, bool) {
	if n < 0 || r < MinRate || r&(r-1) != 0 {
		return 0, false
	}
	m := divCeil(n, r)
	if m < MinLength {
		m = MinLength
	}
	return m, true
}

func divCeil(a, b int) int {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}

// nextPowerOfTwo reports the smallest power of two >= x.
func nextPowerOfTwo(x int) (int, bool) {
	if x <= 1 {
		return 1, true
	}
	k := bits.Len(uint(x - 1))
	if k >= bits.UintSize-1 {
		return 0, false // Does not fit in a signed int
	}
	return 1 << uint(k), true
}
