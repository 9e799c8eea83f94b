// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of common helpers for the sais packages.
//
// Every size that crosses the public API is narrowed into the index type of
// the algorithm through the functions in this package. On failure they panic
// with an errors.Error, which the public packages must recover.
package internal

import (
	"math"
	"runtime"

	"github.com/dsnet/sais/auxindex"
	"github.com/dsnet/sais/internal/errors"
)

// Symbol is the set of types a text may be composed of.
type Symbol interface {
	~uint8 | ~uint16 | ~int32 | ~int64
}

// Index is the set of types a suffix array may be composed of.
type Index interface {
	~int32 | ~int64
}

// Alphabet sizes of the fixed width texts.
const (
	Alphabet8  = 1 << 8
	Alphabet16 = 1 << 16
)

// MaxIndex reports the largest value representable by I.
func MaxIndex[I Index]() int64 {
	if x := I(math.MaxInt32); x+1 < 0 {
		return math.MaxInt32
	}
	return math.MaxInt64
}

// Narrow converts v into I, panicking if it does not fit.
func Narrow[I Index](v int) I {
	if v < 0 || int64(v) > MaxIndex[I]() {
		errors.Panicf(errors.IllegalArguments, "size %d overflows the index type", v)
	}
	return I(v)
}

// SameSize returns a if both sizes are equal.
func SameSize(a, b int) int {
	if a != b {
		errors.Panicf(errors.IllegalArguments, "mismatching sizes %d and %d", a, b)
	}
	return a
}

// MaxSize returns size if it does not exceed max.
func MaxSize(size int, max int64) int {
	if int64(size) > max {
		errors.Panicf(errors.IllegalArguments, "size %d exceeds maximum of %d", size, max)
	}
	return size
}

// SplitSize splits the capacity of a workspace into the text length n and
// the free space following it.
func SplitSize[I Index](n, capacity int) (I, I) {
	if capacity < n {
		errors.Panicf(errors.IllegalArguments, "workspace of %d is smaller than text of %d", capacity, n)
	}
	return Narrow[I](n), Narrow[I](capacity - n)
}

// UnBWTSize returns n if scratch can hold the n+1 rows of the inverse
// transform.
func UnBWTSize[I Index](n, scratch int) I {
	if scratch <= n {
		errors.Panicf(errors.IllegalArguments, "scratch of %d must exceed text of %d", scratch, n)
	}
	return Narrow[I](n)
}

// AuxRate infers the sampling rate of an auxiliary index of size auxLen.
func AuxRate[I Index](auxLen, n int) I {
	r, ok := auxindex.RateExact(n, auxLen)
	if !ok {
		errors.Panicf(errors.IllegalArguments, "auxiliary index of %d does not match any rate for text of %d", auxLen, n)
	}
	return Narrow[I](r)
}

// FreqTable validates an optional frequency table. A nil table is absent.
func FreqTable[I Index](freq []I, size int) []I {
	if freq != nil && len(freq) != size {
		errors.Panicf(errors.IllegalArguments, "frequency table of %d, want %d", len(freq), size)
	}
	return freq
}

// Threads resolves the requested degree of parallelism.
// Zero selects GOMAXPROCS.
func Threads(n int) int {
	switch {
	case n < 0:
		errors.Panicf(errors.IllegalArguments, "negative thread count %d", n)
	case n == 0:
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// NoCopy may be embedded into structs which must not be copied after the
// first use. It only has an effect with the copylocks checker of go vet.
type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}
