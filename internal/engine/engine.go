// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package engine implements the algorithm kernel behind the public packages.
//
// The kernel mirrors the calling convention of a native suffix sorting
// library: sizes are passed explicitly in the index type, and every function
// reports a status where a non-negative value is a result and a negative
// value is one of the errors.Status constants. The kernel never panics on
// bad arguments and never allocates when a Context supplies scratch.
package engine

import (
	"strconv"

	"github.com/dsnet/sais/internal"
	"github.com/dsnet/sais/internal/errors"
	"github.com/dsnet/sais/internal/workers"
)

const (
	statusOK      = 0
	statusIllegal = errors.StatusIllegalArguments
	statusBroken  = errors.StatusInternal
)

// status is carried as an error by parallel workers.
type status int64

func (s status) Error() string { return "status " + strconv.FormatInt(int64(s), 10) }

func statusOf(err error) int64 {
	if err == nil {
		return statusOK
	}
	if s, ok := err.(status); ok {
		return int64(s)
	}
	return statusBroken
}

// Context holds the bucket scratch reused by the forward functions.
// A Context must not be used by multiple goroutines simultaneously.
type Context[I internal.Index] struct {
	Threads int
	buckets []I
}

// NewContext allocates scratch for texts over an alphabet of the given size.
func NewContext[I internal.Index](alphabet, threads int) *Context[I] {
	return &Context[I]{Threads: threads, buckets: make([]I, 2*alphabet)}
}

// scratch selects the bucket buffer for an alphabet of size k, preferring
// the free space that follows the suffix array.
func (c *Context[I]) scratch(free []I, k int) []I {
	switch {
	case len(free) >= 2*k:
		return free[:2*k]
	case c != nil && len(c.buckets) >= k:
		return c.buckets
	case len(free) >= k:
		return free[:k]
	}
	return nil
}

// UnBWTContext holds the scratch reused by the inverse functions.
// A UnBWTContext must not be used by multiple goroutines simultaneously.
type UnBWTContext[I internal.Index] struct {
	Threads int
	start   []I      // Bucket starts, with start[k] == n+1
	cursor  []I      // Insertion cursors while building the successor array
	fast    []uint16 // Coarse row to symbol lookup
	hist    []I      // Per worker histograms
}

// NewUnBWTContext allocates scratch for texts over an alphabet of the given
// size.
func NewUnBWTContext[I internal.Index](alphabet, threads int) *UnBWTContext[I] {
	c := new(UnBWTContext[I])
	c.Threads = threads
	c.init(alphabet, threads)
	return c
}

func (c *UnBWTContext[I]) init(k, threads int) {
	if len(c.start) != k+1 {
		c.start = make([]I, k+1)
		c.cursor = make([]I, k+1)
	}
	if len(c.fast) == 0 {
		c.fast = make([]uint16, fastSize)
	}
	if threads > 1 && len(c.hist) < threads*k {
		c.hist = make([]I, threads*k)
	}
}

// validSizes reports whether n and the buffer lengths are consistent.
func validSizes(n int64, lens ...int) bool {
	if n < 0 {
		return false
	}
	for _, m := range lens {
		if int64(m) < n {
			return false
		}
	}
	return true
}

func isPowerOfTwo(r int64) bool { return r > 0 && r&(r-1) == 0 }

// samples reports the number of auxiliary samples of a text of size n taken
// at rate r.
func samples(n, r int64) int64 {
	if n == 0 {
		return 1
	}
	return (n-1)/r + 1
}

// blocks splits [0, n) for the given degree of parallelism.
func blocks(n, threads int) []workers.Range {
	return workers.Split(n, threads, workers.MinBlock)
}

// sorted reports whether sa lists the suffixes of t in increasing order.
// It is quadratic in the worst case and only runs when internal.Debug is set.
func sorted[T internal.Symbol, I internal.Index](t []T, sa []I) bool {
	for i := 1; i < len(sa); i++ {
		a, b := t[sa[i-1]:], t[sa[i]:]
		j := 0
		for j < len(a) && j < len(b) && a[j] == b[j] {
			j++
		}
		if j == len(b) || (j < len(a) && a[j] > b[j]) {
			return false
		}
	}
	return true
}
