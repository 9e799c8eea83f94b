// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package workers implements the fork-join fan-out used by the parallel
// variants of the algorithms.
//
// Work is always split into contiguous ranges whose results do not depend on
// how many ranges there are, so that the output of a parallel run is
// identical to that of a sequential one.
package workers

import (
	"golang.org/x/sync/errgroup"

	"github.com/dsnet/sais/internal"
)

// MinBlock is the default minimum number of elements that justifies handing
// a range to another goroutine.
const MinBlock = 1 << 16

// Range is the half-open interval [Lo, Hi).
type Range struct{ Lo, Hi int }

func (r Range) Len() int { return r.Hi - r.Lo }

// Split divides [0, n) into at most parts contiguous ranges of nearly equal
// length, where no range is shorter than minSize unless there is only one.
func Split(n, parts, minSize int) []Range {
	if minSize < 1 {
		minSize = 1
	}
	if max := n / minSize; parts > max {
		parts = max
	}
	if parts < 1 {
		parts = 1
	}
	rs := make([]Range, parts)
	q, rem := n/parts, n%parts
	var lo int
	for i := range rs {
		hi := lo + q
		if i < rem {
			hi++
		}
		rs[i] = Range{lo, hi}
		lo = hi
	}
	return rs
}

// Run calls fn concurrently for every range and waits for all of them.
// It returns the first non-nil error. A single range runs on the calling
// goroutine.
func Run(rs []Range, fn func(i int, r Range) error) error {
	if len(rs) == 1 {
		return fn(0, rs[0])
	}
	var g errgroup.Group
	for i, r := range rs {
		i, r := i, r
		g.Go(func() error { return fn(i, r) })
	}
	return g.Wait()
}

// Histogram overwrites freq with the number of occurrences of each symbol in
// text. Every symbol must be a valid index into freq.
func Histogram[T internal.Symbol, I internal.Index](text []T, freq []I, threads int) {
	for i := range freq {
		freq[i] = 0
	}
	rs := Split(len(text), threads, MinBlock)
	if len(rs) == 1 {
		for _, c := range text {
			freq[c]++
		}
		return
	}

	local := make([][]I, len(rs))
	Run(rs, func(i int, r Range) error {
		f := make([]I, len(freq))
		for _, c := range text[r.Lo:r.Hi] {
			f[c]++
		}
		local[i] = f
		return nil
	})
	for _, f := range local {
		for c, cnt := range f {
			freq[c] += cnt
		}
	}
}
