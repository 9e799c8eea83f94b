// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lcp answers longest-common-prefix queries between arbitrary
// suffixes of a text.
//
// An Index is built from the text, its suffix array, and its LCP array as
// produced by package sais32. The common prefix of two suffixes is the
// minimum of the LCP array between their ranks, which is answered in
// constant time by a range-minimum query structure.
package lcp

import (
	"bytes"
	"sort"

	"github.com/viniciusth/rmq"

	"github.com/dsnet/sais/internal/errors"
)

const pkg = "lcp"

// Index is an immutable common prefix index over a text.
// It is safe for concurrent use.
type Index struct {
	text []byte
	sa   []int32
	rank []int32
	lcp  []int
	rmq  *rmq.RMQHybridNaive[int]
}

// New builds an Index. The suffix array sa and the LCP array lcp must both
// describe t, where lcp[i] is the common prefix length of the suffixes at
// sa[i-1] and sa[i]. Index retains t and sa; they must not be modified.
func New(t []byte, sa, lcp []int32) (x *Index, err error) {
	defer errors.RecoverAs(&err, pkg)
	n := len(t)
	if len(sa) != n || len(lcp) != n {
		errors.Panicf(errors.IllegalArguments, "mismatching sizes %d, %d, and %d", n, len(sa), len(lcp))
	}

	x = &Index{text: t, sa: sa, rank: make([]int32, n), lcp: make([]int, n)}
	for i := range x.rank {
		x.rank[i] = -1
	}
	for i, s := range sa {
		if s < 0 || int(s) >= n || x.rank[s] >= 0 {
			errors.Panicf(errors.IllegalArguments, "invalid suffix array entry sa[%d] = %d", i, s)
		}
		x.rank[s] = int32(i)
		if l := lcp[i]; l < 0 || int(l) > n-int(s) {
			errors.Panicf(errors.IllegalArguments, "invalid lcp entry lcp[%d] = %d", i, l)
		}
		x.lcp[i] = int(lcp[i])
	}
	if n > 0 {
		x.rmq = rmq.NewRMQHybridNaive(x.lcp)
	}
	return x, nil
}

// Len reports the length of the text.
func (x *Index) Len() int { return len(x.text) }

// Rank reports the position of the suffix starting at i in the suffix array.
func (x *Index) Rank(i int) int { return int(x.rank[i]) }

// Suffix reports the starting position of the suffix of the given rank.
func (x *Index) Suffix(rank int) int { return int(x.sa[rank]) }

// Prefix reports the length of the longest common prefix of the suffixes
// starting at i and j.
func (x *Index) Prefix(i, j int) int {
	if i == j {
		return len(x.text) - i
	}
	lo, hi := x.rank[i], x.rank[j]
	if lo > hi {
		lo, hi = hi, lo
	}
	return x.lcp[x.rmq.Query(int(lo)+1, int(hi))]
}

// Compare compares the suffixes starting at i and j lexicographically. The
// result is 0 if i == j, -1 if t[i:] < t[j:], and +1 if t[i:] > t[j:].
func (x *Index) Compare(i, j int) int {
	switch ri, rj := x.rank[i], x.rank[j]; {
	case ri < rj:
		return -1
	case ri > rj:
		return +1
	}
	return 0
}

// Lookup reports the range of ranks [lo, hi) of the suffixes that start
// with p. The range is empty if p does not occur in the text.
func (x *Index) Lookup(p []byte) (lo, hi int) {
	n := len(x.sa)
	lo = sort.Search(n, func(i int) bool {
		return bytes.Compare(x.text[x.sa[i]:], p) >= 0
	})
	hi = lo + sort.Search(n-lo, func(i int) bool {
		return !bytes.HasPrefix(x.text[x.sa[lo+i]:], p)
	})
	return lo, hi
}
