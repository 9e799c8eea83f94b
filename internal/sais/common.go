// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais implements a linear time suffix array algorithm.
package sais

import "github.com/dsnet/sais/internal"

// This package ports the SA-IS implementation of the Go standard library's
// index/suffixarray package. The standard library keeps one copy per
// combination of text and index type, generated from a template. Here the
// combinations are expressed with type parameters instead, which instantiate
// to the same specialised code.
//
// The algorithm has the following shape:
//	placeLMS:    bucket the starts of the LMS-substrings
//	induceSubL:  induce-sort the L-type prefixes of the LMS-substrings
//	induceSubS:  induce-sort the S-type prefixes, leaving sorted LMS-substrings
//	length:      record the length of every LMS-substring
//	assignID:    name the LMS-substrings, merging equal ones
//	recurse:     sort the reduced string of names, if names are not unique
//	expand:      place the sorted LMS-suffixes into their buckets
//	induceL:     induce-sort the L-type suffixes
//	induceS:     induce-sort the S-type suffixes
//
// References:
//	https://go.dev/src/index/suffixarray/sais.go
//	https://ge-nong.googlecode.com/files/Two%20Efficient%20Algorithms%20for%20Linear%20Time%20Suffix%20Array%20Construction.pdf

// maxCachedAlphabet is the largest alphabet for which an allocated tmp is
// doubled to hold the frequency cache.
const maxCachedAlphabet = 1 << 16

// ComputeSA computes the suffix array of t and places the result in sa.
// Both t and sa must be the same length. Every symbol of t must be within
// [0, k). The tmp buffer must be at least k long; having 2*k or more lets the
// algorithm cache symbol frequencies. A shorter tmp is replaced by an
// allocation.
//
// The contents of tmp are left unspecified, while t is never modified.
func ComputeSA[T internal.Symbol, I internal.Index](t []T, sa []I, k int, tmp []I) {
	if len(sa) != len(t) {
		panic("mismatching sizes")
	}
	if len(tmp) < k {
		m := k
		if k <= maxCachedAlphabet {
			m = 2 * k
		}
		tmp = make([]I, m)
	}
	clear(sa)
	computeSA(t, k, sa, tmp)
}
