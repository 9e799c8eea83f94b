// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package engine

import (
	"github.com/dsnet/sais/internal"
	"github.com/dsnet/sais/internal/sais"
	"github.com/dsnet/sais/internal/workers"
)

// The transform follows the convention of a virtual sentinel that sorts
// before every symbol. Conceptually, the rotations of t+"$" are sorted and
// the last column is taken, with the sentinel itself removed:
//
//	u[0]       = t[n-1]
//	u[i+1]     = t[sa[i]-1]  for i < p-1
//	u[i]       = t[sa[i]-1]  for i > p-1
//
// where p-1 is the rank of suffix 0. The reported primary index p is the row
// of t within the n+1 sorted rotations, which is also where the sentinel
// would have been in u. For "mississippi" the output is "ipssmpissii" with a
// primary index of 5.
//
// An auxiliary index sampled at rate r records aux[i] = 1 + rank(i*r), which
// is p for i == 0.

// BWT computes the transform of t[:n] into u[:n], using a[:n+fs] as the
// suffix array workspace, and reports the primary index. If aux is not nil,
// it receives the auxiliary index sampled at rate r. If freq is not nil, it
// receives the symbol frequencies of t[:n]. The buffer u must not overlap t.
func BWT[T internal.Symbol, I internal.Index](ctx *Context[I], t, u []T, a []I, n, fs I, k int, freq []I, r I, aux []I, threads int) int64 {
	if !validSizes(int64(n), len(u)) {
		return statusIllegal
	}
	p := sortRotations(ctx, t, a, n, fs, k, freq, r, aux, threads)
	if p < 0 {
		return p
	}
	if n <= 1 {
		copy(u[:n], t[:n])
		return p
	}

	t, u, sa := t[:n], u[:n], a[:n]
	pidx := int(p - 1)
	u[0] = t[n-1]
	workers.Run(blocks(len(sa), threads), func(_ int, rg workers.Range) error {
		lo, hi := rg.Lo, rg.Hi
		if lo < pidx {
			m := min(hi, pidx)
			for i, s := range sa[lo:m] {
				u[lo+i+1] = t[s-1]
			}
			lo = m
		}
		if lo == pidx {
			lo++
		}
		for i := lo; i < hi; i++ {
			u[i] = t[sa[i]-1]
		}
		return nil
	})
	return p
}

// BWTInPlace computes the transform of t[:n] and overwrites t[:n] with it.
//
// The symbols are first staged into the suffix array itself by replacing
// every a[i] with t[a[i]-1]. Only once all of them are staged is t
// overwritten, so no symbol is read after it has been replaced.
func BWTInPlace[T internal.Symbol, I internal.Index](ctx *Context[I], t []T, a []I, n, fs I, k int, freq []I, r I, aux []I, threads int) int64 {
	p := sortRotations(ctx, t, a, n, fs, k, freq, r, aux, threads)
	if p < 0 || n <= 1 {
		return p
	}

	t, sa := t[:n], a[:n]
	pidx := int(p - 1)
	last := t[n-1]
	rs := blocks(len(sa), threads)
	workers.Run(rs, func(_ int, rg workers.Range) error {
		for i := rg.Lo; i < rg.Hi; i++ {
			if i != pidx {
				sa[i] = I(t[sa[i]-1])
			}
		}
		return nil
	})
	workers.Run(rs, func(_ int, rg workers.Range) error {
		for i := rg.Lo; i < rg.Hi; i++ {
			switch {
			case i < pidx:
				t[i+1] = T(sa[i])
			case i > pidx:
				t[i] = T(sa[i])
			}
		}
		return nil
	})
	t[0] = last
	return p
}

// sortRotations validates the arguments, computes the suffix array of t[:n]
// into a[:n], fills the optional frequency table and auxiliary index, and
// reports the primary index. Texts of zero or one symbols are fully handled
// here except for writing the output.
func sortRotations[T internal.Symbol, I internal.Index](ctx *Context[I], t []T, a []I, n, fs I, k int, freq []I, r I, aux []I, threads int) int64 {
	if fs < 0 || !validSizes(int64(n), len(t)) || int64(len(a)) < int64(n)+int64(fs) {
		return statusIllegal
	}
	if k <= 0 || (freq != nil && len(freq) < k) || threads < 1 {
		return statusIllegal
	}
	if aux != nil && (r < 2 || !isPowerOfTwo(int64(r)) || int64(len(aux)) < samples(int64(n), int64(r))) {
		return statusIllegal
	}
	t, a = t[:n], a[:int(n)+int(fs)]

	if freq != nil {
		workers.Histogram(t, freq[:k], threads)
	}
	if n <= 1 {
		if aux != nil {
			aux[0] = n
		}
		return int64(n)
	}

	sa := a[:n]
	sais.ComputeSA(t, sa, k, ctx.scratch(a[n:], k))
	if internal.Debug && !sorted(t, sa) {
		return statusBroken
	}

	// Locate suffix 0 and sample the auxiliary index in one pass.
	rs := blocks(len(sa), threads)
	found := make([]int, len(rs))
	workers.Run(rs, func(j int, rg workers.Range) error {
		found[j] = -1
		for i := rg.Lo; i < rg.Hi; i++ {
			s := sa[i]
			if s == 0 {
				found[j] = i
			}
			if aux != nil && s%r == 0 {
				aux[s/r] = I(i + 1)
			}
		}
		return nil
	})
	for _, i := range found {
		if i >= 0 {
			return int64(i + 1)
		}
	}
	return statusBroken
}
