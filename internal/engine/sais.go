// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package engine

import (
	"github.com/dsnet/sais/internal"
	"github.com/dsnet/sais/internal/sais"
	"github.com/dsnet/sais/internal/workers"
)

// SAIS computes the suffix array of t[:n] over an alphabet of size k into
// sa[:n], using sa[n:n+fs] as free space. If freq is not nil, it receives the
// symbol frequencies of t[:n].
func SAIS[T internal.Symbol, I internal.Index](ctx *Context[I], t []T, sa []I, n, fs I, k int, freq []I, threads int) int64 {
	if fs < 0 || !validSizes(int64(n), len(t)) || int64(len(sa)) < int64(n)+int64(fs) {
		return statusIllegal
	}
	if k <= 0 || (freq != nil && len(freq) < k) || threads < 1 {
		return statusIllegal
	}
	t, sa = t[:n], sa[:int(n)+int(fs)]

	if freq != nil {
		workers.Histogram(t, freq[:k], threads)
	}
	sais.ComputeSA(t, sa[:n], k, ctx.scratch(sa[n:], k))
	if internal.Debug && !sorted(t, sa[:n]) {
		return statusBroken
	}
	return statusOK
}

// SAISInt computes the suffix array of the integer text t[:n], whose symbols
// must lie within [0, k).
func SAISInt[I internal.Index](ctx *Context[I], t []I, sa []I, n, fs, k I, threads int) int64 {
	if fs < 0 || k <= 0 || !validSizes(int64(n), len(t)) || int64(len(sa)) < int64(n)+int64(fs) || threads < 1 {
		return statusIllegal
	}
	t, sa = t[:n], sa[:int(n)+int(fs)]

	err := workers.Run(blocks(len(t), threads), func(_ int, r workers.Range) error {
		for _, c := range t[r.Lo:r.Hi] {
			if c < 0 || c >= k {
				return status(statusIllegal)
			}
		}
		return nil
	})
	if err != nil {
		return statusOf(err)
	}
	sais.ComputeSA(t, sa[:n], int(k), ctx.scratch(sa[n:], int(k)))
	if internal.Debug && !sorted(t, sa[:n]) {
		return statusBroken
	}
	return statusOK
}
