// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package engine

import (
	"github.com/dsnet/sais/internal"
	"github.com/dsnet/sais/internal/workers"
)

// The inverse transform works on the n+1 rows of the rotation matrix of
// t+"$". The last column L is u with the sentinel put back at row p:
//
//	L[j] = u[j]    for j < p
//	L[p] = '$'
//	L[j] = u[j-1]  for j > p
//
// The first column F is the sorted symbols, where row 0 holds the sentinel
// and symbol c occupies rows [start[c], start[c+1]). The successor array psi
// maps the row of every rotation to the row of the rotation one position to
// the left, so that starting at the row of suffix i the text is recovered as
// t[i], t[i+1], ... = F[row], F[psi[row]], ...
//
// Every auxiliary sample starts an independent walk of at most r steps.
// Those walks are what the parallel mode distributes.

// fastSize is the number of entries of the coarse row to symbol lookup.
const fastSize = 1 << 16

// UnBWT reconstructs t[:n] from the transform u[:n] and its primary index p,
// using a[:n+1] as scratch. If freq is not nil, it must hold the symbol
// frequencies of u[:n]. The buffer t must not overlap u.
func UnBWT[T internal.Symbol, I internal.Index](ctx *UnBWTContext[I], u, t []T, a []I, n I, k int, freq []I, p I, threads int) int64 {
	r := max(n, 1)
	return unbwt(ctx, u, t, a, n, k, freq, r, []I{p}, threads)
}

// UnBWTAux is UnBWT driven by an auxiliary index sampled at rate r.
func UnBWTAux[T internal.Symbol, I internal.Index](ctx *UnBWTContext[I], u, t []T, a []I, n I, k int, freq []I, r I, aux []I, threads int) int64 {
	if r < 2 || !isPowerOfTwo(int64(r)) {
		return statusIllegal
	}
	return unbwt(ctx, u, t, a, n, k, freq, r, aux, threads)
}

// UnBWTInPlace reconstructs t[:n] from the transform stored in t[:n].
//
// The transform is only read while counting symbols and building psi, both
// of which complete before the first symbol of the text is written. After
// that the walks only read psi and the bucket starts.
func UnBWTInPlace[T internal.Symbol, I internal.Index](ctx *UnBWTContext[I], t []T, a []I, n I, k int, freq []I, p I, threads int) int64 {
	r := max(n, 1)
	return unbwt(ctx, t, t, a, n, k, freq, r, []I{p}, threads)
}

// UnBWTAuxInPlace is UnBWTInPlace driven by an auxiliary index sampled at
// rate r.
func UnBWTAuxInPlace[T internal.Symbol, I internal.Index](ctx *UnBWTContext[I], t []T, a []I, n I, k int, freq []I, r I, aux []I, threads int) int64 {
	if r < 2 || !isPowerOfTwo(int64(r)) {
		return statusIllegal
	}
	return unbwt(ctx, t, t, a, n, k, freq, r, aux, threads)
}

func unbwt[T internal.Symbol, I internal.Index](ctx *UnBWTContext[I], u, t []T, a []I, n I, k int, freq []I, r I, aux []I, threads int) int64 {
	if !validSizes(int64(n), len(u), len(t)) || int64(len(a)) <= int64(n) {
		return statusIllegal
	}
	if k <= 0 || k > fastSize || (freq != nil && len(freq) < k) || threads < 1 || r < 1 {
		return statusIllegal
	}
	m := samples(int64(n), int64(r))
	if int64(len(aux)) < m {
		return statusIllegal
	}
	aux = aux[:m]
	if n <= 1 {
		if aux[0] != n {
			return statusIllegal
		}
		copy(t[:n], u[:n])
		return statusOK
	}
	for _, x := range aux {
		if x < 1 || x > n {
			return statusIllegal
		}
	}

	if ctx == nil {
		ctx = new(UnBWTContext[I])
	}
	ctx.init(k, threads)
	u, t, psi := u[:n], t[:n], a[:int(n)+1]
	p := int(aux[0])

	if st := buildStarts(ctx, u, k, freq, threads); st < 0 {
		return st
	}
	if st := buildPsi(ctx, u, psi, k, p, threads); st < 0 {
		return st
	}
	ctx.buildFast(int(n), k)

	// The text must not be written before this point; see UnBWTInPlace.
	start, fast := ctx.start, ctx.fast
	shift := fastShift(int(n))
	chunks := workers.Split(len(aux), threads, 1)
	workers.Run(chunks, func(_ int, rg workers.Range) error {
		for s := rg.Lo; s < rg.Hi; s++ {
			lo := s * int(r)
			hi := min(lo+int(r), len(t))
			row := aux[s]
			for pos := lo; pos < hi; pos++ {
				c := int(fast[int(row)>>shift])
				for start[c+1] <= row {
					c++
				}
				t[pos] = T(c)
				row = psi[row]
			}
		}
		return nil
	})
	return statusOK
}

// buildStarts fills the bucket starts from the supplied frequencies or by
// counting u.
func buildStarts[T internal.Symbol, I internal.Index](c *UnBWTContext[I], u []T, k int, freq []I, threads int) int64 {
	cnt := c.cursor[:k]
	if freq != nil {
		var sum int64
		for i, x := range freq[:k] {
			if x < 0 {
				return statusIllegal
			}
			sum += int64(x)
			cnt[i] = x
		}
		if sum != int64(len(u)) {
			return statusIllegal
		}
	} else {
		workers.Histogram(u, cnt, threads)
	}

	total := I(1) // Row 0 holds the sentinel
	for i, x := range cnt {
		c.start[i] = total
		total += x
	}
	c.start[k] = total
	return statusOK
}

// buildPsi fills psi[:n+1] by distributing every row j into the bucket of
// L[j], in row order. The parallel form gives every block of rows its own
// cursors, offset by the counts of the preceding blocks, which yields the
// same array.
func buildPsi[T internal.Symbol, I internal.Index](c *UnBWTContext[I], u []T, psi []I, k, p, threads int) int64 {
	n := len(u)
	start, end := c.start[:k], c.start[1:]
	psi[0] = I(p)

	rs := blocks(n+1, threads)
	if len(rs) == 1 {
		cur := c.cursor[:k]
		copy(cur, start)
		for j := 0; j < p; j++ {
			ch := u[j]
			x := cur[ch]
			if x >= end[ch] {
				return statusIllegal
			}
			psi[x] = I(j)
			cur[ch] = x + 1
		}
		for j := p + 1; j <= n; j++ {
			ch := u[j-1]
			x := cur[ch]
			if x >= end[ch] {
				return statusIllegal
			}
			psi[x] = I(j)
			cur[ch] = x + 1
		}
		return statusOK
	}

	hist := c.hist[:len(rs)*k]
	workers.Run(rs, func(w int, rg workers.Range) error {
		h := hist[w*k : (w+1)*k]
		clear(h)
		for j := rg.Lo; j < min(rg.Hi, p); j++ {
			h[u[j]]++
		}
		for j := max(rg.Lo, p+1); j < rg.Hi; j++ {
			h[u[j-1]]++
		}
		return nil
	})
	for ch := 0; ch < k; ch++ {
		off := start[ch]
		for w := range rs {
			h := hist[w*k+ch]
			hist[w*k+ch] = off
			off += h
		}
		if off != end[ch] {
			return statusIllegal // Frequencies do not describe u
		}
	}
	workers.Run(rs, func(w int, rg workers.Range) error {
		cur := hist[w*k : (w+1)*k]
		for j := rg.Lo; j < min(rg.Hi, p); j++ {
			ch := u[j]
			psi[cur[ch]] = I(j)
			cur[ch]++
		}
		for j := max(rg.Lo, p+1); j < rg.Hi; j++ {
			ch := u[j-1]
			psi[cur[ch]] = I(j)
			cur[ch]++
		}
		return nil
	})
	return statusOK
}

// buildFast fills the coarse lookup, where fast[v] is the symbol of row
// v<<fastShift(n). Walks refine it by advancing over the bucket starts.
func (c *UnBWTContext[I]) buildFast(n, k int) {
	shift := fastShift(n)
	ch := 0
	for v := range c.fast {
		pos := v << shift
		if pos > n {
			break
		}
		for int(c.start[ch+1]) <= pos {
			ch++
		}
		c.fast[v] = uint16(ch)
	}
}

// fastShift reports the shift that maps every row in [0, n] into the lookup.
func fastShift(n int) uint {
	var s uint
	for n>>s >= fastSize {
		s++
	}
	return s
}
