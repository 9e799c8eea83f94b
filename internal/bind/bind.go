// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bind converts the slice based API of the public packages into
// calls of the algorithm kernel.
//
// Every size is narrowed into the index type of the kernel and validated
// before the call, and the returned status is interpreted afterwards. All
// failures are raised with errors.Panic, so the exported callers must defer
// errors.Recover.
package bind

import (
	"github.com/dsnet/sais/internal"
	"github.com/dsnet/sais/internal/engine"
	"github.com/dsnet/sais/internal/errors"
)

// split narrows the text length and the free space of the workspace a.
func split[I internal.Index](n int, a []I) (I, I) {
	return internal.SplitSize[I](n, internal.MaxSize(len(a), internal.MaxIndex[I]()))
}

// distinct panics if u and t start at the same element.
// Partial overlaps cannot be detected and are the caller's responsibility.
func distinct[T internal.Symbol](t, u []T) {
	if len(t) > 0 && len(u) > 0 && &t[0] == &u[0] {
		errors.Panicf(errors.IllegalArguments, "input and output alias; use the in-place variant")
	}
}

// SAIS computes the suffix array of t into sa.
func SAIS[T internal.Symbol, I internal.Index](ctx *engine.Context[I], k int, t []T, sa, freq []I, threads int) {
	n, fs := split(len(t), sa)
	freq = internal.FreqTable(freq, k)
	errors.Interpret(engine.SAIS(ctx, t, sa, n, fs, k, freq, threads))
}

// SAISInt computes the suffix array of the integer text t with alphabet
// size k.
func SAISInt[I internal.Index](ctx *engine.Context[I], t, sa []I, k I, threads int) {
	n, fs := split(len(t), sa)
	if k <= 0 {
		errors.Panicf(errors.IllegalArguments, "alphabet size %d must be positive", k)
	}
	errors.Interpret(engine.SAISInt(ctx, t, sa, n, fs, k, threads))
}

// BWT computes the transform of t into u and returns the primary index.
func BWT[T internal.Symbol, I internal.Index](ctx *engine.Context[I], k int, t, u []T, a, freq []I, threads int) I {
	distinct(t, u)
	n, fs := split(internal.SameSize(len(t), len(u)), a)
	freq = internal.FreqTable(freq, k)
	return I(errors.Interpret(engine.BWT(ctx, t, u, a, n, fs, k, freq, 0, nil, threads)))
}

// BWTInPlace computes the transform of t into t and returns the primary
// index.
func BWTInPlace[T internal.Symbol, I internal.Index](ctx *engine.Context[I], k int, t []T, a, freq []I, threads int) I {
	n, fs := split(len(t), a)
	freq = internal.FreqTable(freq, k)
	return I(errors.Interpret(engine.BWTInPlace(ctx, t, a, n, fs, k, freq, 0, nil, threads)))
}

// BWTAux computes the transform of t into u along with the auxiliary index,
// whose rate is inferred from len(aux).
func BWTAux[T internal.Symbol, I internal.Index](ctx *engine.Context[I], k int, t, u []T, a, freq, aux []I, threads int) {
	distinct(t, u)
	n, fs := split(internal.SameSize(len(t), len(u)), a)
	freq = internal.FreqTable(freq, k)
	r := internal.AuxRate[I](len(aux), len(t))
	errors.Interpret(engine.BWT(ctx, t, u, a, n, fs, k, freq, r, aux, threads))
}

// BWTAuxInPlace computes the transform of t into t along with the auxiliary
// index.
func BWTAuxInPlace[T internal.Symbol, I internal.Index](ctx *engine.Context[I], k int, t []T, a, freq, aux []I, threads int) {
	n, fs := split(len(t), a)
	freq = internal.FreqTable(freq, k)
	r := internal.AuxRate[I](len(aux), len(t))
	errors.Interpret(engine.BWTInPlace(ctx, t, a, n, fs, k, freq, r, aux, threads))
}

// UnBWT reconstructs t from the transform u and its primary index.
func UnBWT[T internal.Symbol, I internal.Index](ctx *engine.UnBWTContext[I], k int, u, t []T, a, freq []I, p I, threads int) {
	distinct(u, t)
	n := sizeUnBWT(internal.SameSize(len(u), len(t)), a)
	freq = internal.FreqTable(freq, k)
	errors.Interpret(engine.UnBWT(ctx, u, t, a, n, k, freq, p, threads))
}

// UnBWTInPlace reconstructs t from the transform stored in t.
func UnBWTInPlace[T internal.Symbol, I internal.Index](ctx *engine.UnBWTContext[I], k int, t []T, a, freq []I, p I, threads int) {
	n := sizeUnBWT(len(t), a)
	freq = internal.FreqTable(freq, k)
	errors.Interpret(engine.UnBWTInPlace(ctx, t, a, n, k, freq, p, threads))
}

// UnBWTAux reconstructs t from the transform u and its auxiliary index.
func UnBWTAux[T internal.Symbol, I internal.Index](ctx *engine.UnBWTContext[I], k int, u, t []T, a, freq, aux []I, threads int) {
	distinct(u, t)
	n := sizeUnBWT(internal.SameSize(len(u), len(t)), a)
	freq = internal.FreqTable(freq, k)
	r := internal.AuxRate[I](len(aux), len(t))
	errors.Interpret(engine.UnBWTAux(ctx, u, t, a, n, k, freq, r, aux, threads))
}

// UnBWTAuxInPlace reconstructs t from the transform stored in t and its
// auxiliary index.
func UnBWTAuxInPlace[T internal.Symbol, I internal.Index](ctx *engine.UnBWTContext[I], k int, t []T, a, freq, aux []I, threads int) {
	n := sizeUnBWT(len(t), a)
	freq = internal.FreqTable(freq, k)
	r := internal.AuxRate[I](len(aux), len(t))
	errors.Interpret(engine.UnBWTAuxInPlace(ctx, t, a, n, k, freq, r, aux, threads))
}

func sizeUnBWT[I internal.Index](n int, a []I) I {
	internal.MaxSize(n, internal.MaxIndex[I]()-1)
	return internal.UnBWTSize[I](n, len(a))
}

// PLCP computes the permuted longest-common-prefix array of t.
func PLCP[T internal.Symbol, I internal.Index](t []T, sa, plcp []I, threads int) {
	n := internal.SameSize(internal.SameSize(len(t), len(sa)), len(plcp))
	errors.Interpret(engine.PLCP(t, sa, plcp, internal.Narrow[I](n), threads))
}

// LCP computes the longest-common-prefix array from plcp.
func LCP[I internal.Index](plcp, sa, lcp []I, threads int) {
	n := internal.SameSize(internal.SameSize(len(plcp), len(sa)), len(lcp))
	if n > 0 && &plcp[0] == &lcp[0] {
		errors.Panicf(errors.IllegalArguments, "lcp may not alias plcp")
	}
	errors.Interpret(engine.LCP(plcp, sa, lcp, internal.Narrow[I](n), threads))
}
