// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais16 computes suffix arrays, Burrows-Wheeler transforms, and
// longest-common-prefix arrays of 16-bit texts using 32-bit indexes.
//
// The API mirrors package sais32 except that the in-place transforms and
// integer alphabets are not provided.
package sais16

import (
	"math"

	"github.com/dsnet/sais/internal"
	"github.com/dsnet/sais/internal/bind"
	"github.com/dsnet/sais/internal/errors"
)

const (
	// MaxLength is the length of the longest text that may be transformed.
	MaxLength = math.MaxInt32

	// FreqSize is the required length of an optional frequency table.
	FreqSize = internal.Alphabet16

	pkg = "sais16"
)

// SAIS computes the suffix array of t into sa[:len(t)].
// If freq is not nil, it must have FreqSize entries.
func SAIS(t []uint16, sa, freq []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.SAIS(nil, FreqSize, t, sa, freq, 1)
	return nil
}

// BWT computes the Burrows-Wheeler transform of t into u and returns the
// primary index. The workspace a must be at least as long as t.
func BWT(t, u []uint16, a, freq []int32) (primary int32, err error) {
	defer errors.RecoverAs(&err, pkg)
	return bind.BWT(nil, FreqSize, t, u, a, freq, 1), nil
}

// BWTAux is like BWT, but stores an auxiliary index into aux instead of
// returning the primary index.
func BWTAux(t, u []uint16, a, freq, aux []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.BWTAux(nil, FreqSize, t, u, a, freq, aux, 1)
	return nil
}

// UnBWT inverts the transform u into t. The scratch a must be strictly
// longer than u.
func UnBWT(u, t []uint16, a, freq []int32, primary int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWT(nil, FreqSize, u, t, a, freq, primary, 1)
	return nil
}

// UnBWTAux inverts the transform u using its auxiliary index.
func UnBWTAux(u, t []uint16, a, freq, aux []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTAux(nil, FreqSize, u, t, a, freq, aux, 1)
	return nil
}

// PLCP computes the permuted longest-common-prefix array of t.
func PLCP(t []uint16, sa, plcp []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.PLCP(t, sa, plcp, 1)
	return nil
}

// LCP computes the longest-common-prefix array from plcp and sa.
func LCP(plcp, sa, lcp []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.LCP(plcp, sa, lcp, 1)
	return nil
}

func ParallelSAIS(t []uint16, sa, freq []int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.SAIS(nil, FreqSize, t, sa, freq, internal.Threads(threads))
	return nil
}

func ParallelBWT(t, u []uint16, a, freq []int32, threads int) (primary int32, err error) {
	defer errors.RecoverAs(&err, pkg)
	return bind.BWT(nil, FreqSize, t, u, a, freq, internal.Threads(threads)), nil
}

func ParallelBWTAux(t, u []uint16, a, freq, aux []int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.BWTAux(nil, FreqSize, t, u, a, freq, aux, internal.Threads(threads))
	return nil
}

func ParallelUnBWT(u, t []uint16, a, freq []int32, primary int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWT(nil, FreqSize, u, t, a, freq, primary, internal.Threads(threads))
	return nil
}

func ParallelUnBWTAux(u, t []uint16, a, freq, aux []int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTAux(nil, FreqSize, u, t, a, freq, aux, internal.Threads(threads))
	return nil
}

func ParallelPLCP(t []uint16, sa, plcp []int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.PLCP(t, sa, plcp, internal.Threads(threads))
	return nil
}

func ParallelLCP(plcp, sa, lcp []int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.LCP(plcp, sa, lcp, internal.Threads(threads))
	return nil
}
