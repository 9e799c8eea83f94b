// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais64 computes suffix arrays, Burrows-Wheeler transforms, and
// longest-common-prefix arrays of byte texts using 64-bit indexes.
//
// The API mirrors package sais32 for texts whose length may exceed the
// range of a 32-bit index. No reusable contexts are provided.
package sais64

import (
	"math"

	"github.com/dsnet/sais/internal"
	"github.com/dsnet/sais/internal/bind"
	"github.com/dsnet/sais/internal/errors"
)

const (
	// MaxLength is the length of the longest text that may be transformed.
	MaxLength = math.MaxInt64

	// FreqSize is the required length of an optional frequency table.
	FreqSize = internal.Alphabet8

	pkg = "sais64"
)

// SAIS computes the suffix array of t into sa[:len(t)].
func SAIS(t []byte, sa, freq []int64) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.SAIS(nil, FreqSize, t, sa, freq, 1)
	return nil
}

// SAISInt computes the suffix array of the integer text t, whose symbols
// must lie within [0, k).
func SAISInt(t, sa []int64, k int64) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.SAISInt(nil, t, sa, k, 1)
	return nil
}

// BWT computes the Burrows-Wheeler transform of t into u and returns the
// primary index.
func BWT(t, u []byte, a, freq []int64) (primary int64, err error) {
	defer errors.RecoverAs(&err, pkg)
	return bind.BWT(nil, FreqSize, t, u, a, freq, 1), nil
}

// BWTInPlace is like BWT, but overwrites t with its transform.
func BWTInPlace(t []byte, a, freq []int64) (primary int64, err error) {
	defer errors.RecoverAs(&err, pkg)
	return bind.BWTInPlace(nil, FreqSize, t, a, freq, 1), nil
}

// BWTAux is like BWT, but stores an auxiliary index into aux.
func BWTAux(t, u []byte, a, freq, aux []int64) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.BWTAux(nil, FreqSize, t, u, a, freq, aux, 1)
	return nil
}

// BWTAuxInPlace is like BWTAux, but overwrites t with its transform.
func BWTAuxInPlace(t []byte, a, freq, aux []int64) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.BWTAuxInPlace(nil, FreqSize, t, a, freq, aux, 1)
	return nil
}

// UnBWT inverts the transform u into t. The scratch a must be strictly
// longer than u.
func UnBWT(u, t []byte, a, freq []int64, primary int64) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWT(nil, FreqSize, u, t, a, freq, primary, 1)
	return nil
}

// UnBWTInPlace is like UnBWT, but overwrites the transform in t.
func UnBWTInPlace(t []byte, a, freq []int64, primary int64) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTInPlace(nil, FreqSize, t, a, freq, primary, 1)
	return nil
}

// UnBWTAux inverts the transform u using its auxiliary index.
func UnBWTAux(u, t []byte, a, freq, aux []int64) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTAux(nil, FreqSize, u, t, a, freq, aux, 1)
	return nil
}

// UnBWTAuxInPlace is like UnBWTAux, but overwrites the transform in t.
func UnBWTAuxInPlace(t []byte, a, freq, aux []int64) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTAuxInPlace(nil, FreqSize, t, a, freq, aux, 1)
	return nil
}

// PLCP computes the permuted longest-common-prefix array of t.
func PLCP(t []byte, sa, plcp []int64) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.PLCP(t, sa, plcp, 1)
	return nil
}

// LCP computes the longest-common-prefix array from plcp and sa.
func LCP(plcp, sa, lcp []int64) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.LCP(plcp, sa, lcp, 1)
	return nil
}
