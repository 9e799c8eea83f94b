// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais32 computes suffix arrays, Burrows-Wheeler transforms, and
// longest-common-prefix arrays of byte texts using 32-bit indexes.
//
// Every function takes a workspace slice that must be at least as long as the
// text. Any excess capacity of the workspace is free space that the
// algorithm may use as scratch, avoiding allocations of its own.
//
// All errors returned by this package implement sais.Error.
package sais32

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
	FreqSize = internal.Alphabet8

	pkg = "sais32"
)

// SAIS computes the suffix array of t into sa[:len(t)].
// The length of sa must be at least len(t) and at most MaxLength.
// If freq is not nil, it must have FreqSize entries and receives
// the number of occurrences of each byte.
func SAIS(t []byte, sa, freq []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.SAIS(nil, FreqSize, t, sa, freq, 1)
	return nil
}

// SAISInt computes the suffix array of the integer text t into sa[:len(t)].
// Every symbol of t must lie within [0, k). Unlike the byte variants,
// no frequency table is produced.
func SAISInt(t, sa []int32, k int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.SAISInt(nil, t, sa, k, 1)
	return nil
}

// BWT computes the Burrows-Wheeler transform of t into u, which must have
// the same length as t and must not alias it. The workspace a is used to
// hold the suffix array. It returns the primary index needed by UnBWT.
func BWT(t, u []byte, a, freq []int32) (primary int32, err error) {
	defer errors.RecoverAs(&err, pkg)
	return bind.BWT(nil, FreqSize, t, u, a, freq, 1), nil
}

// BWTInPlace is like BWT, but overwrites t with its transform.
func BWTInPlace(t []byte, a, freq []int32) (primary int32, err error) {
	defer errors.RecoverAs(&err, pkg)
	return bind.BWTInPlace(nil, FreqSize, t, a, freq, 1), nil
}

// BWTAux is like BWT, but instead of a single primary index, it stores an
// auxiliary index into aux. The sampling rate is derived from len(aux),
// which must equal auxindex.LengthExact(len(t), r) for some power of two r.
func BWTAux(t, u []byte, a, freq, aux []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.BWTAux(nil, FreqSize, t, u, a, freq, aux, 1)
	return nil
}

// BWTAuxInPlace is like BWTAux, but overwrites t with its transform.
func BWTAuxInPlace(t []byte, a, freq, aux []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.BWTAuxInPlace(nil, FreqSize, t, a, freq, aux, 1)
	return nil
}

// UnBWT inverts the transform u with the given primary index into t.
// The scratch a must be strictly longer than u. If freq is not nil,
// it must hold the byte frequencies of u, as reported by BWT.
func UnBWT(u, t []byte, a, freq []int32, primary int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWT(nil, FreqSize, u, t, a, freq, primary, 1)
	return nil
}

// UnBWTInPlace is like UnBWT, but overwrites the transform in t with the
// original text.
func UnBWTInPlace(t []byte, a, freq []int32, primary int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTInPlace(nil, FreqSize, t, a, freq, primary, 1)
	return nil
}

// UnBWTAux inverts the transform u using the auxiliary index aux produced by
// BWTAux.
func UnBWTAux(u, t []byte, a, freq, aux []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTAux(nil, FreqSize, u, t, a, freq, aux, 1)
	return nil
}

// UnBWTAuxInPlace is like UnBWTAux, but overwrites the transform in t with
// the original text.
func UnBWTAuxInPlace(t []byte, a, freq, aux []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTAuxInPlace(nil, FreqSize, t, a, freq, aux, 1)
	return nil
}

// PLCP computes the permuted longest-common-prefix array of t given its
// suffix array sa. All three slices must have the same length.
func PLCP(t []byte, sa, plcp []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.PLCP(t, sa, plcp, 1)
	return nil
}

// LCP computes the longest-common-prefix array from the permuted array plcp
// and the suffix array sa. The output lcp may be the same slice as sa.
func LCP(plcp, sa, lcp []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.LCP(plcp, sa, lcp, 1)
	return nil
}
