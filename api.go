// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais is a collection of suffix array and Burrows-Wheeler transform
// implementations based on induced sorting.
//
// The algorithms are exposed through one package per combination of text
// symbol width and index width:
//	sais32: 8-bit text, 32-bit indexes
//	sais16: 16-bit text, 32-bit indexes
//	sais64: 8-bit text, 64-bit indexes
//
// Every package provides suffix array construction, the forward and inverse
// Burrows-Wheeler transform (optionally sampled with an auxiliary index), and
// the permuted and ordinary longest-common-prefix arrays. Each operation has a
// parallel counterpart that produces output identical to the sequential form.
//
// All buffers are allocated by the caller and are written in place.
package sais

import "github.com/dsnet/sais/internal/errors"

// Error is the wrapper type for errors specific to this library.
type Error interface {
	error
	SAISError()

	// IsIllegalArguments reports whether the caller violated a precondition,
	// such as passing a buffer that is too small.
	IsIllegalArguments() bool

	// IsInternal reports whether an algorithm invariant was broken.
	// This always indicates a bug and should never be retried.
	IsInternal() bool

	// IsUncategorized reports whether the error carries an unclassified native
	// status, available through StatusCode.
	IsUncategorized() bool

	// StatusCode reports the native status code that produced the error.
	StatusCode() int64
}

var _ Error = errors.Error{}
