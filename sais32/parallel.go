// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais32

import (
	"github.com/dsnet/sais/internal"
	"github.com/dsnet/sais/internal/bind"
	"github.com/dsnet/sais/internal/errors"
)

// The Parallel functions behave like their sequential counterparts, but
// split the work across up to threads goroutines. A threads of zero uses
// runtime.GOMAXPROCS. The output is identical to the sequential output.

func ParallelSAIS(t []byte, sa, freq []int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.SAIS(nil, FreqSize, t, sa, freq, internal.Threads(threads))
	return nil
}

func ParallelSAISInt(t, sa []int32, k int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.SAISInt(nil, t, sa, k, internal.Threads(threads))
	return nil
}

func ParallelBWT(t, u []byte, a, freq []int32, threads int) (primary int32, err error) {
	defer errors.RecoverAs(&err, pkg)
	return bind.BWT(nil, FreqSize, t, u, a, freq, internal.Threads(threads)), nil
}

func ParallelBWTInPlace(t []byte, a, freq []int32, threads int) (primary int32, err error) {
	defer errors.RecoverAs(&err, pkg)
	return bind.BWTInPlace(nil, FreqSize, t, a, freq, internal.Threads(threads)), nil
}

func ParallelBWTAux(t, u []byte, a, freq, aux []int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.BWTAux(nil, FreqSize, t, u, a, freq, aux, internal.Threads(threads))
	return nil
}

func ParallelBWTAuxInPlace(t []byte, a, freq, aux []int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.BWTAuxInPlace(nil, FreqSize, t, a, freq, aux, internal.Threads(threads))
	return nil
}

func ParallelUnBWT(u, t []byte, a, freq []int32, primary int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWT(nil, FreqSize, u, t, a, freq, primary, internal.Threads(threads))
	return nil
}

func ParallelUnBWTInPlace(t []byte, a, freq []int32, primary int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTInPlace(nil, FreqSize, t, a, freq, primary, internal.Threads(threads))
	return nil
}

func ParallelUnBWTAux(u, t []byte, a, freq, aux []int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTAux(nil, FreqSize, u, t, a, freq, aux, internal.Threads(threads))
	return nil
}

func ParallelUnBWTAuxInPlace(t []byte, a, freq, aux []int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTAuxInPlace(nil, FreqSize, t, a, freq, aux, internal.Threads(threads))
	return nil
}

func ParallelPLCP(t []byte, sa, plcp []int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.PLCP(t, sa, plcp, internal.Threads(threads))
	return nil
}

func ParallelLCP(plcp, sa, lcp []int32, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.LCP(plcp, sa, lcp, internal.Threads(threads))
	return nil
}
