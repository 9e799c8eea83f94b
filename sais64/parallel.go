// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais64

import (
	"github.com/dsnet/sais/internal"
	"github.com/dsnet/sais/internal/bind"
	"github.com/dsnet/sais/internal/errors"
)

func ParallelSAIS(t []byte, sa, freq []int64, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.SAIS(nil, FreqSize, t, sa, freq, internal.Threads(threads))
	return nil
}

func ParallelSAISInt(t, sa []int64, k int64, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.SAISInt(nil, t, sa, k, internal.Threads(threads))
	return nil
}

func ParallelBWT(t, u []byte, a, freq []int64, threads int) (primary int64, err error) {
	defer errors.RecoverAs(&err, pkg)
	return bind.BWT(nil, FreqSize, t, u, a, freq, internal.Threads(threads)), nil
}

func ParallelBWTInPlace(t []byte, a, freq []int64, threads int) (primary int64, err error) {
	defer errors.RecoverAs(&err, pkg)
	return bind.BWTInPlace(nil, FreqSize, t, a, freq, internal.Threads(threads)), nil
}

func ParallelBWTAux(t, u []byte, a, freq, aux []int64, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.BWTAux(nil, FreqSize, t, u, a, freq, aux, internal.Threads(threads))
	return nil
}

func ParallelBWTAuxInPlace(t []byte, a, freq, aux []int64, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.BWTAuxInPlace(nil, FreqSize, t, a, freq, aux, internal.Threads(threads))
	return nil
}

func ParallelUnBWT(u, t []byte, a, freq []int64, primary int64, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWT(nil, FreqSize, u, t, a, freq, primary, internal.Threads(threads))
	return nil
}

func ParallelUnBWTInPlace(t []byte, a, freq []int64, primary int64, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTInPlace(nil, FreqSize, t, a, freq, primary, internal.Threads(threads))
	return nil
}

func ParallelUnBWTAux(u, t []byte, a, freq, aux []int64, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTAux(nil, FreqSize, u, t, a, freq, aux, internal.Threads(threads))
	return nil
}

func ParallelUnBWTAuxInPlace(t []byte, a, freq, aux []int64, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.UnBWTAuxInPlace(nil, FreqSize, t, a, freq, aux, internal.Threads(threads))
	return nil
}

func ParallelPLCP(t []byte, sa, plcp []int64, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.PLCP(t, sa, plcp, internal.Threads(threads))
	return nil
}

func ParallelLCP(plcp, sa, lcp []int64, threads int) (err error) {
	defer errors.RecoverAs(&err, pkg)
	bind.LCP(plcp, sa, lcp, internal.Threads(threads))
	return nil
}
