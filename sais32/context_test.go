// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais32

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/sais/internal/testutil"
)

func TestContext(t *testing.T) {
	par, err := NewParallelContext(4)
	require.NoError(t, err)
	defer par.Close()
	seq := NewContext()
	defer seq.Close()
	useq := NewUnBWTContext()
	defer useq.Close()
	upar, err := NewParallelUnBWTContext(0)
	require.NoError(t, err)
	defer upar.Close()

	// Reuse the same contexts across texts of varying size.
	for i, text := range testutil.Texts(7, 500, 40000) {
		n := len(text)
		want := make([]int32, n)
		require.NoError(t, SAIS(text, want, nil))
		wantU := make([]byte, n)
		wantP, err := BWT(text, wantU, make([]int32, n), nil)
		require.NoError(t, err)

		for j, ctx := range []*Context{seq, par} {
			sa := make([]int32, n)
			require.NoError(t, ctx.SAIS(text, sa, nil), "test %d.%d", i, j)
			assert.Equal(t, want, sa, "test %d.%d, SAIS", i, j)

			u := make([]byte, n)
			freq := make([]int32, FreqSize)
			p, err := ctx.BWT(text, u, make([]int32, n), freq)
			require.NoError(t, err)
			assert.Equal(t, wantP, p, "test %d.%d, primary", i, j)
			assert.Equal(t, wantU, u, "test %d.%d, BWT", i, j)

			in := append([]byte{}, text...)
			p, err = ctx.BWTInPlace(in, make([]int32, n+64), nil)
			require.NoError(t, err)
			assert.Equal(t, wantP, p)
			assert.Equal(t, wantU, in)

			aux := make([]int32, auxLen(n, 8))
			require.NoError(t, ctx.BWTAux(text, u, make([]int32, n), nil, aux))
			assert.Equal(t, wantP, aux[0])
			in = append(in[:0], text...)
			auxIn := make([]int32, len(aux))
			require.NoError(t, ctx.BWTAuxInPlace(in, make([]int32, n), nil, auxIn))
			assert.Equal(t, aux, auxIn)

			uctx := []*UnBWTContext{useq, upar}[j]
			got := make([]byte, n)
			require.NoError(t, uctx.UnBWT(wantU, got, make([]int32, n+1), freq, wantP))
			assert.True(t, bytes.Equal(text, got), "test %d.%d, UnBWT", i, j)
			got = append(got[:0], wantU...)
			require.NoError(t, uctx.UnBWTInPlace(got, make([]int32, n+1), nil, wantP))
			assert.True(t, bytes.Equal(text, got), "test %d.%d, UnBWTInPlace", i, j)
			got = make([]byte, n)
			require.NoError(t, uctx.UnBWTAux(wantU, got, make([]int32, n+1), freq, aux))
			assert.True(t, bytes.Equal(text, got), "test %d.%d, UnBWTAux", i, j)
			got = append(got[:0], wantU...)
			require.NoError(t, uctx.UnBWTAuxInPlace(got, make([]int32, n+1), nil, aux))
			assert.True(t, bytes.Equal(text, got), "test %d.%d, UnBWTAuxInPlace", i, j)
		}
	}
}

func TestContextClose(t *testing.T) {
	ctx := NewContext()
	require.NoError(t, ctx.Close())
	require.NoError(t, ctx.Close())
	err := ctx.SAIS([]byte("abc"), make([]int32, 3), nil)
	assert.True(t, isIllegal(err), "SAIS after Close: got %v", err)
	_, err = ctx.BWT([]byte("abc"), make([]byte, 3), make([]int32, 3), nil)
	assert.True(t, isIllegal(err), "BWT after Close: got %v", err)

	uctx := NewUnBWTContext()
	require.NoError(t, uctx.Close())
	require.NoError(t, uctx.Close())
	err = uctx.UnBWT([]byte("abc"), make([]byte, 3), make([]int32, 4), nil, 1)
	assert.True(t, isIllegal(err), "UnBWT after Close: got %v", err)

	var nilCtx *Context
	require.NoError(t, nilCtx.Close())
	err = nilCtx.SAIS([]byte("abc"), make([]int32, 3), nil)
	assert.True(t, isIllegal(err), "SAIS on nil Context: got %v", err)
	var nilUCtx *UnBWTContext
	require.NoError(t, nilUCtx.Close())
	err = nilUCtx.UnBWTAux([]byte("abc"), make([]byte, 3), make([]int32, 4), nil, []int32{1, 2})
	assert.True(t, isIllegal(err), "UnBWTAux on nil UnBWTContext: got %v", err)

	_, err = NewParallelContext(-2)
	assert.True(t, isIllegal(err), "negative threads: got %v", err)
	_, err = NewParallelUnBWTContext(-2)
	assert.True(t, isIllegal(err), "negative threads: got %v", err)
}
