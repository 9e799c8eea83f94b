// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais64

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/sais"
	"github.com/dsnet/sais/auxindex"
	"github.com/dsnet/sais/internal/testutil"
	"github.com/dsnet/sais/sais32"
)

func widen(a []int32) []int64 {
	b := make([]int64, len(a))
	for i, x := range a {
		b[i] = int64(x)
	}
	return b
}

// The 64-bit variants must agree with the 32-bit variants on every text that
// both of them can represent.

func TestSAIS(t *testing.T) {
	for i, text := range testutil.Texts(64, 200, 50000) {
		want := make([]int32, len(text))
		require.NoError(t, sais32.SAIS(text, want, nil))

		for j, sa := range testutil.Workspaces[int64](len(text)) {
			freq := make([]int64, FreqSize)
			require.NoError(t, SAIS(text, sa, freq), "test %d.%d", i, j)
			if diff := cmp.Diff(widen(want), sa[:len(text)]); diff != "" {
				t.Errorf("test %d.%d, SAIS mismatch (-want +got):\n%s", i, j, diff)
			}
			assert.Equal(t, testutil.Freq[byte, int64](text, FreqSize), freq)

			par := make([]int64, len(sa))
			require.NoError(t, ParallelSAIS(text, par, nil, 4))
			assert.Equal(t, sa[:len(text)], par[:len(text)])
		}
	}
}

func TestSAISInt(t *testing.T) {
	r := testutil.NewRand(65)
	for _, k := range []int{1, 5, 1000} {
		text := testutil.RandText[int64](r, 3000, 0, k-1)
		sa := make([]int64, len(text))
		require.NoError(t, SAISInt(text, sa, int64(k)))
		if err := testutil.CheckSA(text, sa); err != nil {
			t.Fatalf("k=%d, CheckSA: %v", k, err)
		}
		par := make([]int64, len(text))
		require.NoError(t, ParallelSAISInt(text, par, int64(k), 2))
		assert.Equal(t, sa, par)
	}
	err := SAISInt([]int64{3}, make([]int64, 1), 3)
	assert.True(t, err.(sais.Error).IsIllegalArguments(), "got %v", err)
}

func TestBWT(t *testing.T) {
	for i, text := range testutil.Texts(66, 200, 50000) {
		n := len(text)
		want := make([]byte, n)
		wantP, err := sais32.BWT(text, want, make([]int32, n), nil)
		require.NoError(t, err)

		u := make([]byte, n)
		freq := make([]int64, FreqSize)
		p, err := BWT(text, u, make([]int64, n+10), freq)
		require.NoError(t, err, "test %d", i)
		if !bytes.Equal(want, u) || p != int64(wantP) {
			t.Errorf("test %d, BWT mismatch: got primary %d, want %d", i, p, wantP)
		}

		in := append([]byte{}, text...)
		pp, err := ParallelBWTInPlace(in, make([]int64, n), nil, 4)
		require.NoError(t, err)
		assert.Equal(t, p, pp)
		assert.Equal(t, u, in)
		in = append(in[:0], text...)
		pp, err = BWTInPlace(in, make([]int64, n), nil)
		require.NoError(t, err)
		assert.Equal(t, p, pp)
		assert.Equal(t, u, in)
		pu := make([]byte, n)
		pp, err = ParallelBWT(text, pu, make([]int64, n), nil, 3)
		require.NoError(t, err)
		assert.Equal(t, p, pp)
		assert.Equal(t, u, pu)

		got := make([]byte, n)
		require.NoError(t, UnBWT(u, got, make([]int64, n+1), freq, p))
		assert.True(t, bytes.Equal(text, got), "test %d, UnBWT", i)
		got = make([]byte, n)
		require.NoError(t, ParallelUnBWT(u, got, make([]int64, n+1), nil, p, 4))
		assert.True(t, bytes.Equal(text, got), "test %d, ParallelUnBWT", i)
		got = append(got[:0], u...)
		require.NoError(t, UnBWTInPlace(got, make([]int64, n+1), freq, p))
		assert.True(t, bytes.Equal(text, got), "test %d, UnBWTInPlace", i)
		got = append(got[:0], u...)
		require.NoError(t, ParallelUnBWTInPlace(got, make([]int64, n+1), nil, p, 2))
		assert.True(t, bytes.Equal(text, got), "test %d, ParallelUnBWTInPlace", i)
	}
}

func TestAux(t *testing.T) {
	for i, text := range testutil.Texts(67, 200, 30000) {
		n := len(text)
		m, _ := auxindex.LengthExact(n, 16)
		want := make([]int32, m)
		require.NoError(t, sais32.BWTAux(text, make([]byte, n), make([]int32, n), nil, want))

		u := make([]byte, n)
		aux := make([]int64, m)
		require.NoError(t, BWTAux(text, u, make([]int64, n), nil, aux), "test %d", i)
		assert.Equal(t, widen(want), aux, "test %d, auxiliary index", i)

		in := append([]byte{}, text...)
		paux := make([]int64, m)
		require.NoError(t, ParallelBWTAuxInPlace(in, make([]int64, n), nil, paux, 4))
		assert.Equal(t, aux, paux)
		assert.Equal(t, u, in)
		in = append(in[:0], text...)
		require.NoError(t, BWTAuxInPlace(in, make([]int64, n), nil, paux))
		assert.Equal(t, aux, paux)
		require.NoError(t, ParallelBWTAux(text, in, make([]int64, n), nil, paux, 2))
		assert.Equal(t, aux, paux)

		got := make([]byte, n)
		require.NoError(t, UnBWTAux(u, got, make([]int64, n+1), nil, aux))
		assert.True(t, bytes.Equal(text, got), "test %d, UnBWTAux", i)
		got = make([]byte, n)
		require.NoError(t, ParallelUnBWTAux(u, got, make([]int64, n+1), nil, aux, 4))
		assert.True(t, bytes.Equal(text, got), "test %d, ParallelUnBWTAux", i)
		got = append(got[:0], u...)
		require.NoError(t, UnBWTAuxInPlace(got, make([]int64, n+1), nil, aux))
		assert.True(t, bytes.Equal(text, got), "test %d, UnBWTAuxInPlace", i)
		got = append(got[:0], u...)
		require.NoError(t, ParallelUnBWTAuxInPlace(got, make([]int64, n+1), nil, aux, 3))
		assert.True(t, bytes.Equal(text, got), "test %d, ParallelUnBWTAuxInPlace", i)
	}
}

func TestLCP(t *testing.T) {
	for i, text := range testutil.Texts(68, 200, 20000) {
		n := len(text)
		sa := make([]int64, n)
		require.NoError(t, SAIS(text, sa, nil))
		plcp := make([]int64, n)
		lcp := make([]int64, n)
		require.NoError(t, PLCP(text, sa, plcp))
		require.NoError(t, LCP(plcp, sa, lcp))
		if err := testutil.CheckLCP(text, sa, lcp); err != nil {
			t.Fatalf("test %d, CheckLCP: %v", i, err)
		}
		par := make([]int64, n)
		require.NoError(t, ParallelPLCP(text, sa, par, 4))
		assert.Equal(t, plcp, par)
		require.NoError(t, ParallelLCP(par, sa, sa, 4))
		assert.Equal(t, lcp, sa)
	}
}

func TestEmptyText(t *testing.T) {
	for i, text := range [][]byte{nil, {}} {
		require.NoError(t, SAIS(text, nil, nil), "test %d", i)
		require.NoError(t, ParallelSAISInt(nil, []int64{}, 1, 2), "test %d", i)

		in := append([]byte{}, text...)
		p, err := ParallelBWTInPlace(in, nil, nil, 2)
		require.NoError(t, err, "test %d", i)
		assert.EqualValues(t, 0, p, "test %d, primary", i)
		if diff := cmp.Diff(text, in, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("test %d, BWTInPlace mismatch (-want +got):\n%s", i, diff)
		}

		aux := make([]int64, auxindex.MinLength)
		require.NoError(t, BWTAuxInPlace(in, []int64{}, nil, aux), "test %d", i)
		assert.Equal(t, []int64{0}, aux, "test %d, auxiliary index", i)
		require.NoError(t, UnBWTAuxInPlace(in, make([]int64, 1), nil, aux), "test %d", i)
		require.NoError(t, UnBWT(text, []byte{}, make([]int64, 1), nil, 0), "test %d", i)
		assert.Empty(t, in, "test %d", i)
	}
}
