// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package engine

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/sais/auxindex"
	"github.com/dsnet/sais/internal"
	"github.com/dsnet/sais/internal/testutil"
)

const k8 = internal.Alphabet8

func auxLen(n, r int) int {
	m, ok := auxindex.LengthExact(n, r)
	if !ok {
		panic("invalid rate")
	}
	return m
}

func TestSAIS(t *testing.T) {
	ctx := NewContext[int32](k8, 1)
	for i, text := range testutil.Texts(0, 150, 100000) {
		n := int32(len(text))
		for _, sa := range testutil.Workspaces[int32](len(text)) {
			fs := int32(len(sa)) - n
			freq := make([]int32, k8)
			st := SAIS(nil, text, sa, n, fs, k8, freq, 1)
			require.EqualValues(t, 0, st, "test %d, SAIS status", i)
			if err := testutil.CheckSA(text, sa[:n]); err != nil {
				t.Fatalf("test %d, CheckSA: %v", i, err)
			}
			assert.Equal(t, testutil.Freq[byte, int32](text, k8), freq, "test %d, frequency table", i)

			got := make([]int32, len(sa))
			st = SAIS(ctx, text, got, n, fs, k8, nil, 4)
			require.EqualValues(t, 0, st)
			if diff := cmp.Diff(sa[:n], got[:n]); diff != "" {
				t.Errorf("test %d, parallel mismatch (-want +got):\n%s", i, diff)
			}
		}
	}
}

func TestSAISRepeated(t *testing.T) {
	text := bytes.Repeat([]byte{'x'}, 1000)
	sa := make([]int64, len(text))
	require.EqualValues(t, 0, SAIS(nil, text, sa, 1000, 0, k8, nil, 1))
	for i, s := range sa {
		if want := int64(len(text) - 1 - i); s != want {
			t.Fatalf("sa[%d]: got %d, want %d", i, s, want)
		}
	}
}

func TestSAISInt(t *testing.T) {
	r := testutil.NewRand(1)
	for _, k := range []int{1, 2, 7, 300, 5000} {
		text := testutil.RandText[int32](r, 2000, 0, k-1)
		orig := append([]int32{}, text...)
		sa := make([]int32, len(text)+100)
		st := SAISInt(nil, text, sa, int32(len(text)), 100, int32(k), 2)
		require.EqualValues(t, 0, st, "k=%d", k)
		assert.Equal(t, orig, text, "text must not be modified")
		assert.NoError(t, testutil.CheckSA(text, sa[:len(text)]), "k=%d", k)
	}

	text := []int32{0, 1, 5, 2}
	sa := make([]int32, 4)
	assert.EqualValues(t, statusIllegal, SAISInt(nil, text, sa, 4, 0, 5, 1))
	text[1] = -1
	assert.EqualValues(t, statusIllegal, SAISInt(nil, text, sa, 4, 0, 6, 1))
}

func TestBWT(t *testing.T) {
	var vectors = []struct {
		input   string
		output  string
		primary int64
	}{
		{input: "", output: "", primary: 0},
		{input: "_", output: "_", primary: 1},
		{input: "mississippi", output: "ipssmpissii", primary: 5},
		{input: "banana", output: "annbaa", primary: 4},
		{input: "aaaa", output: "aaaa", primary: 4},
		{input: "abracadabra", output: "ardrcaaaabb", primary: 3},
	}
	for i, v := range vectors {
		n := int32(len(v.input))
		u := make([]byte, n)
		a := make([]int32, n+8)
		p := BWT(nil, []byte(v.input), u, a, n, 8, k8, nil, 0, nil, 1)
		if p != v.primary || string(u) != v.output {
			t.Errorf("test %d, BWT(%q): got (%q, %d), want (%q, %d)", i, v.input, u, p, v.output, v.primary)
		}

		inplace := []byte(v.input)
		p = BWTInPlace(nil, inplace, a, n, 8, k8, nil, 0, nil, 1)
		if p != v.primary || string(inplace) != v.output {
			t.Errorf("test %d, BWTInPlace(%q): got (%q, %d), want (%q, %d)", i, v.input, inplace, p, v.output, v.primary)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for i, text := range testutil.Texts(2, 150, 100000) {
		n := len(text)
		small := n <= 1000
		for _, threads := range []int{1, 3} {
			for _, r := range []int{2, 8, 64} {
				a := make([]int32, n+1)
				u := make([]byte, n)
				aux := make([]int32, auxLen(n, r))
				freq := make([]int32, k8)
				p := BWT(nil, text, u, a, int32(n), 1, k8, freq, int32(r), aux, threads)
				require.True(t, p >= 0, "test %d, BWT status %d", i, p)
				assert.EqualValues(t, aux[0], p, "test %d, aux[0] is the primary index", i)

				if small {
					wantU, wantP, wantAux := testutil.NaiveBWT(text, r)
					assert.Equal(t, wantU, u, "test %d, BWT output", i)
					assert.EqualValues(t, wantP, p, "test %d, primary index", i)
					for j := range wantAux {
						assert.EqualValues(t, wantAux[j], aux[j], "test %d, aux[%d]", i, j)
					}
				}

				got := make([]byte, n)
				st := UnBWT(nil, u, got, a, int32(n), k8, nil, int32(p), threads)
				require.EqualValues(t, 0, st, "test %d, UnBWT status", i)
				assert.True(t, bytes.Equal(text, got), "test %d, UnBWT mismatch", i)

				got = make([]byte, n)
				st = UnBWTAux(nil, u, got, a, int32(n), k8, freq, int32(r), aux, threads)
				require.EqualValues(t, 0, st, "test %d, UnBWTAux status", i)
				assert.True(t, bytes.Equal(text, got), "test %d, UnBWTAux mismatch", i)

				got = append([]byte{}, u...)
				st = UnBWTAuxInPlace(NewUnBWTContext[int32](k8, threads), got, a, int32(n), k8, nil, int32(r), aux, threads)
				require.EqualValues(t, 0, st, "test %d, UnBWTAuxInPlace status", i)
				assert.True(t, bytes.Equal(text, got), "test %d, UnBWTAuxInPlace mismatch", i)
			}
		}
	}
}

func TestBWTParallel(t *testing.T) {
	r := testutil.NewRand(3)
	text := testutil.RandText[byte](r, 300000, 0, 16)
	n := int32(len(text))
	var outs [][]byte
	var prims []int64
	for _, threads := range []int{1, 2, 5} {
		u := make([]byte, n)
		a := make([]int32, n)
		prims = append(prims, BWT(nil, text, u, a, n, 0, k8, nil, 0, nil, threads))
		outs = append(outs, u)

		inplace := append([]byte{}, text...)
		prims = append(prims, BWTInPlace(nil, inplace, a, n, 0, k8, nil, 0, nil, threads))
		outs = append(outs, inplace)
	}
	for i := range outs {
		assert.Equal(t, prims[0], prims[i], "primary index %d", i)
		assert.True(t, bytes.Equal(outs[0], outs[i]), "output %d", i)
	}
}

func TestUnBWTInvalid(t *testing.T) {
	text := []byte("mississippi")
	u := make([]byte, len(text))
	a := make([]int32, len(text)+1)
	p := BWT(nil, text, u, a, 11, 1, k8, nil, 0, nil, 1)
	require.EqualValues(t, 5, p)

	out := make([]byte, len(text))
	var vectors = []struct {
		name string
		st   int64
	}{
		{"zero primary", UnBWT(nil, u, out, a, 11, k8, nil, 0, 1)},
		{"large primary", UnBWT(nil, u, out, a, 11, k8, nil, 12, 1)},
		{"short scratch", UnBWT(nil, u, out, a[:11], 11, k8, nil, 5, 1)},
		{"bad rate", UnBWTAux(nil, u, out, a, 11, k8, nil, 3, []int32{5, 1, 1, 1}, 1)},
		{"short aux", UnBWTAux(nil, u, out, a, 11, k8, nil, 4, []int32{5, 1}, 1)},
		{"bad sum", UnBWT(nil, u, out, a, 11, k8, make([]int32, k8), 5, 1)},
		{"empty primary", UnBWT(nil, u, out, a, 0, k8, nil, 1, 1)},
	}
	for _, v := range vectors {
		assert.EqualValues(t, statusIllegal, v.st, v.name)
	}

	// Frequencies that sum correctly but do not describe u.
	freq := testutil.Freq[byte, int32](u, k8)
	freq['i']--
	freq['s']++
	assert.EqualValues(t, statusIllegal, UnBWT(nil, u, out, a, 11, k8, freq, 5, 1))
	assert.EqualValues(t, statusIllegal, UnBWT(NewUnBWTContext[int32](k8, 2), u, out, a, 11, k8, freq, 5, 2))
}

func TestLCP(t *testing.T) {
	for i, text := range testutil.Texts(4, 150, 100000) {
		n := int32(len(text))
		sa := make([]int32, n)
		require.EqualValues(t, 0, SAIS(nil, text, sa, n, 0, k8, nil, 1))

		var prev []int32
		for _, threads := range []int{1, 4} {
			plcp := make([]int32, n)
			lcp := make([]int32, n)
			require.EqualValues(t, 0, PLCP(text, sa, plcp, n, threads), "test %d, PLCP", i)
			require.EqualValues(t, 0, LCP(plcp, sa, lcp, n, threads), "test %d, LCP", i)
			if len(text) <= 1000 {
				assert.NoError(t, testutil.CheckLCP(text, sa, lcp), "test %d", i)
			}
			if prev != nil {
				assert.Equal(t, prev, lcp, "test %d, parallel mismatch", i)
			}
			prev = lcp
		}
	}

	sa := []int32{0, 1, 7}
	assert.EqualValues(t, statusIllegal, PLCP([]byte("abc"), sa, make([]int32, 3), 3, 1))
	assert.EqualValues(t, statusIllegal, LCP(make([]int32, 3), sa, make([]int32, 3), 3, 1))
	assert.EqualValues(t, statusIllegal, PLCP([]byte("ab"), sa[:2], make([]int32, 3), 3, 1))
}

func TestIllegalSizes(t *testing.T) {
	text := []byte("abc")
	assert.EqualValues(t, statusIllegal, SAIS(nil, text, make([]int32, 2), 3, 0, k8, nil, 1))
	assert.EqualValues(t, statusIllegal, SAIS(nil, text, make([]int32, 3), 3, 1, k8, nil, 1))
	assert.EqualValues(t, statusIllegal, SAIS(nil, text, make([]int32, 3), 3, 0, k8, make([]int32, 10), 1))
	assert.EqualValues(t, statusIllegal, SAIS(nil, text, make([]int32, 3), 3, 0, k8, nil, 0))
	assert.EqualValues(t, statusIllegal, BWT(nil, text, make([]byte, 2), make([]int32, 3), 3, 0, k8, nil, 0, nil, 1))
	assert.EqualValues(t, statusIllegal, BWT(nil, text, make([]byte, 3), make([]int32, 3), 3, 0, k8, nil, 3, make([]int32, 1), 1))
	assert.EqualValues(t, statusIllegal, BWT(nil, text, make([]byte, 3), make([]int32, 3), 3, 0, k8, nil, 2, make([]int32, 1), 1))
}

func TestSorted(t *testing.T) {
	text := []byte("banana")
	assert.True(t, sorted(text, []int32{5, 3, 1, 0, 4, 2}))
	assert.False(t, sorted(text, []int32{3, 5, 1, 0, 4, 2}))
	assert.False(t, sorted(text, []int32{5, 3, 1, 0, 2, 4}))
	assert.True(t, sorted(text[:0], []int32{}))
}
