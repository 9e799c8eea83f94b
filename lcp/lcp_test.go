// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lcp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/sais"
	"github.com/dsnet/sais/internal/testutil"
	"github.com/dsnet/sais/sais32"
)

func build(t *testing.T, text []byte) *Index {
	n := len(text)
	sa := make([]int32, n)
	plcp := make([]int32, n)
	lcp := make([]int32, n)
	require.NoError(t, sais32.SAIS(text, sa, nil))
	require.NoError(t, sais32.PLCP(text, sa, plcp))
	require.NoError(t, sais32.LCP(plcp, sa, lcp))
	x, err := New(text, sa, lcp)
	require.NoError(t, err)
	return x
}

func commonPrefix(a, b []byte) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func TestPrefix(t *testing.T) {
	r := testutil.NewRand(9)
	for i, text := range testutil.Texts(9, 300, 0) {
		x := build(t, text)
		n := x.Len()
		if n == 0 {
			continue
		}
		for k := 0; k < 200; k++ {
			a, b := r.Intn(n), r.Intn(n)
			want := commonPrefix(text[a:], text[b:])
			if got := x.Prefix(a, b); got != want {
				t.Errorf("test %d, Prefix(%d, %d): got %d, want %d", i, a, b, got, want)
			}
			wantCmp := bytes.Compare(text[a:], text[b:])
			if got := x.Compare(a, b); got != wantCmp {
				t.Errorf("test %d, Compare(%d, %d): got %d, want %d", i, a, b, got, wantCmp)
			}
			assert.Equal(t, a, x.Suffix(x.Rank(a)))
		}
	}
}

func TestLookup(t *testing.T) {
	x := build(t, []byte("mississippi"))
	vectors := []struct {
		pattern string
		count   int
	}{
		{"", 11},
		{"i", 4},
		{"ss", 2},
		{"issi", 2},
		{"ppi", 1},
		{"mississippi", 1},
		{"mississippix", 0},
		{"z", 0},
	}
	for i, v := range vectors {
		lo, hi := x.Lookup([]byte(v.pattern))
		if hi-lo != v.count {
			t.Errorf("test %d, Lookup(%q): got %d matches, want %d", i, v.pattern, hi-lo, v.count)
		}
		for r := lo; r < hi; r++ {
			if s := x.Suffix(r); !bytes.HasPrefix(x.text[s:], []byte(v.pattern)) {
				t.Errorf("test %d, Lookup(%q): suffix %d does not match", i, v.pattern, s)
			}
		}
	}
}

func TestNewInvalid(t *testing.T) {
	text := []byte("abc")
	tests := []struct {
		sa, lcp []int32
	}{
		{[]int32{0, 1}, []int32{0, 0, 0}},
		{[]int32{0, 1, 1}, []int32{0, 0, 0}},
		{[]int32{0, 1, 3}, []int32{0, 0, 0}},
		{[]int32{0, 1, 2}, []int32{0, 0, 2}},
		{[]int32{0, 1, 2}, []int32{0, -1, 0}},
	}
	for i, tt := range tests {
		_, err := New(text, tt.sa, tt.lcp)
		e, ok := err.(sais.Error)
		if !ok || !e.IsIllegalArguments() {
			t.Errorf("test %d, got %v, want illegal arguments error", i, err)
		}
	}
}
