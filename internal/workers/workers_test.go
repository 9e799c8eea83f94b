// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package workers

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	var vectors = []struct {
		n, parts, minSize int
		want              []Range
	}{
		{n: 0, parts: 4, minSize: 1, want: []Range{{0, 0}}},
		{n: 10, parts: 1, minSize: 1, want: []Range{{0, 10}}},
		{n: 10, parts: 3, minSize: 1, want: []Range{{0, 4}, {4, 7}, {7, 10}}},
		{n: 10, parts: 8, minSize: 4, want: []Range{{0, 5}, {5, 10}}},
		{n: 3, parts: 8, minSize: 4, want: []Range{{0, 3}}},
		{n: 5, parts: 8, minSize: 0, want: []Range{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}}},
	}
	for i, v := range vectors {
		got := Split(v.n, v.parts, v.minSize)
		assert.Equal(t, v.want, got, "test %d, Split(%d, %d, %d)", i, v.n, v.parts, v.minSize)
	}
}

func TestRun(t *testing.T) {
	rs := Split(1000, 7, 1)
	var sum int64
	err := Run(rs, func(i int, r Range) error {
		atomic.AddInt64(&sum, int64(r.Len()))
		return nil
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1000, sum)

	errFail := errors.New("fail")
	err = Run(rs, func(i int, r Range) error {
		if i == 3 {
			return errFail
		}
		return nil
	})
	assert.Equal(t, errFail, err)
}

func TestHistogram(t *testing.T) {
	text := make([]uint16, 3*MinBlock+17)
	for i := range text {
		text[i] = uint16(i * 7919 % 1000)
	}
	want := make([]int32, 1<<16)
	for _, c := range text {
		want[c]++
	}
	for _, threads := range []int{1, 2, 5} {
		got := make([]int32, 1<<16)
		got[5] = 99 // Must be overwritten
		Histogram(text, got, threads)
		assert.Equal(t, want, got, "threads=%d", threads)
	}
}
