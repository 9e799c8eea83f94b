// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_ds_lib

package bench

import (
	"github.com/dsnet/sais/auxindex"
	"github.com/dsnet/sais/sais32"
)

// auxChunks is the number of auxiliary samples of the "ds-aux" transform.
const auxChunks = 8

func init() {
	RegisterTransform("ds",
		func(dst, src []byte) (Key, error) {
			p, err := sais32.BWT(src, dst, make([]int32, len(src)), nil)
			return Key{int(p)}, err
		},
		func(dst, src []byte, key Key) error {
			return sais32.UnBWT(src, dst, make([]int32, len(src)+1), nil, int32(key[0]))
		})
	RegisterTransform("ds-par",
		func(dst, src []byte) (Key, error) {
			p, err := sais32.ParallelBWT(src, dst, make([]int32, len(src)), nil, 0)
			return Key{int(p)}, err
		},
		func(dst, src []byte, key Key) error {
			return sais32.ParallelUnBWT(src, dst, make([]int32, len(src)+1), nil, int32(key[0]), 0)
		})
	RegisterTransform("ds-aux",
		func(dst, src []byte) (Key, error) {
			r, _ := auxindex.RateMin(len(src), auxChunks)
			m, _ := auxindex.LengthExact(len(src), r)
			aux := make([]int32, m)
			err := sais32.ParallelBWTAux(src, dst, make([]int32, len(src)), nil, aux, 0)
			key := make(Key, m)
			for i, p := range aux {
				key[i] = int(p)
			}
			return key, err
		},
		func(dst, src []byte, key Key) error {
			aux := make([]int32, len(key))
			for i, p := range key {
				aux[i] = int32(p)
			}
			return sais32.ParallelUnBWTAux(src, dst, make([]int32, len(src)+1), nil, aux, 0)
		})
}
