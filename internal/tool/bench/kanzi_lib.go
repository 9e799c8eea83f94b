// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_kanzi_lib

package bench

import "github.com/flanglet/kanzi-go/v2/transform"

func init() {
	// Inputs are split into chunks that each carry a primary index.
	RegisterTransform("kanzi",
		func(dst, src []byte) (Key, error) {
			if len(src) <= 1 {
				copy(dst, src)
				return Key{len(src)}, nil
			}
			bwt, err := transform.NewBWT()
			if err != nil {
				return nil, err
			}
			if _, _, err := bwt.Forward(src, dst); err != nil {
				return nil, err
			}
			key := make(Key, transform.GetBWTChunks(len(src)))
			for i := range key {
				key[i] = int(bwt.PrimaryIndex(i))
			}
			return key, nil
		},
		func(dst, src []byte, key Key) error {
			if len(src) <= 1 {
				copy(dst, src)
				return nil
			}
			bwt, err := transform.NewBWT()
			if err != nil {
				return err
			}
			for i, p := range key {
				bwt.SetPrimaryIndex(i, uint(p))
			}
			_, _, err = bwt.Inverse(src, dst)
			return err
		})
}
