// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"
)

func init() {
	RegisterCompressor("flate",
		func(w io.Writer) io.WriteCloser {
			zw, err := flate.NewWriter(w, flate.DefaultCompression)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterCompressor("xz",
		func(w io.Writer) io.WriteCloser {
			zw, err := xz.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		})
}
