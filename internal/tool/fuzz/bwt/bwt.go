// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz

package bwt

import (
	"bytes"

	"github.com/flanglet/kanzi-go/v2/transform"

	"github.com/dsnet/sais"
	"github.com/dsnet/sais/auxindex"
	"github.com/dsnet/sais/sais32"
)

func Fuzz(data []byte) int {
	u, p := testForward(data)
	testInverse(data, u, p)
	testAux(data)
	if testArbitrary(data) {
		return 1 // Favor inputs that happen to be valid transforms
	}
	return 0
}

// testForward tests that the sequential, parallel, and reference transforms
// all agree on the output.
func testForward(data []byte) ([]byte, int32) {
	u := make([]byte, len(data))
	p, err := sais32.BWT(data, u, make([]int32, len(data)), nil)
	if err != nil {
		panic(err)
	}
	pu := make([]byte, len(data))
	pp, err := sais32.ParallelBWT(data, pu, make([]int32, len(data)+len(data)/2), nil, 4)
	if err != nil {
		panic(err)
	}
	if pp != p || !bytes.Equal(pu, u) {
		panic("mismatching parallel transform")
	}

	if len(data) > 1 {
		kz, err := transform.NewBWT()
		if err != nil {
			panic(err)
		}
		ku := make([]byte, len(data))
		if _, _, err := kz.Forward(data, ku); err != nil {
			panic(err)
		}
		if int32(kz.PrimaryIndex(0)) != p || !bytes.Equal(ku, u) {
			panic("mismatching reference transform")
		}
	}
	return u, p
}

func testInverse(data, u []byte, p int32) {
	got := make([]byte, len(u))
	if err := sais32.UnBWT(u, got, make([]int32, len(u)+1), nil, p); err != nil {
		panic(err)
	}
	if !bytes.Equal(got, data) {
		panic("mismatching inverse transform")
	}
	got = append(got[:0], u...)
	if err := sais32.ParallelUnBWTInPlace(got, make([]int32, len(u)+1), nil, p, 4); err != nil {
		panic(err)
	}
	if !bytes.Equal(got, data) {
		panic("mismatching in-place inverse transform")
	}
}

func testAux(data []byte) {
	for r := auxindex.MinRate; r <= 64; r *= 4 {
		m, _ := auxindex.LengthExact(len(data), r)
		aux := make([]int32, m)
		u := make([]byte, len(data))
		if err := sais32.BWTAux(data, u, make([]int32, len(data)), nil, aux); err != nil {
			panic(err)
		}
		got := make([]byte, len(data))
		if err := sais32.ParallelUnBWTAux(u, got, make([]int32, len(data)+1), nil, aux, 3); err != nil {
			panic(err)
		}
		if !bytes.Equal(got, data) {
			panic("mismatching auxiliary inverse transform")
		}
	}
}

// testArbitrary feeds the input as a transform with an arbitrary primary
// index. Any output is acceptable, but the only error allowed is a rejected
// primary index.
func testArbitrary(data []byte) bool {
	var p int32
	for _, c := range data {
		p = p*31 + int32(c)
	}
	if n := int32(len(data)); n > 0 {
		p = 1 + (p&0x7fffffff)%n
	}
	got := make([]byte, len(data))
	err := sais32.UnBWT(data, got, make([]int32, len(data)+1), nil, p)
	if err != nil {
		if e, ok := err.(sais.Error); !ok || !e.IsIllegalArguments() {
			panic(err)
		}
		return false
	}

	// A valid inverse must transform back into the input.
	u := make([]byte, len(got))
	p2, err := sais32.BWT(got, u, make([]int32, len(got)), nil)
	if err != nil {
		panic(err)
	}
	return p2 == p && bytes.Equal(u, data)
}
