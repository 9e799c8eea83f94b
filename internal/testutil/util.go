// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"io/ioutil"
	"strings"
)

// ResizeData resizes the input. If n < 0, then the original input will be
// returned as is. If n <= len(input), then the input slice will be truncated.
// However, if n > len(input), then the input will be replicated to fill in
// the missing bytes, but each replicated string will be XORed by some byte
// mask to avoid favoring algorithms that only exploit exact repetition.
//
// If n > len(input), then len(input) must be > 0.
func ResizeData(input []byte, n int) []byte {
	if n < 0 {
		return input
	}
	if len(input) >= n {
		return input[:n]
	}
	if len(input) == 0 {
		panic("unable to replicate an empty string")
	}

	var mask byte
	output := make([]byte, n)
	for i := range output {
		idx := i % len(input)
		output[i] = input[idx] ^ mask
		if idx == len(input)-1 {
			mask++
		}
	}
	return output
}

// LoadFile loads the first n bytes of a file, replicating it as necessary.
func LoadFile(file string, n int) ([]byte, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ResizeData(b, n), nil
}

// MustLoadFile must load a file or else panics.
func MustLoadFile(file string, n int) []byte {
	b, err := LoadFile(file, n)
	if err != nil {
		panic(err)
	}
	return b
}

// Lorem is a paragraph of filler text.
const Lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. " +
	"Egestas egestas fringilla phasellus faucibus scelerisque eleifend donec pretium vulputate. Feugiat in fermentum posuere urna. " +
	"Amet nisl purus in mollis nunc. Tellus orci ac auctor augue mauris augue. Dolor morbi non arcu risus quis varius quam quisque id. " +
	"Et malesuada fames ac turpis egestas sed tempus. Eget mi proin sed libero enim sed faucibus. Turpis massa sed elementum tempus. " +
	"Congue eu consequat ac felis donec."

// Texts returns the usual set of test inputs: a few fixed strings followed by
// random texts of the given sizes over several alphabet subsets. A large size
// of zero omits the large samples.
func Texts(seed, small, large int) [][]byte {
	texts := [][]byte{
		[]byte(""),
		[]byte("_"),
		[]byte("\x00\xff"),
		[]byte("mississippi"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		[]byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
		[]byte(Lorem),
		[]byte(strings.Repeat("a", 1000)),
	}
	r := NewRand(seed)
	for _, n := range []int{small, large} {
		if n == 0 {
			continue
		}
		for _, rg := range Alphabets {
			texts = append(texts, RandText[byte](r, n+r.Intn(n+1), rg[0], rg[1]))
		}
		texts = append(texts, Repeats(r, n+r.Intn(n+1)))
	}
	return texts
}

// Alphabets are the inclusive symbol ranges used for random texts.
var Alphabets = [][2]int{{0, 4}, {0, 16}, {0, 64}, {128, 255}}
