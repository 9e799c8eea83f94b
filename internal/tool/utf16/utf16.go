// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package utf16 converts strings to and from 16-bit texts suitable for
// package sais16.
//
// Strings are normalized to NFC before encoding so that canonically
// equivalent strings produce identical texts, and therefore identical
// suffix orders.
package utf16

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

var codec = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Encode returns the UTF-16 code units of the NFC form of s.
// Invalid UTF-8 is replaced with U+FFFD.
func Encode(s string) []uint16 {
	b, err := codec.NewEncoder().Bytes([]byte(norm.NFC.String(s)))
	if err != nil {
		panic(err) // The encoder replaces invalid input instead of failing.
	}
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return u
}

// Decode returns the string represented by the UTF-16 code units u.
// Unpaired surrogates are replaced with U+FFFD.
func Decode(u []uint16) (string, error) {
	b := make([]byte, 2*len(u))
	for i, c := range u {
		binary.LittleEndian.PutUint16(b[2*i:], c)
	}
	b, err := codec.NewDecoder().Bytes(b)
	return string(b), err
}

// Suffix returns the string spelled by u[i:].
func Suffix(u []uint16, i int) string {
	s, _ := Decode(u[i:])
	return s
}
