// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements functions to manipulate sais errors.
//
// In idiomatic Go, it is an anti-pattern to use panics as a form of error
// reporting in the API. Instead, the expected way to transmit errors is by
// returning an error value. Threading an error through every size check of
// every operation obscures the actual algorithm, so the internal packages of
// this repository rely on panics as a normal means to convey argument errors.
// In order to ensure that these panics do not leak across the public API, the
// public packages must recover from these panics and present an error value.
//
// The Panic and Recover functions in this package provide a safe way to
// recover from errors only generated from within this repository.
//
// Example usage:
//	func Foo() (err error) {
//		defer errors.Recover(&err)
//
//		if rand.Intn(2) == 0 {
//			// Unexpected panics will not be caught by Recover.
//			io.Closer(nil).Close()
//		} else {
//			// Errors generated by Panic will be caught by Recover.
//			errors.Panic(errors.Error{Code: errors.IllegalArguments})
//		}
//	}
//
package errors

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Uncategorized indicates a native status that has no classification.
	// The status is preserved in Error.Status.
	Uncategorized = iota

	// Internal indicates that an algorithm invariant was violated.
	Internal

	// IllegalArguments indicates that the caller violated a precondition.
	IllegalArguments
)

// Native status codes returned by the algorithm kernel.
const (
	StatusIllegalArguments = -1
	StatusInternal         = -2
)

// Pkg is the package name of an Error until RecoverAs attributes it to the
// public package that returned it.
const Pkg = "sais"

var codeMap = map[int]string{
	Uncategorized:    "uncategorized status",
	Internal:         "internal error",
	IllegalArguments: "illegal arguments",
}

type Error struct {
	Code   int    // The error type
	Pkg    string // Name of the package where the error originated
	Msg    string // Descriptive message about the error (optional)
	Status int64  // Native status code (optional)
}

func (e Error) Error() string {
	var ss []string
	for _, s := range []string{e.Pkg, codeMap[e.Code], e.Msg} {
		if s != "" {
			ss = append(ss, s)
		}
	}
	if e.Code == Uncategorized {
		ss = append(ss, "status "+strconv.FormatInt(e.Status, 10))
	}
	return strings.Join(ss, ": ")
}

func (e Error) SAISError()               {}
func (e Error) IsIllegalArguments() bool { return e.Code == IllegalArguments }
func (e Error) IsInternal() bool         { return e.Code == Internal }
func (e Error) IsUncategorized() bool    { return e.Code == Uncategorized }

// StatusCode reports the native status of e. Errors that were not created
// from a status report the canonical status of their code.
func (e Error) StatusCode() int64 {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Code {
	case IllegalArguments:
		return StatusIllegalArguments
	case Internal:
		return StatusInternal
	}
	return 0
}

func IsIllegalArguments(err error) bool { return isCode(err, IllegalArguments) }
func IsInternal(err error) bool         { return isCode(err, Internal) }
func IsUncategorized(err error) bool    { return isCode(err, Uncategorized) }

func isCode(err error, code int) bool {
	if cerr, ok := err.(Error); ok && cerr.Code == code {
		return true
	}
	return false
}

// Interpret converts a native status into a result.
// Non-negative statuses are returned as is, while negative statuses panic
// with the Error they represent.
func Interpret(status int64) int64 {
	switch {
	case status >= 0:
		return status
	case status == StatusIllegalArguments:
		Panic(Error{Code: IllegalArguments, Pkg: Pkg, Status: status})
	case status == StatusInternal:
		Panic(Error{Code: Internal, Pkg: Pkg, Status: status})
	default:
		Panic(Error{Code: Uncategorized, Pkg: Pkg, Status: status})
	}
	panic("unreachable")
}

// Errorf creates an Error of the given code with a formatted message.
func Errorf(code int, f string, a ...interface{}) error {
	return Error{Code: code, Pkg: Pkg, Msg: fmt.Sprintf(f, a...)}
}

// Panicf panics with an error created by Errorf.
func Panicf(code int, f string, a ...interface{}) {
	Panic(Errorf(code, f, a...))
}

// errWrap is used by Panic and Recover to ensure that only errors raised by
// Panic are recovered by Recover.
type errWrap struct{ e *error }

func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case errWrap:
		*err = *ex.e
	default:
		panic(ex)
	}
}

// RecoverAs is like Recover, but reports an Error as originating from pkg.
func RecoverAs(err *error, pkg string) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case errWrap:
		if cerr, ok := (*ex.e).(Error); ok {
			cerr.Pkg = pkg
			*err = cerr
			return
		}
		*err = *ex.e
	default:
		panic(ex)
	}
}

func Panic(err error) {
	panic(errWrap{&err})
}
