// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais16

import (
	"github.com/dsnet/sais/internal"
	"github.com/dsnet/sais/internal/bind"
	"github.com/dsnet/sais/internal/engine"
	"github.com/dsnet/sais/internal/errors"
)

// Context holds the scratch of the forward transforms.
// A Context must not be copied or used by multiple goroutines simultaneously.
type Context struct {
	_   internal.NoCopy
	ctx *engine.Context[int32]
}

// NewContext returns a Context for sequential use.
func NewContext() *Context {
	return &Context{ctx: engine.NewContext[int32](FreqSize, 1)}
}

// NewParallelContext returns a Context whose operations use up to threads
// goroutines.
func NewParallelContext(threads int) (c *Context, err error) {
	defer errors.RecoverAs(&err, pkg)
	return &Context{ctx: engine.NewContext[int32](FreqSize, internal.Threads(threads))}, nil
}

func (c *Context) get() *engine.Context[int32] {
	if c == nil || c.ctx == nil {
		errors.Panicf(errors.IllegalArguments, "use of closed context")
	}
	return c.ctx
}

// SAIS is the Context equivalent of the SAIS function.
func (c *Context) SAIS(t []uint16, sa, freq []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	ctx := c.get()
	bind.SAIS(ctx, FreqSize, t, sa, freq, ctx.Threads)
	return nil
}

// BWT is the Context equivalent of the BWT function.
func (c *Context) BWT(t, u []uint16, a, freq []int32) (primary int32, err error) {
	defer errors.RecoverAs(&err, pkg)
	ctx := c.get()
	return bind.BWT(ctx, FreqSize, t, u, a, freq, ctx.Threads), nil
}

// BWTAux is the Context equivalent of the BWTAux function.
func (c *Context) BWTAux(t, u []uint16, a, freq, aux []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	ctx := c.get()
	bind.BWTAux(ctx, FreqSize, t, u, a, freq, aux, ctx.Threads)
	return nil
}

// Close releases the scratch. It is safe to call Close multiple times.
func (c *Context) Close() error {
	if c != nil {
		c.ctx = nil
	}
	return nil
}

// UnBWTContext holds the scratch of the inverse transforms.
type UnBWTContext struct {
	_   internal.NoCopy
	ctx *engine.UnBWTContext[int32]
}

// NewUnBWTContext returns a UnBWTContext for sequential use.
func NewUnBWTContext() *UnBWTContext {
	return &UnBWTContext{ctx: engine.NewUnBWTContext[int32](FreqSize, 1)}
}

// NewParallelUnBWTContext returns a UnBWTContext whose operations use up to
// threads goroutines.
func NewParallelUnBWTContext(threads int) (c *UnBWTContext, err error) {
	defer errors.RecoverAs(&err, pkg)
	return &UnBWTContext{ctx: engine.NewUnBWTContext[int32](FreqSize, internal.Threads(threads))}, nil
}

func (c *UnBWTContext) get() *engine.UnBWTContext[int32] {
	if c == nil || c.ctx == nil {
		errors.Panicf(errors.IllegalArguments, "use of closed context")
	}
	return c.ctx
}

// UnBWT is the UnBWTContext equivalent of the UnBWT function.
func (c *UnBWTContext) UnBWT(u, t []uint16, a, freq []int32, primary int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	ctx := c.get()
	bind.UnBWT(ctx, FreqSize, u, t, a, freq, primary, ctx.Threads)
	return nil
}

// UnBWTAux is the UnBWTContext equivalent of the UnBWTAux function.
func (c *UnBWTContext) UnBWTAux(u, t []uint16, a, freq, aux []int32) (err error) {
	defer errors.RecoverAs(&err, pkg)
	ctx := c.get()
	bind.UnBWTAux(ctx, FreqSize, u, t, a, freq, aux, ctx.Threads)
	return nil
}

// Close releases the scratch. It is safe to call Close multiple times.
func (c *UnBWTContext) Close() error {
	if c != nil {
		c.ctx = nil
	}
	return nil
}
