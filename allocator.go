// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

package buddy

import (
	"unsafe"

	"github.com/gobuddy/allocator/internal/core"
	"github.com/gobuddy/allocator/region"
)

// Allocator is a binary-buddy allocator over a single fixed-size arena.
// The zero value is not usable; construct one with New.
//
// An Allocator is not safe for concurrent use.
type Allocator struct {
	engine *core.Engine
}

// New constructs an Allocator. The arena itself is not acquired until the
// first call to Allocate.
func New(opts ...Option) *Allocator {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Provider == nil {
		cfg.Provider = region.Select()
	}

	engine := core.NewEngine(providerAdapter{cfg.Provider}, cfg.ArenaBytes, cfg.BaseHint)
	engine.SetMagic(cfg.Magic)
	return &Allocator{engine: engine}
}

// providerAdapter narrows a region.Provider down to the core.Acquirer
// method set the engine depends on, keeping internal/core free of an
// import on the region package.
type providerAdapter struct {
	p region.Provider
}

func (a providerAdapter) Acquire(hint uintptr, length int) (core.Region, error) {
	reg, err := a.p.Acquire(hint, length)
	if err != nil {
		return core.Region{}, err
	}
	return core.Region{Base: reg.Base, Bytes: reg.Bytes}, nil
}

// Allocate returns a byte buffer of exactly n bytes backed by the arena,
// or ErrInvalidSize if n is negative, or ErrOutOfMemory if no free block
// is large enough to satisfy the request.
func (a *Allocator) Allocate(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	if n == 0 {
		return []byte{}, nil
	}

	ptr, err := a.engine.Allocate(n)
	if err != nil {
		return nil, err
	}
	//nolint:govet // ptr is arena-owned, not GC-owned
	return unsafe.Slice((*byte)(unsafe.Pointer(ptr)), n), nil
}

// Free releases a buffer previously returned by Allocate. It is a silent
// no-op if buf was not produced by this Allocator (or any buffer whose
// header fails the magic check) — there is no error to report and no
// panic.
func (a *Allocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	ptr := uintptr(unsafe.Pointer(&buf[0]))
	a.engine.Free(ptr)
}

// Traverse returns the current free list in list order: for each free
// block, its address and its Free Node size field. It does not modify
// allocator state.
func (a *Allocator) Traverse() []BlockInfo {
	blocks := a.engine.Traverse()
	out := make([]BlockInfo, len(blocks))
	for i, b := range blocks {
		out[i] = blockInfoFrom(b)
	}
	return out
}
