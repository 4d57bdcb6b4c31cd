// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

// Package buddy implements a binary-buddy memory allocator over a single
// fixed-size, pre-reserved region of memory.
//
// It exposes three operations: Allocate a byte buffer of a requested size,
// Free a previously allocated buffer, and Traverse to enumerate the
// current free list for debugging and testing. Internally, free blocks are
// recursively split in half to satisfy small requests and recursively
// coalesced with their buddy on free.
//
// # Quick Start
//
//	a := buddy.New()
//	buf, err := a.Allocate(200)
//	if err != nil {
//	    // out of memory
//	}
//	a.Free(buf)
//
// # Region Providers
//
// The arena backing an Allocator comes from a region.Provider, selected
// automatically (preferring a real OS mapping over an in-process one) or
// supplied explicitly via WithProvider:
//
//	p, _ := region.Create("mmap")
//	a := buddy.New(buddy.WithProvider(p))
//
// # Thread Safety
//
// An Allocator is not safe for concurrent use. All three operations
// require exclusive access to allocator state; callers serialize access
// externally.
//
// # Scope
//
// A single Allocator manages exactly one fixed-size arena, acquired lazily
// on the first Allocate call and never grown or released. There is no
// support for multiple arenas per Allocator.
package buddy
