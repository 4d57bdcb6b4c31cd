// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

package core

import "unsafe"

// node is the Free Node preamble written at the start of every free block.
// size is the number of payload bytes the block holds, excluding this
// preamble. next is the address of the following Free Node, or 0 (the null
// terminator — no valid arena address is ever 0).
//
// A node with size == 0 marks a block that is currently allocated; it
// remains threaded into the list via next so that buddy lookups (which read
// size directly from an address, not from list membership) keep working.
// See Engine for why this is load-bearing rather than incidental.
type node struct {
	size uint64
	next uintptr
}

// header is the Allocation Header preamble written immediately after a
// node's position once the block is allocated. size is the number of
// usable payload bytes following the header; magic is checked on free to
// detect corrupt or alien pointers. Both fields are 32 bits, matching the
// original int-sized header this layout is modeled on.
type header struct {
	size  uint32
	magic uint32
}

const (
	sizeofNode   = uintptr(unsafe.Sizeof(node{}))
	sizeofHeader = uintptr(unsafe.Sizeof(header{}))
)

func nodeAt(addr uintptr) *node {
	//nolint:govet // converting an arena-relative address to unsafe.Pointer is the in-band layout this package implements
	return (*node)(unsafe.Pointer(addr))
}

func headerAt(addr uintptr) *header {
	//nolint:govet // converting an arena-relative address to unsafe.Pointer is the in-band layout this package implements
	return (*header)(unsafe.Pointer(addr))
}
