// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

package buddy

import "github.com/gobuddy/allocator/internal/core"

// BlockInfo describes one free block as reported by Traverse: its address
// and its Free Node size field (payload bytes, excluding the node's own
// preamble).
type BlockInfo struct {
	Addr uintptr
	Size int
}

func blockInfoFrom(b core.Block) BlockInfo {
	return BlockInfo{Addr: b.Addr, Size: b.Size}
}
