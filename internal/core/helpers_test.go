// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

package core

import "unsafe"

// addrOf returns the address of buf's backing array, for tests that poke
// at node/header layout directly without going through an Acquirer.
func addrOf(buf []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
}

// memProvider is a test Acquirer backed by a plain Go byte slice. It
// ignores hint, the same way a provider on a platform that disallows
// fixed placement would.
type memProvider struct{}

func (memProvider) Acquire(_ uintptr, length int) (Region, error) {
	buf := make([]byte, length)
	return Region{Base: addrOf(buf), Bytes: buf}, nil
}

func newTestEngine(arenaBytes int) *Engine {
	return NewEngine(memProvider{}, arenaBytes, 0)
}
