// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

package core

import "testing"

func TestNodeReadWriteRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	addr := addrOf(buf)

	n := nodeAt(addr)
	n.size = 48
	n.next = addr + 16

	got := nodeAt(addr)
	if got.size != 48 {
		t.Errorf("size = %d, want 48", got.size)
	}
	if got.next != addr+16 {
		t.Errorf("next = %#x, want %#x", got.next, addr+16)
	}
}

func TestHeaderReadWriteRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	addr := addrOf(buf)

	h := headerAt(addr)
	h.size = 100
	h.magic = uint32(Magic)

	got := headerAt(addr)
	if got.size != 100 || uint64(got.magic) != Magic {
		t.Errorf("header = %+v, want {size:100 magic:%d}", *got, Magic)
	}
}

func TestSizeofConstantsArePositive(t *testing.T) {
	if sizeofNode == 0 {
		t.Error("sizeofNode must be > 0")
	}
	if sizeofHeader == 0 {
		t.Error("sizeofHeader must be > 0")
	}
}
