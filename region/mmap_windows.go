// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

//go:build windows

package region

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

func init() {
	Register("mmap", func() (Provider, error) { return mmapProvider{}, nil })
}

// mmapProvider acquires its region via VirtualAlloc, the Windows analogue
// of an anonymous mmap. hint is passed through as the preferred base
// address; VirtualAlloc is free to ignore it and pick its own, in which
// case callers must use the returned Region.Base, not hint, as the
// reference point for address arithmetic.
type mmapProvider struct{}

func (mmapProvider) Name() string { return "mmap" }

func (mmapProvider) Acquire(hint uintptr, length int) (Region, error) {
	addr, err := windows.VirtualAlloc(hint, uintptr(length), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		// Fixed-address hints are frequently unavailable; retry without one.
		addr, err = windows.VirtualAlloc(0, uintptr(length), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
		if err != nil {
			return Region{}, fmt.Errorf("region: VirtualAlloc: %w", err)
		}
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
	return Region{Base: addr, Bytes: b}, nil
}

// Release frees a region acquired from this provider. Not part of the
// Provider interface; exposed for callers that want to tear down cleanly.
func (mmapProvider) Release(r Region) error {
	return windows.VirtualFree(r.Base, 0, windows.MEM_RELEASE)
}
