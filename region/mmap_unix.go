// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

//go:build unix

package region

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

func init() {
	Register("mmap", func() (Provider, error) { return mmapProvider{}, nil })
}

// mmapProvider acquires its region via a real anonymous mmap(2) mapping.
// unix.Mmap does not support requesting a fixed address safely (MAP_FIXED
// can silently clobber existing mappings), so hint is accepted but not
// honored; callers must use the returned Region.Base for all subsequent
// address arithmetic, as the Provider contract requires.
type mmapProvider struct{}

func (mmapProvider) Name() string { return "mmap" }

func (mmapProvider) Acquire(_ uintptr, length int) (Region, error) {
	b, err := unix.Mmap(-1, 0, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return Region{}, fmt.Errorf("region: mmap: %w", err)
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return Region{Base: base, Bytes: b}, nil
}

// Release unmaps a region acquired from this provider. It is not part of
// the Provider interface — the core engine never releases its arena — but
// is exposed for callers (such as this package's tests) that want to tear
// down cleanly.
func (mmapProvider) Release(r Region) error {
	return unix.Munmap(r.Bytes)
}
