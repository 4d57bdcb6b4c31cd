// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

package region

// Region is a contiguous, writable memory range. Base is its address,
// which is the reference point ("base" in spec terms) every buddy address
// computation is relative to. Bytes is a Go slice view over the same
// memory, kept by the caller so the backing storage outlives any raw
// pointers derived from Base.
type Region struct {
	Base  uintptr
	Bytes []byte
}

// Provider acquires a region of memory for the allocator to manage.
//
// Acquire returns a region of at least length bytes, writable and readable,
// zero-initialized or indeterminate. hint is an address the caller would
// prefer the region start at; a Provider running on a platform that
// disallows fixed placement may ignore it — callers must then use the
// returned Region.Base, not hint, as the reference point for any further
// address arithmetic.
type Provider interface {
	Acquire(hint uintptr, length int) (Region, error)
	Name() string
}
