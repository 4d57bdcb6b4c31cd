// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

package region

import "unsafe"

func init() {
	Register("heap", func() (Provider, error) { return heapProvider{}, nil })
}

// heapProvider acquires its region from the Go heap rather than a real OS
// mapping. It ignores hint entirely — a plain []byte has no notion of a
// preferred address — and is always available, making it the provider
// used by default in tests and wherever a genuine mmap isn't warranted.
type heapProvider struct{}

func (heapProvider) Name() string { return "heap" }

func (heapProvider) Acquire(_ uintptr, length int) (Region, error) {
	buf := make([]byte, length)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	return Region{Base: base, Bytes: buf}, nil
}
