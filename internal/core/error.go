// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors produced by the buddy engine.
var (
	// ErrOutOfMemory is returned when no free block large enough to satisfy
	// a request exists. The free list is left unchanged.
	ErrOutOfMemory = errors.New("core: no free block large enough for request")

	// ErrRegionAcquire wraps a failure from the region provider during lazy
	// arena acquisition. Per design this is treated as a fatal precondition
	// violation rather than a recoverable API error: Engine.Allocate panics
	// with this error wrapped rather than returning it.
	ErrRegionAcquire = errors.New("core: region acquisition failed")
)
