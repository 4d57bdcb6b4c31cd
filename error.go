// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

package buddy

import (
	"errors"

	"github.com/gobuddy/allocator/internal/core"
)

// Sentinel errors re-exported from the core engine.
var (
	// ErrOutOfMemory is returned when no free block large enough to
	// satisfy a request exists. The free list is left unchanged.
	ErrOutOfMemory = core.ErrOutOfMemory
)

// ErrInvalidSize is returned when Allocate is called with a negative size;
// Allocate is only defined for non-negative sizes.
var ErrInvalidSize = errors.New("buddy: size must be non-negative")
