// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

// Package region supplies the "region provider" collaborator the core
// allocator consumes: something that yields a contiguous, writable memory
// region of a requested length at (ideally) a requested base address.
//
// Providers register themselves by name via an init()-time call to
// Register, a backend-factory registry pattern that lets new providers be
// added without touching any caller. Two are built in:
//
//   - "heap": a plain Go byte slice, always available, used by default in
//     tests and wherever a real OS mapping isn't required.
//   - "mmap": a genuine OS-backed anonymous mapping (unix.Mmap on Unix,
//     VirtualAlloc on Windows).
package region
