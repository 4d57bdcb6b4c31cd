// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

package buddy

import (
	"github.com/gobuddy/allocator/internal/core"
	"github.com/gobuddy/allocator/region"
)

// Default configuration constants.
const (
	// DefaultArenaBytes is the total arena size used when no ArenaBytes
	// option is supplied.
	DefaultArenaBytes = 4096

	// DefaultBaseHint is the base address hint passed to the region
	// provider when no BaseHint option is supplied. It is only a hint:
	// providers that cannot honor fixed placement are free to ignore it.
	DefaultBaseHint uintptr = 0x7f41002b3000

	// DefaultMagic is the allocation-header sentinel used when no Magic
	// option is supplied.
	DefaultMagic uint64 = core.Magic
)

// Config holds the parameters an Allocator is constructed with.
type Config struct {
	ArenaBytes int
	BaseHint   uintptr
	Magic      uint64
	Provider   region.Provider
}

// DefaultConfig returns a Config populated with the package's default
// constants and no Provider selected (New resolves one via region.Select
// if none is supplied).
func DefaultConfig() Config {
	return Config{
		ArenaBytes: DefaultArenaBytes,
		BaseHint:   DefaultBaseHint,
		Magic:      DefaultMagic,
	}
}

// Option configures an Allocator at construction time.
type Option func(*Config)

// WithArenaBytes overrides the total arena size.
func WithArenaBytes(n int) Option {
	return func(c *Config) { c.ArenaBytes = n }
}

// WithBaseHint overrides the base address hint passed to the region
// provider.
func WithBaseHint(addr uintptr) Option {
	return func(c *Config) { c.BaseHint = addr }
}

// WithMagic overrides the allocation-header sentinel. Mainly useful for
// tests exercising the corrupt-pointer free path.
func WithMagic(magic uint64) Option {
	return func(c *Config) { c.Magic = magic }
}

// WithProvider overrides the region provider used to acquire the arena.
// If not supplied, New resolves one via region.Select.
func WithProvider(p region.Provider) Option {
	return func(c *Config) { c.Provider = p }
}
