// Copyright 2025 The GoBuddy Authors
// SPDX-License-Identifier: MIT

package buddy

import (
	"log/slog"

	"github.com/gobuddy/allocator/internal/core"
)

// SetLogger configures the logger used by the allocator's internal engine.
// By default the engine produces no log output. Pass nil to restore the
// default silent behavior.
//
// See internal/core's logger for the levels used: split/coalesce events at
// Debug, a free() call with a bad magic sentinel at Warn.
func SetLogger(l *slog.Logger) { core.SetLogger(l) }

// Logger returns the logger currently used by the allocator's internal
// engine.
func Logger() *slog.Logger { return core.Logger() }
