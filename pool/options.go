// File: pool/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"go.uber.org/zap"

	"github.com/momentics/objpool/affinity"
	"github.com/momentics/objpool/api"
)

// Option customizes allocator initialization.
type Option func(*Allocator)

// WithBlockSource replaces the platform default raw block source.
func WithBlockSource(src api.BlockSource) Option {
	return func(a *Allocator) {
		a.source = src
	}
}

// WithSlotsPerChunk sets the fixed growth factor: how many slots each class
// pool gains per chunk. The policy is static, not adaptive. Values below 1
// are ignored.
func WithSlotsPerChunk(n int) Option {
	return func(a *Allocator) {
		if n >= 1 {
			a.slotsPerChunk = n
		}
	}
}

// WithMaxSlotSize raises or lowers the largest supported slot class. The
// value must be a power of two and at least MinSlotSize; anything else is
// ignored.
func WithMaxSlotSize(n int) Option {
	return func(a *Allocator) {
		if n >= MinSlotSize && n&(n-1) == 0 {
			a.maxSlot = n
		}
	}
}

// WithLogger attaches a structured logger; growth and teardown events log at
// Debug, misuse at Warn. The default logger discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(a *Allocator) {
		if log != nil {
			a.log = log
		}
	}
}

// WithThreadGuard enables the hardened confinement check: the allocator
// captures its origin OS thread and every public operation verifies the
// caller is still on it, surfacing ErrWrongThread instead of silent memory
// corruption. The check is exact only while the owning goroutine is locked
// to its thread (affinity.Confine).
func WithThreadGuard() Option {
	return func(a *Allocator) {
		a.guard = affinity.NewGuard()
	}
}
