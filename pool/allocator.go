// File: pool/allocator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The allocator routes each request to the pool matching the rounded-up size
// of the requested type, creating pools lazily on first use. An allocator and
// every handle it issues belong to the thread that created it; nothing here
// is safe for concurrent use, on purpose.

package pool

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/momentics/objpool/affinity"
	"github.com/momentics/objpool/api"
	"github.com/momentics/objpool/memsys"
)

// Allocator is the single type-erased entry point for pooled allocation.
// Pools store only slot-size metadata and raw bytes; the typed view is
// reconstructed at the Handle boundary by the generic Alloc function.
type Allocator struct {
	source        api.BlockSource
	log           *zap.Logger
	slotsPerChunk int
	maxSlot       int
	guard         *affinity.Guard

	pools map[int]*classPool // keyed by class index, lazily populated

	// types caches the pointer-freeness verdict per concrete type so the
	// reflect walk runs once per type, not once per allocation.
	types map[reflect.Type]error

	closed bool
}

// New creates an empty allocator with no pre-allocated pools; all growth is
// lazy and on-demand. The returned allocator is confined to the calling
// thread of execution for its entire lifetime.
func New(opts ...Option) *Allocator {
	a := &Allocator{
		source:        memsys.Default(),
		log:           zap.NewNop(),
		slotsPerChunk: DefaultSlotsPerChunk,
		maxSlot:       MaxSlotSize,
		pools:         make(map[int]*classPool),
		types:         make(map[reflect.Type]error),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// poolFor returns the pool for class c, creating it on first request.
func (a *Allocator) poolFor(c int) *classPool {
	p, ok := a.pools[c]
	if !ok {
		p = newClassPool(classSize(c), a)
		a.pools[c] = p
	}
	return p
}

// check validates an operation against the allocator's lifecycle and, when
// the thread guard is enabled, the origin thread.
func (a *Allocator) check() error {
	if a.closed {
		return api.ErrClosed
	}
	if a.guard != nil {
		return a.guard.Check()
	}
	return nil
}

// Reserve pre-grows the pool serving values of the given byte size until at
// least slots free slots are available, so the first allocations of that
// class take no growth hit.
func (a *Allocator) Reserve(size, slots int) error {
	if err := a.check(); err != nil {
		return err
	}
	c, ok := classFor(size, a.maxSlot)
	if !ok {
		return fmt.Errorf("%w: size %d exceeds max slot %d",
			api.ErrOversizedType, size, a.maxSlot)
	}
	return a.poolFor(c).reserve(slots)
}

// Stats aggregates counters across every materialized class pool.
func (a *Allocator) Stats() api.AllocatorStats {
	s := api.AllocatorStats{Classes: make(map[int]api.PoolStats, len(a.pools))}
	for _, p := range a.pools {
		ps := p.stats()
		s.Classes[ps.Class] = ps
		s.Chunks += ps.Chunks
		s.InUse += ps.InUse
	}
	return s
}

// Close logs final stats and drops every pool. Outstanding handles become
// invalid; releasing or dereferencing them afterwards is misuse, the same
// class of error as cross-thread access. Close is idempotent.
func (a *Allocator) Close() error {
	if a.closed {
		return nil
	}
	s := a.Stats()
	if s.InUse > 0 {
		a.log.Warn("allocator closed with outstanding slots",
			zap.Int("in_use", s.InUse),
			zap.Int("chunks", s.Chunks))
	} else {
		a.log.Debug("allocator closed",
			zap.Int("chunks", s.Chunks))
	}
	a.pools = nil
	a.closed = true
	return nil
}
