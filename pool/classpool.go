// File: pool/classpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-size-class pool: one free list plus the chunks backing it. Chunks are
// append-only and never move, so growth never invalidates outstanding handles.

package pool

import (
	"fmt"
	"unsafe"

	"github.com/eapache/queue"
	"go.uber.org/zap"

	"github.com/momentics/objpool/affinity"
	"github.com/momentics/objpool/api"
)

// classPool owns the slots of one size class. All fields are plain values:
// single-thread confinement removes the need for any synchronization.
type classPool struct {
	slotSize      int
	slotsPerChunk int
	source        api.BlockSource
	log           *zap.Logger
	guard         *affinity.Guard

	free freeList

	// chunks keeps every grabbed block alive, in growth order. The queue is
	// only appended to and walked at teardown; eapache/queue is single-thread
	// by design, matching the pool.
	chunks *queue.Queue

	freeSlots  int
	totalAlloc uint64
	totalFree  uint64
}

func newClassPool(slotSize int, a *Allocator) *classPool {
	return &classPool{
		slotSize:      slotSize,
		slotsPerChunk: a.slotsPerChunk,
		source:        a.source,
		log:           a.log,
		guard:         a.guard,
		chunks:        queue.New(),
	}
}

// acquire pops a free slot, growing by one chunk first when the list is empty.
// It fails only if the block source cannot supply memory.
func (p *classPool) acquire() (unsafe.Pointer, error) {
	slot := p.free.pop()
	if slot == nil {
		if err := p.grow(); err != nil {
			return nil, err
		}
		slot = p.free.pop()
	}
	p.freeSlots--
	p.totalAlloc++
	return slot, nil
}

// release pushes a slot back onto the free list. Infallible by construction:
// the slot is valid for as long as a handle to it exists. The payload is not
// zeroed or destructed; only pointer-free data is ever stored here.
func (p *classPool) release(slot unsafe.Pointer) {
	p.free.push(slot)
	p.freeSlots++
	p.totalFree++
}

// grow grabs one chunk from the source, splits it into slots and links them
// all onto the free list. Existing chunks are untouched.
func (p *classPool) grow() error {
	size := p.slotSize * p.slotsPerChunk
	block, err := p.source.Grab(size, MaxAlign)
	if err != nil {
		return fmt.Errorf("%w: class %d: %v", api.ErrOutOfMemory, p.slotSize, err)
	}
	if len(block) < size {
		return fmt.Errorf("%w: class %d: short block %d < %d",
			api.ErrOutOfMemory, p.slotSize, len(block), size)
	}
	base := unsafe.Pointer(&block[0])
	if uintptr(base)&(MaxAlign-1) != 0 {
		return fmt.Errorf("%w: class %d: misaligned block %p",
			api.ErrOutOfMemory, p.slotSize, base)
	}
	p.chunks.Add(block)
	for i := 0; i < p.slotsPerChunk; i++ {
		p.free.push(unsafe.Add(base, i*p.slotSize))
	}
	p.freeSlots += p.slotsPerChunk
	p.log.Debug("pool grew",
		zap.Int("class", p.slotSize),
		zap.Int("chunk_bytes", size),
		zap.Int("chunks", p.chunks.Length()))
	return nil
}

// reserve grows until at least n slots sit on the free list.
func (p *classPool) reserve(n int) error {
	for p.freeSlots < n {
		if err := p.grow(); err != nil {
			return err
		}
	}
	return nil
}

func (p *classPool) stats() api.PoolStats {
	return api.PoolStats{
		Class:      p.slotSize,
		TotalAlloc: p.totalAlloc,
		TotalFree:  p.totalFree,
		InUse:      int(p.totalAlloc - p.totalFree),
		FreeSlots:  p.freeSlots,
		Chunks:     p.chunks.Length(),
	}
}
