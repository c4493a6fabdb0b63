// File: pool/handle.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Handle is the unique-ownership view of an occupied slot. The pool stores
// only raw bytes; the typed view exists solely here.

package pool

import "unsafe"

// Handle is a unique-ownership reference to a pooled value of type T. It
// carries a back-reference to the exact class pool owning the slot, so
// release never consults the allocator's routing table.
//
// A handle owns its slot until Release or Move. Copying a handle does not
// copy the value into a new slot; a copied handle aliases the same slot, and
// only one copy may ever call Release. Use Move to make the transfer
// explicit. Handles follow their allocator's thread confinement.
type Handle[T any] struct {
	slot unsafe.Pointer
	pool *classPool
}

// Get returns the contained value.
func (h Handle[T]) Get() T { return *(*T)(h.slot) }

// Set overwrites the contained value in place.
func (h Handle[T]) Set(value T) { *(*T)(h.slot) = value }

// Ptr returns a pointer to the contained value for direct reads and writes.
// The pointer is valid until the handle is released.
func (h Handle[T]) Ptr() *T { return (*T)(h.slot) }

// Valid reports whether the handle still owns a slot.
func (h Handle[T]) Valid() bool { return h.slot != nil }

// Release returns the slot to its pool. Release fires exactly once: a
// released or moved-from handle owns nothing and further calls are no-ops.
// The payload is not destructed; the slot simply becomes reusable.
//
// When the owning allocator carries a thread guard, a cross-thread Release
// panics: the slot would be pushed onto a free list owned by another thread,
// which is memory corruption, not a recoverable condition.
func (h *Handle[T]) Release() {
	if h.slot == nil {
		return
	}
	if g := h.pool.guard; g != nil {
		if err := g.Check(); err != nil {
			panic(err)
		}
	}
	h.pool.release(h.slot)
	h.slot = nil
	h.pool = nil
}

// Move transfers slot ownership to the returned handle and empties the
// receiver, whose Release becomes a no-op. Pool state is untouched.
func (h *Handle[T]) Move() Handle[T] {
	moved := *h
	h.slot = nil
	h.pool = nil
	return moved
}
