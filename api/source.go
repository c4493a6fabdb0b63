// File: api/source.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Defines the raw block source boundary: the only external collaborator of the
// pool core. A source hands out aligned blocks and never takes them back while
// the owning allocator is alive; pools only grow.

package api

// BlockSource supplies raw, aligned memory blocks on demand.
//
// Implementations must be safe for concurrent use by independent allocators on
// different threads, even though any single allocator is single-threaded.
type BlockSource interface {
	// Grab returns a block of exactly size bytes whose first byte is aligned
	// to align (a power of two). A failure surfaces as ErrOutOfMemory from
	// the allocator.
	Grab(size, align int) ([]byte, error)
}
