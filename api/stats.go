// File: api/stats.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// PoolStats reports usage counters for one size-class pool.
//
// Counters are plain integers: the owning allocator is confined to a single
// thread, so readers always observe a consistent snapshot.
type PoolStats struct {
	// Class is the slot size of this pool in bytes.
	Class int
	// TotalAlloc counts slots handed out over the pool's lifetime.
	TotalAlloc uint64
	// TotalFree counts slots returned over the pool's lifetime.
	TotalFree uint64
	// InUse is the number of currently outstanding slots.
	InUse int
	// FreeSlots is the current length of the free list.
	FreeSlots int
	// Chunks is the number of blocks grabbed from the source so far.
	Chunks int
}

// AllocatorStats aggregates per-class stats for one allocator.
type AllocatorStats struct {
	// Classes holds one entry per lazily created size class, keyed by slot size.
	Classes map[int]PoolStats
	// Chunks is the total block count across all classes.
	Chunks int
	// InUse is the total outstanding slot count across all classes.
	InUse int
}
