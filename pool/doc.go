// Package pool
// Author: momentics <momentics@gmail.com>
//
// Thread-confined object-pool allocator for small, fixed-layout, pointer-free
// values. Requests are routed to size-classed pools that recycle slots through
// an intrusive free list and grow in fixed-size chunks from a raw block source.
// One allocator serves one thread of execution; this is what lets the hot path
// run without locks or atomics. See allocator.go, classpool.go, handle.go.
package pool
