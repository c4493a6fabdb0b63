// File: memsys/source.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral source selection and the portable heap source. Concrete
// page-backed sources are selected at build time through platform files.

package memsys

import (
	"fmt"
	"unsafe"

	"github.com/momentics/objpool/api"
)

// Default returns the preferred block source for this platform: page-backed
// (mmap / VirtualAlloc) where available, heap-backed otherwise.
func Default() api.BlockSource {
	return newPlatformSource()
}

// HeapSource serves blocks from the regular Go heap. It is the portable
// fallback and the natural choice for tests.
type HeapSource struct{}

// NewHeapSource creates a heap-backed block source.
func NewHeapSource() *HeapSource { return &HeapSource{} }

// Grab allocates a slice and returns a window whose base is aligned to align.
// The backing array stays reachable through the returned slice, so the block
// lives as long as its pool.
func (h *HeapSource) Grab(size, align int) ([]byte, error) {
	if size <= 0 || align <= 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("heap source: bad request size=%d align=%d", size, align)
	}
	buf := make([]byte, size+align)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&buf[0])) & uintptr(align-1)); rem != 0 {
		off = align - rem
	}
	return buf[off : off+size : off+size], nil
}

var _ api.BlockSource = (*HeapSource)(nil)
