//go:build linux || darwin || freebsd || netbsd || openbsd
// +build linux darwin freebsd netbsd openbsd

// File: memsys/source_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unix page-backed block source using anonymous private mappings.

package memsys

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/objpool/api"
)

// mmapSource grabs blocks straight from the kernel. Mappings are page-aligned,
// which satisfies any slot alignment the pool core asks for.
type mmapSource struct{}

func newPlatformSource() api.BlockSource { return &mmapSource{} }

func (m *mmapSource) Grab(size, align int) ([]byte, error) {
	if size <= 0 || align <= 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("mmap source: bad request size=%d align=%d", size, align)
	}
	if align > pageSize() {
		// Fall back to the heap path for exotic alignments.
		return NewHeapSource().Grab(size, align)
	}
	buf, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap source: %w", err)
	}
	return buf[:size:size], nil
}

func pageSize() int { return unix.Getpagesize() }

var _ api.BlockSource = (*mmapSource)(nil)
