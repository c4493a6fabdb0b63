//go:build windows
// +build windows

// File: memsys/source_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows page-backed block source using VirtualAlloc committed pages.

package memsys

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/momentics/objpool/api"
)

type virtualAllocSource struct{}

func newPlatformSource() api.BlockSource { return &virtualAllocSource{} }

func (v *virtualAllocSource) Grab(size, align int) ([]byte, error) {
	if size <= 0 || align <= 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("virtualalloc source: bad request size=%d align=%d", size, align)
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE,
		windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("virtualalloc source: %w", err)
	}
	// Allocation granularity is 64KiB, far above any slot alignment.
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

var _ api.BlockSource = (*virtualAllocSource)(nil)
