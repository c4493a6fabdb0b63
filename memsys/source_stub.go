//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows
// +build !linux,!darwin,!freebsd,!netbsd,!openbsd,!windows

// File: memsys/source_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap fallback for platforms without a page-backed source.

package memsys

import "github.com/momentics/objpool/api"

func newPlatformSource() api.BlockSource { return NewHeapSource() }
