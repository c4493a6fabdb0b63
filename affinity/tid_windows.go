//go:build windows
// +build windows

// File: affinity/tid_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows thread identity via GetCurrentThreadId.

package affinity

import "golang.org/x/sys/windows"

func platformThreadID() uint64 {
	return uint64(windows.GetCurrentThreadId())
}
