//go:build linux
// +build linux

// File: affinity/tid_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux thread identity via gettid(2).

package affinity

import "golang.org/x/sys/unix"

func platformThreadID() uint64 {
	return uint64(unix.Gettid())
}
