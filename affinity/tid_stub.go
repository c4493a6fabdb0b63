//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/tid_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub thread identity for platforms without a cheap thread id syscall.
// A zero id disables guard checks rather than reporting false violations.

package affinity

func platformThreadID() uint64 { return 0 }
