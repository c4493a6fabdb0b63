// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral API for OS-thread identity and goroutine confinement.
// Platform-specific implementations are located in separate files
// (tid_linux.go, tid_windows.go, etc.) guarded by build tags.

package affinity

import (
	"fmt"
	"runtime"

	"github.com/momentics/objpool/api"
)

// ThreadID returns an identifier for the calling OS thread, or 0 on platforms
// without thread identity support.
func ThreadID() uint64 {
	return platformThreadID()
}

// Confine locks the calling goroutine to its current OS thread and returns
// that thread's id. Pair with Unconfine when the goroutine no longer needs
// thread identity to be stable.
func Confine() uint64 {
	runtime.LockOSThread()
	return ThreadID()
}

// Unconfine releases the OS-thread lock taken by Confine.
func Unconfine() {
	runtime.UnlockOSThread()
}

// Guard captures an origin thread at construction and verifies later callers
// run on the same thread. It is only exact while the owning goroutine stays
// confined (see Confine); an unpinned goroutine may migrate between threads
// and trip the check spuriously.
type Guard struct {
	origin uint64
}

// NewGuard captures the calling thread as the origin.
func NewGuard() *Guard {
	return &Guard{origin: ThreadID()}
}

// Check returns ErrWrongThread if the caller is not on the origin thread.
// On platforms without thread identity the guard is inert and always passes.
func (g *Guard) Check() error {
	if g.origin == 0 {
		return nil
	}
	if tid := ThreadID(); tid != g.origin {
		return fmt.Errorf("%w: origin thread %d, current thread %d",
			api.ErrWrongThread, g.origin, tid)
	}
	return nil
}
