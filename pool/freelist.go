// File: pool/freelist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Intrusive free list over raw slot memory. A free slot's first word holds
// the address of the next free slot; occupied slots hold caller data and are
// never touched by the list. Stack discipline: the most recently freed slot
// is handed out first, which keeps hot loops on warm cache lines.

package pool

import "unsafe"

// freeList links free slots of one size class. Not safe for concurrent use;
// the owning allocator is confined to a single thread.
type freeList struct {
	head unsafe.Pointer
}

// push links slot at the head. Always succeeds, O(1).
func (l *freeList) push(slot unsafe.Pointer) {
	*(*unsafe.Pointer)(slot) = l.head
	l.head = slot
}

// pop unlinks and returns the head slot, or nil when the list is empty.
// An empty list is the growth trigger, never an error.
func (l *freeList) pop() unsafe.Pointer {
	slot := l.head
	if slot != nil {
		l.head = *(*unsafe.Pointer)(slot)
	}
	return slot
}
