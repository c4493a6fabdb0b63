// File: pool/sizeclass.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "math/bits"

const (
	// MinSlotSize is the smallest slot class. A free slot stores the link to
	// the next free slot in its first word, so a slot can never be smaller
	// than a pointer; 16 also keeps every slot 16-byte aligned inside a chunk.
	MinSlotSize = 16

	// MaxSlotSize is the default largest slot class. Larger values belong on
	// the regular heap, not in a pool.
	MaxSlotSize = 256

	// MaxAlign is the alignment every chunk base honours. Go types never
	// require more than 16, and class sizes are multiples of 16, so slot
	// alignment holds for any pooled type by construction.
	MaxAlign = 16

	// DefaultSlotsPerChunk is the fixed growth factor: slots added per chunk
	// when a class pool's free list runs dry.
	DefaultSlotsPerChunk = 64
)

// classSize returns the slot size of class c (16 << c).
func classSize(c int) int { return MinSlotSize << c }

// classFor returns the smallest class whose slot size fits size, or ok=false
// when size exceeds maxSlot. Classes are powers of two from MinSlotSize up.
func classFor(size int, maxSlot int) (c int, ok bool) {
	if size > maxSlot {
		return 0, false
	}
	if size <= MinSlotSize {
		return 0, true
	}
	// Round up to the next power of two and count doublings above MinSlotSize.
	return bits.Len(uint(size-1)) - bits.Len(uint(MinSlotSize-1)), true
}

// numClasses returns how many classes an allocator with the given max slot
// size can ever materialize.
func numClasses(maxSlot int) int {
	c, _ := classFor(maxSlot, maxSlot)
	return c + 1
}
