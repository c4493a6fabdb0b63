// File: pool/alloc_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/objpool/api"
	"github.com/momentics/objpool/memsys"
	"github.com/momentics/objpool/pool"
)

type point struct {
	X, Y int32
}

func addr[T any](h pool.Handle[T]) uintptr {
	return uintptr(unsafe.Pointer(h.Ptr()))
}

func TestRoundTrip(t *testing.T) {
	a := pool.New(pool.WithBlockSource(memsys.NewHeapSource()))
	defer a.Close()

	h1, err := pool.Alloc(a, uint32(0xDEADBEEF))
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), h1.Get())
	h1.Release()

	h2, err := pool.Alloc(a, point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Y: 2}, h2.Get())
	h2.Release()

	var big [256]byte
	big[0], big[255] = 0x11, 0x22
	h3, err := pool.Alloc(a, big)
	require.NoError(t, err)
	assert.Equal(t, big, h3.Get())
	h3.Release()
}

func TestOversizedTypeNoMemoryRequest(t *testing.T) {
	src := memsys.NewCounting(memsys.NewHeapSource())
	a := pool.New(pool.WithBlockSource(src))
	defer a.Close()

	var huge [300]byte
	_, err := pool.Alloc(a, huge)
	require.ErrorIs(t, err, api.ErrOversizedType)
	assert.Equal(t, 0, src.Grabs, "oversized rejection must precede any block request")
}

func TestReferenceTypeRejected(t *testing.T) {
	src := memsys.NewCounting(memsys.NewHeapSource())
	a := pool.New(pool.WithBlockSource(src))
	defer a.Close()

	_, err := pool.Alloc(a, "pooled strings are not a thing")
	require.ErrorIs(t, err, api.ErrReferenceType)

	type node struct {
		next *node
		val  int64
	}
	_, err = pool.Alloc(a, node{val: 7})
	require.ErrorIs(t, err, api.ErrReferenceType)

	assert.Equal(t, 0, src.Grabs)
}

func TestChunkGrowth(t *testing.T) {
	src := memsys.NewCounting(memsys.NewHeapSource())
	a := pool.New(pool.WithBlockSource(src), pool.WithSlotsPerChunk(64))
	defer a.Close()

	// 65 live values of one class: the 65th allocation forces a second chunk.
	handles := make([]pool.Handle[uint32], 0, 65)
	for i := 0; i < 65; i++ {
		h, err := pool.Alloc(a, uint32(i))
		require.NoError(t, err)
		handles = append(handles, h)
	}
	assert.Equal(t, 2, src.Grabs)

	for i := range handles {
		assert.Equal(t, uint32(i), handles[i].Get())
		handles[i].Release()
	}
}

func TestBoundedGrowth(t *testing.T) {
	src := memsys.NewCounting(memsys.NewHeapSource())
	a := pool.New(pool.WithBlockSource(src), pool.WithSlotsPerChunk(64))
	defer a.Close()

	// Alloc N / release N cycles of one class never need more than
	// ceil(N/chunk) chunks, however many times they repeat.
	const n = 256
	for cycle := 0; cycle < 3; cycle++ {
		handles := make([]pool.Handle[int64], 0, n)
		for i := 0; i < n; i++ {
			h, err := pool.Alloc(a, int64(i))
			require.NoError(t, err)
			handles = append(handles, h)
		}
		for i := range handles {
			handles[i].Release()
		}
	}
	assert.Equal(t, n/64, src.Grabs)
}

func TestRecycling(t *testing.T) {
	a := pool.New(pool.WithBlockSource(memsys.NewHeapSource()))
	defer a.Close()

	h1, err := pool.Alloc(a, point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, int32(1), h1.Ptr().X)
	assert.Equal(t, int32(2), h1.Ptr().Y)
	freed := addr(h1)
	h1.Release()

	// Stack discipline: the most recently freed slot is reused first.
	h2, err := pool.Alloc(a, point{X: 3, Y: 4})
	require.NoError(t, err)
	assert.Equal(t, freed, addr(h2))
	assert.Equal(t, point{X: 3, Y: 4}, h2.Get())
	h2.Release()
}

func TestAliasingFreedom(t *testing.T) {
	a := pool.New(pool.WithBlockSource(memsys.NewHeapSource()), pool.WithSlotsPerChunk(16))
	defer a.Close()

	live := make(map[uintptr]pool.Handle[uint64])
	distinct := func() {
		seen := make(map[uintptr]bool, len(live))
		for at := range live {
			require.False(t, seen[at], "two live handles share slot %#x", at)
			seen[at] = true
		}
	}

	for i := 0; i < 100; i++ {
		h, err := pool.Alloc(a, uint64(i))
		require.NoError(t, err)
		at := addr(h)
		_, aliased := live[at]
		require.False(t, aliased, "fresh handle aliases live slot %#x", at)
		live[at] = h
	}
	distinct()

	// Release every third slot, then refill; fresh handles may reuse freed
	// addresses but must never collide with live ones.
	i := 0
	for at, h := range live {
		if i%3 == 0 {
			h.Release()
			delete(live, at)
		}
		i++
	}
	for len(live) < 100 {
		h, err := pool.Alloc(a, uint64(len(live)))
		require.NoError(t, err)
		at := addr(h)
		_, aliased := live[at]
		require.False(t, aliased)
		live[at] = h
		distinct()
	}

	for _, h := range live {
		h.Release()
	}
}

func TestOutOfMemory(t *testing.T) {
	src := memsys.NewCounting(memsys.NewHeapSource())
	src.FailAfter = 1
	a := pool.New(pool.WithBlockSource(src), pool.WithSlotsPerChunk(4))
	defer a.Close()

	handles := make([]pool.Handle[uint32], 0, 4)
	for i := 0; i < 4; i++ {
		h, err := pool.Alloc(a, uint32(i))
		require.NoError(t, err)
		handles = append(handles, h)
	}

	// Fifth allocation needs a second chunk, which the source refuses.
	_, err := pool.Alloc(a, uint32(4))
	require.ErrorIs(t, err, api.ErrOutOfMemory)

	// Released slots keep the pool serviceable without new chunks.
	handles[3].Release()
	h, err := pool.Alloc(a, uint32(9))
	require.NoError(t, err)
	assert.Equal(t, uint32(9), h.Get())
	h.Release()
	for i := 0; i < 3; i++ {
		handles[i].Release()
	}
}

func TestReserve(t *testing.T) {
	src := memsys.NewCounting(memsys.NewHeapSource())
	a := pool.New(pool.WithBlockSource(src), pool.WithSlotsPerChunk(64))
	defer a.Close()

	require.NoError(t, a.Reserve(4, 128))
	assert.Equal(t, 2, src.Grabs)

	handles := make([]pool.Handle[uint32], 0, 128)
	for i := 0; i < 128; i++ {
		h, err := pool.Alloc(a, uint32(i))
		require.NoError(t, err)
		handles = append(handles, h)
	}
	assert.Equal(t, 2, src.Grabs, "reserved pool must not grow again")
	for i := range handles {
		handles[i].Release()
	}

	require.ErrorIs(t, a.Reserve(1024, 1), api.ErrOversizedType)
}

func TestSizeClassIsolation(t *testing.T) {
	src := memsys.NewCounting(memsys.NewHeapSource())
	a := pool.New(pool.WithBlockSource(src), pool.WithSlotsPerChunk(8))
	defer a.Close()

	// One value per class: each routes to its own pool and chunk.
	h16, err := pool.Alloc(a, uint64(1))
	require.NoError(t, err)
	h32, err := pool.Alloc(a, [32]byte{1})
	require.NoError(t, err)
	h64, err := pool.Alloc(a, [64]byte{2})
	require.NoError(t, err)
	assert.Equal(t, 3, src.Grabs)

	s := a.Stats()
	assert.Equal(t, 3, s.InUse)
	assert.Equal(t, 3, s.Chunks)
	assert.Equal(t, 1, s.Classes[16].InUse)
	assert.Equal(t, 1, s.Classes[32].InUse)
	assert.Equal(t, 1, s.Classes[64].InUse)

	h16.Release()
	h32.Release()
	h64.Release()
	assert.Equal(t, 0, a.Stats().InUse)
}

func TestClose(t *testing.T) {
	a := pool.New(pool.WithBlockSource(memsys.NewHeapSource()))
	h, err := pool.Alloc(a, uint16(5))
	require.NoError(t, err)
	h.Release()

	require.NoError(t, a.Close())
	require.NoError(t, a.Close(), "close is idempotent")

	_, err = pool.Alloc(a, uint16(6))
	require.ErrorIs(t, err, api.ErrClosed)
	require.ErrorIs(t, a.Reserve(16, 1), api.ErrClosed)
}
