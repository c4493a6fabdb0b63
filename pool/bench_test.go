// File: pool/bench_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool_test

import (
	"testing"

	"github.com/momentics/objpool/memsys"
	"github.com/momentics/objpool/pool"
)

func BenchmarkAllocRelease(b *testing.B) {
	a := pool.New(pool.WithBlockSource(memsys.NewHeapSource()))
	defer a.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, err := pool.Alloc(a, point{X: int32(i), Y: int32(i)})
		if err != nil {
			b.Fatal(err)
		}
		h.Release()
	}
}

func BenchmarkAllocReleaseChurn(b *testing.B) {
	a := pool.New(pool.WithBlockSource(memsys.NewHeapSource()))
	defer a.Close()

	// 64 live handles cycling through the same chunk.
	var ring [64]pool.Handle[point]
	for i := range ring {
		h, err := pool.Alloc(a, point{})
		if err != nil {
			b.Fatal(err)
		}
		ring[i] = h
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		slot := i & 63
		ring[slot].Release()
		h, err := pool.Alloc(a, point{X: int32(i)})
		if err != nil {
			b.Fatal(err)
		}
		ring[slot] = h
	}
	b.StopTimer()
	for i := range ring {
		ring[i].Release()
	}
}
