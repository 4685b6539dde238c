package indexheap_test

import (
	"math/rand"
	"testing"

	"github.com/avoskres/graphkit/indexheap"
)

// BenchmarkHeap_InsertPop measures a full fill-then-drain cycle of N nodes.
func BenchmarkHeap_InsertPop(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(1))
	prios := make([]int64, N)
	for i := range prios {
		prios[i] = rng.Int63n(1 << 30)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h, _ := indexheap.New(N)
		for node := 0; node < N; node++ {
			_ = h.Insert(node, prios[node])
		}
		for h.Len() > 0 {
			_, _, _ = h.PopMin()
		}
	}
}

// BenchmarkHeap_DecreaseKey measures repeated decrease-key on a full heap.
func BenchmarkHeap_DecreaseKey(b *testing.B) {
	const N = 10000
	rng := rand.New(rand.NewSource(2))

	h, _ := indexheap.New(N)
	for node := 0; node < N; node++ {
		_ = h.Insert(node, int64(N)+rng.Int63n(1<<20))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		node := i % N
		p, _ := h.PriorityOf(node)
		if p > 0 {
			_ = h.DecreaseKey(node, p-1)
		}
	}
}
