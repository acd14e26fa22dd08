package ieds

import (
	"testing"
)

func TestPairSlicePool_Reuse(t *testing.T) {
	pool := &pairSlicePool{}
	s := pool.alloc()
	if s != nil {
		t.Errorf("expected nil slice from empty pool, got %v", s)
	}

	s = append(s, Pair{Dominated: 0, Dominator: 1})
	pool.free(s)

	reused := pool.alloc()
	if len(reused) != 0 {
		t.Errorf("expected empty slice, got %d elements", len(reused))
	}
	if cap(reused) == 0 {
		t.Error("expected pooled slice to keep its capacity")
	}
}

func TestPairSlicePool_Nil(t *testing.T) {
	var pool *pairSlicePool
	pool.free(pool.alloc())
}

// BenchmarkPairSlicePoolAllocFree-24      	200000000	         8.12 ns/op
func BenchmarkPairSlicePoolAllocFree(b *testing.B) {
	pool := &pairSlicePool{}
	for i := 0; i < b.N; i++ {
		v := pool.alloc()
		v = append(v, Pair{})
		pool.free(v)
	}
}
