package arena

import "testing"

// BenchmarkPool_AllocFree measures steady-state churn that never compacts.
func BenchmarkPool_AllocFree(b *testing.B) {
	p := New[uint64](1 << 16)
	b.ReportAllocs()
	for i := range b.N {
		h, err := p.Alloc(16 + i%48)
		if err != nil {
			b.Fatal(err)
		}
		if err := p.Free(h); err != nil {
			b.Fatal(err)
		}
		if i%1024 == 1023 {
			p.Compact()
		}
	}
}

// BenchmarkPool_Compact measures compaction of a pool with every other
// block dead.
func BenchmarkPool_Compact(b *testing.B) {
	for range b.N {
		b.StopTimer()
		p := New[uint64](1 << 14)
		var hs []Handle
		for range 256 {
			h, err := p.Alloc(32)
			if err != nil {
				b.Fatal(err)
			}
			hs = append(hs, h)
		}
		for i := 0; i < len(hs); i += 2 {
			_ = p.Free(hs[i])
		}
		b.StartTimer()
		p.Compact()
	}
}
