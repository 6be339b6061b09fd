package knot_test

import (
	"testing"

	"github.com/katalvlaran/knotgrid/knot"
)

// BenchmarkSum measures one full 64-round hash of a typical grid row key.
// Complexity: O(64 × Σ lengths).
func BenchmarkSum(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = knot.Sum("flqrgnkx-127")
	}
}

// BenchmarkKnot_FullRing measures a full-length reversal on 256 slots.
func BenchmarkKnot_FullRing(b *testing.B) {
	r, _ := knot.NewRing(knot.HashSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Knot(knot.HashSize)
	}
}
