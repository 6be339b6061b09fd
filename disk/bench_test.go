package disk_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/knotgrid/disk"
)

// BenchmarkRegionCount compares sequential and pooled row hashing.
func BenchmarkRegionCount(b *testing.B) {
	ctx := context.Background()
	for _, workers := range []int{1, 4, 16} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = disk.RegionCount(ctx, "flqrgnkx", disk.WithWorkers(workers))
			}
		})
	}
}
