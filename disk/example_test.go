package disk_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/knotgrid/disk"
)

// ExampleRegionCount counts used squares and regions for a seed.
func ExampleRegionCount() {
	ctx := context.Background()
	used, _ := disk.Used(ctx, "flqrgnkx")
	regions, _ := disk.RegionCount(ctx, "flqrgnkx", disk.WithWorkers(4))
	fmt.Println(used, regions)
	// Output:
	// 8108 1242
}

// ExampleBuild renders the top-left corner of a grid.
func ExampleBuild() {
	g, _ := disk.Build(context.Background(), "flqrgnkx")
	fmt.Print(g.Render(8, 3))
	// Output:
	// ##.#.#..
	// .#.#.#.#
	// ....#.#.
}
