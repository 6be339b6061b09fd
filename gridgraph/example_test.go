// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/knotgrid/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Regions
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_Regions demonstrates how to label contiguous regions of set
// cells in a grid.
// Scenario:
//
//   - '#' = set, '.' = unset
//   - Conn4: cells touching only at a corner are separate regions
//   - Expect three regions, numbered in row-major order of first cell.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleGrid_Regions() {
	g, _ := gridgraph.FromBits([]string{
		".##.#",
		"##.##",
		"#.#..",
	}, gridgraph.DefaultGridOptions())

	comps := g.Regions()
	fmt.Println("regions:", len(comps))
	for i, comp := range comps {
		fmt.Printf("region %d:", i)
		for _, idx := range comp {
			x, y := g.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// regions: 3
	// region 0: (1,0) (2,0) (0,1) (1,1) (0,2)
	// region 1: (4,0) (3,1) (4,1)
	// region 2: (2,2)
}
