// Package gridgraph defines core types and options
// for the gridgraph subpackage of github.com/katalvlaran/knotgrid.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// NoGroup marks a cell that has not been assigned to a region.
const NoGroup = -1

// Cell is a single grid cell.
type Cell struct {
	Set   bool // cell is "used"
	Group int  // region id, NoGroup until labeled
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Grid is a Width×Height matrix of cells stored row-major, addressed by
// (x column, y row) with y=0 as the top row. The Set flags are fixed at
// construction; only Group labels change, and only via LabelRegions.
type Grid struct {
	Width, Height   int
	Conn            Connectivity
	cells           []Cell
	groups          int
	neighborOffsets [][2]int
}
