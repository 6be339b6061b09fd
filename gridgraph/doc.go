// Package gridgraph treats a rectangular grid of set/unset cells as a graph
// and labels its connected regions.
//
// What:
//
//   - Grid owns a row-major []Cell; each Cell carries a Set flag and a
//     Group label (NoGroup until labeled).
//   - LabelRegions scans cells in row-major order and flood-fills each new
//     region with an explicit queue, assigning group ids 0, 1, 2, …
//   - Regions lists the cell indices of every labeled region.
//   - Render/String draw the grid with '#' for set and '.' for unset cells.
//
// Why:
//
//   - A single region may cover every cell of the grid; the queue-driven
//     fill keeps stack depth constant regardless of region size.
//
// Complexity:
//
//   - LabelRegions: O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbors).
//   - Regions:      O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (default, edge-sharing neighbors) or Conn8.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a row string contains a character other than 0/1/#/.
package gridgraph
