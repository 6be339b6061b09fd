// Package disk derives a 128×128 grid from 128 knot hashes and counts its
// used squares and regions.
//
// Row i of the grid for seed S is the bit string of knot.Sum("S-i"):
// bit '1' marks a used (set) cell, and the column is the bit index.
//
// Rows are independent, so Build can compute them on a bounded pool of
// goroutines (WithWorkers); the result does not depend on the worker count.
//
//	n, err := disk.RegionCount(ctx, "flqrgnkx") // 1242
package disk
