// Package knotgrid computes knot hashes and analyzes the bit grids built
// from them.
//
// What is in the box:
//
//   - knot/      — the circular-ring knot hash: Ring, Knot, 64-round
//     schedule, dense XOR reduction, hex and bit encodings, single-round
//     Checksum
//   - gridgraph/ — owned, index-addressed grids of set/unset cells with
//     queue-driven region labeling
//   - disk/      — builds the 128×128 grid of a seed from 128 knot hashes,
//     optionally on a bounded goroutine pool, and counts used squares and
//     regions
//   - cmd/knotgrid — the CLI (hash, checksum, used, regions, render, stats)
//
// Quick example:
//
//	h, _ := knot.Hash("AoC 2017")
//	// h == "33efeb34ea91902bb2f59c9920caa6cd"
//	n, _ := disk.RegionCount(context.Background(), "flqrgnkx")
//	// n == 1242
//
// The hash is deterministic and not cryptographically secure.
package knotgrid
