package knot_test

import (
	"fmt"

	"github.com/katalvlaran/knotgrid/knot"
)

// ExampleHash hashes a short string with the full 64-round pipeline.
func ExampleHash() {
	h, _ := knot.Hash("AoC 2017")
	fmt.Println(h)
	// Output:
	// 33efeb34ea91902bb2f59c9920caa6cd
}

// ExampleChecksum runs a single round over a 5-slot ring.
func ExampleChecksum() {
	lengths, _ := knot.ParseLengths("3,4,1,5")
	sum, _ := knot.Checksum(5, lengths)
	fmt.Println(sum)
	// Output:
	// 12
}

// ExampleRing_Knot shows one wrapping reversal.
func ExampleRing_Knot() {
	r, _ := knot.NewRing(5)
	r.Knot(3)
	r.Knot(4)
	fmt.Println(r.Values(), r.Cursor(), r.Skip())
	// Output:
	// [4 3 0 1 2] 3 2
}

// ExampleExpandBits expands hex digits into bits.
func ExampleExpandBits() {
	bits, _ := knot.ExpandBits("a0c2017")
	fmt.Println(bits)
	// Output:
	// 1010000011000010000000010111
}
