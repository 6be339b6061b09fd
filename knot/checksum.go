package knot

import "fmt"

// Checksum runs one round of lengths over a fresh ring of the given size and
// returns the product of the first two values.
//
// Unlike Knot, which panics, Checksum validates its inputs and returns
// ErrRingSize when size < 2 and ErrLengthOutOfRange when a length is
// negative or exceeds size.
func Checksum(size int, lengths []int) (int, error) {
	if size < 2 {
		return 0, fmt.Errorf("%w: checksum needs at least 2 slots, got %d", ErrRingSize, size)
	}
	for i, l := range lengths {
		if l < 0 || l > size {
			return 0, fmt.Errorf("%w: lengths[%d]=%d, ring size %d", ErrLengthOutOfRange, i, l, size)
		}
	}
	r := newRing(size)
	r.Round(lengths)
	return r.list[0] * r.list[1], nil
}
