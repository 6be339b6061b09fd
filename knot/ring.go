package knot

import "fmt"

// HashSize is the ring size used by the knot hash.
const HashSize = 256

// Ring is a fixed-size circular buffer holding a permutation of 0..size-1.
// Elements are only ever reordered in place; the length never changes.
// cursor is always in [0,size); skip only increases.
type Ring struct {
	list   []int
	cursor int
	skip   int
}

// NewRing returns a ring of the given size initialised to 0..size-1,
// with cursor and skip at zero. Returns ErrRingSize if size < 1.
func NewRing(size int) (*Ring, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrRingSize, size)
	}
	return newRing(size), nil
}

func newRing(size int) *Ring {
	list := make([]int, size)
	for i := range list {
		list[i] = i
	}
	return &Ring{list: list}
}

// Size reports the number of slots in the ring.
func (r *Ring) Size() int { return len(r.list) }

// Cursor reports the current position.
func (r *Ring) Cursor() int { return r.cursor }

// Skip reports the current skip counter.
func (r *Ring) Skip() int { return r.skip }

// Values returns a copy of the ring contents in index order.
func (r *Ring) Values() []int {
	out := make([]int, len(r.list))
	copy(out, r.list)
	return out
}

// Knot reverses length consecutive elements starting at the cursor,
// wrapping from the last index back to 0, then moves the cursor forward
// by length+skip (mod size) and increments skip.
//
// Lengths 0 and 1 leave the contents untouched but still advance the
// cursor and skip. A length outside [0,size] is a broken caller contract
// and panics with an error wrapping ErrLengthOutOfRange.
//
// Complexity: O(length).
func (r *Ring) Knot(length int) {
	n := len(r.list)
	if length < 0 || length > n {
		panic(fmt.Errorf("%w: length %d, ring size %d", ErrLengthOutOfRange, length, n))
	}

	// Walk both ends of the logical window towards each other; the modular
	// indexes treat a window crossing the end as one contiguous sequence.
	for i, j := r.cursor, r.cursor+length-1; i < j; i, j = i+1, j-1 {
		a, b := i%n, j%n
		r.list[a], r.list[b] = r.list[b], r.list[a]
	}

	r.cursor = (r.cursor + length + r.skip) % n
	r.skip++
}
