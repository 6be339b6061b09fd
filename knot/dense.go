package knot

import "fmt"

// BlockSize is the number of ring values folded into one digest byte.
const BlockSize = 16

// DigestSize is the number of bytes in a dense digest.
const DigestSize = HashSize / BlockSize

// Digest is the dense 16-byte knot hash.
type Digest [DigestSize]byte

// Dense folds a 256-slot ring into a Digest: byte i is the XOR of
// values [16i, 16i+16). Returns ErrRingSize for any other ring size.
func (r *Ring) Dense() (Digest, error) {
	var d Digest
	if len(r.list) != HashSize {
		return d, fmt.Errorf("%w: dense reduction needs %d slots, have %d", ErrRingSize, HashSize, len(r.list))
	}
	for b := range d {
		var acc int
		for _, v := range r.list[b*BlockSize : (b+1)*BlockSize] {
			acc ^= v
		}
		d[b] = byte(acc)
	}
	return d, nil
}
