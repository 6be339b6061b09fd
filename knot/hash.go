package knot

// Sum computes the dense knot hash of input.
//
// Steps:
//  1. Derive the length schedule (Lengths).
//  2. Run 64 rounds over a fresh 256-slot ring (Sparse).
//  3. Fold the ring into 16 bytes (Dense).
//
// The only error is ErrCodePoint for runes above 255.
func Sum(input string) (Digest, error) {
	lengths, err := Lengths(input)
	if err != nil {
		return Digest{}, err
	}
	r := newRing(HashSize)
	r.Sparse(lengths)
	return r.Dense()
}

// Hash returns the knot hash of input as 32 lowercase hex characters.
func Hash(input string) (string, error) {
	d, err := Sum(input)
	if err != nil {
		return "", err
	}
	return d.Hex(), nil
}
