package knot

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex renders the digest as 32 lowercase hex characters.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// String implements fmt.Stringer and returns Hex.
func (d Digest) String() string { return d.Hex() }

// Bits renders the digest as a 128-character string of '0' and '1':
// positions [4i, 4i+4) hold hex digit i of Hex in zero-padded binary.
func (d Digest) Bits() string {
	bits, err := ExpandBits(d.Hex())
	if err != nil {
		// Hex only emits [0-9a-f].
		panic(err)
	}
	return bits
}

// ExpandBits expands every hex digit of digest into its 4-bit binary form,
// concatenated in digit order. Upper- and lowercase digits are accepted;
// any other character yields ErrMalformedDigest.
func ExpandBits(digest string) (string, error) {
	var sb strings.Builder
	sb.Grow(4 * len(digest))
	for i := 0; i < len(digest); i++ {
		v, ok := nibble(digest[i])
		if !ok {
			return "", fmt.Errorf("%w: %q at %d", ErrMalformedDigest, digest[i], i)
		}
		for shift := 3; shift >= 0; shift-- {
			sb.WriteByte('0' + (v>>uint(shift))&1)
		}
	}
	return sb.String(), nil
}

// nibble decodes one hex digit.
func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
