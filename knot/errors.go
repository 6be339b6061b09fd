package knot

import "errors"

// Sentinel errors for knot operations.
var (
	// ErrRingSize indicates a ring size outside the supported range.
	ErrRingSize = errors.New("knot: invalid ring size")
	// ErrLengthOutOfRange indicates a reversal length < 0 or > ring size.
	ErrLengthOutOfRange = errors.New("knot: reversal length out of range")
	// ErrCodePoint indicates an input rune above 255.
	ErrCodePoint = errors.New("knot: code point exceeds 255")
	// ErrMalformedDigest indicates a non-hex character in a digest.
	ErrMalformedDigest = errors.New("knot: malformed hex digest")
	// ErrBadLengthList indicates an unparsable length list.
	ErrBadLengthList = errors.New("knot: invalid length list")
)
