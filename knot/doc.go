// Package knot implements the knot hash: a deterministic, non-cryptographic
// digest computed by repeatedly reversing wrapping sub-ranges of a circular
// ring of integers.
//
// What:
//
//   - Ring is a fixed-size circular buffer with a cursor and a skip counter.
//     Knot(length) reverses length elements starting at the cursor, wrapping
//     past the end, then advances the cursor by length+skip.
//   - Lengths derives the reversal schedule from an input string: its code
//     points followed by the suffix 17, 31, 73, 47, 23.
//   - Sparse applies the schedule for 64 rounds without resetting state.
//   - Dense folds the 256-slot ring into a 16-byte Digest by XOR-ing each
//     block of 16 values.
//   - Digest renders as 32 lowercase hex characters (Hex) or as a 128-char
//     bit string (Bits).
//   - Checksum runs a single round over a ring of arbitrary size and returns
//     the product of its first two values.
//
// Complexity:
//
//   - Knot:   O(length) time, O(1) extra memory.
//   - Sum:    O(64 × Σ lengths) time, O(256) memory.
//
// Errors:
//
//   - ErrRingSize: ring size below the minimum for the requested operation.
//   - ErrLengthOutOfRange: reversal length negative or larger than the ring.
//   - ErrCodePoint: input rune cannot be used as a length (> 255).
//   - ErrMalformedDigest: non-hex character in a digest passed to ExpandBits.
//   - ErrBadLengthList: unparsable comma-separated length list.
//
// The hash is not cryptographically secure.
package knot
