package knot_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knotgrid/knot"
)

// TestHash_KnownVectors checks the published reference digests.
func TestHash_KnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "a2582a3a0e66e6e86e3812dcb672a272"},
		{"AoC 2017", "33efeb34ea91902bb2f59c9920caa6cd"},
		{"1,2,3", "3efbe78a8d82f29979031a4aa0b16a9d"},
		{"1,2,4", "63960835bcdc130f0b66d7ff4f6a5a8e"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := knot.Hash(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestHash_Repeatable ensures the hash is a pure function of its input.
func TestHash_Repeatable(t *testing.T) {
	first, err := knot.Sum("flqrgnkx-0")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := knot.Sum("flqrgnkx-0")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
	other, err := knot.Sum("flqrgnkx-1")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

// TestHash_RejectsWideCodePoints covers runes that cannot index a 256 ring.
func TestHash_RejectsWideCodePoints(t *testing.T) {
	for _, in := range []string{"Ā", "knot→hash", string([]byte{0xff})} {
		_, err := knot.Hash(in)
		require.ErrorIs(t, err, knot.ErrCodePoint, "input %q", in)
	}
	// Latin-1 runes still fit.
	_, err := knot.Hash("café ÿ")
	require.NoError(t, err)
}

// TestLengths verifies the derived schedule.
func TestLengths(t *testing.T) {
	got, err := knot.Lengths("1,2,3")
	require.NoError(t, err)
	want := []int{49, 44, 50, 44, 51, 17, 31, 73, 47, 23}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lengths mismatch (-want +got):\n%s", diff)
	}

	empty, err := knot.Lengths("")
	require.NoError(t, err)
	assert.Equal(t, []int{17, 31, 73, 47, 23}, empty)
}

// TestDigest_Encodings checks Hex, String and Bits agree.
func TestDigest_Encodings(t *testing.T) {
	d, err := knot.Sum("AoC 2017")
	require.NoError(t, err)

	hex := d.Hex()
	assert.Len(t, hex, 32)
	assert.Equal(t, hex, d.String())
	assert.Equal(t, strings.ToLower(hex), hex)

	bits := d.Bits()
	require.Len(t, bits, 128)
	assert.Equal(t, "0011", bits[0:4])  // '3'
	assert.Equal(t, "0011", bits[4:8])  // '3'
	assert.Equal(t, "1110", bits[8:12]) // 'e'
	assert.Equal(t, "1101", bits[124:]) // 'd'
	assert.Empty(t, strings.Trim(bits, "01"))
}

// TestExpandBits covers both valid and malformed digests.
func TestExpandBits(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		err  error
	}{
		{"Empty", "", "", nil},
		{"Mixed", "a0c2017", "1010000011000010000000010111", nil},
		{"Upper", "F0", "11110000", nil},
		{"AllDigits", "0123456789abcdef",
			"0000000100100011010001010110011110001001101010111100110111101111", nil},
		{"NonHex", "a0g1", "", knot.ErrMalformedDigest},
		{"Space", "a 1", "", knot.ErrMalformedDigest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := knot.ExpandBits(tc.in)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestChecksum covers the single-round mode.
func TestChecksum(t *testing.T) {
	got, err := knot.Checksum(5, []int{3, 4, 1, 5})
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	// No lengths leaves the identity ring: 0*1.
	got, err = knot.Checksum(knot.HashSize, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	_, err = knot.Checksum(1, []int{1})
	require.ErrorIs(t, err, knot.ErrRingSize)
	_, err = knot.Checksum(5, []int{3, 6})
	require.ErrorIs(t, err, knot.ErrLengthOutOfRange)
	_, err = knot.Checksum(5, []int{-1})
	require.ErrorIs(t, err, knot.ErrLengthOutOfRange)
}

// TestParseLengths covers the comma-separated length list parser.
func TestParseLengths(t *testing.T) {
	got, err := knot.ParseLengths(" 3, 4,1 ,5 ")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 1, 5}, got)

	got, err = knot.ParseLengths("   ")
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, bad := range []string{"1,,2", "a", "1,-2", "3;4"} {
		_, err := knot.ParseLengths(bad)
		require.ErrorIs(t, err, knot.ErrBadLengthList, "input %q", bad)
	}
}
