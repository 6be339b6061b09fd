package knot

import (
	"fmt"
	"strconv"
	"strings"
)

// Rounds is the number of times the length schedule is applied by Sparse.
const Rounds = 64

// suffix is appended to every derived length schedule.
var suffix = [...]int{17, 31, 73, 47, 23}

// Lengths returns the reversal schedule for input: the code point of each
// rune followed by 17, 31, 73, 47, 23. Any string is accepted as long as
// each code point fits a 256-slot ring; otherwise ErrCodePoint is returned.
// An empty input yields the suffix alone.
func Lengths(input string) ([]int, error) {
	lengths := make([]int, 0, len(input)+len(suffix))
	for pos, c := range input {
		if c > 0xff {
			return nil, fmt.Errorf("%w: %U at byte %d", ErrCodePoint, c, pos)
		}
		lengths = append(lengths, int(c))
	}
	return append(lengths, suffix[:]...), nil
}

// Round applies every length once, in order, carrying cursor and skip
// over from any previous round.
func (r *Ring) Round(lengths []int) {
	for _, l := range lengths {
		r.Knot(l)
	}
}

// Sparse applies lengths for Rounds consecutive rounds.
func (r *Ring) Sparse(lengths []int) {
	for i := 0; i < Rounds; i++ {
		r.Round(lengths)
	}
}

// ParseLengths parses a comma-separated list of non-negative integers such
// as "3,4,1,5". Surrounding whitespace around each entry is ignored and an
// empty or blank string yields an empty list.
func ParseLengths(csv string) ([]int, error) {
	if strings.TrimSpace(csv) == "" {
		return []int{}, nil
	}
	fields := strings.Split(csv, ",")
	out := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d %q: %v", ErrBadLengthList, i, f, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: entry %d is negative (%d)", ErrBadLengthList, i, v)
		}
		out = append(out, v)
	}
	return out, nil
}
