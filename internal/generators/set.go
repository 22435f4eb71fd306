// internal/generators/set.go
//
// Generator sets: the numbers already played in a Sylver Coinage game.
// Responsibilities:
//   - Parse free text ("9, 11,13") into an ordered set without discarding
//     anything the user typed.
//   - Re-check validity on demand (every element a finite integer).
//   - Serialize back to the comma-separated form used for display, the
//     undo history and the service query string.
//
// Notes:
//   - A segment that does not parse as a number is kept as NaN so the input
//     field can be flagged while the text stays intact.
//   - An empty segment parses as 0, matching the numeric coercion of the
//     browser client this tool replaces.

package generators

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Set is an ordered sequence of parsed generators. Duplicates are allowed.
type Set []float64

// ParseError reports the first element of a Set that is not an integer.
type ParseError struct {
	Index int
	Value float64
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("generator %d (%s) is not an integer", e.Index, formatValue(e.Value))
}

// Parse splits text on commas and parses every segment as a number.
// It never fails; invalid segments become NaN.
func Parse(text string) Set {
	parts := strings.Split(text, ",")
	out := make(Set, 0, len(parts))
	for _, p := range parts {
		out = append(out, parseSegment(p))
	}
	return out
}

// FromInts builds a Set from already-validated integers.
func FromInts(xs []int) Set {
	out := make(Set, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

func parseSegment(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// IsInteger reports whether v is a finite whole number.
func IsInteger(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Trunc(v)
}

// Valid reports whether every element is an integer.
func (s Set) Valid() bool {
	return s.Validate() == nil
}

// Validate returns a *ParseError for the first non-integer element.
func (s Set) Validate() error {
	for i, v := range s {
		if !IsInteger(v) {
			return &ParseError{Index: i, Value: v}
		}
	}
	return nil
}

// Ints converts a valid set to integers.
func (s Set) Ints() ([]int, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = int(v)
	}
	return out, nil
}

// Append returns a copy of s with n added at the end.
func (s Set) Append(n int) Set {
	out := make(Set, len(s), len(s)+1)
	copy(out, s)
	return append(out, float64(n))
}

// Equal compares two sets element by element. NaN elements never match.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// String serializes the set as comma-separated numbers, e.g. "9,11".
func (s Set) String() string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(formatValue(v))
	}
	return b.String()
}

func formatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == math.Trunc(v) && math.Abs(v) < 1e15:
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
