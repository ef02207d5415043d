package layout

import (
	"sort"
	"strconv"
	"strings"
)

// Segment is one linear piece of a LayoutFunction ("knot"): the leftmost
// starting column at which it is active, the LayoutTree it represents, the
// rendered width of that layout's first line, and the line's intercept and
// gradient over the interval starting at Column.
type Segment struct {
	Column    int
	Layout    *LayoutTree
	Span      int
	Intercept float64
	Gradient  int
}

// costAt evaluates this segment's cost at column x, assuming x falls within
// the segment's active interval.
func (s Segment) costAt(x int) float64 {
	return s.Intercept + float64(s.Gradient)*float64(x-s.Column)
}

func (s Segment) String() string {
	return "(" + strconv.Itoa(s.Column) + ", span=" + strconv.Itoa(s.Span) + ", " +
		strconv.FormatFloat(s.Intercept, 'f', 1, 64) + ", " + strconv.Itoa(s.Gradient) + ")"
}

// LayoutFunction is a non-empty sorted list of segments with strictly
// increasing Column values, the first always at Column 0. A LayoutFunction
// with zero segments denotes the identity/empty value returned by
// combinators over zero operands.
type LayoutFunction struct {
	Segments []Segment
}

// IsEmpty reports whether this function carries no segments.
func (f LayoutFunction) IsEmpty() bool {
	return len(f.Segments) == 0
}

// activeIndexAt returns the index of the segment active at column x: the
// last segment whose Column ≤ x. Panics on an empty function — callers at
// the combinator layer always filter those out first; ActiveAt is the safe
// public wrapper.
func (f LayoutFunction) activeIndexAt(x int) int {
	if len(f.Segments) == 0 {
		panic(ErrEmptyCostFunction)
	}
	i := sort.Search(len(f.Segments), func(i int) bool {
		return f.Segments[i].Column > x
	})
	return i - 1
}

// ActiveAt returns the segment active at column x, the one whose Column is
// at-or-to-the-left of x. It reports false for an empty function; per
// spec §9, consumers must check this before using the result.
func (f LayoutFunction) ActiveAt(x int) (Segment, bool) {
	if len(f.Segments) == 0 {
		return Segment{}, false
	}
	return f.Segments[f.activeIndexAt(x)], true
}

// CostAt returns the minimum cost of placing this function's subtree at
// starting column x.
func (f LayoutFunction) CostAt(x int) float64 {
	s, ok := f.ActiveAt(x)
	if !ok {
		panic(ErrNoActiveSegment)
	}
	return s.costAt(x)
}

func (f LayoutFunction) String() string {
	parts := make([]string, len(f.Segments))
	for i, s := range f.Segments {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// filterNonEmpty drops empty LayoutFunctions from fns, matching the
// combinators' "empty input yields empty, single input yields unchanged"
// identities (spec §8).
func filterNonEmpty(fns []LayoutFunction) []LayoutFunction {
	out := make([]LayoutFunction, 0, len(fns))
	for _, f := range fns {
		if !f.IsEmpty() {
			out = append(out, f)
		}
	}
	return out
}
