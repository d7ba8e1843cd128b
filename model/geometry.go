package model

import "math"

// Infinite is the sentinel for an unbounded length. Regions with infinite
// height accept any content; see [IsFinite].
var Infinite = math.Inf(1)

// Eps is the tolerance used by [Fits] and [ApproxEq]. Layout arithmetic
// accumulates rounding error; exact comparisons would split regions on
// noise.
const Eps = 1e-6

// Fits reports whether a length of need fits into avail space.
func Fits(avail, need float64) bool {
	return need <= avail+Eps
}

// ApproxEq reports whether two lengths are equal within [Eps].
func ApproxEq(a, b float64) bool {
	return math.Abs(a-b) <= Eps
}

// IsFinite reports whether a length is bounded.
func IsFinite(v float64) bool {
	return !math.IsInf(v, 0)
}

// Point represents a 2D position
type Point struct {
	X, Y float64
}

// WithY creates a point with the given Y coordinate and a zero X coordinate
func WithY(y float64) Point {
	return Point{Y: y}
}

// Add returns the component-wise sum of two points
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Size represents a width/height pair
type Size struct {
	W, H float64
}

// NewSize creates a size from a width and a height
func NewSize(w, h float64) Size {
	return Size{W: w, H: h}
}

// Min returns the component-wise minimum of two sizes
func (s Size) Min(other Size) Size {
	return Size{W: math.Min(s.W, other.W), H: math.Min(s.H, other.H)}
}

// MaxW grows the width to at least w
func (s *Size) MaxW(w float64) {
	if w > s.W {
		s.W = w
	}
}

// IsFinite reports whether both dimensions are bounded
func (s Size) IsFinite() bool {
	return IsFinite(s.W) && IsFinite(s.H)
}

// Axes is a per-axis pair of booleans, used for expansion flags
type Axes struct {
	X, Y bool
}

// Select picks, per axis, the first size where the flag is set and the
// second where it is not
func (a Axes) Select(ifTrue, ifFalse Size) Size {
	out := ifFalse
	if a.X {
		out.W = ifTrue.W
	}
	if a.Y {
		out.H = ifTrue.H
	}
	return out
}

// Rel is a length relative to some base: an absolute part plus a ratio
// of the base
type Rel struct {
	Abs   float64
	Ratio float64
}

// Absolute creates a Rel with only an absolute part
func Absolute(v float64) Rel {
	return Rel{Abs: v}
}

// Relative creates a Rel with only a ratio part (1.0 = 100% of the base)
func Relative(ratio float64) Rel {
	return Rel{Ratio: ratio}
}

// Resolve computes the concrete length against a base. A ratio against an
// infinite base contributes nothing rather than poisoning the result.
func (r Rel) Resolve(base float64) float64 {
	if r.Ratio == 0 || !IsFinite(base) {
		return r.Abs
	}
	return r.Abs + r.Ratio*base
}

// IsZero reports whether both parts are zero
func (r Rel) IsZero() bool {
	return r.Abs == 0 && r.Ratio == 0
}

// FixedAlign is a resolved alignment along one axis
type FixedAlign int

const (
	AlignStart FixedAlign = iota
	AlignCenter
	AlignEnd
)

// String returns a string representation of the alignment
func (a FixedAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// Position distributes leftover space according to the alignment: none of
// it before the content for start, half for center, all for end. Negative
// or infinite leftover positions at the start.
func (a FixedAlign) Position(leftover float64) float64 {
	if leftover <= 0 || !IsFinite(leftover) {
		return 0
	}
	switch a {
	case AlignCenter:
		return leftover / 2
	case AlignEnd:
		return leftover
	default:
		return 0
	}
}

// Max returns the looser of two alignments (the one distributing more
// space before the content)
func (a FixedAlign) Max(other FixedAlign) FixedAlign {
	if other > a {
		return other
	}
	return a
}
