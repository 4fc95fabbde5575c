// SPDX-License-Identifier: MIT

package reals

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mes/scalar"
)

// Bound is one endpoint of an interval.
type Bound[R scalar.Real] struct {
	Value  R
	Closed bool
}

// Interval is the set of x between Lo and Hi, each end open or closed.
type Interval[R scalar.Real] struct {
	Lo Bound[R]
	Hi Bound[R]
}

// Closed returns [a, b].
func Closed[R scalar.Real](a, b R) Interval[R] {
	return Interval[R]{Lo: Bound[R]{a, true}, Hi: Bound[R]{b, true}}.canon()
}

// Open returns (a, b).
func Open[R scalar.Real](a, b R) Interval[R] {
	return Interval[R]{Lo: Bound[R]{a, false}, Hi: Bound[R]{b, false}}
}

// ClosedOpen returns [a, b).
func ClosedOpen[R scalar.Real](a, b R) Interval[R] {
	return Interval[R]{Lo: Bound[R]{a, true}, Hi: Bound[R]{b, false}}.canon()
}

// OpenClosed returns (a, b].
func OpenClosed[R scalar.Real](a, b R) Interval[R] {
	return Interval[R]{Lo: Bound[R]{a, false}, Hi: Bound[R]{b, true}}.canon()
}

// AtLeast returns [a, +∞).
func AtLeast[R scalar.Real](a R) Interval[R] { return ClosedOpen(a, scalar.Inf[R](1)) }

// AtMost returns (-∞, b].
func AtMost[R scalar.Real](b R) Interval[R] { return OpenClosed(scalar.Inf[R](-1), b) }

// NewInterval validates the bounds and returns the interval.
func NewInterval[R scalar.Real](lo, hi Bound[R]) (Interval[R], error) {
	iv := Interval[R]{Lo: lo, Hi: hi}.canon()
	if iv.IsEmpty() {
		return Interval[R]{}, realsErrorf("reals.NewInterval", ErrEmptyInterval)
	}

	return iv, nil
}

// canon opens infinite endpoints.
func (iv Interval[R]) canon() Interval[R] {
	if math.IsInf(float64(iv.Lo.Value), 0) {
		iv.Lo.Closed = false
	}
	if math.IsInf(float64(iv.Hi.Value), 0) {
		iv.Hi.Closed = false
	}

	return iv
}

// IsEmpty reports whether iv holds no points.
func (iv Interval[R]) IsEmpty() bool {
	lo, hi := iv.Lo.Value, iv.Hi.Value
	if lo != lo || hi != hi { // NaN
		return true
	}
	if lo < hi {
		return false
	}

	return lo > hi || !(iv.Lo.Closed && iv.Hi.Closed) || math.IsInf(float64(lo), 0)
}

// Contains reports whether x is in iv.
func (iv Interval[R]) Contains(x R) bool {
	aboveLo := x > iv.Lo.Value || (iv.Lo.Closed && x == iv.Lo.Value)
	belowHi := x < iv.Hi.Value || (iv.Hi.Closed && x == iv.Hi.Value)

	return aboveLo && belowHi
}

// String renders iv in the usual bracket notation.
func (iv Interval[R]) String() string {
	l, r := "(", ")"
	if iv.Lo.Closed {
		l = "["
	}
	if iv.Hi.Closed {
		r = "]"
	}

	return fmt.Sprintf("%s%v, %v%s", l, iv.Lo.Value, iv.Hi.Value, r)
}

// loBefore orders lower bounds: smaller value first, closed before open.
func loBefore[R scalar.Real](a, b Bound[R]) bool {
	if a.Value != b.Value {
		return a.Value < b.Value
	}

	return a.Closed && !b.Closed
}

// hiBefore orders upper bounds: smaller value first, open before closed.
func hiBefore[R scalar.Real](a, b Bound[R]) bool {
	if a.Value != b.Value {
		return a.Value < b.Value
	}

	return !a.Closed && b.Closed
}

// joins reports whether an interval ending at hi and one starting at lo
// overlap or touch.
func joins[R scalar.Real](hi, lo Bound[R]) bool {
	if lo.Value != hi.Value {
		return lo.Value < hi.Value
	}

	return lo.Closed || hi.Closed
}

// intersect returns a ∩ b, possibly empty.
func intersect[R scalar.Real](a, b Interval[R]) Interval[R] {
	out := a
	if loBefore(a.Lo, b.Lo) {
		out.Lo = b.Lo
	}
	if hiBefore(b.Hi, a.Hi) {
		out.Hi = b.Hi
	}

	return out
}
