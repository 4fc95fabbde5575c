// SPDX-License-Identifier: MIT

package reals

import (
	"slices"
	"strings"

	"github.com/katalvlaran/mes/scalar"
)

// Set is a finite union of intervals in canonical form. The zero Set is
// empty.
type Set[R scalar.Real] struct {
	ivs []Interval[R]
}

// NewSet returns the union of the given intervals. Empty intervals are
// ignored.
func NewSet[R scalar.Real](ivs ...Interval[R]) Set[R] {
	return canonical(slices.Clone(ivs))
}

// canonical sorts and merges ivs in place.
func canonical[R scalar.Real](ivs []Interval[R]) Set[R] {
	live := ivs[:0]
	for _, iv := range ivs {
		iv = iv.canon()
		if !iv.IsEmpty() {
			live = append(live, iv)
		}
	}
	if len(live) == 0 {
		return Set[R]{}
	}
	slices.SortFunc(live, func(a, b Interval[R]) int {
		switch {
		case loBefore(a.Lo, b.Lo):
			return -1
		case loBefore(b.Lo, a.Lo):
			return 1
		default:
			return 0
		}
	})

	out := make([]Interval[R], 0, len(live))
	cur := live[0]
	for _, iv := range live[1:] {
		if joins(cur.Hi, iv.Lo) {
			if hiBefore(cur.Hi, iv.Hi) {
				cur.Hi = iv.Hi
			}
			continue
		}
		out = append(out, cur)
		cur = iv
	}

	return Set[R]{ivs: append(out, cur)}
}

// Intervals returns a copy of the canonical intervals of s.
func (s Set[R]) Intervals() []Interval[R] { return slices.Clone(s.ivs) }

// Contains reports whether x is in s.
func (s Set[R]) Contains(x R) bool {
	i, _ := slices.BinarySearchFunc(s.ivs, x, func(iv Interval[R], x R) int {
		if iv.Hi.Value < x || (iv.Hi.Value == x && !iv.Hi.Closed) {
			return -1
		}

		return 1
	})

	return i < len(s.ivs) && s.ivs[i].Contains(x)
}

// Equal reports whether s and o hold the same points.
func (s Set[R]) Equal(o Set[R]) bool { return slices.Equal(s.ivs, o.ivs) }

// Length returns the total Lebesgue length of s, possibly +Inf.
func (s Set[R]) Length() R {
	var out R
	for _, iv := range s.ivs {
		out += iv.Hi.Value - iv.Lo.Value
	}

	return out
}

// String renders s as a union of intervals, or ∅.
func (s Set[R]) String() string {
	if len(s.ivs) == 0 {
		return "∅"
	}
	parts := make([]string, len(s.ivs))
	for i, iv := range s.ivs {
		parts[i] = iv.String()
	}

	return strings.Join(parts, " ∪ ")
}

func union[R scalar.Real](sets []Set[R]) Set[R] {
	n := 0
	for _, s := range sets {
		n += len(s.ivs)
	}
	all := make([]Interval[R], 0, n)
	for _, s := range sets {
		all = append(all, s.ivs...)
	}

	return canonical(all)
}

func complement[R scalar.Real](s Set[R]) Set[R] {
	out := make([]Interval[R], 0, len(s.ivs)+1)
	lo := Bound[R]{Value: scalar.Inf[R](-1)}
	for _, iv := range s.ivs {
		gap := Interval[R]{Lo: lo, Hi: Bound[R]{iv.Lo.Value, !iv.Lo.Closed}}.canon()
		if !gap.IsEmpty() {
			out = append(out, gap)
		}
		lo = Bound[R]{iv.Hi.Value, !iv.Hi.Closed}
	}
	last := Interval[R]{Lo: lo, Hi: Bound[R]{Value: scalar.Inf[R](1)}}.canon()
	if !last.IsEmpty() {
		out = append(out, last)
	}

	return Set[R]{ivs: out}
}

func intersection[R scalar.Real](a, b Set[R]) Set[R] {
	out := make([]Interval[R], 0, len(a.ivs)+len(b.ivs))
	for i, j := 0, 0; i < len(a.ivs) && j < len(b.ivs); {
		if x := intersect(a.ivs[i], b.ivs[j]); !x.IsEmpty() {
			out = append(out, x)
		}
		if hiBefore(a.ivs[i].Hi, b.ivs[j].Hi) {
			i++
		} else {
			j++
		}
	}

	return Set[R]{ivs: out}
}
