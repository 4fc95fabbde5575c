// SPDX-License-Identifier: MIT

package reals

import (
	"github.com/katalvlaran/mes/scalar"
	"github.com/katalvlaran/mes/space"
)

// Line is the real line with interval-union subsets.
type Line[R scalar.Real] struct{}

var _ space.PointSpace[float64, Set[float64]] = Line[float64]{}

// Empty implements sigma.Algebra.
func (Line[R]) Empty() Set[R] { return Set[R]{} }

// Full implements sigma.Algebra.
func (Line[R]) Full() Set[R] {
	return Set[R]{ivs: []Interval[R]{Open(scalar.Inf[R](-1), scalar.Inf[R](1))}}
}

// IsEmpty implements sigma.Algebra.
func (Line[R]) IsEmpty(s Set[R]) bool { return len(s.ivs) == 0 }

// Complement implements sigma.Algebra.
func (Line[R]) Complement(s Set[R]) Set[R] { return complement(s) }

// Union implements sigma.Algebra.
func (Line[R]) Union(sets ...Set[R]) Set[R] { return union(sets) }

// Intersection implements sigma.Algebra.
func (l Line[R]) Intersection(sets ...Set[R]) Set[R] {
	out := l.Full()
	for _, s := range sets {
		out = intersection(out, s)
		if len(out.ivs) == 0 {
			break
		}
	}

	return out
}

// Contains implements space.Space.
func (Line[R]) Contains(s Set[R], x R) bool { return s.Contains(x) }

// PointSubset implements space.PointSpace: [x, x].
func (Line[R]) PointSubset(x R) Set[R] { return NewSet(Closed(x, x)) }
