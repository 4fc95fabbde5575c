// SPDX-License-Identifier: MIT

package unit

import "github.com/katalvlaran/mes/space"

// Point is the single point of the unit space.
type Point = struct{}

// Subset is either the empty or the full subset.
type Subset struct {
	Full bool
}

// Space is the unit measurable space.
type Space struct{}

var _ space.PointSpace[Point, Subset] = Space{}

// Empty implements sigma.Algebra.
func (Space) Empty() Subset { return Subset{} }

// Full implements sigma.Algebra.
func (Space) Full() Subset { return Subset{Full: true} }

// IsEmpty implements sigma.Algebra.
func (Space) IsEmpty(s Subset) bool { return !s.Full }

// Complement implements sigma.Algebra.
func (Space) Complement(s Subset) Subset { return Subset{Full: !s.Full} }

// Union implements sigma.Algebra; it stops at the first full subset.
func (Space) Union(subsets ...Subset) Subset {
	for _, s := range subsets {
		if s.Full {
			return s
		}
	}

	return Subset{}
}

// Intersection implements sigma.Algebra; it stops at the first empty subset.
func (Space) Intersection(subsets ...Subset) Subset {
	for _, s := range subsets {
		if !s.Full {
			return s
		}
	}

	return Subset{Full: true}
}

// Contains implements space.Space.
func (Space) Contains(s Subset, _ Point) bool { return s.Full }

// PointSubset implements space.PointSpace: the only point fills the space.
func (Space) PointSubset(Point) Subset { return Subset{Full: true} }
