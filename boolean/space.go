// SPDX-License-Identifier: MIT

package boolean

import "github.com/katalvlaran/mes/space"

// Subset records which of the two outcomes it includes.
type Subset struct {
	True  bool
	False bool
}

var (
	// None is the empty subset.
	None = Subset{}
	// OnlyTrue is {true}.
	OnlyTrue = Subset{True: true}
	// OnlyFalse is {false}.
	OnlyFalse = Subset{False: true}
	// Both is the full subset.
	Both = Subset{True: true, False: true}
)

// Space is the two-point measurable space with points of type bool.
type Space struct{}

var _ space.PointSpace[bool, Subset] = Space{}

// Empty implements sigma.Algebra.
func (Space) Empty() Subset { return None }

// Full implements sigma.Algebra.
func (Space) Full() Subset { return Both }

// IsEmpty implements sigma.Algebra.
func (Space) IsEmpty(s Subset) bool { return !s.True && !s.False }

// Complement implements sigma.Algebra.
func (Space) Complement(s Subset) Subset {
	return Subset{True: !s.True, False: !s.False}
}

// Union implements sigma.Algebra. The scan stops once both flags are set.
func (Space) Union(subsets ...Subset) Subset {
	var out Subset
	for _, s := range subsets {
		out.True = out.True || s.True
		out.False = out.False || s.False
		if out.True && out.False {
			break
		}
	}

	return out
}

// Intersection implements sigma.Algebra. The scan stops once both flags
// are cleared.
func (Space) Intersection(subsets ...Subset) Subset {
	out := Both
	for _, s := range subsets {
		out.True = out.True && s.True
		out.False = out.False && s.False
		if !out.True && !out.False {
			break
		}
	}

	return out
}

// Contains implements space.Space.
func (Space) Contains(s Subset, x bool) bool {
	if x {
		return s.True
	}

	return s.False
}

// PointSubset implements space.PointSpace.
func (Space) PointSubset(x bool) Subset {
	return Subset{True: x, False: !x}
}
