// SPDX-License-Identifier: MIT

package vector

import (
	"strings"

	"github.com/katalvlaran/mes/reals"
	"github.com/katalvlaran/mes/space"
)

// Vec is a point of R^n.
type Vec []float64

// Box is the cartesian product of one real subset per coordinate.
type Box []reals.Set[float64]

// Subset is a union of pairwise disjoint boxes.
type Subset struct {
	boxes []Box
}

var line reals.Line[float64]

// Boxes returns a copy of the boxes making up s.
func (s Subset) Boxes() []Box {
	out := make([]Box, len(s.boxes))
	for i, b := range s.boxes {
		out[i] = append(Box(nil), b...)
	}

	return out
}

// Contains reports whether x lies in one of the boxes.
func (s Subset) Contains(x Vec) bool {
	for _, b := range s.boxes {
		if b.contains(x) {
			return true
		}
	}

	return false
}

// String renders the boxes joined by " ∪ ", or "∅".
func (s Subset) String() string {
	if len(s.boxes) == 0 {
		return "∅"
	}
	parts := make([]string, len(s.boxes))
	for i, b := range s.boxes {
		sides := make([]string, len(b))
		for k, side := range b {
			sides[k] = side.String()
		}
		parts[i] = "(" + strings.Join(sides, " × ") + ")"
	}

	return strings.Join(parts, " ∪ ")
}

func (b Box) contains(x Vec) bool {
	if len(x) != len(b) {
		return false
	}
	for k, side := range b {
		if !side.Contains(x[k]) {
			return false
		}
	}

	return true
}

func (b Box) empty() bool {
	for _, side := range b {
		if line.IsEmpty(side) {
			return true
		}
	}

	return len(b) == 0
}

// Space is R^n.
type Space struct {
	dim int
}

var _ space.PointSpace[Vec, Subset] = Space{}

// NewSpace returns R^dim. It fails with ErrInvalidDimension when dim < 1.
func NewSpace(dim int) (Space, error) {
	if dim < 1 {
		return Space{}, vectorErrorf("vector.NewSpace", ErrInvalidDimension)
	}

	return Space{dim: dim}, nil
}

// Dim returns n.
func (sp Space) Dim() int { return sp.dim }

// Box returns the subset sides[0] × … × sides[n-1].
func (sp Space) Box(sides ...reals.Set[float64]) (Subset, error) {
	if len(sides) != sp.dim {
		return Subset{}, vectorErrorf("vector.Space.Box", ErrDimensionMismatch)
	}

	return prune([]Box{append(Box(nil), sides...)}), nil
}

func prune(boxes []Box) Subset {
	out := make([]Box, 0, len(boxes))
	for _, b := range boxes {
		if !b.empty() {
			out = append(out, b)
		}
	}

	return Subset{boxes: out}
}

func (sp Space) fullBox() Box {
	b := make(Box, sp.dim)
	for k := range b {
		b[k] = line.Full()
	}

	return b
}

// Empty implements sigma.Algebra.
func (sp Space) Empty() Subset { return Subset{} }

// Full implements sigma.Algebra.
func (sp Space) Full() Subset { return Subset{boxes: []Box{sp.fullBox()}} }

// IsEmpty implements sigma.Algebra.
func (sp Space) IsEmpty(s Subset) bool {
	for _, b := range s.boxes {
		if !b.empty() {
			return false
		}
	}

	return true
}

// complementBox returns the disjoint pieces of bᶜ.
func (sp Space) complementBox(b Box) Subset {
	pieces := make([]Box, 0, len(b))
	for k := range b {
		piece := sp.fullBox()
		copy(piece[:k], b[:k])
		piece[k] = line.Complement(b[k])
		pieces = append(pieces, piece)
	}

	return prune(pieces)
}

func intersectBoxes(x, y Subset) Subset {
	boxes := make([]Box, 0, len(x.boxes)*len(y.boxes))
	for _, p := range x.boxes {
		for _, q := range y.boxes {
			if len(p) != len(q) {
				continue
			}
			b := make(Box, len(p))
			for k := range p {
				b[k] = line.Intersection(p[k], q[k])
			}
			boxes = append(boxes, b)
		}
	}

	return prune(boxes)
}

// Complement implements sigma.Algebra.
func (sp Space) Complement(s Subset) Subset {
	out := sp.Full()
	for _, b := range s.boxes {
		out = intersectBoxes(out, sp.complementBox(b))
		if len(out.boxes) == 0 {
			break
		}
	}

	return out
}

// Union implements sigma.Algebra.
func (sp Space) Union(subsets ...Subset) Subset {
	out := sp.Empty()
	for _, s := range subsets {
		if len(out.boxes) == 0 {
			out = prune(s.boxes)
			continue
		}
		fresh := intersectBoxes(s, sp.Complement(out))
		out.boxes = append(append([]Box(nil), out.boxes...), fresh.boxes...)
	}

	return out
}

// Intersection implements sigma.Algebra.
func (sp Space) Intersection(subsets ...Subset) Subset {
	out := sp.Full()
	for _, s := range subsets {
		out = intersectBoxes(out, s)
		if len(out.boxes) == 0 {
			break
		}
	}

	return out
}

// Contains implements space.Space. Points of another dimension are never
// contained.
func (sp Space) Contains(s Subset, x Vec) bool { return s.Contains(x) }

// PointSubset implements space.PointSpace: the degenerate box at x.
func (sp Space) PointSubset(x Vec) Subset {
	if len(x) != sp.dim {
		return Subset{}
	}
	b := make(Box, len(x))
	for k, v := range x {
		b[k] = line.PointSubset(v)
	}

	return prune([]Box{b})
}
