// SPDX-License-Identifier: MIT

package product

import (
	"github.com/katalvlaran/mes/mapping"
	"github.com/katalvlaran/mes/sigma"
)

// Left is the projection (x, y) ↦ x. Right is the algebra of the discarded
// coordinate.
type Left[SL, SR any] struct {
	Right sigma.Algebra[SR]
}

// Preimage implements mapping.Func: s × Full.
func (f Left[SL, SR]) Preimage(s SL) Subset[SL, SR] {
	return Rectangle(s, f.Right.Full())
}

// Right is the projection (x, y) ↦ y. Left is the algebra of the discarded
// coordinate.
type Right[SL, SR any] struct {
	Left sigma.Algebra[SL]
}

// Preimage implements mapping.Func: Full × s.
func (f Right[SL, SR]) Preimage(s SR) Subset[SL, SR] {
	return Rectangle(f.Left.Full(), s)
}

// Fork is x ↦ (F(x), G(x)).
type Fork[SD, SL, SR any] struct {
	Domain sigma.Algebra[SD]
	F      mapping.Func[SD, SL]
	G      mapping.Func[SD, SR]
}

// Preimage implements mapping.Func: the union over the rectangles L × R of s
// of F⁻¹(L) ∩ G⁻¹(R).
func (f Fork[SD, SL, SR]) Preimage(s Subset[SL, SR]) SD {
	parts := make([]SD, 0, len(s.rects))
	for _, r := range s.rects {
		parts = append(parts, f.Domain.Intersection(f.F.Preimage(r.Left), f.G.Preimage(r.Right)))
	}

	return f.Domain.Union(parts...)
}

// Cross is (x, y) ↦ (F(x), G(y)).
type Cross[SDL, SDR, SCL, SCR any] struct {
	F mapping.Func[SDL, SCL]
	G mapping.Func[SDR, SCR]
}

// Preimage implements mapping.Func rectangle by rectangle. Preimages of
// disjoint rectangles stay disjoint.
func (f Cross[SDL, SDR, SCL, SCR]) Preimage(s Subset[SCL, SCR]) Subset[SDL, SDR] {
	rects := make([]Rect[SDL, SDR], 0, len(s.rects))
	for _, r := range s.rects {
		rects = append(rects, Rect[SDL, SDR]{Left: f.F.Preimage(r.Left), Right: f.G.Preimage(r.Right)})
	}

	return Subset[SDL, SDR]{rects: rects}
}
