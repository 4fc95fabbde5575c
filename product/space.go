// SPDX-License-Identifier: MIT

package product

import (
	"github.com/katalvlaran/mes/sigma"
	"github.com/katalvlaran/mes/space"
)

// Pair is a point of a product space.
type Pair[X, Y any] struct {
	First  X
	Second Y
}

// Rect is the rectangle Left × Right.
type Rect[SL, SR any] struct {
	Left  SL
	Right SR
}

// Subset is a union of pairwise disjoint rectangles.
type Subset[SL, SR any] struct {
	rects []Rect[SL, SR]
}

// Rectangle returns the subset l × r.
func Rectangle[SL, SR any](l SL, r SR) Subset[SL, SR] {
	return Subset[SL, SR]{rects: []Rect[SL, SR]{{Left: l, Right: r}}}
}

// Rects returns a copy of the rectangles making up s.
func (s Subset[SL, SR]) Rects() []Rect[SL, SR] {
	return append([]Rect[SL, SR](nil), s.rects...)
}

// Algebra is the product sigma-algebra of two factor algebras.
type Algebra[SL, SR any] struct {
	left  sigma.Algebra[SL]
	right sigma.Algebra[SR]
}

var _ sigma.Algebra[Subset[uint8, uint8]] = Algebra[uint8, uint8]{}

// NewAlgebra returns the product of the left and right algebras.
func NewAlgebra[SL, SR any](left sigma.Algebra[SL], right sigma.Algebra[SR]) Algebra[SL, SR] {
	return Algebra[SL, SR]{left: left, right: right}
}

// LeftAlgebra returns the left factor.
func (a Algebra[SL, SR]) LeftAlgebra() sigma.Algebra[SL] { return a.left }

// RightAlgebra returns the right factor.
func (a Algebra[SL, SR]) RightAlgebra() sigma.Algebra[SR] { return a.right }

func (a Algebra[SL, SR]) emptyRect(r Rect[SL, SR]) bool {
	return a.left.IsEmpty(r.Left) || a.right.IsEmpty(r.Right)
}

// prune drops rectangles with an empty side.
func (a Algebra[SL, SR]) prune(rects []Rect[SL, SR]) Subset[SL, SR] {
	out := make([]Rect[SL, SR], 0, len(rects))
	for _, r := range rects {
		if !a.emptyRect(r) {
			out = append(out, r)
		}
	}

	return Subset[SL, SR]{rects: out}
}

// Empty implements sigma.Algebra.
func (a Algebra[SL, SR]) Empty() Subset[SL, SR] { return Subset[SL, SR]{} }

// Full implements sigma.Algebra.
func (a Algebra[SL, SR]) Full() Subset[SL, SR] {
	return Rectangle(a.left.Full(), a.right.Full())
}

// Rectangle returns l × r, or the empty subset when either side is empty.
func (a Algebra[SL, SR]) Rectangle(l SL, r SR) Subset[SL, SR] {
	return a.prune([]Rect[SL, SR]{{Left: l, Right: r}})
}

// IsEmpty implements sigma.Algebra.
func (a Algebra[SL, SR]) IsEmpty(s Subset[SL, SR]) bool {
	for _, r := range s.rects {
		if !a.emptyRect(r) {
			return false
		}
	}

	return true
}

// Complement implements sigma.Algebra.
func (a Algebra[SL, SR]) Complement(s Subset[SL, SR]) Subset[SL, SR] {
	out := a.Full()
	for _, r := range s.rects {
		piece := a.prune([]Rect[SL, SR]{
			{Left: a.left.Complement(r.Left), Right: a.right.Full()},
			{Left: r.Left, Right: a.right.Complement(r.Right)},
		})
		out = a.intersect(out, piece)
		if len(out.rects) == 0 {
			break
		}
	}

	return out
}

func (a Algebra[SL, SR]) intersect(x, y Subset[SL, SR]) Subset[SL, SR] {
	rects := make([]Rect[SL, SR], 0, len(x.rects)*len(y.rects))
	for _, p := range x.rects {
		for _, q := range y.rects {
			rects = append(rects, Rect[SL, SR]{
				Left:  a.left.Intersection(p.Left, q.Left),
				Right: a.right.Intersection(p.Right, q.Right),
			})
		}
	}

	return a.prune(rects)
}

// Union implements sigma.Algebra.
func (a Algebra[SL, SR]) Union(subsets ...Subset[SL, SR]) Subset[SL, SR] {
	out := a.Empty()
	for _, s := range subsets {
		if len(out.rects) == 0 {
			out = a.prune(s.rects)
			continue
		}
		fresh := a.intersect(s, a.Complement(out))
		out.rects = append(append([]Rect[SL, SR](nil), out.rects...), fresh.rects...)
	}

	return out
}

// Intersection implements sigma.Algebra.
func (a Algebra[SL, SR]) Intersection(subsets ...Subset[SL, SR]) Subset[SL, SR] {
	out := a.Full()
	for _, s := range subsets {
		out = a.intersect(out, s)
		if len(out.rects) == 0 {
			break
		}
	}

	return out
}

// Space is the product of two measurable spaces.
type Space[X, Y, SL, SR any] struct {
	Algebra[SL, SR]
	leftSpace  space.Space[X, SL]
	rightSpace space.Space[Y, SR]
}

// New returns the product space left × right.
func New[X, Y, SL, SR any](left space.Space[X, SL], right space.Space[Y, SR]) Space[X, Y, SL, SR] {
	return Space[X, Y, SL, SR]{
		Algebra:    NewAlgebra[SL, SR](left, right),
		leftSpace:  left,
		rightSpace: right,
	}
}

// Contains implements space.Space.
func (sp Space[X, Y, SL, SR]) Contains(s Subset[SL, SR], p Pair[X, Y]) bool {
	for _, r := range s.rects {
		if sp.leftSpace.Contains(r.Left, p.First) && sp.rightSpace.Contains(r.Right, p.Second) {
			return true
		}
	}

	return false
}

// PointSpace is the product of two point spaces.
type PointSpace[X, Y, SL, SR any] struct {
	Space[X, Y, SL, SR]
	leftPoints  space.PointSpace[X, SL]
	rightPoints space.PointSpace[Y, SR]
}

// NewPoint returns the product point space left × right.
func NewPoint[X, Y, SL, SR any](left space.PointSpace[X, SL], right space.PointSpace[Y, SR]) PointSpace[X, Y, SL, SR] {
	return PointSpace[X, Y, SL, SR]{
		Space:       New[X, Y, SL, SR](left, right),
		leftPoints:  left,
		rightPoints: right,
	}
}

// PointSubset implements space.PointSpace: {x} × {y}.
func (sp PointSpace[X, Y, SL, SR]) PointSubset(p Pair[X, Y]) Subset[SL, SR] {
	return Rectangle(sp.leftPoints.PointSubset(p.First), sp.rightPoints.PointSubset(p.Second))
}
