// SPDX-License-Identifier: MIT

package product

import (
	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/scalar"
)

const tagNormalize = "product.Measure.Normalize"

// Measure is the product μ ⊗ ν of a measure on the left factor and a
// measure on the right factor.
type Measure[
	SL, SR any,
	R scalar.Real,
	PL measure.Probability[ML], PR measure.Probability[MR],
	ML measure.Weighted[ML, SL, R, PL], MR measure.Weighted[MR, SR, R, PR],
] struct {
	Left  ML
	Right MR
}

// Prob is the product of two probability measures.
type Prob[
	SL, SR any,
	R scalar.Real,
	PL measure.Probability[ML], PR measure.Probability[MR],
	ML measure.Weighted[ML, SL, R, PL], MR measure.Weighted[MR, SR, R, PR],
] struct {
	Left  PL
	Right PR
}

// Measure implements measure.Measure: Σ μ(Lᵢ)·ν(Rᵢ) over the rectangles of s.
func (m Measure[SL, SR, R, PL, PR, ML, MR]) Measure(s Subset[SL, SR]) R {
	var out R
	for _, r := range s.rects {
		out += m.Left.Measure(r.Left) * m.Right.Measure(r.Right)
	}

	return out
}

// Normalize implements measure.Measure by normalizing each factor. It fails
// when either factor fails, which is exactly when the product has zero,
// infinite or NaN total weight.
func (m Measure[SL, SR, R, PL, PR, ML, MR]) Normalize() (Prob[SL, SR, R, PL, PR, ML, MR], error) {
	l, err := m.Left.Normalize()
	if err != nil {
		return Prob[SL, SR, R, PL, PR, ML, MR]{}, measure.Errorf(tagNormalize, err)
	}
	r, err := m.Right.Normalize()
	if err != nil {
		return Prob[SL, SR, R, PL, PR, ML, MR]{}, measure.Errorf(tagNormalize, err)
	}

	return Prob[SL, SR, R, PL, PR, ML, MR]{Left: l, Right: r}, nil
}

// Scale implements measure.Weighted. The factor is applied to the left
// measure only.
func (m Measure[SL, SR, R, PL, PR, ML, MR]) Scale(c R) Measure[SL, SR, R, PL, PR, ML, MR] {
	return Measure[SL, SR, R, PL, PR, ML, MR]{Left: m.Left.Scale(c), Right: m.Right}
}

// AsMeasure implements measure.Probability.
func (p Prob[SL, SR, R, PL, PR, ML, MR]) AsMeasure() Measure[SL, SR, R, PL, PR, ML, MR] {
	return Measure[SL, SR, R, PL, PR, ML, MR]{Left: p.Left.AsMeasure(), Right: p.Right.AsMeasure()}
}

// Dirac combines two factor point-mass constructors into one for pairs.
func Dirac[
	X, Y, SL, SR any,
	R scalar.Real,
	PL measure.Probability[ML], PR measure.Probability[MR],
	ML measure.Weighted[ML, SL, R, PL], MR measure.Weighted[MR, SR, R, PR],
](left measure.DiracFunc[X, ML], right measure.DiracFunc[Y, MR]) measure.DiracFunc[Pair[X, Y], Measure[SL, SR, R, PL, PR, ML, MR]] {
	return func(p Pair[X, Y]) Measure[SL, SR, R, PL, PR, ML, MR] {
		return Measure[SL, SR, R, PL, PR, ML, MR]{Left: left(p.First), Right: right(p.Second)}
	}
}
