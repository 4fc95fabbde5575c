// SPDX-License-Identifier: MIT

package reals

import (
	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/scalar"
)

const tagDiracNormalize = "reals.Dirac.Normalize"

// Dirac is Weight concentrated on Point.
type Dirac[R scalar.Real] struct {
	Point  R
	Weight R
}

// PointMass is the probability measure concentrated on Point.
type PointMass[R scalar.Real] struct {
	Point R
}

var (
	_ measure.PointMeasure[float64, Set[float64], float64, PointMass[float64]]    = Dirac[float64]{}
	_ measure.Weighted[Dirac[float64], Set[float64], float64, PointMass[float64]] = Dirac[float64]{}
	_ measure.Probability[Dirac[float64]]                                         = PointMass[float64]{}
	_ measure.DiracFunc[float64, Dirac[float64]]                                  = NewDirac[float64]
)

// NewDirac returns the unit point mass at x.
func NewDirac[R scalar.Real](x R) Dirac[R] { return Dirac[R]{Point: x, Weight: 1} }

// Measure implements measure.Measure: Weight if s holds Point, else 0.
func (d Dirac[R]) Measure(s Set[R]) R {
	if s.Contains(d.Point) {
		return d.Weight
	}

	return 0
}

// MeasureAt implements measure.PointMeasure: an infinite density at Point.
func (d Dirac[R]) MeasureAt(x R) R {
	if x == d.Point && d.Weight != 0 {
		return d.Weight * scalar.Inf[R](1)
	}

	return 0
}

// Normalize implements measure.Measure.
func (d Dirac[R]) Normalize() (PointMass[R], error) {
	if _, err := scalar.Normalized(d.Weight); err != nil {
		return PointMass[R]{}, measure.Errorf(tagDiracNormalize, err)
	}

	return PointMass[R]{Point: d.Point}, nil
}

// Scale implements measure.Weighted.
func (d Dirac[R]) Scale(c R) Dirac[R] {
	d.Weight *= c
	return d
}

// AsMeasure implements measure.Probability.
func (p PointMass[R]) AsMeasure() Dirac[R] { return NewDirac(p.Point) }
