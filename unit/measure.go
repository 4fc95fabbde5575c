// SPDX-License-Identifier: MIT

package unit

import (
	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/scalar"
)

const tagNormalize = "unit.Measure.Normalize"

// Measure is a weight on the unit space.
type Measure[R scalar.Real] struct {
	Weight R
}

// Prob is the unique probability measure on the unit space.
type Prob[R scalar.Real] struct{}

var (
	_ measure.PointMeasure[Point, Subset, float64, Prob[float64]]        = Measure[float64]{}
	_ measure.Weighted[Measure[float64], Subset, float64, Prob[float64]] = Measure[float64]{}
	_ measure.Probability[Measure[float64]]                              = Prob[float64]{}
	_ measure.DiracFunc[Point, Measure[float64]]                         = Dirac[float64]
)

// Dirac returns the unit point mass.
func Dirac[R scalar.Real](Point) Measure[R] { return Measure[R]{Weight: 1} }

// Measure implements measure.Measure.
func (m Measure[R]) Measure(s Subset) R {
	if s.Full {
		return m.Weight
	}

	return 0
}

// MeasureAt implements measure.PointMeasure.
func (m Measure[R]) MeasureAt(Point) R { return m.Weight }

// Total returns the weight.
func (m Measure[R]) Total() R { return m.Weight }

// Normalize implements measure.Measure. It fails iff the weight is zero,
// infinite or NaN.
func (m Measure[R]) Normalize() (Prob[R], error) {
	if _, err := scalar.Normalized(m.Weight); err != nil {
		return Prob[R]{}, measure.Errorf(tagNormalize, err)
	}

	return Prob[R]{}, nil
}

// Scale implements measure.Weighted.
func (m Measure[R]) Scale(c R) Measure[R] { return Measure[R]{Weight: m.Weight * c} }

// Add implements measure.Additive.
func (m Measure[R]) Add(o Measure[R]) Measure[R] { return Measure[R]{Weight: m.Weight + o.Weight} }

// AsMeasure implements measure.Probability.
func (Prob[R]) AsMeasure() Measure[R] { return Measure[R]{Weight: 1} }
