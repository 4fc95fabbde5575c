// SPDX-License-Identifier: MIT

package boolean

import (
	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/scalar"
)

const tagNormalize = "boolean.Measure.Normalize"

// Measure assigns a weight to each outcome.
type Measure[R scalar.Real] struct {
	True  R
	False R
}

// Prob is a probability measure on the booleans, stored as P(true).
type Prob[R scalar.Real] struct {
	True R
}

var (
	_ measure.PointMeasure[bool, Subset, float64, Prob[float64]]         = Measure[float64]{}
	_ measure.Weighted[Measure[float64], Subset, float64, Prob[float64]] = Measure[float64]{}
	_ measure.Additive[Measure[float64]]                                 = Measure[float64]{}
	_ measure.Probability[Measure[float64]]                              = Prob[float64]{}
	_ measure.DiracFunc[bool, Measure[float64]]                          = Dirac[float64]
)

// Dirac returns the point mass at x.
func Dirac[R scalar.Real](x bool) Measure[R] {
	if x {
		return Measure[R]{True: 1}
	}

	return Measure[R]{False: 1}
}

// Measure implements measure.Measure.
func (m Measure[R]) Measure(s Subset) R {
	var out R
	if s.True {
		out += m.True
	}
	if s.False {
		out += m.False
	}

	return out
}

// MeasureAt implements measure.PointMeasure.
func (m Measure[R]) MeasureAt(x bool) R {
	if x {
		return m.True
	}

	return m.False
}

// Total returns the weight of the full subset.
func (m Measure[R]) Total() R { return m.True + m.False }

// Normalize implements measure.Measure.
func (m Measure[R]) Normalize() (Prob[R], error) {
	w, err := scalar.Normalized(m.True, m.False)
	if err != nil {
		return Prob[R]{}, measure.Errorf(tagNormalize, err)
	}

	return Prob[R]{True: w[0]}, nil
}

// Scale implements measure.Weighted.
func (m Measure[R]) Scale(c R) Measure[R] {
	return Measure[R]{True: m.True * c, False: m.False * c}
}

// Add implements measure.Additive.
func (m Measure[R]) Add(o Measure[R]) Measure[R] {
	return Measure[R]{True: m.True + o.True, False: m.False + o.False}
}

// AsMeasure implements measure.Probability.
func (p Prob[R]) AsMeasure() Measure[R] {
	return Measure[R]{True: p.True, False: 1 - p.True}
}

// At returns the probability of outcome x.
func (p Prob[R]) At(x bool) R {
	if x {
		return p.True
	}

	return 1 - p.True
}
