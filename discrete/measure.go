// SPDX-License-Identifier: MIT

package discrete

import (
	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/scalar"
)

const tagNormalize = "discrete.Measure.Normalize"

// Measure assigns Weights[i] to point i.
type Measure[R scalar.Real] struct {
	Weights []R
}

// Prob is a probability measure on a finite space; its weights sum to one.
type Prob[R scalar.Real] struct {
	Weights []R
}

var (
	_ measure.PointMeasure[int, Subset, float64, Prob[float64]]          = Measure[float64]{}
	_ measure.Weighted[Measure[float64], Subset, float64, Prob[float64]] = Measure[float64]{}
	_ measure.Additive[Measure[float64]]                                 = Measure[float64]{}
	_ measure.Probability[Measure[float64]]                              = Prob[float64]{}
)

// NewMeasure checks that weights has one entry per point of sp.
func NewMeasure[R scalar.Real](sp Space, weights []R) (Measure[R], error) {
	if len(weights) != sp.Size() {
		return Measure[R]{}, discreteErrorf("discrete.NewMeasure", ErrSizeMismatch)
	}

	return Measure[R]{Weights: append([]R(nil), weights...)}, nil
}

// Uniform returns the counting measure on sp: weight 1 at every point.
func Uniform[R scalar.Real](sp Space) Measure[R] {
	w := make([]R, sp.Size())
	for i := range w {
		w[i] = 1
	}

	return Measure[R]{Weights: w}
}

// Dirac returns the point-mass constructor for sp.
func Dirac[R scalar.Real](sp Space) measure.DiracFunc[int, Measure[R]] {
	return func(x int) Measure[R] {
		w := make([]R, sp.Size())
		if x >= 0 && x < len(w) {
			w[x] = 1
		}

		return Measure[R]{Weights: w}
	}
}

// Measure implements measure.Measure.
func (m Measure[R]) Measure(s Subset) R {
	var out R
	for _, i := range s.Indices() {
		if i >= len(m.Weights) {
			break
		}
		out += m.Weights[i]
	}

	return out
}

// MeasureAt implements measure.PointMeasure.
func (m Measure[R]) MeasureAt(x int) R {
	if x < 0 || x >= len(m.Weights) {
		return 0
	}

	return m.Weights[x]
}

// Total returns the sum of all weights.
func (m Measure[R]) Total() R { return scalar.Sum(m.Weights...) }

// Normalize implements measure.Measure.
func (m Measure[R]) Normalize() (Prob[R], error) {
	w, err := scalar.Normalized(m.Weights...)
	if err != nil {
		return Prob[R]{}, measure.Errorf(tagNormalize, err)
	}

	return Prob[R]{Weights: w}, nil
}

// Scale implements measure.Weighted.
func (m Measure[R]) Scale(c R) Measure[R] {
	w := make([]R, len(m.Weights))
	for i, x := range m.Weights {
		w[i] = x * c
	}

	return Measure[R]{Weights: w}
}

// Add implements measure.Additive. A shorter weight vector counts as zero
// past its end.
func (m Measure[R]) Add(o Measure[R]) Measure[R] {
	w := make([]R, max(len(m.Weights), len(o.Weights)))
	copy(w, m.Weights)
	for i, x := range o.Weights {
		w[i] += x
	}

	return Measure[R]{Weights: w}
}

// AsMeasure implements measure.Probability.
func (p Prob[R]) AsMeasure() Measure[R] {
	return Measure[R]{Weights: append([]R(nil), p.Weights...)}
}

// At returns the probability of point x.
func (p Prob[R]) At(x int) R { return p.AsMeasure().MeasureAt(x) }
