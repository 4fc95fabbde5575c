// SPDX-License-Identifier: MIT

package variant

import (
	"github.com/katalvlaran/mes/discrete"
	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/scalar"
)

const tagNormalize = "variant.Measure.Normalize"

// Measure is the tuple of per-variant sub-measures. A nil Part is the zero
// measure on its variant.
type Measure[R scalar.Real] struct {
	Parts []Part[R]
}

// Prob is the probability form of a Measure with len(Sub) variants.
// len(Top) == len(Sub)-1; Sub[i] is nil when variant i had no normalizable
// weight.
type Prob[R scalar.Real] struct {
	Top []R
	Sub []PartProb[R]
}

var (
	_ measure.PointMeasure[int, discrete.Subset, float64, Prob[float64]]          = Measure[float64]{}
	_ measure.Weighted[Measure[float64], discrete.Subset, float64, Prob[float64]] = Measure[float64]{}
	_ measure.Probability[Measure[float64]]                                       = Prob[float64]{}
)

// Of returns the measure with the given parts.
func Of[R scalar.Real](parts ...Part[R]) Measure[R] {
	return Measure[R]{Parts: parts}
}

// Len returns the number of variants.
func (m Measure[R]) Len() int { return len(m.Parts) }

// Tags returns the tag space {0..Len()-1}.
func (m Measure[R]) Tags() (discrete.Space, error) { return discrete.NewSpace(len(m.Parts)) }

func total[R scalar.Real](p Part[R]) R {
	if p == nil {
		return 0
	}

	return p.Total()
}

// Totals returns the weight of every variant.
func (m Measure[R]) Totals() []R {
	out := make([]R, len(m.Parts))
	for i, p := range m.Parts {
		out[i] = total(p)
	}

	return out
}

// Total returns the sum of all variant weights.
func (m Measure[R]) Total() R { return scalar.Sum(m.Totals()...) }

// Measure implements measure.Measure on the tag space.
func (m Measure[R]) Measure(s discrete.Subset) R {
	var sum R
	for i, p := range m.Parts {
		if s.Has(i) {
			sum += total(p)
		}
	}

	return sum
}

// MeasureAt implements measure.PointMeasure: the weight of variant x.
func (m Measure[R]) MeasureAt(x int) R {
	if x < 0 || x >= len(m.Parts) {
		return 0
	}

	return total(m.Parts[x])
}

// Normalize implements measure.Measure. The variant totals are normalized
// together; each sub-measure is normalized on its own and left nil when it
// cannot be.
func (m Measure[R]) Normalize() (Prob[R], error) {
	probs := m.Totals()
	if err := scalar.Normalize(probs); err != nil {
		return Prob[R]{}, measure.Errorf(tagNormalize, err)
	}
	sub := make([]PartProb[R], len(m.Parts))
	for i, p := range m.Parts {
		if p == nil {
			continue
		}
		if q, err := p.NormalizePart(); err == nil {
			sub[i] = q
		}
	}

	return Prob[R]{Top: probs[:len(probs)-1], Sub: sub}, nil
}

// Scale implements measure.Weighted.
func (m Measure[R]) Scale(c R) Measure[R] {
	parts := make([]Part[R], len(m.Parts))
	for i, p := range m.Parts {
		if p != nil {
			parts[i] = p.ScalePart(c)
		}
	}

	return Measure[R]{Parts: parts}
}

// At returns the probability of variant i.
func (p Prob[R]) At(i int) R {
	if i < 0 || i >= len(p.Sub) {
		return 0
	}
	if i < len(p.Top) {
		return p.Top[i]
	}

	return 1 - scalar.Sum(p.Top...)
}

// AsMeasure implements measure.Probability: variant i is Sub[i] scaled by
// its probability, or nil when Sub[i] is absent.
func (p Prob[R]) AsMeasure() Measure[R] {
	parts := make([]Part[R], len(p.Sub))
	for i, q := range p.Sub {
		if q != nil {
			parts[i] = q.AsPart().ScalePart(p.At(i))
		}
	}

	return Measure[R]{Parts: parts}
}
