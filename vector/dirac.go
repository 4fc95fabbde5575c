// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/scalar"
)

const tagDiracNormalize = "vector.Dirac.Normalize"

// Dirac is Weight concentrated on Point.
type Dirac struct {
	Point  Vec
	Weight float64
}

// PointMass is the probability measure concentrated on Point.
type PointMass struct {
	Point Vec
}

var (
	_ measure.PointMeasure[Vec, Subset, float64, PointMass] = Dirac{}
	_ measure.Weighted[Dirac, Subset, float64, PointMass]   = Dirac{}
	_ measure.Probability[Dirac]                            = PointMass{}
	_ measure.DiracFunc[Vec, Dirac]                         = NewDirac
)

// NewDirac returns the unit point mass at a copy of x.
func NewDirac(x Vec) Dirac { return Dirac{Point: append(Vec(nil), x...), Weight: 1} }

// Measure implements measure.Measure.
func (d Dirac) Measure(s Subset) float64 {
	if s.Contains(d.Point) {
		return d.Weight
	}

	return 0
}

// MeasureAt implements measure.PointMeasure: an infinite density at Point.
func (d Dirac) MeasureAt(x Vec) float64 {
	if d.Weight != 0 && equal(x, d.Point) {
		return d.Weight * math.Inf(1)
	}

	return 0
}

func equal(x, y Vec) bool {
	if len(x) != len(y) {
		return false
	}
	for k := range x {
		if x[k] != y[k] {
			return false
		}
	}

	return true
}

// Normalize implements measure.Measure.
func (d Dirac) Normalize() (PointMass, error) {
	if _, err := scalar.Normalized(d.Weight); err != nil {
		return PointMass{}, measure.Errorf(tagDiracNormalize, err)
	}

	return PointMass{Point: d.Point}, nil
}

// Scale implements measure.Weighted.
func (d Dirac) Scale(c float64) Dirac {
	d.Weight *= c
	return d
}

// AsMeasure implements measure.Probability.
func (p PointMass) AsMeasure() Dirac { return Dirac{Point: p.Point, Weight: 1} }
