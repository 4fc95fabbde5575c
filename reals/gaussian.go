// SPDX-License-Identifier: MIT

package reals

import (
	"math"

	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/scalar"
)

const tagGaussianNormalize = "reals.Gaussian.Normalize"

// Gaussian is Weight times the normal distribution N(Mean, Variance).
type Gaussian[R scalar.Real] struct {
	Mean     R
	Variance R
	Weight   R
}

// Normal is the probability measure N(Mean, Variance).
type Normal[R scalar.Real] struct {
	Mean     R
	Variance R
}

var (
	_ measure.PointMeasure[float64, Set[float64], float64, Normal[float64]]       = Gaussian[float64]{}
	_ measure.Weighted[Gaussian[float64], Set[float64], float64, Normal[float64]] = Gaussian[float64]{}
	_ measure.Probability[Gaussian[float64]]                                      = Normal[float64]{}
)

// NewGaussian validates the variance and returns weight · N(mean, variance).
func NewGaussian[R scalar.Real](mean, variance, weight R) (Gaussian[R], error) {
	if !(variance >= 0) {
		return Gaussian[R]{}, realsErrorf("reals.NewGaussian", ErrNegativeVariance)
	}

	return Gaussian[R]{Mean: mean, Variance: variance, Weight: weight}, nil
}

// FromDirac returns the zero-variance Gaussian carrying the same mass as d.
func FromDirac[R scalar.Real](d Dirac[R]) Gaussian[R] {
	return Gaussian[R]{Mean: d.Point, Weight: d.Weight}
}

// cdf returns P(X ≤ x) for X ~ N(mean, variance), variance > 0.
func cdf(mean, variance, x float64) float64 {
	return 0.5 * math.Erfc(-(x-mean)/math.Sqrt(2*variance))
}

// Measure implements measure.Measure. Interval endpoints carry no mass
// unless the variance is zero.
func (g Gaussian[R]) Measure(s Set[R]) R {
	if g.Variance == 0 {
		if s.Contains(g.Mean) {
			return g.Weight
		}

		return 0
	}
	mean, variance := float64(g.Mean), float64(g.Variance)
	var p float64
	for _, iv := range s.ivs {
		p += cdf(mean, variance, float64(iv.Hi.Value)) - cdf(mean, variance, float64(iv.Lo.Value))
	}

	return g.Weight * R(p)
}

// MeasureAt implements measure.PointMeasure with the density. A zero-variance
// Gaussian has infinite density at its mean.
func (g Gaussian[R]) MeasureAt(x R) R {
	if g.Variance == 0 {
		if x == g.Mean && g.Weight != 0 {
			return g.Weight * scalar.Inf[R](1)
		}

		return 0
	}
	d := float64(x - g.Mean)
	v := float64(g.Variance)

	return g.Weight * R(math.Exp(-d*d/(2*v))/math.Sqrt(2*math.Pi*v))
}

// Total returns the weight.
func (g Gaussian[R]) Total() R { return g.Weight }

// Normalize implements measure.Measure. It fails iff the weight is zero,
// infinite or NaN.
func (g Gaussian[R]) Normalize() (Normal[R], error) {
	if _, err := scalar.Normalized(g.Weight); err != nil {
		return Normal[R]{}, measure.Errorf(tagGaussianNormalize, err)
	}

	return Normal[R]{Mean: g.Mean, Variance: g.Variance}, nil
}

// Scale implements measure.Weighted.
func (g Gaussian[R]) Scale(c R) Gaussian[R] {
	g.Weight *= c
	return g
}

// AsMeasure implements measure.Probability.
func (n Normal[R]) AsMeasure() Gaussian[R] {
	return Gaussian[R]{Mean: n.Mean, Variance: n.Variance, Weight: 1}
}

// CDF returns P(X ≤ x).
func (n Normal[R]) CDF(x R) R {
	if n.Variance == 0 {
		if x >= n.Mean {
			return 1
		}

		return 0
	}

	return R(cdf(float64(n.Mean), float64(n.Variance), float64(x)))
}
