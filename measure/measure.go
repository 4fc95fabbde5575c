// SPDX-License-Identifier: MIT

package measure

import (
	"github.com/katalvlaran/mes/scalar"
	"github.com/katalvlaran/mes/sigma"
)

// Measure assigns a measurement of type R to subsets of type S and
// normalizes into probability measures of type P.
type Measure[S any, R scalar.Real, P any] interface {
	// Measure returns the measurement of s. It is additive over disjoint
	// subsets and, for non-negative measures, monotone under inclusion.
	Measure(s S) R

	// Normalize returns the probability measure proportional to the
	// receiver, or an error wrapping ErrNotNormalizable when the total weight
	// is zero, infinite or NaN.
	Normalize() (P, error)
}

// PointMeasure is a Measure that can be evaluated at single points.
type PointMeasure[X, S any, R scalar.Real, P any] interface {
	Measure[S, R, P]

	// MeasureAt returns the point measurement (a mass on discrete spaces, a
	// density on continuous ones).
	MeasureAt(x X) R
}

// Weighted is a Measure of concrete type M closed under scaling.
type Weighted[M, S any, R scalar.Real, P any] interface {
	Measure[S, R, P]

	// Scale multiplies every measurement by c. Callers pass c >= 0; use
	// Rescale to have that checked.
	Scale(c R) M
}

// Additive is implemented by measure families closed under addition.
type Additive[M any] interface {
	Add(other M) M
}

// Probability converts a probability measure back into its measure type;
// the result has total weight exactly one.
type Probability[M any] interface {
	AsMeasure() M
}

// DiracFunc constructs the measure of type M concentrated at x.
type DiracFunc[X, M any] func(x X) M

// Total returns the measurement of the full subset.
func Total[S any, R scalar.Real, P any](m Measure[S, R, P], a sigma.Algebra[S]) R {
	return m.Measure(a.Full())
}

// Rescale validates c (finite and non-negative) and returns m.Scale(c).
func Rescale[M, S any, R scalar.Real, P any](m Weighted[M, S, R, P], c R) (M, error) {
	var zero M
	if !scalar.IsFinite(c) {
		return zero, ErrNaNInf
	}
	if c < 0 {
		return zero, ErrNegativeScale
	}

	return m.Scale(c), nil
}
