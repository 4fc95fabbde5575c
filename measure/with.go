// SPDX-License-Identifier: MIT

package measure

import (
	"code.hybscloud.com/kont"

	"github.com/katalvlaran/mes/scalar"
)

// WithMeasure passes m.Measure(s) to k and returns k's result.
func WithMeasure[S any, R scalar.Real, P, T any](m Measure[S, R, P], s S, k func(R) T) T {
	return kont.RunWith(kont.Suspend(func(next func(R) T) T {
		return next(m.Measure(s))
	}), kont.Once(k).Resume)
}

// WithMeasureAt passes m.MeasureAt(x) to k and returns k's result.
func WithMeasureAt[X, S any, R scalar.Real, P, T any](m PointMeasure[X, S, R, P], x X, k func(R) T) T {
	return kont.RunWith(kont.Suspend(func(next func(R) T) T {
		return next(m.MeasureAt(x))
	}), kont.Once(k).Resume)
}

// WithNormalized passes the normalized probability measure to k. On failure
// k is not called and the zero T is returned with the error.
func WithNormalized[S any, R scalar.Real, P, T any](m Measure[S, R, P], k func(P) T) (T, error) {
	p, err := m.Normalize()
	if err != nil {
		var zero T
		return zero, err
	}

	return kont.RunWith(kont.Return[T](p), kont.Once(k).Resume), nil
}
