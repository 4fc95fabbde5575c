// SPDX-License-Identifier: MIT

package reals

import "github.com/katalvlaran/mes/scalar"

// Affine is the measurable function x ↦ A·x + B on the real line.
type Affine[R scalar.Real] struct {
	A R
	B R
}

// Apply returns A·x + B.
func (f Affine[R]) Apply(x R) R { return f.A*x + f.B }

// Preimage implements mapping.Func. For A = 0 the map is constant.
func (f Affine[R]) Preimage(s Set[R]) Set[R] {
	if f.A == 0 {
		if s.Contains(f.B) {
			return Line[R]{}.Full()
		}

		return Set[R]{}
	}
	out := make([]Interval[R], len(s.ivs))
	for i, iv := range s.ivs {
		lo := Bound[R]{Value: f.solve(iv.Lo.Value), Closed: iv.Lo.Closed}
		hi := Bound[R]{Value: f.solve(iv.Hi.Value), Closed: iv.Hi.Closed}
		if f.A < 0 {
			lo, hi = hi, lo
		}
		out[i] = Interval[R]{Lo: lo, Hi: hi}
	}

	return canonical(out)
}

// solve returns the x with A·x + B = y, with -0 folded into 0.
func (f Affine[R]) solve(y R) R {
	x := (y - f.B) / f.A
	if x == 0 {
		return 0
	}

	return x
}

// Push returns the image of g under f, which is again a Gaussian:
// N(A·μ + B, A²·σ²) with the same weight.
func (f Affine[R]) Push(g Gaussian[R]) Gaussian[R] {
	return Gaussian[R]{Mean: f.Apply(g.Mean), Variance: f.A * f.A * g.Variance, Weight: g.Weight}
}
