// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/katalvlaran/mes/matrix"
	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/reals"
	"github.com/katalvlaran/mes/scalar"
)

const (
	tagNewGaussian       = "vector.NewGaussian"
	tagGaussianNormalize = "vector.Gaussian.Normalize"
)

// Gaussian is Weight times the multivariate normal N(Mean, Cov).
//
// Build it with NewGaussian, which validates the covariance and caches its
// inverse and determinant. Mean and Cov must not be mutated afterwards.
type Gaussian struct {
	Mean   Vec
	Cov    matrix.Matrix
	Weight float64

	st *stats
}

// Normal is the probability measure N(Mean, Cov).
type Normal struct {
	Mean Vec
	Cov  matrix.Matrix

	st *stats
}

var (
	_ measure.PointMeasure[Vec, Subset, float64, Normal]  = Gaussian{}
	_ measure.Weighted[Gaussian, Subset, float64, Normal] = Gaussian{}
	_ measure.Probability[Gaussian]                       = Normal{}
)

// stats caches what every evaluation needs.
type stats struct {
	inv      matrix.Matrix
	logNorm  float64   // log √((2π)^n · det Cov)
	sigma    []float64 // √Cov[k][k]
	diagonal bool
	opts     Options
}

// NewGaussian validates mean and cov and returns weight · N(mean, cov).
// Errors: ErrDimensionMismatch, ErrNotPositiveDefinite.
func NewGaussian(mean Vec, cov matrix.Matrix, weight float64, opts ...Option) (Gaussian, error) {
	st, err := newStats(mean, cov, gatherOptions(opts...))
	if err != nil {
		return Gaussian{}, vectorErrorf(tagNewGaussian, err)
	}

	return Gaussian{Mean: append(Vec(nil), mean...), Cov: cov.Clone(), Weight: weight, st: st}, nil
}

func newStats(mean Vec, cov matrix.Matrix, o Options) (*stats, error) {
	n := len(mean)
	if n == 0 || cov == nil || cov.Rows() != n || cov.Cols() != n {
		return nil, ErrDimensionMismatch
	}
	inv, err := precision(cov, o.eps)
	if err != nil {
		return nil, ErrNotPositiveDefinite
	}
	det, err := matrix.Det(cov)
	if err != nil || !(det > 0) {
		return nil, ErrNotPositiveDefinite
	}
	diagonal, err := matrix.IsZeroOffDiagonal(cov, o.eps)
	if err != nil {
		return nil, ErrDimensionMismatch
	}
	sigma := make([]float64, n)
	for k := range sigma {
		v, _ := cov.At(k, k)
		sigma[k] = math.Sqrt(v)
	}

	return &stats{
		inv:      inv,
		logNorm:  0.5 * (float64(n)*math.Log(2*math.Pi) + math.Log(det)),
		sigma:    sigma,
		diagonal: diagonal,
		opts:     o,
	}, nil
}

// precision returns cov⁻¹ as L⁻ᵀ·L⁻¹ from the Cholesky factor cov = L·Lᵀ.
func precision(cov matrix.Matrix, eps float64) (matrix.Matrix, error) {
	l, err := matrix.Cholesky(cov, matrix.WithEpsilon(eps))
	if err != nil {
		return nil, err
	}
	linv, err := matrix.Inverse(l)
	if err != nil {
		return nil, err
	}
	linvT, err := matrix.Transpose(linv)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(linvT, linv)
}

// stats returns the cached statistics, computing them with default options
// for literal values. It returns nil for an invalid covariance.
func (g Gaussian) stats() *stats {
	if g.st != nil {
		return g.st
	}
	st, err := newStats(g.Mean, g.Cov, gatherOptions())
	if err != nil {
		return nil
	}

	return st
}

// density returns the N(mean, cov) density at x.
func (st *stats) density(mean, x Vec) float64 {
	d := make([]float64, len(mean))
	for k := range d {
		d[k] = x[k] - mean[k]
	}
	q, _ := matrix.QuadForm(d, st.inv, d)

	return math.Exp(-0.5*q - st.logNorm)
}

// MeasureAt implements measure.PointMeasure with the density. Points of
// another dimension have density 0; an invalid covariance yields NaN.
func (g Gaussian) MeasureAt(x Vec) float64 {
	if len(x) != len(g.Mean) {
		return 0
	}
	st := g.stats()
	if st == nil {
		return math.NaN()
	}

	return g.Weight * st.density(g.Mean, x)
}

// Measure implements measure.Measure.
func (g Gaussian) Measure(s Subset) float64 {
	st := g.stats()
	if st == nil {
		return math.NaN()
	}
	var p float64
	for _, b := range s.boxes {
		if len(b) != len(g.Mean) {
			continue
		}
		p += st.boxMass(g.Mean, b)
	}

	return g.Weight * p
}

// boxMass returns the probability of b under N(mean, cov). Diagonal
// covariances, full boxes and slabs constrained on one axis are exact; other
// boxes fall back to the grid.
func (st *stats) boxMass(mean Vec, b Box) float64 {
	if st.diagonal || isFullBox(b) {
		p := 1.0
		for k, side := range b {
			if line.IsEmpty(side) {
				return 0
			}
			marginal := reals.Normal[float64]{Mean: mean[k], Variance: st.sigma[k] * st.sigma[k]}
			p *= marginal.AsMeasure().Measure(side)
		}

		return p
	}

	if k, ok := slabAxis(b); ok {
		marginal := reals.Normal[float64]{Mean: mean[k], Variance: st.sigma[k] * st.sigma[k]}
		return marginal.AsMeasure().Measure(b[k])
	}

	return st.gridMass(mean, b)
}

func isFullBox(b Box) bool {
	for _, side := range b {
		if !side.Equal(line.Full()) {
			return false
		}
	}

	return true
}

// slabAxis reports the only axis on which b is constrained, if there is
// exactly one.
func slabAxis(b Box) (int, bool) {
	axis := -1
	for k, side := range b {
		if side.Equal(line.Full()) {
			continue
		}
		if axis >= 0 {
			return 0, false
		}
		axis = k
	}

	return axis, axis >= 0
}

// cell is one midpoint-rule cell along an axis.
type cell struct {
	mid, width float64
}

// gridMass integrates the density over b with the midpoint rule, every side
// clipped to mean ± span·σ.
func (st *stats) gridMass(mean Vec, b Box) float64 {
	n := len(b)
	axes := make([][]cell, n)
	for k, side := range b {
		half := st.opts.span * st.sigma[k]
		window := reals.NewSet(reals.Closed(mean[k]-half, mean[k]+half))
		for _, iv := range line.Intersection(side, window).Intervals() {
			lo, hi := iv.Lo.Value, iv.Hi.Value
			w := (hi - lo) / float64(st.opts.grid)
			if w <= 0 {
				continue
			}
			for i := 0; i < st.opts.grid; i++ {
				axes[k] = append(axes[k], cell{mid: lo + (float64(i)+0.5)*w, width: w})
			}
		}
		if len(axes[k]) == 0 {
			return 0
		}
	}

	idx := make([]int, n)
	x := make(Vec, n)
	var sum float64
	for {
		vol := 1.0
		for k, i := range idx {
			c := axes[k][i]
			x[k] = c.mid
			vol *= c.width
		}
		sum += vol * st.density(mean, x)

		// odometer increment
		k := n - 1
		for ; k >= 0; k-- {
			idx[k]++
			if idx[k] < len(axes[k]) {
				break
			}
			idx[k] = 0
		}
		if k < 0 {
			return sum
		}
	}
}

// Total returns the weight.
func (g Gaussian) Total() float64 { return g.Weight }

// Normalize implements measure.Measure. It fails iff the weight is zero,
// infinite or NaN, or the covariance is invalid.
func (g Gaussian) Normalize() (Normal, error) {
	if _, err := scalar.Normalized(g.Weight); err != nil {
		return Normal{}, measure.Errorf(tagGaussianNormalize, err)
	}
	st := g.stats()
	if st == nil {
		return Normal{}, vectorErrorf(tagGaussianNormalize, ErrNotPositiveDefinite)
	}

	return Normal{Mean: g.Mean, Cov: g.Cov, st: st}, nil
}

// Scale implements measure.Weighted.
func (g Gaussian) Scale(c float64) Gaussian {
	g.Weight *= c
	return g
}

// AsMeasure implements measure.Probability.
func (n Normal) AsMeasure() Gaussian {
	return Gaussian{Mean: n.Mean, Cov: n.Cov, Weight: 1, st: n.st}
}
