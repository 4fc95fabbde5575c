// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"github.com/katalvlaran/mes/matrix"
)

const (
	// DefaultEpsilon is the tolerance for covariance symmetry and diagonal
	// detection.
	DefaultEpsilon = matrix.DefaultEpsilon

	// DefaultGridResolution is the number of midpoint cells per interval and
	// axis used for non-diagonal covariances.
	DefaultGridResolution = 128

	// DefaultSpan bounds the grid to mean ± span·σ on every axis.
	DefaultSpan = 8.0
)

// Option mutates Options.
type Option func(*Options)

// Options holds the resolved numeric configuration.
type Options struct {
	eps  float64
	grid int
	span float64
}

// WithEpsilon sets the symmetry/diagonal tolerance. Panics with ErrBadOption
// when eps is negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(vectorErrorf("WithEpsilon", ErrBadOption))
	}

	return func(o *Options) { o.eps = eps }
}

// WithGridResolution sets the cells per interval and axis. Panics with
// ErrBadOption when n < 1.
//
// AI-Hints:
//   - Cost grows as (n·intervals)^dim; keep n modest beyond three dimensions.
func WithGridResolution(n int) Option {
	if n < 1 {
		panic(vectorErrorf("WithGridResolution", ErrBadOption))
	}

	return func(o *Options) { o.grid = n }
}

// WithSpan sets how many standard deviations the grid covers on each side
// of the mean. Panics with ErrBadOption unless k is finite and positive.
func WithSpan(k float64) Option {
	if !(k > 0) || math.IsInf(k, 1) {
		panic(vectorErrorf("WithSpan", ErrBadOption))
	}

	return func(o *Options) { o.span = k }
}

// NewOptions resolves opts on top of the defaults.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// GridResolution returns the resolved cells per interval and axis.
func (o Options) GridResolution() int { return o.grid }

// Span returns the resolved grid half-width in standard deviations.
func (o Options) Span() float64 { return o.span }

// gatherOptions applies setters in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{eps: DefaultEpsilon, grid: DefaultGridResolution, span: DefaultSpan}
	for _, set := range user {
		set(&o)
	}

	return o
}
