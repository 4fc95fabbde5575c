// SPDX-License-Identifier: MIT

package mapping

import (
	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/scalar"
	"github.com/katalvlaran/mes/space"
)

const (
	tagPushNormalize  = "mapping.Pushforward.Normalize"
	tagImageNormalize = "mapping.Image.Normalize"
)

// Image is the measure induced on a function's codomain by any measure on
// its domain: Measure(s) = base.Measure(fn.Preimage(s)). Pushforward adds
// Scale and AsMeasure round trips when the base is Weighted.
type Image[SD, SC any, R scalar.Real, P any] struct {
	fn   Func[SD, SC]
	base measure.Measure[SD, R, P]
}

// ImageProb is a normalized Image: the function and the normalized base.
type ImageProb[SD, SC, P any] struct {
	fn   Func[SD, SC]
	base P
}

// ImageOf composes f with m, producing a measure on f's codomain.
func ImageOf[SD, SC any, R scalar.Real, P any](f Func[SD, SC], m measure.Measure[SD, R, P]) Image[SD, SC, R, P] {
	return Image[SD, SC, R, P]{fn: f, base: m}
}

// Func returns the function the measure is pushed along.
func (m Image[SD, SC, R, P]) Func() Func[SD, SC] { return m.fn }

// Base returns the domain measure.
func (m Image[SD, SC, R, P]) Base() measure.Measure[SD, R, P] { return m.base }

// Measure returns the base measurement of the preimage of s.
func (m Image[SD, SC, R, P]) Measure(s SC) R {
	return WithPreimage(m.fn, s, m.base.Measure)
}

// Normalize normalizes the base measure. It fails iff the base fails.
func (m Image[SD, SC, R, P]) Normalize() (ImageProb[SD, SC, P], error) {
	q, err := m.base.Normalize()
	if err != nil {
		return ImageProb[SD, SC, P]{}, measure.Errorf(tagImageNormalize, err)
	}

	return ImageProb[SD, SC, P]{fn: m.fn, base: q}, nil
}

// Func returns the function the measure is pushed along.
func (q ImageProb[SD, SC, P]) Func() Func[SD, SC] { return q.fn }

// Base returns the normalized domain measure.
func (q ImageProb[SD, SC, P]) Base() P { return q.base }

// Pushforward is the measure induced on a function's codomain by a measure
// M on its domain: Measure(s) = base.Measure(fn.Preimage(s)).
type Pushforward[SD, SC any, R scalar.Real, P measure.Probability[M], M measure.Weighted[M, SD, R, P]] struct {
	fn   Func[SD, SC]
	base M
}

// Pushed is the probability measure obtained by normalizing a Pushforward.
type Pushed[SD, SC any, R scalar.Real, P measure.Probability[M], M measure.Weighted[M, SD, R, P]] struct {
	fn   Func[SD, SC]
	base P
}

// Push composes f with m, producing a measure on f's codomain.
func Push[SD, SC any, R scalar.Real, P measure.Probability[M], M measure.Weighted[M, SD, R, P]](
	f Func[SD, SC], m M,
) Pushforward[SD, SC, R, P, M] {
	return Pushforward[SD, SC, R, P, M]{fn: f, base: m}
}

// Func returns the function the measure is pushed along.
func (p Pushforward[SD, SC, R, P, M]) Func() Func[SD, SC] { return p.fn }

// Base returns the domain measure.
func (p Pushforward[SD, SC, R, P, M]) Base() M { return p.base }

// Image returns p without its scaling structure.
func (p Pushforward[SD, SC, R, P, M]) Image() Image[SD, SC, R, P] {
	return ImageOf[SD, SC, R, P](p.fn, p.base)
}

// Measure returns the base measurement of the preimage of s.
func (p Pushforward[SD, SC, R, P, M]) Measure(s SC) R {
	return p.Image().Measure(s)
}

// Normalize normalizes the base measure and pushes the result along the same
// function. It fails iff the base fails.
func (p Pushforward[SD, SC, R, P, M]) Normalize() (Pushed[SD, SC, R, P, M], error) {
	q, err := p.base.Normalize()
	if err != nil {
		return Pushed[SD, SC, R, P, M]{}, measure.Errorf(tagPushNormalize, err)
	}

	return Pushed[SD, SC, R, P, M]{fn: p.fn, base: q}, nil
}

// Scale scales the base measure.
func (p Pushforward[SD, SC, R, P, M]) Scale(c R) Pushforward[SD, SC, R, P, M] {
	return Pushforward[SD, SC, R, P, M]{fn: p.fn, base: p.base.Scale(c)}
}

// Base returns the normalized domain probability measure.
func (q Pushed[SD, SC, R, P, M]) Base() P { return q.base }

// AsMeasure implements measure.Probability.
func (q Pushed[SD, SC, R, P, M]) AsMeasure() Pushforward[SD, SC, R, P, M] {
	return Pushforward[SD, SC, R, P, M]{fn: q.fn, base: q.base.AsMeasure()}
}

// PointPushforward is a Pushforward whose codomain has singletons, so it can
// be evaluated at points.
type PointPushforward[X, SD, SC any, R scalar.Real, P measure.Probability[M], M measure.Weighted[M, SD, R, P]] struct {
	Pushforward[SD, SC, R, P, M]
	codomain space.PointSpace[X, SC]
}

// PushAt is Push with point evaluation on codomain.
func PushAt[X, SD, SC any, R scalar.Real, P measure.Probability[M], M measure.Weighted[M, SD, R, P]](
	f Func[SD, SC], m M, codomain space.PointSpace[X, SC],
) PointPushforward[X, SD, SC, R, P, M] {
	return PointPushforward[X, SD, SC, R, P, M]{
		Pushforward: Push[SD, SC, R, P, M](f, m),
		codomain:    codomain,
	}
}

// MeasureAt returns the base measurement of the preimage of {y}.
func (p PointPushforward[X, SD, SC, R, P, M]) MeasureAt(y X) R {
	return space.WithPointSubset(p.codomain, y, func(s SC) R {
		return WithPreimage(p.fn, s, p.base.Measure)
	})
}

// Scale scales the base measure, keeping point evaluation.
func (p PointPushforward[X, SD, SC, R, P, M]) Scale(c R) PointPushforward[X, SD, SC, R, P, M] {
	return PointPushforward[X, SD, SC, R, P, M]{
		Pushforward: p.Pushforward.Scale(c),
		codomain:    p.codomain,
	}
}
