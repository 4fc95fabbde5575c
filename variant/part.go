// SPDX-License-Identifier: MIT

package variant

import (
	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/scalar"
)

// Part is the type-erased view of one variant's sub-measure.
type Part[R scalar.Real] interface {
	// Total returns the weight of the whole variant.
	Total() R

	// NormalizePart normalizes the sub-measure.
	NormalizePart() (PartProb[R], error)

	// ScalePart multiplies every measurement by c.
	ScalePart(c R) Part[R]
}

// PartProb is the type-erased view of one variant's probability measure.
type PartProb[R scalar.Real] interface {
	// AsPart converts back into a Part of total weight one.
	AsPart() Part[R]
}

type lifted[M measure.Weighted[M, S, R, P], S any, R scalar.Real, P measure.Probability[M]] struct {
	m    M
	full S
}

type liftedProb[M measure.Weighted[M, S, R, P], S any, R scalar.Real, P measure.Probability[M]] struct {
	p    P
	full S
}

// Lift wraps m, whose space has full subset full, as a Part.
func Lift[M measure.Weighted[M, S, R, P], S any, R scalar.Real, P measure.Probability[M]](m M, full S) Part[R] {
	return lifted[M, S, R, P]{m: m, full: full}
}

// Base returns the measure of type M wrapped by a lifted part.
func Base[M any, R scalar.Real](p Part[R]) (M, bool) {
	b, ok := p.(interface{ Base() M })
	if !ok {
		var zero M
		return zero, false
	}

	return b.Base(), true
}

// ProbBase returns the probability measure of type P wrapped by a lifted
// part probability.
func ProbBase[P any, R scalar.Real](p PartProb[R]) (P, bool) {
	b, ok := p.(interface{ Base() P })
	if !ok {
		var zero P
		return zero, false
	}

	return b.Base(), true
}

func (l lifted[M, S, R, P]) Base() M { return l.m }

func (l lifted[M, S, R, P]) Total() R { return l.m.Measure(l.full) }

func (l lifted[M, S, R, P]) NormalizePart() (PartProb[R], error) {
	p, err := l.m.Normalize()
	if err != nil {
		return nil, err
	}

	return liftedProb[M, S, R, P]{p: p, full: l.full}, nil
}

func (l lifted[M, S, R, P]) ScalePart(c R) Part[R] {
	return lifted[M, S, R, P]{m: l.m.Scale(c), full: l.full}
}

func (q liftedProb[M, S, R, P]) Base() P { return q.p }

func (q liftedProb[M, S, R, P]) AsPart() Part[R] {
	return lifted[M, S, R, P]{m: q.p.AsMeasure(), full: q.full}
}
