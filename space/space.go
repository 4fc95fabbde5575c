// SPDX-License-Identifier: MIT

package space

import (
	"code.hybscloud.com/kont"

	"github.com/katalvlaran/mes/sigma"
)

// Space is a measurable space with points of type X and measurable subsets
// of type S.
type Space[X, S any] interface {
	sigma.Algebra[S]

	// Contains reports whether x belongs to s.
	Contains(s S, x X) bool
}

// PointSpace is a Space in which every point forms a measurable singleton.
type PointSpace[X, S any] interface {
	Space[X, S]

	// PointSubset returns the minimal subset containing exactly x.
	PointSubset(x X) S
}

// Upcast returns s unchanged, viewed as valid for the caller's scope.
func Upcast[S any](s S) S { return s }

// WithPointSubset passes the singleton {x} to k and returns k's result.
func WithPointSubset[X, S, R any](sp PointSpace[X, S], x X, k func(S) R) R {
	return kont.RunWith(kont.Suspend(func(next func(S) R) R {
		return next(sp.PointSubset(x))
	}), kont.Once(k).Resume)
}
