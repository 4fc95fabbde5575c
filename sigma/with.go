// SPDX-License-Identifier: MIT

package sigma

import "code.hybscloud.com/kont"

// The With* helpers hand a freshly computed subset to a one-shot
// continuation k, synchronously, and return k's result. The subset is only
// guaranteed meaningful while k runs.

// withK runs m with k wrapped as an affine continuation.
func withK[S, R any](m kont.Cont[R, S], k func(S) R) R {
	return kont.RunWith(m, kont.Once(k).Resume)
}

// WithEmpty passes the empty subset to k and returns k's result.
func WithEmpty[S, R any](a Base[S], k func(S) R) R {
	return withK(kont.Suspend(func(next func(S) R) R {
		return next(a.Empty())
	}), k)
}

// WithFull passes the full subset to k and returns k's result.
func WithFull[S, R any](a Base[S], k func(S) R) R {
	return withK(kont.Suspend(func(next func(S) R) R {
		return next(a.Full())
	}), k)
}

// WithComplement passes the complement of s to k.
func WithComplement[S, R any](a Base[S], s S, k func(S) R) R {
	return withK(kont.Suspend(func(next func(S) R) R {
		return next(a.Complement(s))
	}), k)
}

// WithUnion passes the union of subsets to k.
func WithUnion[S, R any](a Base[S], subsets []S, k func(S) R) R {
	return withK(kont.Suspend(func(next func(S) R) R {
		return next(a.Union(subsets...))
	}), k)
}

// WithIntersection passes the intersection of subsets to k.
func WithIntersection[S, R any](a Algebra[S], subsets []S, k func(S) R) R {
	return withK(kont.Suspend(func(next func(S) R) R {
		return next(a.Intersection(subsets...))
	}), k)
}
