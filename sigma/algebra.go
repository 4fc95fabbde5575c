// SPDX-License-Identifier: MIT

package sigma

// Base is the minimal operation set of a sigma-algebra over subsets of type
// S. Every subset produced by these operations must itself belong to the
// algebra.
type Base[S any] interface {
	// Empty returns the empty subset.
	Empty() S

	// Full returns the subset containing the whole space.
	Full() S

	// IsEmpty reports whether s contains no point.
	IsEmpty(s S) bool

	// Complement returns the subset of points not in s.
	Complement(s S) S

	// Union returns the union of a finite collection; Union() is Empty().
	Union(subsets ...S) S
}

// Algebra is a Base that also provides finite intersection.
type Algebra[S any] interface {
	Base[S]

	// Intersection returns the common part of a finite collection;
	// Intersection() is Full().
	Intersection(subsets ...S) S
}

// derived completes a Base with De Morgan intersection.
type derived[S any] struct {
	Base[S]
}

// Derive turns a Base into an Algebra whose Intersection is computed as
// the complement of the union of complements.
func Derive[S any](b Base[S]) Algebra[S] {
	if a, ok := b.(Algebra[S]); ok {
		return a
	}

	return derived[S]{Base: b}
}

// Intersection implements Algebra.
func (d derived[S]) Intersection(subsets ...S) S {
	return IntersectionOf(d.Base, subsets...)
}

// IntersectionOf computes ∩ sᵢ = (∪ sᵢᶜ)ᶜ using only Base operations.
// Complexity: one Complement per argument plus one Union and one Complement.
func IntersectionOf[S any](b Base[S], subsets ...S) S {
	complements := make([]S, len(subsets))
	for i, s := range subsets {
		complements[i] = b.Complement(s)
	}

	return b.Complement(b.Union(complements...))
}
