// SPDX-License-Identifier: MIT

package sigma

// Difference returns x \ y = x ∩ yᶜ.
func Difference[S any](a Algebra[S], x, y S) S {
	return a.Intersection(x, a.Complement(y))
}

// SymmetricDifference returns (x \ y) ∪ (y \ x).
func SymmetricDifference[S any](a Algebra[S], x, y S) S {
	return a.Union(Difference(a, x, y), Difference(a, y, x))
}

// Equal reports whether x and y denote the same set, regardless of how each
// is represented.
func Equal[S any](a Algebra[S], x, y S) bool {
	return a.IsEmpty(SymmetricDifference(a, x, y))
}

// Includes reports whether x ⊆ y.
func Includes[S any](a Algebra[S], x, y S) bool {
	return a.IsEmpty(Difference(a, x, y))
}

// Disjoint reports whether x ∩ y is empty.
func Disjoint[S any](a Algebra[S], x, y S) bool {
	return a.IsEmpty(a.Intersection(x, y))
}

// IsFull reports whether s is the whole space.
func IsFull[S any](a Algebra[S], s S) bool {
	return a.IsEmpty(a.Complement(s))
}
