// SPDX-License-Identifier: MIT

// Package reals implements the real line as a measurable space.
//
// Subsets (Set) are finite unions of intervals, kept in canonical form:
// sorted, pairwise disjoint, non-empty and non-touching, so [0, 1) ∪ [1, 2]
// is stored as [0, 2] while [0, 1) ∪ (1, 2] stays split. Canonical form makes
// two Sets equal exactly when their interval lists are equal. Infinite
// endpoints are always open; Full is (-∞, +∞).
//
// Algorithms:
//
//	Union         concatenate, sort, merge        O(n log n)
//	Complement    walk the gaps                    O(n)
//	Intersection  two-pointer sweep                O(n + m)
//
// Measures:
//
//	Gaussian  weight · N(mean, variance); interval mass via the error
//	          function, MeasureAt is the density. Zero variance is a point
//	          mass at the mean.
//	Dirac     weight concentrated on one point; MeasureAt is +Inf there.
//
// Affine is the measurable function x ↦ A·x + B.
package reals
