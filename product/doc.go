// SPDX-License-Identifier: MIT

// Package product implements binary Cartesian products of measurable spaces.
//
// A point is a Pair. A subset is a finite union of pairwise disjoint
// rectangles L × R, where L and R are measurable subsets of the factors.
// Rectangles alone are not closed under complement, so the subset type keeps
// a list:
//
//	(L × R)ᶜ = (Lᶜ × Full) ∪ (L × Rᶜ)        two disjoint pieces
//	A ∩ B    = ⋃ (Lᵢ ∩ Lⱼ) × (Rᵢ ∩ Rⱼ)       pairwise
//	A ∪ B    = A ∪ (B ∩ Aᶜ)                  stays disjoint
//
// Rectangles with an empty side are dropped as soon as they appear, so the
// empty subset has no rectangles. Two subsets may describe the same set with
// different rectangles; compare them with sigma.Equal.
//
// Measure is the product of two weighted factor measures,
// μ ⊗ ν (L × R) = μ(L)·ν(R), summed over the rectangles of a subset.
//
// Functions: Left and Right are the coordinate projections, Fork pairs two
// functions with a common domain, and Cross applies one function per
// coordinate.
package product
