// SPDX-License-Identifier: MIT

// Package vector implements R^n as a measurable space.
//
// A Subset is a finite union of pairwise disjoint boxes; a Box carries one
// reals.Set per coordinate. Disjointness is maintained by every operation,
// so measures add box contributions without inclusion–exclusion:
//
//	Complement(B)  B₀ᶜ×R×…×R  ∪  B₀×B₁ᶜ×R×…  ∪ …  ∪  B₀×…×Bₙ₋₂×Bₙ₋₁ᶜ
//	A ∪ B          A ∪ (B ∩ Aᶜ)
//	A ∩ B          pairwise box intersections
//
// Boxes with an empty side are pruned, so IsEmpty is a length check.
//
// Measures:
//
//	Gaussian  weight · N(mean, cov). MeasureAt is the density; the
//	          precision is L⁻ᵀ·L⁻¹ from the Cholesky factor, evaluated with
//	          matrix.QuadForm. Box mass is exact (a product of
//	          one-dimensional masses) when the covariance is diagonal within
//	          the configured epsilon, exact through the marginal for a slab
//	          constrained on one axis, and a deterministic midpoint grid over
//	          mean ± span·σ otherwise.
//	Dirac     weight concentrated on one point; MeasureAt is +Inf there.
//
// Coordinate is the projection x ↦ x[k] onto the real line; its Push maps a
// Gaussian to its marginal.
//
// Numeric behaviour is configured through functional options (WithEpsilon,
// WithGridResolution, WithSpan); nonsensical option values panic.
package vector
