// SPDX-License-Identifier: MIT

// Package measure defines the measure contract and its capabilities.
//
// 🚀 What is a Measure?
//
//	A Measure[S, R, P] assigns a scalar R to every measurable subset S of its
//	space and knows how to normalize itself into a probability measure P.
//
// Capabilities:
//
//   - PointMeasure: MeasureAt(x). On discrete spaces it agrees with
//     Measure(PointSubset(x)); on continuous spaces it is a density and need
//     not agree with the measure of any subset.
//   - Weighted: Scale(c) multiplies every measurement by c ≥ 0.
//   - Additive: Add(m) for families closed under addition.
//   - Probability: AsMeasure() converts a probability measure back into a
//     measure of total weight exactly one.
//   - DiracFunc: builds a point mass at a given point.
//
// Normalization:
//
//	Normalize fails exactly when the total weight is zero, infinite or NaN,
//	returning ErrNotNormalizable (the scalar sentinel) wrapped with the
//	measure's tag. The result does not depend on any positive rescaling of
//	the source.
//
// Continuation helpers:
//
//	WithMeasure, WithMeasureAt and WithNormalized hand the computed value to
//	a one-shot continuation; WithNormalized never calls it on failure.
package measure
