// SPDX-License-Identifier: MIT

// Package variant measures spaces built from enumerated alternatives.
//
// A point of such a space is a tag i in [0, N) together with a point of
// variant i's own space. A Measure is the ordered tuple of per-variant
// sub-measures, each wrapped as a Part; its probability form is
//
//	Prob{Top: the first N-1 variant probabilities, Sub: per-variant normalized
//	     sub-probability, or nil when that variant carries no normalizable weight}
//
// The last top-level probability is implied (1 - ΣTop). A Measure with no
// variants never normalizes.
//
// On the tag space (a discrete.Space of size N) a Measure is an ordinary
// weighted measure: Measure(s) sums the totals of the variants in s.
//
// Lift adapts any weighted measure of this module (boolean, discrete,
// reals, vector, product, nested variant) into a Part.
package variant
