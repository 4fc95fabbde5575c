// SPDX-License-Identifier: MIT

// Package scalar defines the number representation shared by every measure
// in mes, plus the single numeric primitive the framework needs: rescaling
// a finite list of weights so that it sums to one.
//
// What is a Real?
//
//	Real is a type-set constraint over the built-in floating point kinds
//	(and named types derived from them). It supports the arithmetic used for
//	weighting (+, -, *, /, <) and can represent ±Inf and NaN, which is how
//	degenerate totals are detected.
//
// Normalization:
//
//	Normalize(nums)   in place; fails with ErrNotNormalizable when the sum
//	                  is zero, infinite or NaN, leaving nums untouched.
//	Normalized(n...)  copying variant; returns a fresh normalized slice.
//
// Failure is a recoverable outcome, not a panic: measure normalization calls
// these helpers and propagates the sentinel as its own failure.
//
// Complexity:
//
//	Normalize and Normalized run in O(n) time; Normalized allocates O(n).
package scalar
