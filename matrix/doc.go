// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 linear algebra used by the
// multivariate measures.
//
// 🚀 What's inside?
//
//   - Matrix: a minimal interface over two-dimensional float64 arrays with
//     bounds-checked At/Set (errors, not panics).
//   - Dense: row-major implementation with a flat backing slice and an
//     optional NaN/Inf ingestion policy.
//   - Kernels: Mul, Transpose, MatVec, Inverse (Doolittle LU, no pivoting),
//     Det, Cholesky and QuadForm.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSymmetric,
//     IsZeroOffDiagonal, ... used by every kernel to fail fast.
//   - Options: functional options (WithEpsilon, WithValidateNaNInf,
//     WithNoValidateNaNInf) with documented Default* constants.
//
// Determinism:
//
//	Every kernel uses fixed loop orders, so results are bitwise reproducible
//	for the same inputs. *Dense operands take a flat-slice fast path; other
//	Matrix implementations go through At/Set and produce identical results.
//
// Errors:
//
//	All user-triggered failures return sentinels from errors.go wrapped with
//	the operation tag ("Inverse: LU: matrix: singular matrix"). Match them with
//	errors.Is. Option constructors panic on nonsensical arguments.
package matrix
