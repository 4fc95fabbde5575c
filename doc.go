// SPDX-License-Identifier: MIT

// Package mes is a small measure-theory toolkit: measurable spaces, their
// sigma-algebras, measures on them, and measurable functions that pull
// subsets back and push measures forward. Continuation forms of the core
// operations are built on code.hybscloud.com/kont with one-shot continuations.
//
// Everything is organized in subpackages, leaves first:
//
//	scalar/   Real constraint and the Normalize primitive
//	sigma/    Algebra contract, De Morgan Derive, Equal/Includes/Difference
//	space/    Space and PointSpace contracts, Upcast
//	measure/  Measure, PointMeasure, Weighted, Probability, DiracFunc
//	mapping/  Func, Identity, Compose, Const, Image/Push/PushAt pushforwards
//
// Concrete spaces instantiate the contracts:
//
//	unit/     one point; Terminal maps anything onto it
//	boolean/  two points; Indicator
//	discrete/ {0..n-1} with bitset subsets; Map
//	product/  pairs with disjoint-rectangle subsets; Left/Right/Fork/Cross
//	reals/    interval unions; Gaussian, Dirac, Affine
//	vector/   box unions in R^n; multivariate Gaussian, Dirac, Coordinate
//	variant/  tuple measures over enumerated alternatives
//	matrix/   dense float64 linear algebra backing vector
//
// Quick example, a biased coin:
//
//	coin := boolean.Measure[float64]{True: 3, False: 1}
//	p, err := coin.Normalize()   // p.True == 0.75
//	_ = coin.Measure(boolean.Both) // 4
//
// Normalization is the only failure path: a measure whose total weight is
// zero, infinite or NaN does not normalize, and the error (wrapping
// scalar.ErrNotNormalizable) propagates through every pushforward.
package mes
