// SPDX-License-Identifier: MIT

// Package space binds a point type to its sigma-algebra.
//
// A measurable space in mes is a value implementing Space[X, S]: the
// sigma.Algebra over subsets S plus point membership for points of type X.
// Spaces with singleton subsets additionally implement PointSpace, which is
// what Dirac measures and point evaluation of pushforwards rely on.
//
// Scope widening:
//
//	Upcast is the identity on subsets. Subsets are plain Go values, so a
//	subset computed inside a narrow scope is valid in any wider one; Upcast
//	exists to name that fact at composition sites.
package space
