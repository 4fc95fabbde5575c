// SPDX-License-Identifier: MIT

// Package discrete implements the finite measurable space {0, …, n-1}.
//
// Subsets are bitsets packed into uint64 words; every subset of a Space is
// measurable, so the algebra is the full power set. Bits at positions ≥ n are
// kept clear, which makes structural equality (Subset.Equal) coincide with
// set equality.
//
// Measures hold one weight per point. Map is a measurable function between
// two finite spaces given by its forward action; its preimage is computed by
// enumerating the domain, which is exact and O(n).
//
// Complexity:
//
//	Complement, Union, Intersection: O(k·⌈n/64⌉) for k operands
//	Measure(s):                       O(n)
//	Map.Preimage:                     O(n)
package discrete
