// SPDX-License-Identifier: MIT

// Package sigma defines the sigma-algebra contract: the operation set a
// measurable space attaches to its subsets.
//
// What & Why:
//
//	A subset is an opaque value of type S. The algebra is the only way to
//	produce and combine subsets, which lets concrete spaces choose whatever
//	representation fits (two flags for a two-point space, a bitset for a
//	finite space, an interval union for the real line).
//
// Contract (Algebra[S]):
//
//	Empty(), Full()          canonical subsets
//	IsEmpty(s)               decided by value inspection
//	Complement(s)            complement of complement is the same set
//	Union(s...)              finite union; Union() is Empty()
//	Intersection(s...)       finite intersection; Intersection() is Full()
//
// Derived algebra:
//
//	Spaces that only know how to take unions implement Base[S] and call
//	Derive, which supplies Intersection by De Morgan's law. Direct
//	implementations are preferred where cheaper.
//
// Semantic helpers:
//
//	Equal, Includes, Difference and Disjoint are written purely against the
//	contract, so they work for every space. Equal is semantic: two different
//	representations of the same set compare equal.
//
// Continuation helpers:
//
//	WithEmpty, WithFull, WithComplement, WithUnion and WithIntersection hand
//	the fresh subset to a one-shot continuation (see package cont).
package sigma
