// SPDX-License-Identifier: MIT

// Package mapping implements measurable functions and the composition
// machinery built on them.
//
// A measurable function is characterized by its preimage, not its forward
// action: Func[SD, SC] maps subsets of the codomain (SC) to subsets of the
// domain (SD). Measures travel along preimages, which is what makes the
// pushforward possible without ever enumerating points.
//
// Provided:
//
//	Identity[S]      preimage is the identity
//	Compose(g, f)    g ∘ f; preimage runs g first, then f
//	Const            constant map to one codomain point
//	FuncOf           adapts a plain func(SC) SD
//	Push(f, m)       pushforward of m along f, a measure on f's codomain
//	PushAt(...)      pushforward with point evaluation on a PointSpace
//	Pullback(f, s)   the subset-level dual, f's preimage of s
//
// Type agreement between domains and codomains is checked by the compiler;
// nothing in this package fails at run time except normalization of a
// pushforward, which fails exactly when its base measure does.
package mapping
