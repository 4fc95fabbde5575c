// SPDX-License-Identifier: MIT

// Package boolean implements the two-point space {true, false}.
//
// Subsets are a pair of inclusion flags, so every algebra operation is a
// couple of boolean operations and unions stop scanning as soon as both flags
// are set. Measures are a weight per outcome; their probability measure
// stores only P(true).
//
// Quick example:
//
//	m := boolean.Measure[float64]{True: 3, False: 1}
//	m.Measure(boolean.Space{}.Full())   // 4
//	p, _ := m.Normalize()               // p.True == 0.75
//
// Indicator describes a function from any space into the booleans by its
// true-partition, the preimage of {true}.
package boolean
