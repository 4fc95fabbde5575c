// SPDX-License-Identifier: MIT

// Package unit implements the one-point space.
//
// The space has exactly two measurable subsets, empty and full, so a measure
// on it is a single weight and its only probability measure carries no data.
// Terminal maps any space onto the unit space; pushing a measure along it
// yields the measure's total weight.
package unit
