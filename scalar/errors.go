// SPDX-License-Identifier: MIT

package scalar

import "errors"

// ErrNotNormalizable is returned when a list of weights cannot be rescaled to
// sum to one: the sum is zero, ±Inf or NaN, or its reciprocal overflows.
var ErrNotNormalizable = errors.New("scalar: weights cannot be normalized")
