// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different dimensions, e.g.
	// a mean of length 2 with a 3×3 covariance.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrInvalidDimension indicates a dimension < 1 or a coordinate index
	// outside [0, dim).
	ErrInvalidDimension = errors.New("vector: invalid dimension or coordinate")

	// ErrNotPositiveDefinite is returned when a covariance is asymmetric or
	// not positive definite.
	ErrNotPositiveDefinite = errors.New("vector: covariance is not positive definite")

	// ErrBadOption is the panic value of option constructors given
	// nonsensical values.
	ErrBadOption = errors.New("vector: bad option value")
)

// vectorErrorf prefixes err with the operation tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
