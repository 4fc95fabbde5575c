// SPDX-License-Identifier: MIT

package reals

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeVariance is returned when a Gaussian is built with a
	// negative (or NaN) variance.
	ErrNegativeVariance = errors.New("reals: negative variance")

	// ErrEmptyInterval is returned by NewInterval when the bounds describe
	// no points.
	ErrEmptyInterval = errors.New("reals: empty interval")
)

// realsErrorf prefixes err with the operation tag.
func realsErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
