// SPDX-License-Identifier: MIT

package discrete

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize is returned by NewSpace for n < 0.
	ErrNegativeSize = errors.New("discrete: negative space size")

	// ErrOutOfRange indicates a point index outside [0, n).
	ErrOutOfRange = errors.New("discrete: point out of range")

	// ErrSizeMismatch indicates a weight vector or table whose length differs
	// from the size of its space.
	ErrSizeMismatch = errors.New("discrete: size mismatch")
)

// discreteErrorf prefixes err with the operation tag.
func discreteErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
