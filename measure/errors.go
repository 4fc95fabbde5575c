// SPDX-License-Identifier: MIT

package measure

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mes/scalar"
)

var (
	// ErrNotNormalizable is the normalization failure shared by all measures.
	// It is the same sentinel as scalar.ErrNotNormalizable.
	ErrNotNormalizable = scalar.ErrNotNormalizable

	// ErrNegativeScale is returned by Rescale for c < 0.
	ErrNegativeScale = errors.New("measure: negative scale factor")

	// ErrNaNInf is returned by Rescale for a NaN or ±Inf factor.
	ErrNaNInf = errors.New("measure: NaN or Inf scale factor")
)

// Errorf wraps err with a tag naming the operation ("boolean.Measure.Normalize").
// Concrete measure packages use it to keep a uniform "tag: cause" shape.
func Errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
