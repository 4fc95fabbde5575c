// SPDX-License-Identifier: MIT

package unit

import "github.com/katalvlaran/mes/sigma"

// Terminal is the unique function from a space with subsets SD to the unit
// space.
type Terminal[SD any] struct {
	Domain sigma.Algebra[SD]
}

// Preimage implements mapping.Func.
func (t Terminal[SD]) Preimage(s Subset) SD {
	if s.Full {
		return t.Domain.Full()
	}

	return t.Domain.Empty()
}
