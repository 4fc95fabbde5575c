// SPDX-License-Identifier: MIT

package boolean

import "github.com/katalvlaran/mes/sigma"

// Indicator is a measurable function into the booleans given by the set of
// points it sends to true.
type Indicator[SD any] struct {
	Domain   sigma.Algebra[SD]
	TruePart SD
}

// Preimage implements mapping.Func.
func (f Indicator[SD]) Preimage(s Subset) SD {
	switch {
	case s.True && s.False:
		return f.Domain.Full()
	case s.True:
		return f.TruePart
	case s.False:
		return f.Domain.Complement(f.TruePart)
	default:
		return f.Domain.Empty()
	}
}
