// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/mes/mapping"
	"github.com/katalvlaran/mes/reals"
)

// Coordinate is the projection x ↦ x[K] from R^n onto the real line.
type Coordinate struct {
	Space Space
	K     int
}

var _ mapping.Func[Subset, reals.Set[float64]] = Coordinate{}

// NewCoordinate returns the projection onto axis k of sp.
// It fails with ErrInvalidDimension unless 0 ≤ k < sp.Dim().
func NewCoordinate(sp Space, k int) (Coordinate, error) {
	if k < 0 || k >= sp.Dim() {
		return Coordinate{}, vectorErrorf("vector.NewCoordinate", ErrInvalidDimension)
	}

	return Coordinate{Space: sp, K: k}, nil
}

// Apply returns x[K].
func (c Coordinate) Apply(x Vec) float64 { return x[c.K] }

// Preimage implements mapping.Func: the slab R × … × s × … × R.
func (c Coordinate) Preimage(s reals.Set[float64]) Subset {
	b := c.Space.fullBox()
	b[c.K] = s

	return prune([]Box{b})
}

// Push returns the marginal of g along K, again a Gaussian with the same
// weight.
func (c Coordinate) Push(g Gaussian) reals.Gaussian[float64] {
	v, _ := g.Cov.At(c.K, c.K)

	return reals.Gaussian[float64]{Mean: g.Mean[c.K], Variance: v, Weight: g.Weight}
}
