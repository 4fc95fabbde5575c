// SPDX-License-Identifier: MIT

package discrete

import (
	"math/bits"

	"github.com/katalvlaran/mes/space"
)

const wordBits = 64

// Subset is a set of points of a Space, stored as a bitset.
// The zero Subset is empty in every space.
type Subset struct {
	words []uint64
}

// Has reports whether i is in s.
func (s Subset) Has(i int) bool {
	if i < 0 || i/wordBits >= len(s.words) {
		return false
	}

	return s.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Count returns the number of points in s.
func (s Subset) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}

	return n
}

// Indices returns the points of s in increasing order.
func (s Subset) Indices() []int {
	out := make([]int, 0, s.Count())
	for wi, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			out = append(out, wi*wordBits+b)
			w &= w - 1
		}
	}

	return out
}

// Equal reports whether s and o contain the same points.
func (s Subset) Equal(o Subset) bool {
	n := max(len(s.words), len(o.words))
	for i := 0; i < n; i++ {
		if word(s, i) != word(o, i) {
			return false
		}
	}

	return true
}

func word(s Subset, i int) uint64 {
	if i < len(s.words) {
		return s.words[i]
	}

	return 0
}

// Space is the finite space {0, …, n-1}.
type Space struct {
	n int
}

var _ space.PointSpace[int, Subset] = Space{}

// NewSpace returns the space with n points.
func NewSpace(n int) (Space, error) {
	if n < 0 {
		return Space{}, discreteErrorf("discrete.NewSpace", ErrNegativeSize)
	}

	return Space{n: n}, nil
}

// Size returns the number of points.
func (sp Space) Size() int { return sp.n }

func (sp Space) nwords() int { return (sp.n + wordBits - 1) / wordBits }

// lastMask clears the bits past n in the final word.
func (sp Space) lastMask() uint64 {
	r := sp.n % wordBits
	if r == 0 {
		return ^uint64(0)
	}

	return (uint64(1) << uint(r)) - 1
}

func (sp Space) alloc() Subset { return Subset{words: make([]uint64, sp.nwords())} }

// Of returns the subset holding the given points.
func (sp Space) Of(points ...int) (Subset, error) {
	out := sp.alloc()
	for _, i := range points {
		if i < 0 || i >= sp.n {
			return Subset{}, discreteErrorf("discrete.Space.Of", ErrOutOfRange)
		}
		out.words[i/wordBits] |= 1 << (uint(i) % wordBits)
	}

	return out, nil
}

// Empty implements sigma.Algebra.
func (sp Space) Empty() Subset { return sp.alloc() }

// Full implements sigma.Algebra.
func (sp Space) Full() Subset {
	out := sp.alloc()
	for i := range out.words {
		out.words[i] = ^uint64(0)
	}
	if k := len(out.words); k > 0 {
		out.words[k-1] &= sp.lastMask()
	}

	return out
}

// IsEmpty implements sigma.Algebra.
func (sp Space) IsEmpty(s Subset) bool {
	for i := 0; i < sp.nwords(); i++ {
		if word(s, i) != 0 {
			return false
		}
	}

	return true
}

// Complement implements sigma.Algebra.
func (sp Space) Complement(s Subset) Subset {
	out := sp.alloc()
	for i := range out.words {
		out.words[i] = ^word(s, i)
	}
	if k := len(out.words); k > 0 {
		out.words[k-1] &= sp.lastMask()
	}

	return out
}

// Union implements sigma.Algebra. The scan stops once the result is full.
func (sp Space) Union(subsets ...Subset) Subset {
	out := sp.alloc()
	full := sp.Full()
	for _, s := range subsets {
		for i := range out.words {
			out.words[i] |= word(s, i) & full.words[i]
		}
		if out.Equal(full) {
			break
		}
	}

	return out
}

// Intersection implements sigma.Algebra. The scan stops once the result is
// empty.
func (sp Space) Intersection(subsets ...Subset) Subset {
	out := sp.Full()
	for _, s := range subsets {
		for i := range out.words {
			out.words[i] &= word(s, i)
		}
		if sp.IsEmpty(out) {
			break
		}
	}

	return out
}

// Contains implements space.Space.
func (sp Space) Contains(s Subset, x int) bool {
	return x >= 0 && x < sp.n && s.Has(x)
}

// PointSubset implements space.PointSpace. Points outside the space give the
// empty subset.
func (sp Space) PointSubset(x int) Subset {
	out := sp.alloc()
	if x >= 0 && x < sp.n {
		out.words[x/wordBits] = 1 << (uint(x) % wordBits)
	}

	return out
}
