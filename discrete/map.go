// SPDX-License-Identifier: MIT

package discrete

// Map is a measurable function between finite spaces, tabulated from its
// forward action.
type Map struct {
	from  Space
	to    Space
	table []int
}

// NewMap tabulates f on every point of from. Every image must lie in to.
func NewMap(from, to Space, f func(int) int) (Map, error) {
	table := make([]int, from.Size())
	for i := range table {
		y := f(i)
		if y < 0 || y >= to.Size() {
			return Map{}, discreteErrorf("discrete.NewMap", ErrOutOfRange)
		}
		table[i] = y
	}

	return Map{from: from, to: to, table: table}, nil
}

// MapOf builds a Map from an explicit image table; table[i] is the image of i.
func MapOf(from, to Space, table []int) (Map, error) {
	if len(table) != from.Size() {
		return Map{}, discreteErrorf("discrete.MapOf", ErrSizeMismatch)
	}

	return NewMap(from, to, func(i int) int { return table[i] })
}

// Apply returns the image of x. It panics if x is outside the domain.
func (f Map) Apply(x int) int { return f.table[x] }

// Domain returns the domain space.
func (f Map) Domain() Space { return f.from }

// Codomain returns the codomain space.
func (f Map) Codomain() Space { return f.to }

// Preimage implements mapping.Func.
func (f Map) Preimage(s Subset) Subset {
	out := f.from.alloc()
	for i, y := range f.table {
		if s.Has(y) {
			out.words[i/wordBits] |= 1 << (uint(i) % wordBits)
		}
	}

	return out
}
