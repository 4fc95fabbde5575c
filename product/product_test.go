// SPDX-License-Identifier: MIT

package product_test

import (
	"testing"

	"github.com/katalvlaran/mes/boolean"
	"github.com/katalvlaran/mes/mapping"
	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/product"
	"github.com/katalvlaran/mes/sigma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	bset  = boolean.Subset
	coin  = boolean.Measure[float64]
	bprob = boolean.Prob[float64]
	pair  = product.Pair[bool, bool]
	pset  = product.Subset[bset, bset]
	pm    = product.Measure[bset, bset, float64, bprob, bprob, coin, coin]
	pprob = product.Prob[bset, bset, float64, bprob, bprob, coin, coin]
)

var points = []pair{{true, true}, {true, false}, {false, true}, {false, false}}

func square() product.PointSpace[bool, bool, bset, bset] {
	return product.NewPoint[bool, bool, bset, bset](boolean.Space{}, boolean.Space{})
}

// fromMask builds the subset holding points[i] for every set bit i.
func fromMask(sp product.PointSpace[bool, bool, bset, bset], mask int) pset {
	parts := make([]pset, 0, len(points))
	for i, p := range points {
		if mask&(1<<i) != 0 {
			parts = append(parts, sp.PointSubset(p))
		}
	}
	return sp.Union(parts...)
}

func assertMask(t *testing.T, sp product.PointSpace[bool, bool, bset, bset], s pset, mask int) {
	t.Helper()
	for i, p := range points {
		assert.Equal(t, mask&(1<<i) != 0, sp.Contains(s, p), "point %+v mask %04b", p, mask)
	}
}

// TestAlgebra_AgreesWithPointSets compares rectangle algebra with pointwise membership.
func TestAlgebra_AgreesWithPointSets(t *testing.T) {
	t.Parallel()
	sp := square()
	for a := 0; a < 16; a++ {
		sa := fromMask(sp, a)
		assertMask(t, sp, sa, a)
		assertMask(t, sp, sp.Complement(sa), ^a&0xF)
		assert.Equal(t, a == 0, sp.IsEmpty(sa))
		assert.True(t, sigma.Equal[pset](sp, sa, sp.Complement(sp.Complement(sa))), "involution %04b", a)
		for b := 0; b < 16; b++ {
			sb := fromMask(sp, b)
			assertMask(t, sp, sp.Union(sa, sb), a|b)
			assertMask(t, sp, sp.Intersection(sa, sb), a&b)
			assertMask(t, sp, sigma.Difference[pset](sp, sa, sb), a&^b)
		}
	}
}

// TestAlgebra_EmptyFull checks the empty and full subsets.
func TestAlgebra_EmptyFull(t *testing.T) {
	t.Parallel()
	sp := square()
	assert.True(t, sp.IsEmpty(sp.Empty()))
	assert.True(t, sp.IsEmpty(sp.Complement(sp.Full())))
	assert.True(t, sigma.Equal[pset](sp, sp.Full(), sp.Complement(sp.Empty())))
	assert.True(t, sp.IsEmpty(sp.Rectangle(boolean.None, boolean.Both)))
	assert.Empty(t, sp.Rectangle(boolean.OnlyTrue, boolean.None).Rects())
	assert.Len(t, product.Rectangle(boolean.OnlyTrue, boolean.None).Rects(), 1)
	assert.True(t, sigma.Equal[pset](sp, sp.Full(), sp.Union(sp.Empty(), sp.Full())))
	assert.True(t, sigma.Equal[pset](sp, sp.Full(), sp.Intersection()))
}

// TestAlgebra_UnionKeepsRectanglesDisjoint ensures Union keeps rectangles disjoint.
func TestAlgebra_UnionKeepsRectanglesDisjoint(t *testing.T) {
	t.Parallel()
	sp := square()
	a := sp.Rectangle(boolean.OnlyTrue, boolean.Both)
	b := sp.Rectangle(boolean.Both, boolean.OnlyTrue)
	u := sp.Union(a, b)

	rects := u.Rects()
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			x := product.Rectangle(rects[i].Left, rects[i].Right)
			y := product.Rectangle(rects[j].Left, rects[j].Right)
			assert.True(t, sigma.Disjoint[pset](sp, x, y))
		}
	}
	// Three of four points.
	m := pm{Left: coin{True: 1, False: 1}, Right: coin{True: 1, False: 1}}
	assert.Equal(t, 3.0, m.Measure(u))
}

// TestProjections verifies preimages under both projections.
func TestProjections(t *testing.T) {
	t.Parallel()
	left := product.Left[bset, bset]{Right: boolean.Space{}}
	assert.Equal(t, product.Rectangle(boolean.OnlyTrue, boolean.Both), left.Preimage(boolean.OnlyTrue))

	right := product.Right[bset, bset]{Left: boolean.Space{}}
	assert.Equal(t, product.Rectangle(boolean.Both, boolean.OnlyFalse), right.Preimage(boolean.OnlyFalse))

	sp := square()
	s := left.Preimage(boolean.OnlyTrue)
	assert.True(t, sp.Contains(s, pair{true, false}))
	assert.False(t, sp.Contains(s, pair{false, true}))
}

// TestMeasure checks the product measure on rectangles and unions.
func TestMeasure(t *testing.T) {
	t.Parallel()
	sp := square()
	m := pm{Left: coin{True: 3, False: 1}, Right: coin{True: 1, False: 1}}

	assert.Equal(t, 8.0, m.Measure(sp.Full()))
	assert.Equal(t, 0.0, m.Measure(sp.Empty()))
	assert.Equal(t, 3.0, m.Measure(sp.PointSubset(pair{true, false})))
	assert.Equal(t, 16.0, m.Scale(2).Measure(sp.Full()))

	// Additivity over a subset and its complement.
	s := fromMask(sp, 0b0110)
	assert.InDelta(t, 8.0, m.Measure(s)+m.Measure(sp.Complement(s)), 1e-12)

	p, err := m.Normalize()
	require.NoError(t, err)
	assert.Equal(t, 0.75, p.Left.True)
	assert.Equal(t, 0.5, p.Right.True)
	back := p.AsMeasure()
	assert.InDelta(t, 1.0, back.Measure(sp.Full()), 1e-12)
	assert.InDelta(t, 0.375, back.Measure(sp.PointSubset(pair{true, true})), 1e-12)

	var _ measure.Probability[pm] = pprob{}
}

// TestMeasure_NormalizeFailure ensures a zero factor fails to normalize.
func TestMeasure_NormalizeFailure(t *testing.T) {
	t.Parallel()
	for _, m := range []pm{
		{Left: coin{}, Right: coin{True: 1}},
		{Left: coin{True: 1}, Right: coin{}},
	} {
		_, err := m.Normalize()
		require.ErrorIs(t, err, measure.ErrNotNormalizable)
		assert.Contains(t, err.Error(), "product.Measure.Normalize")
	}
}

// TestDirac covers the product Dirac measure.
func TestDirac(t *testing.T) {
	t.Parallel()
	sp := square()
	dirac := product.Dirac[bool, bool, bset, bset, float64, bprob, bprob, coin, coin](
		boolean.Dirac[float64], boolean.Dirac[float64],
	)
	d := dirac(pair{false, true})
	for _, p := range points {
		want := 0.0
		if p == (pair{false, true}) {
			want = 1
		}
		assert.Equal(t, want, d.Measure(sp.PointSubset(p)))
	}
}

// TestFork checks preimages of a pair of functions.
func TestFork(t *testing.T) {
	t.Parallel()
	sp := square()
	not := boolean.Indicator[bset]{Domain: boolean.Space{}, TruePart: boolean.OnlyFalse}
	fork := product.Fork[bset, bset, bset]{Domain: boolean.Space{}, F: mapping.Identity[bset]{}, G: not}

	assert.Equal(t, boolean.OnlyTrue, fork.Preimage(sp.PointSubset(pair{true, false})))
	assert.Equal(t, boolean.None, fork.Preimage(sp.PointSubset(pair{true, true})))
	assert.Equal(t, boolean.Both, fork.Preimage(sp.Full()))

	pushed := mapping.PushAt[pair, bset, pset, float64, bprob](fork, coin{True: 3, False: 1}, sp)
	assert.Equal(t, 3.0, pushed.MeasureAt(pair{true, false}))
	assert.Equal(t, 1.0, pushed.MeasureAt(pair{false, true}))
	assert.Equal(t, 0.0, pushed.MeasureAt(pair{false, false}))

	// Projecting the fork back recovers each component.
	left := mapping.Compose[bset, pset, bset](product.Left[bset, bset]{Right: boolean.Space{}}, fork)
	assert.Equal(t, boolean.OnlyTrue, left.Preimage(boolean.OnlyTrue))
}

// TestCross checks preimages of a product of functions.
func TestCross(t *testing.T) {
	t.Parallel()
	sp := square()
	not := boolean.Indicator[bset]{Domain: boolean.Space{}, TruePart: boolean.OnlyFalse}
	cross := product.Cross[bset, bset, bset, bset]{F: not, G: mapping.Identity[bset]{}}

	pre := cross.Preimage(sp.PointSubset(pair{true, false}))
	assertMask(t, sp, pre, 0b1000) // {(false, false)}
}
