// SPDX-License-Identifier: MIT

package discrete_test

import (
	"testing"

	"github.com/katalvlaran/mes/discrete"
	"github.com/katalvlaran/mes/mapping"
	"github.com/katalvlaran/mes/measure"
	"github.com/katalvlaran/mes/sigma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type (
	weights = discrete.Measure[float64]
	prob    = discrete.Prob[float64]
)

func mustSpace(t *testing.T, n int) discrete.Space {
	t.Helper()
	sp, err := discrete.NewSpace(n)
	require.NoError(t, err)
	return sp
}

func mustOf(t *testing.T, sp discrete.Space, points ...int) discrete.Subset {
	t.Helper()
	s, err := sp.Of(points...)
	require.NoError(t, err)
	return s
}

// TestNewSpace covers space construction and its errors.
func TestNewSpace(t *testing.T) {
	t.Parallel()
	_, err := discrete.NewSpace(-1)
	assert.ErrorIs(t, err, discrete.ErrNegativeSize)

	sp := mustSpace(t, 0)
	assert.True(t, sp.IsEmpty(sp.Full()))
}

// TestSpace_Algebra checks the algebra of index sets.
func TestSpace_Algebra(t *testing.T) {
	t.Parallel()
	for _, n := range []int{1, 5, 64, 65, 130} {
		sp := mustSpace(t, n)
		assert.Equal(t, n, sp.Full().Count())
		assert.True(t, sp.IsEmpty(sp.Empty()))
		assert.True(t, sp.Complement(sp.Empty()).Equal(sp.Full()), "n=%d", n)

		a := mustOf(t, sp, 0, n-1)
		b := mustOf(t, sp, n/2)
		assert.True(t, sigma.Equal[discrete.Subset](sp, a, sp.Complement(sp.Complement(a))))
		assert.True(t, sp.Union(a, sp.Complement(a)).Equal(sp.Full()))
		assert.True(t, sp.IsEmpty(sp.Intersection(a, sp.Complement(a))))
		assert.True(t, sp.Intersection(a, b).Equal(sigma.IntersectionOf[discrete.Subset](sp, a, b)))
		assert.Equal(t, n, sp.Union(a, b, sp.Complement(sp.Union(a, b))).Count())
	}
}

// TestSpace_Points covers PointSubset and Contains.
func TestSpace_Points(t *testing.T) {
	t.Parallel()
	sp := mustSpace(t, 70)
	s := sp.PointSubset(66)
	assert.Equal(t, []int{66}, s.Indices())
	assert.True(t, sp.Contains(s, 66))
	assert.False(t, sp.Contains(s, 65))
	assert.False(t, sp.Contains(sp.Full(), 70))
	assert.True(t, sp.IsEmpty(sp.PointSubset(-1)))

	_, err := sp.Of(3, 70)
	assert.ErrorIs(t, err, discrete.ErrOutOfRange)
}

// TestSubset_ZeroValueIsEmpty ensures the zero Subset is empty.
func TestSubset_ZeroValueIsEmpty(t *testing.T) {
	t.Parallel()
	sp := mustSpace(t, 10)
	var zero discrete.Subset
	assert.True(t, sp.IsEmpty(zero))
	assert.True(t, sp.Complement(zero).Equal(sp.Full()))
	assert.True(t, zero.Equal(sp.Empty()))
}

// TestMeasure checks masses, totals and normalization of a discrete measure.
func TestMeasure(t *testing.T) {
	t.Parallel()
	sp := mustSpace(t, 4)
	m, err := discrete.NewMeasure(sp, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, 10.0, m.Measure(sp.Full()))
	assert.Equal(t, 0.0, m.Measure(sp.Empty()))
	assert.Equal(t, 4.0, m.Measure(mustOf(t, sp, 0, 2)))
	for x := 0; x < 4; x++ {
		assert.Equal(t, m.Measure(sp.PointSubset(x)), m.MeasureAt(x))
	}
	assert.Equal(t, 0.0, m.MeasureAt(9))

	p, err := m.Normalize()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.1, 0.2, 0.3, 0.4}, p.Weights, 1e-12)
	assert.InDelta(t, 1.0, p.AsMeasure().Total(), 1e-12)
	assert.InDelta(t, 0.3, p.At(2), 1e-12)

	q, err := m.Scale(7).Normalize()
	require.NoError(t, err)
	assert.InDeltaSlice(t, p.Weights, q.Weights, 1e-12)

	_, err = discrete.NewMeasure(sp, []float64{1})
	assert.ErrorIs(t, err, discrete.ErrSizeMismatch)
}

// TestMeasure_NormalizeFailure ensures degenerate weights fail to normalize.
func TestMeasure_NormalizeFailure(t *testing.T) {
	t.Parallel()
	sp := mustSpace(t, 3)
	_, err := discrete.Uniform[float64](sp).Scale(0).Normalize()
	require.ErrorIs(t, err, measure.ErrNotNormalizable)

	_, err = discrete.Uniform[float64](mustSpace(t, 0)).Normalize()
	require.ErrorIs(t, err, measure.ErrNotNormalizable)
}

// TestMeasure_Add verifies addition pads the shorter measure with zeros.
func TestMeasure_Add(t *testing.T) {
	t.Parallel()
	a := weights{Weights: []float64{1, 2}}
	b := weights{Weights: []float64{0.5, 0.5, 3}}
	assert.Equal(t, []float64{1.5, 2.5, 3}, a.Add(b).Weights)
}

// TestDirac covers the discrete Dirac measure.
func TestDirac(t *testing.T) {
	t.Parallel()
	sp := mustSpace(t, 3)
	d := discrete.Dirac[float64](sp)(1)
	assert.Equal(t, []float64{0, 1, 0}, d.Weights)
	assert.Equal(t, 1.0, d.MeasureAt(1))
	assert.Equal(t, 0.0, d.MeasureAt(0))
}

// TestMap checks preimages of an index map.
func TestMap(t *testing.T) {
	t.Parallel()
	die, parity := mustSpace(t, 6), mustSpace(t, 2)
	mod2, err := discrete.NewMap(die, parity, func(i int) int { return i % 2 })
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2, 4}, mod2.Preimage(parity.PointSubset(0)).Indices())
	assert.True(t, mod2.Preimage(parity.Full()).Equal(die.Full()))
	assert.True(t, die.IsEmpty(mod2.Preimage(parity.Empty())))
	assert.Equal(t, 1, mod2.Apply(5))
	assert.Equal(t, die, mod2.Domain())
	assert.Equal(t, parity, mod2.Codomain())

	_, err = discrete.NewMap(die, parity, func(i int) int { return i })
	assert.ErrorIs(t, err, discrete.ErrOutOfRange)

	_, err = discrete.MapOf(die, parity, []int{0, 1})
	assert.ErrorIs(t, err, discrete.ErrSizeMismatch)
}

// TestPush_Histogram verifies that pushing along a map yields its histogram.
func TestPush_Histogram(t *testing.T) {
	t.Parallel()
	die, bins := mustSpace(t, 6), mustSpace(t, 3)
	f, err := discrete.MapOf(die, bins, []int{0, 0, 1, 1, 1, 2})
	require.NoError(t, err)
	m, err := discrete.NewMeasure(die, []float64{1, 1, 2, 2, 2, 4})
	require.NoError(t, err)

	hist := mapping.PushAt[int, discrete.Subset, discrete.Subset, float64, prob](f, m, bins)
	for y, want := range []float64{2, 6, 4} {
		assert.Equal(t, want, hist.MeasureAt(y))
	}
	assert.Equal(t, 12.0, hist.Measure(bins.Full()))

	q, err := hist.Normalize()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, q.AsMeasure().Measure(bins.PointSubset(1)), 1e-12)
}
