// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mes/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMul checks the product for Dense and generic operands.
func TestMul(t *testing.T) {
	t.Parallel()
	a := mustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	b := mustRows(t, []float64{7, 8}, []float64{9, 10}, []float64{11, 12})
	want := mustRows(t, []float64{58, 64}, []float64{139, 154})

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireClose(t, want, got, 0)

	got, err = matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireClose(t, want, got, 0)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestTranspose checks the transpose of a 2×3 matrix.
func TestTranspose(t *testing.T) {
	t.Parallel()
	a := mustRows(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	got, err := matrix.Transpose(a)
	require.NoError(t, err)
	requireClose(t, mustRows(t, []float64{1, 4}, []float64{2, 5}, []float64{3, 6}), got, 0)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec covers matrix-vector products and their errors.
func TestMatVec(t *testing.T) {
	t.Parallel()
	a := mustRows(t, []float64{1, 2}, []float64{3, 4}, []float64{5, 6})
	y, err := matrix.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, y)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestInverse_LowerTriangular verifies inversion of a triangular factor and the unpivoted failure.
func TestInverse_LowerTriangular(t *testing.T) {
	t.Parallel()
	l := mustRows(t, []float64{2, 0, 0}, []float64{1, 3, 0}, []float64{4, -1, 5})
	for _, m := range []matrix.Matrix{l, hide{l}} {
		inv, err := matrix.Inverse(m)
		require.NoError(t, err)
		id, _ := matrix.NewIdentity(3)
		prod, err := matrix.Mul(inv, l)
		require.NoError(t, err)
		requireClose(t, id, prod, 1e-12)

		v, _ := inv.At(0, 2)
		assert.Equal(t, 0.0, v, "inverse stays lower triangular")
	}

	_, err := matrix.Inverse(mustRows(t, []float64{0, 1}, []float64{1, 0}))
	require.ErrorIs(t, err, matrix.ErrSingular, "no pivoting")
	_, err = matrix.Inverse(mustRows(t, []float64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestInverse checks a 2×2 inverse and singular input.
func TestInverse(t *testing.T) {
	t.Parallel()
	a := mustRows(t, []float64{4, 7}, []float64{2, 6})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	requireClose(t, mustRows(t, []float64{0.6, -0.7}, []float64{-0.2, 0.4}), inv, 1e-12)

	id, _ := matrix.NewIdentity(2)
	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	requireClose(t, id, prod, 1e-12)

	_, err = matrix.Inverse(mustRows(t, []float64{1, 2}, []float64{2, 4}))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestDet covers determinants including a zero leading pivot.
func TestDet(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		m    *matrix.Dense
		want float64
	}{
		{"2x2", mustRows(t, []float64{4, 7}, []float64{2, 6}), 10},
		{"ZeroLeadingPivot", mustRows(t, []float64{0, 1}, []float64{1, 0}), -1},
		{"Singular", mustRows(t, []float64{1, 2}, []float64{2, 4}), 0},
		{"3x3", mustRows(t, []float64{2, 0, 1}, []float64{1, 3, 2}, []float64{1, 1, 2}), 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.Det(tc.m)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}

	_, err := matrix.Det(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCholesky checks L·Lᵀ reconstruction and rejection of bad inputs.
func TestCholesky(t *testing.T) {
	t.Parallel()
	a := mustRows(t, []float64{4, 2}, []float64{2, 3})
	l, err := matrix.Cholesky(a)
	require.NoError(t, err)
	lt, _ := matrix.Transpose(l)
	back, _ := matrix.Mul(l, lt)
	requireClose(t, a, back, 1e-12)

	_, err = matrix.Cholesky(mustRows(t, []float64{1, 2}, []float64{2, 1}))
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)

	_, err = matrix.Cholesky(mustRows(t, []float64{1, 0.5}, []float64{0, 1}))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, err = matrix.Cholesky(mustRows(t, []float64{1, 1e-6}, []float64{0, 1}), matrix.WithEpsilon(1e-3))
	require.NoError(t, err, "asymmetry below eps is tolerated")
}

// TestQuadForm checks xᵀ·A·y.
func TestQuadForm(t *testing.T) {
	t.Parallel()
	a := mustRows(t, []float64{2, 1}, []float64{1, 3})
	got, err := matrix.QuadForm([]float64{1, 2}, a, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 18.0, got) // [1 2]·[4 7]

	_, err = matrix.QuadForm([]float64{1}, a, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
