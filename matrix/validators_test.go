// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mes/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()
	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare(mustRows(t, []float64{1})))
	require.ErrorIs(t, matrix.ValidateSquare(mustRows(t, []float64{1, 2})), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

// TestValidateSymmetric verifies symmetry checks within a tolerance.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()
	sym := mustRows(t, []float64{1, 2}, []float64{2, 1})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	skew := mustRows(t, []float64{1, 2}, []float64{2.1, 1})
	require.ErrorIs(t, matrix.ValidateSymmetric(skew, 0.01), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(skew, 0.2))
	require.NoError(t, matrix.ValidateSymmetric(skew, -0.2), "negative tolerance is taken by magnitude")
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
}

// TestIsZeroOffDiagonal covers diagonal detection.
func TestIsZeroOffDiagonal(t *testing.T) {
	t.Parallel()
	diag := mustRows(t, []float64{1, 1e-12}, []float64{0, 3})
	ok, err := matrix.IsZeroOffDiagonal(diag, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.IsZeroOffDiagonal(diag, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.IsZeroOffDiagonal(mustRows(t, []float64{1, 2}), 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
