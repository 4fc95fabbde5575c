// SPDX-License-Identifier: MIT

package matrix

import "math"

const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opInverse   = "Inverse"
	opDet       = "Det"
	opCholesky  = "Cholesky"
	opQuadForm  = "QuadForm"
)

// zeroPivot is the sentinel for detecting a zero pivot in LU/Inverse.
const zeroPivot = 0.0

// dense returns m as *Dense, copying through At when m is another
// implementation. Kernels then run a single flat-slice path.
func dense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}
	r, c := m.Rows(), m.Cols()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j], _ = m.At(i, j)
		}
	}

	return out
}

// Mul returns the product a × b.
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: i→k→j loop order so the inner loop walks both rows linearly.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, bd := dense(a), dense(b)
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < ad.r; i++ {
		for k := 0; k < ad.c; k++ {
			aik := ad.data[i*ad.c+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < bd.c; j++ {
				out.data[i*out.c+j] += aik * bd.data[k*bd.c+j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	d := dense(m)
	out, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			out.data[j*out.c+i] = d.data[i*d.c+j]
		}
	}

	return out, nil
}

// MatVec computes y = m·x for a column vector x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d := dense(m)
	y := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		base := i * d.c
		var acc float64
		for j := 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// lu computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting).
// Implementation:
//   - Stage 1: validate square input; allocate L, U; diag(L) = 1.
//   - Stage 2: for i = 0..n-1 build row i of U, then column i of L.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular (U[i,i] == 0).
// Complexity: Time O(n^3), Space O(n^2).
//
// AI-Hints:
//   - Symmetric positive-definite inputs (covariances) and triangular
//     Cholesky factors never hit a zero pivot.
func lu(m Matrix) (*Dense, *Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a := dense(m)
	n := a.r
	l, _ := NewIdentity(n)
	u, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var sum float64
			for k := 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			u.data[i*n+j] = a.data[i*n+j] - sum
		}
		pivot := u.data[i*n+i]
		if pivot == zeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		for j := i + 1; j < n; j++ {
			var sum float64
			for k := 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			l.data[j*n+i] = (a.data[j*n+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// Inverse returns A⁻¹ via LU and one forward/backward solve per column.
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
// Complexity: Time O(n^3), Space O(n^2).
func Inverse(m Matrix) (Matrix, error) {
	l, u, err := lu(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := l.r
	inv, _ := NewDense(n, n)
	y := make([]float64, n)
	x := make([]float64, n)
	for col := 0; col < n; col++ {
		// L·y = e_col
		for i := 0; i < n; i++ {
			var sum float64
			for k := 0; k < i; k++ {
				sum += l.data[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// U·x = y
		for i := n - 1; i >= 0; i-- {
			var sum float64
			for k := i + 1; k < n; k++ {
				sum += u.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / u.data[i*n+i]
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Det returns the determinant by Gaussian elimination with partial
// pivoting. Unlike LU it does not fail on a zero leading pivot; a singular
// matrix simply has determinant 0.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Determinism: the first row with the largest |pivot| wins ties.
// Complexity: Time O(n^3), Space O(n^2).
func Det(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	a := dense(m).Clone().(*Dense)
	n := a.r
	det := 1.0
	for col := 0; col < n; col++ {
		p := col
		for i := col + 1; i < n; i++ {
			if math.Abs(a.data[i*n+col]) > math.Abs(a.data[p*n+col]) {
				p = i
			}
		}
		pivot := a.data[p*n+col]
		if pivot == zeroPivot {
			return 0, nil
		}
		if p != col {
			for j := 0; j < n; j++ {
				a.data[p*n+j], a.data[col*n+j] = a.data[col*n+j], a.data[p*n+j]
			}
			det = -det
		}
		det *= pivot
		for i := col + 1; i < n; i++ {
			f := a.data[i*n+col] / pivot
			if f == 0 {
				continue
			}
			for j := col; j < n; j++ {
				a.data[i*n+j] -= f * a.data[col*n+j]
			}
		}
	}

	return det, nil
}

// Cholesky returns the lower-triangular L with A = L·Lᵀ.
// Implementation:
//   - Stage 1: validate symmetry within the configured epsilon.
//   - Stage 2: column-by-column Cholesky–Banachiewicz; a pivot ≤ 0 fails.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry,
// ErrNotPositiveDefinite.
// Complexity: Time O(n^3/3), Space O(n^2).
func Cholesky(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	a := dense(m)
	n := a.r
	l, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := a.data[i*n+j]
			for k := 0; k < j; k++ {
				sum -= l.data[i*n+k] * l.data[j*n+k]
			}
			if i == j {
				if !(sum > 0) {
					return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
				}
				l.data[i*n+i] = math.Sqrt(sum)
				continue
			}
			l.data[i*n+j] = sum / l.data[j*n+j]
		}
	}

	return l, nil
}

// QuadForm returns xᵀ·A·y.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(r).
func QuadForm(x []float64, m Matrix, y []float64) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	ay, err := MatVec(m, y)
	if err != nil {
		return 0, matrixErrorf(opQuadForm, err)
	}
	var out float64
	for i, v := range x {
		out += v * ay[i]
	}

	return out, nil
}
