// SPDX-License-Identifier: MIT

package matrix

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Solve.
const ZeroPivot = 0.0

// LU performs Doolittle LU decomposition of a square matrix without pivoting.
// It returns L (unit lower triangular) and U (upper triangular) as new *Dense.
//
// Implementation:
//   - Stage 1 (Validate): ValidateSquare; copy into a Dense view.
//   - Stage 2 (Allocate): L = I, U = 0.
//   - Stage 3 (Factor): for each pivot row i compute U[i, j≥i], then L[j>i, i].
//
// Behavior highlights:
//   - Fixed i→j→k loop order; identical inputs give identical bits.
//   - Fails fast on the first exact zero pivot.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular (U[i,i] == 0).
//
// Notes:
//   - No pivoting by design (determinism). Matrices whose leading principal
//     minors are all non-zero (e.g. Vandermonde systems with distinct nodes)
//     factor without breakdown.
//
// Complexity: O(n³) time, O(n²) memory.
func LU(m Matrix) (*Dense, *Dense, error) {
	// Stage 1 (Validate)
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	// Stage 2 (Allocate)
	n := a.r
	l, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	u, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Stage 3 (Factor)
	var sum float64
	for i := 0; i < n; i++ {
		// U row i: U[i,j] = A[i,j] − Σ_{k<i} L[i,k]·U[k,j]
		for j := i; j < n; j++ {
			sum = 0
			for k := 0; k < i; k++ {
				sum += l.data[i*n+k] * u.data[k*n+j]
			}
			u.data[i*n+j] = a.data[i*n+j] - sum
		}
		if u.data[i*n+i] == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}
		// L column i: L[j,i] = (A[j,i] − Σ_{k<i} L[j,k]·U[k,i]) / U[i,i]
		for j := i + 1; j < n; j++ {
			sum = 0
			for k := 0; k < i; k++ {
				sum += l.data[j*n+k] * u.data[k*n+i]
			}
			l.data[j*n+i] = (a.data[j*n+i] - sum) / u.data[i*n+i]
		}
	}

	return l, u, nil
}

// Solve returns x with A·x = b using LU (forward then backward substitution).
//
// Implementation:
//   - Stage 1 (Validate): square A, len(b) == rows.
//   - Stage 2 (Factor): LU(A).
//   - Stage 3 (Substitute): L·y = b forward, U·x = y backward.
//
// Errors:
//   - LU errors, ErrDimensionMismatch / ErrNilMatrix / ErrNaNInf for b.
//
// Complexity: O(n³) for the factorization, O(n²) for the substitutions.
func Solve(a Matrix, b []float64) ([]float64, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	l, u, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := len(b)

	// forward: L·y = b (unit diagonal)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= l.data[i*n+k] * y[k]
		}
		y[i] = sum
	}
	// backward: U·x = y
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			sum -= u.data[i*n+k] * x[k]
		}
		x[i] = sum / u.data[i*n+i]
	}

	return x, nil
}
