// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via Jacobi rotations.
// Implementation:
//   - Stage 1 (Validate): tol/maxIter sanity, then symmetric square input within tol.
//   - Stage 2 (Prepare): work on a private copy A; Q starts as the identity.
//   - Stage 3 (Rotate): repeatedly pick (p,r) with the largest |A[p,r]| in i→j
//     order and annihilate it with a Jacobi rotation, accumulating Q.
//   - Stage 4 (Finalize): read eigenvalues off the diagonal.
//
// Behavior highlights:
//   - The input is never mutated.
//   - Pivot choice is by magnitude, so negative off-diagonals converge as
//     fast as positive ones.
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: convergence threshold on max |A[p,q]| (finite, > 0; typ. 1e-14 for
//     matrices with O(1) entries).
//   - maxIter: cap on the number of rotations (> 0).
//
// Returns:
//   - []float64: eigenvalues in diagonal order (not sorted).
//   - *Dense: Q whose column k is the unit eigenvector of eigenvalue k.
//
// Errors:
//   - ErrBadTolerance (tol/maxIter invalid), ErrNilMatrix, ErrDimensionMismatch,
//     ErrAsymmetry, ErrEigenFailed (max off-diagonal ≥ tol after maxIter).
//
// Determinism:
//   - Fixed pivot scan and update order; identical inputs give identical bits.
//
// Complexity:
//   - Time O(maxIter · n), pivot scan O(n²) per rotation. Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	// Stage 1 (Validate)
	if !(tol > 0) || math.IsInf(tol, 0) || maxIter <= 0 {
		return nil, nil, matrixErrorf(opEigen, ErrBadTolerance)
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	// Stage 2 (Prepare): asDense clones, so rotations never touch m
	a, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := a.r
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		p, r               int     // current pivot indices (p < r)
		maxOff             float64 // current max |A[p,r]|
		app, arr, apr      float64
		aip, air, qip, qir float64
		theta, t, c, s     float64
	)
	// Stage 3 (Rotate)
	for iter := 0; iter < maxIter; iter++ {
		p, r, maxOff = pivot(a)
		if maxOff < tol {
			return diagonal(a), q, nil
		}

		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		// θ = (arr−app)/(2·apr), t = sign(θ)/(|θ|+√(θ²+1))
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// rows/cols p and r of A, mirrored to keep A symmetric
		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			a.data[i*n+p] = c*aip - s*air
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = s*aip + c*air
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		// Q ← Q·G(p,r,θ)
		for i := 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	// Stage 4 (Finalize): the last rotation may have converged
	if _, _, maxOff = pivot(a); maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	return diagonal(a), q, nil
}

// pivot returns the upper-triangle position of the largest |A[i,j]| and its magnitude.
func pivot(a *Dense) (p, r int, maxOff float64) {
	n := a.r
	var off float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			off = math.Abs(a.data[i*n+j])
			if off > maxOff {
				maxOff, p, r = off, i, j
			}
		}
	}

	return p, r, maxOff
}

func diagonal(a *Dense) []float64 {
	out := make([]float64, a.r)
	for i := range out {
		out[i] = a.data[i*a.r+i]
	}

	return out
}
