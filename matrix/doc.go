// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel that the
// cubature rules are derived from.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set.
//   - Eigen, cyclic-pivot Jacobi eigen decomposition for symmetric matrices.
//     Used by the Golub–Welsch construction of Gauss–Legendre nodes.
//   - LU (Doolittle, no pivoting) and Solve, used to solve the moment
//     systems that produce Newton–Cotes weights.
//
// Sizes here are tiny (n ≤ a few dozen), so kernels favour determinism
// and clarity over blocking or pivoting heuristics.
//
// See the examples in this package and the scheme package for usage patterns.
package matrix
