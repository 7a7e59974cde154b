// SPDX-License-Identifier: MIT

package scheme

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/cubature/matrix"
	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// MaxNewtonCotes caps the Newton–Cotes index; beyond it the weights
	// oscillate in sign and the moment system loses accuracy.
	MaxNewtonCotes = 10

	// eigenTol is the off-diagonal threshold for the Jacobi eigen solve of
	// the Golub–Welsch matrix (entries are O(1)).
	eigenTol = 1e-14
)

// Midpoint is the one-point rule x=0, w=2; exact through degree 1.
func Midpoint() *Line {
	return &Line{name: "Midpoint", degree: 1, points: []float64{0}, weights: []float64{2}}
}

// Trapezoidal is the two-point closed rule at ±1 with unit weights; degree 1.
func Trapezoidal() *Line {
	return &Line{name: "Trapezoidal", degree: 1, points: []float64{-1, 1}, weights: []float64{1, 1}}
}

// GaussLegendre returns the n-point Gauss–Legendre rule (degree 2n−1).
// Implementation (Golub–Welsch):
//   - Stage 1: Build the symmetric tridiagonal Jacobi matrix of the Legendre
//     recurrence: zero diagonal, off-diagonal β_k = k/√(4k²−1), k=1..n−1.
//   - Stage 2: Eigen-decompose it; nodes are the eigenvalues, weights are
//     2·q_{0k}² where q_{0k} is the first component of eigenvector k.
//   - Stage 3: Sort by node ascending.
//
// Errors: ErrUnknownIndex for n < 1, ErrConstruct if the eigen solve fails.
// Complexity: O(n⁴) worst case for the Jacobi sweeps; n is small in practice.
func GaussLegendre(n int) (*Line, error) {
	ctx := fmt.Sprintf("GaussLegendre(%d)", n)
	if n < 1 {
		return nil, schemeErrorf(ctx, ErrUnknownIndex)
	}
	diag := make([]float64, n)
	off := make([]float64, n-1)
	for k := 1; k < n; k++ {
		fk := float64(k)
		off[k-1] = fk / math.Sqrt(4*fk*fk-1)
	}
	jm, err := matrix.NewSymmetricTridiagonal(diag, off)
	if err != nil {
		return nil, schemeErrorf(ctx, fmt.Errorf("%w: %w", ErrConstruct, err))
	}
	vals, vecs, err := matrix.Eigen(jm, eigenTol, 64*n*n+64)
	if err != nil {
		return nil, schemeErrorf(ctx, fmt.Errorf("%w: %w", ErrConstruct, err))
	}
	first, err := vecs.Row(0)
	if err != nil {
		return nil, schemeErrorf(ctx, fmt.Errorf("%w: %w", ErrConstruct, err))
	}

	weights := make([]float64, n)
	for k := range weights {
		weights[k] = 2 * first[k] * first[k]
	}
	sortNodes(vals, weights)

	return NewLine(ctx, 2*n-1, vals, weights)
}

// GaussLegendreGonum returns the n-point Gauss–Legendre rule computed by
// gonum's quad.Legendre. Nodes and weights agree with GaussLegendre(n) to
// rounding; the name differs so both can appear in one report.
func GaussLegendreGonum(n int) (*Line, error) {
	ctx := fmt.Sprintf("GaussLegendreGonum(%d)", n)
	if n < 1 {
		return nil, schemeErrorf(ctx, ErrUnknownIndex)
	}
	points := make([]float64, n)
	weights := make([]float64, n)
	quad.Legendre{}.FixedLocations(points, weights, -1, 1)
	sortNodes(points, weights)

	return NewLine(ctx, 2*n-1, points, weights)
}

// NewtonCotesClosed returns the closed Newton–Cotes rule with n intervals:
// n+1 equispaced nodes including ±1. Degree n for odd n, n+1 for even n
// (n=1 trapezoid, n=2 Simpson, n=4 Boole).
// Errors: ErrUnknownIndex outside 1..MaxNewtonCotes, ErrConstruct on solve failure.
func NewtonCotesClosed(n int) (*Line, error) {
	ctx := fmt.Sprintf("NewtonCotesClosed(%d)", n)
	if n < 1 || n > MaxNewtonCotes {
		return nil, schemeErrorf(ctx, ErrUnknownIndex)
	}
	points := make([]float64, n+1)
	for i := range points {
		points[i] = -1 + 2*float64(i)/float64(n)
	}
	weights, err := momentWeights(points)
	if err != nil {
		return nil, schemeErrorf(ctx, err)
	}
	degree := n
	if n%2 == 0 {
		degree++
	}

	return NewLine(ctx, degree, points, weights)
}

// NewtonCotesOpen returns the open Newton–Cotes rule of index n: the n+1
// interior nodes of an equispaced split of [-1,1] into n+2 intervals.
// Degree n+1 for even n, n for odd n (n=0 is the midpoint rule).
// Errors: ErrUnknownIndex outside 0..MaxNewtonCotes, ErrConstruct on solve failure.
func NewtonCotesOpen(n int) (*Line, error) {
	ctx := fmt.Sprintf("NewtonCotesOpen(%d)", n)
	if n < 0 || n > MaxNewtonCotes {
		return nil, schemeErrorf(ctx, ErrUnknownIndex)
	}
	points := make([]float64, n+1)
	for i := range points {
		points[i] = -1 + 2*float64(i+1)/float64(n+2)
	}
	weights, err := momentWeights(points)
	if err != nil {
		return nil, schemeErrorf(ctx, err)
	}
	degree := n
	if n%2 == 0 {
		degree++
	}

	return NewLine(ctx, degree, points, weights)
}

// momentWeights solves the Vandermonde moment system Σ_j w_j x_j^k = ∫_{-1}^{1} x^k dx,
// k = 0..len(x)−1, for the interpolatory weights on nodes x.
func momentWeights(x []float64) ([]float64, error) {
	n := len(x)
	v, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruct, err)
	}
	rhs := make([]float64, n)
	for j, xj := range x {
		pw := 1.0
		for k := 0; k < n; k++ {
			if err = v.Set(k, j, pw); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrConstruct, err)
			}
			pw *= xj
		}
	}
	for k := 0; k < n; k += 2 {
		rhs[k] = 2 / float64(k+1)
	}
	w, err := matrix.Solve(v, rhs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruct, err)
	}

	return w, nil
}

// sortNodes orders (x, w) pairs by ascending node in place.
func sortNodes(x, w []float64) {
	order := make([]int, len(x))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(i, j int) int { return cmp.Compare(x[i], x[j]) })
	xs := make([]float64, len(x))
	ws := make([]float64, len(w))
	for i, k := range order {
		xs[i], ws[i] = x[k], w[k]
	}
	copy(x, xs)
	copy(w, ws)
}
