// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"

	"github.com/katalvlaran/cubature/domain"
)

// FromLine lifts a 1D rule to the reference square by tensor product.
// Implementation:
//   - Stage 1: For every pair (i, j) of line nodes, emit the point (ξ_i, ξ_j)
//     with weight w_i·w_j; i is the outer (ξ0) index.
//   - Stage 2: Declared degree is the line's degree, name "FromLine(<line>)".
//
// Returns ErrNilLine for a nil input.
// Complexity: O(n²) time and space for an n-node line.
func FromLine(l *Line) (*Scheme, error) {
	if l == nil {
		return nil, schemeErrorf("FromLine", ErrNilLine)
	}
	n := len(l.points)
	points := make([]domain.Point, 0, n*n)
	weights := make([]float64, 0, n*n)
	for i, xi := range l.points {
		for j, eta := range l.points {
			points = append(points, domain.Point{X: xi, Y: eta})
			weights = append(weights, l.weights[i]*l.weights[j])
		}
	}

	return New(fmt.Sprintf("FromLine(%s)", l.name), l.degree, points, weights)
}
