// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/floats"
)

// Line is an immutable 1D quadrature rule on [-1,1].
type Line struct {
	name    string
	degree  int
	points  []float64
	weights []float64
}

// NewLine validates and copies the inputs into a Line.
// Errors: ErrNegativeDegree, ErrEmptyScheme, ErrPointWeightMismatch, ErrNonFinite.
func NewLine(name string, degree int, points, weights []float64) (*Line, error) {
	ctx := fmt.Sprintf("NewLine(%q)", name)
	if err := validate(degree, len(points), len(weights)); err != nil {
		return nil, schemeErrorf(ctx, err)
	}
	for i := range points {
		if !finite(points[i]) || !finite(weights[i]) {
			return nil, schemeErrorf(fmt.Sprintf("%s: entry %d", ctx, i), ErrNonFinite)
		}
	}

	return &Line{
		name:    name,
		degree:  degree,
		points:  append([]float64(nil), points...),
		weights: append([]float64(nil), weights...),
	}, nil
}

// Name returns the rule identity, e.g. "GaussLegendre(3)".
func (l *Line) Name() string { return l.name }

// Degree returns the declared exactness degree.
func (l *Line) Degree() int { return l.degree }

// Len returns the number of nodes.
func (l *Line) Len() int { return len(l.points) }

// Points returns a copy of the nodes.
func (l *Line) Points() []float64 { return append([]float64(nil), l.points...) }

// Weights returns a copy of the weights.
func (l *Line) Weights() []float64 { return append([]float64(nil), l.weights...) }

// All yields (node, weight) pairs in rule order.
func (l *Line) All() iter.Seq2[float64, float64] {
	return func(yield func(float64, float64) bool) {
		for i, x := range l.points {
			if !yield(x, l.weights[i]) {
				return
			}
		}
	}
}

// TotalWeight returns Σ w_i (2 for a rule exact on constants).
func (l *Line) TotalWeight() float64 { return floats.Sum(l.weights) }

// String implements fmt.Stringer.
func (l *Line) String() string {
	return fmt.Sprintf("%s [degree %d, %d points]", l.name, l.degree, len(l.points))
}
