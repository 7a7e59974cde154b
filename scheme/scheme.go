// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/cubature/domain"
	"gonum.org/v1/gonum/floats"
)

// Scheme is an immutable cubature rule on the reference square [-1,1]².
type Scheme struct {
	name    string
	degree  int
	points  []domain.Point
	weights []float64
}

// New validates and copies the inputs into a Scheme.
// Errors: ErrNegativeDegree, ErrEmptyScheme, ErrPointWeightMismatch, ErrNonFinite.
// Complexity: O(n).
func New(name string, degree int, points []domain.Point, weights []float64) (*Scheme, error) {
	ctx := fmt.Sprintf("New(%q)", name)
	if err := validate(degree, len(points), len(weights)); err != nil {
		return nil, schemeErrorf(ctx, err)
	}
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) || !finite(weights[i]) {
			return nil, schemeErrorf(fmt.Sprintf("%s: entry %d", ctx, i), ErrNonFinite)
		}
	}

	return &Scheme{
		name:    name,
		degree:  degree,
		points:  append([]domain.Point(nil), points...),
		weights: append([]float64(nil), weights...),
	}, nil
}

// validate applies the construction checks shared by Scheme and Line.
func validate(degree, nPoints, nWeights int) error {
	switch {
	case degree < 0:
		return ErrNegativeDegree
	case nPoints != nWeights:
		return ErrPointWeightMismatch
	case nPoints == 0:
		return ErrEmptyScheme
	}

	return nil
}

// Name returns the human-readable identity, e.g. "FromLine(GaussLegendre(5))".
func (s *Scheme) Name() string { return s.name }

// Degree returns the declared exactness degree.
func (s *Scheme) Degree() int { return s.degree }

// Len returns the number of points.
func (s *Scheme) Len() int { return len(s.points) }

// Points returns a copy of the reference points.
func (s *Scheme) Points() []domain.Point { return append([]domain.Point(nil), s.points...) }

// Weights returns a copy of the weights.
func (s *Scheme) Weights() []float64 { return append([]float64(nil), s.weights...) }

// All yields (point, weight) pairs in rule order.
func (s *Scheme) All() iter.Seq2[domain.Point, float64] {
	return func(yield func(domain.Point, float64) bool) {
		for i, p := range s.points {
			if !yield(p, s.weights[i]) {
				return
			}
		}
	}
}

// TotalWeight returns Σ w_i; 4 for any rule exact on constants over [-1,1]².
func (s *Scheme) TotalWeight() float64 { return floats.Sum(s.weights) }

// String implements fmt.Stringer.
func (s *Scheme) String() string {
	return fmt.Sprintf("%s [degree %d, %d points]", s.name, s.degree, len(s.points))
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
