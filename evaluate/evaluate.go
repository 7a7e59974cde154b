// SPDX-License-Identifier: MIT

package evaluate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cubature/domain"
	"github.com/katalvlaran/cubature/monomial"
	"github.com/katalvlaran/cubature/oracle"
	"github.com/katalvlaran/cubature/scheme"
)

// Func is a scalar integrand in physical coordinates.
type Func func(x, y float64) float64

// VectorFunc writes a vector integrand at (x, y) into dst (len dim).
type VectorFunc func(x, y float64, dst []float64)

// Integrate returns Σ w_i · f(p(ξ_i)) · |det J(ξ_i)|.
// Errors: ErrNilScheme, ErrNonFinite (any f value or the final sum).
// Complexity: O(n) for an n-point scheme.
func Integrate(s *scheme.Scheme, q domain.Quadrilateral, f Func) (float64, error) {
	sum, _, err := integrate("Integrate", s, q, f)

	return sum, err
}

// IntegrateScaled is Integrate plus the scale Σ|w_i·f(p(ξ_i))·|det J(ξ_i)||,
// the magnitude rounding errors in the sum are proportional to.
// Errors: as Integrate.
func IntegrateScaled(s *scheme.Scheme, q domain.Quadrilateral, f Func) (sum, scale float64, err error) {
	return integrate("IntegrateScaled", s, q, f)
}

// integrate does the work for Integrate and IntegrateScaled.
// Implementation:
//   - Stage 1: For each scheme point map ξ_i to p(ξ_i) and evaluate |det J(ξ_i)|.
//   - Stage 2: Accumulate w_i·f·|J| and its absolute value in scheme order.
func integrate(op string, s *scheme.Scheme, q domain.Quadrilateral, f Func) (sum, scale float64, err error) {
	if s == nil || f == nil {
		return 0, 0, fmt.Errorf("%s: %w", op, ErrNilScheme)
	}
	i := 0
	for xi, w := range s.All() {
		p := q.Map(xi)
		v := f(p.X, p.Y)
		if !finite(v) {
			return 0, 0, fmt.Errorf("%s(%s): point %d at (%g, %g): %w", op, s.Name(), i, p.X, p.Y, ErrNonFinite)
		}
		t := w * v * q.AbsDetJ(xi)
		sum += t
		scale += math.Abs(t)
		i++
	}
	if !finite(sum) || !finite(scale) {
		return 0, 0, fmt.Errorf("%s(%s): %w", op, s.Name(), ErrNonFinite)
	}

	return sum, scale, nil
}

// IntegrateVector integrates each component of f; |det J| is computed once
// per point and shared.
// Errors: ErrNilScheme, ErrDimension (dim < 1), ErrNonFinite.
func IntegrateVector(s *scheme.Scheme, q domain.Quadrilateral, f VectorFunc, dim int) ([]float64, error) {
	if s == nil || f == nil {
		return nil, fmt.Errorf("IntegrateVector: %w", ErrNilScheme)
	}
	if dim < 1 {
		return nil, fmt.Errorf("IntegrateVector(dim=%d): %w", dim, ErrDimension)
	}
	sum := make([]float64, dim)
	val := make([]float64, dim)
	for xi, w := range s.All() {
		p := q.Map(xi)
		f(p.X, p.Y, val)
		wj := w * q.AbsDetJ(xi)
		for k, v := range val {
			sum[k] += wj * v
		}
	}
	for k, v := range sum {
		if !finite(v) {
			return nil, fmt.Errorf("IntegrateVector(%s): component %d: %w", s.Name(), k, ErrNonFinite)
		}
	}

	return sum, nil
}

// Quadrature is the numerical counterpart of an exact oracle: a scheme
// applied to x^a·y^b over a fixed quadrilateral. It implements oracle.Scaled.
type Quadrature struct {
	s *scheme.Scheme
	q domain.Quadrilateral
}

var _ oracle.Scaled = (*Quadrature)(nil)

// Monomial returns the Quadrature of s over q.
func Monomial(s *scheme.Scheme, q domain.Quadrilateral) *Quadrature {
	return &Quadrature{s: s, q: q}
}

// Integrate applies the scheme to x^a·y^b.
func (m *Quadrature) Integrate(e monomial.Exponent) (float64, error) {
	return Integrate(m.s, m.q, e.Eval)
}

// IntegrateScaled applies the scheme to x^a·y^b and reports the scale.
func (m *Quadrature) IntegrateScaled(e monomial.Exponent) (value, scale float64, err error) {
	return IntegrateScaled(m.s, m.q, e.Eval)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
