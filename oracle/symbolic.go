// SPDX-License-Identifier: MIT

package oracle

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/katalvlaran/cubature/domain"
	"github.com/katalvlaran/cubature/monomial"
	"github.com/katalvlaran/cubature/poly"
)

// Symbolic integrates monomials exactly over an arbitrary quadrilateral.
// It is safe for concurrent use.
type Symbolic struct {
	quad domain.Quadrilateral
	x, y poly.Poly // bilinear map
	jac  poly.Poly // det J, affine

	// sign of det J on the reference square: +1, −1, or 0 when it changes.
	sign int
	// area is |det J| when q is a parallelogram (det J constant), else nil.
	area *big.Rat
	// negative is {det J ≤ 0} ∩ [-1,1]² when sign == 0.
	negative []poly.RatPoint

	mu     sync.Mutex
	xs, ys *poly.Powers
}

// NewSymbolic prepares the exact integration machinery for q.
// Implementation:
//   - Stage 1: Validate q and build x(ξ), y(ξ) from the bilinear basis.
//   - Stage 2: det J by polynomial differentiation.
//   - Stage 3: A parallelogram has a constant det J; keep |det J| and skip
//     the sign analysis.
//   - Stage 4: Otherwise classify the sign of det J from its corner values;
//     for a mixed sign, clip the reference square to {det J ≤ 0}.
//
// Errors: domain.ErrNonFinite, domain.ErrDegenerate.
func NewSymbolic(q domain.Quadrilateral) (*Symbolic, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("NewSymbolic: %w", err)
	}
	x, y, err := q.MapPoly()
	if err != nil {
		return nil, fmt.Errorf("NewSymbolic: %w", err)
	}
	jac, err := domain.JacobianOf(x, y)
	if err != nil {
		return nil, fmt.Errorf("NewSymbolic: %w", err)
	}

	s := &Symbolic{quad: q, x: x, y: y, jac: jac, xs: poly.NewPowers(x), ys: poly.NewPowers(y)}
	if q.IsParallelogram() {
		if c, ok := jac.Constant(); ok {
			s.sign, s.area = c.Sign(), c.Abs(c)
			return s, nil
		}
	}
	s.sign = cornerSign(jac)
	if s.sign == 0 {
		if s.negative, err = poly.ClipBelow(poly.ReferenceSquare(), jac); err != nil {
			return nil, fmt.Errorf("NewSymbolic: %w", err)
		}
	}

	return s, nil
}

// cornerSign returns +1 if f ≥ 0 at every corner of the square, −1 if
// f ≤ 0 at every corner, 0 otherwise. Exact for affine f.
func cornerSign(f poly.Poly) int {
	var pos, neg bool
	for _, c := range poly.ReferenceSquare() {
		switch f.EvalRat(c.X, c.Y).Sign() {
		case 1:
			pos = true
		case -1:
			neg = true
		}
	}
	switch {
	case pos && neg:
		return 0
	case neg:
		return -1
	}

	return 1
}

// Quadrilateral returns the domain.
func (s *Symbolic) Quadrilateral() domain.Quadrilateral { return s.quad }

// Jacobian returns det J as an exact polynomial in (ξ0, ξ1).
func (s *Symbolic) Jacobian() poly.Poly { return s.jac }

// Affine reports whether q is a parallelogram, so det J is constant and the
// map is affine.
func (s *Symbolic) Affine() bool { return s.area != nil }

// SignChanges reports whether det J changes sign over the reference square,
// i.e. the ring folds over itself.
func (s *Symbolic) SignChanges() bool { return s.sign == 0 }

// Integrate returns ∫∫_D x^a y^b dx dy rounded to float64.
// Errors: ErrBadExponent, ErrNotConstant, ErrNonFinite.
func (s *Symbolic) Integrate(e monomial.Exponent) (float64, error) {
	r, err := s.IntegrateRat(e)
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()

	return checkFinite("Symbolic.Integrate", e, f)
}

// IntegrateRat returns ∫∫_D x^a y^b dx dy exactly. The vertices enter with
// their exact binary values, so the result is the exact integral over the
// domain as represented in float64.
// Complexity: O((a+b)²·deg) rational products for the pull-back.
func (s *Symbolic) IntegrateRat(e monomial.Exponent) (*big.Rat, error) {
	if err := checkExponent("Symbolic.IntegrateRat", e); err != nil {
		return nil, err
	}
	s.mu.Lock()
	g := poly.Mul(s.xs.Get(e.A), s.ys.Get(e.B))
	s.mu.Unlock()

	r, err := s.integratePulled(g)
	if err != nil {
		return nil, fmt.Errorf("Symbolic.IntegrateRat(%v): %w", e, err)
	}

	return r, nil
}

// IntegratePoly returns ∫∫_D p(x, y) dx dy for an arbitrary polynomial p in
// physical coordinates (variable 0 is x, variable 1 is y).
func (s *Symbolic) IntegratePoly(p poly.Poly) (*big.Rat, error) {
	r, err := s.integratePulled(poly.Compose(p, s.x, s.y))
	if err != nil {
		return nil, fmt.Errorf("Symbolic.IntegratePoly: %w", err)
	}

	return r, nil
}

// integratePulled integrates |det J|·g over the reference square, g given
// in ξ coordinates.
func (s *Symbolic) integratePulled(g poly.Poly) (*big.Rat, error) {
	if s.area != nil {
		return s.integrateConstant(g)
	}
	jg := poly.Mul(s.jac, g)
	if s.sign < 0 {
		jg = poly.Neg(jg)
	}
	whole, err := poly.IntegrateSquare(jg)
	if err != nil {
		return nil, err
	}
	total, ok := whole.Constant()
	if !ok {
		return nil, ErrNotConstant
	}
	if s.sign != 0 {
		return total, nil
	}

	// ∫|J|g = ∫J·g − 2∫_{J<0} J·g
	neg := poly.IntegratePolygon(jg, s.negative)
	neg.Add(neg, neg)

	return total.Sub(total, neg), nil
}

// integrateConstant returns |det J|·∫g for a constant Jacobian.
func (s *Symbolic) integrateConstant(g poly.Poly) (*big.Rat, error) {
	whole, err := poly.IntegrateSquare(g)
	if err != nil {
		return nil, err
	}
	total, ok := whole.Constant()
	if !ok {
		return nil, ErrNotConstant
	}

	return total.Mul(total, s.area), nil
}
