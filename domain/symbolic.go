// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cubature/poly"
)

// MapPoly returns the bilinear map as exact polynomials x(ξ0,ξ1), y(ξ0,ξ1).
// Coordinates are converted with their exact binary values.
// Errors: ErrNonFinite.
func (q Quadrilateral) MapPoly() (x, y poly.Poly, err error) {
	basis := basisPoly()
	for i, v := range q {
		vx, errX := poly.RatFromFloat(v.X)
		vy, errY := poly.RatFromFloat(v.Y)
		if errX != nil || errY != nil {
			return poly.Poly{}, poly.Poly{}, fmt.Errorf("MapPoly: vertex %d: %w", i, ErrNonFinite)
		}
		x = poly.Add(x, poly.Scale(basis[i], vx))
		y = poly.Add(y, poly.Scale(basis[i], vy))
	}

	return x, y, nil
}

// JacobianPoly returns det J = ∂x/∂ξ0·∂y/∂ξ1 − ∂y/∂ξ0·∂x/∂ξ1 as an exact
// polynomial. For a bilinear map it is affine in ξ.
func (q Quadrilateral) JacobianPoly() (poly.Poly, error) {
	x, y, err := q.MapPoly()
	if err != nil {
		return poly.Poly{}, err
	}

	return JacobianOf(x, y)
}

// JacobianOf differentiates an arbitrary polynomial map (x, y).
func JacobianOf(x, y poly.Poly) (poly.Poly, error) {
	var d [4]poly.Poly
	var err error
	for i, pair := range []struct {
		p poly.Poly
		v int
	}{{x, poly.X0}, {y, poly.X1}, {y, poly.X0}, {x, poly.X1}} {
		if d[i], err = poly.Diff(pair.p, pair.v); err != nil {
			return poly.Poly{}, fmt.Errorf("JacobianOf: %w", err)
		}
	}

	return poly.Sub(poly.Mul(d[0], d[1]), poly.Mul(d[2], d[3])), nil
}

// basisPoly returns N0..N3 as exact polynomials.
func basisPoly() [4]poly.Poly {
	quarter := big.NewRat(1, 4)
	var out [4]poly.Poly
	for i, c := range referenceCorners {
		// ¼(1 + c0·ξ0)(1 + c1·ξ1)
		f0 := poly.Affine(big.NewRat(1, 1), big.NewRat(int64(c.X), 1), new(big.Rat))
		f1 := poly.Affine(big.NewRat(1, 1), new(big.Rat), big.NewRat(int64(c.Y), 1))
		out[i] = poly.Scale(poly.Mul(f0, f1), quarter)
	}

	return out
}
