// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNotAffine is returned when a half-plane is requested for a polynomial
// of degree > 1.
var ErrNotAffine = errors.New("poly: polynomial is not affine")

// RatPoint is an exact point in the (ξ0, ξ1) plane.
type RatPoint struct {
	X, Y *big.Rat
}

// Pt builds a RatPoint from small integers; handy for reference corners.
func Pt(x, y int64) RatPoint {
	return RatPoint{X: big.NewRat(x, 1), Y: big.NewRat(y, 1)}
}

// ReferenceSquare returns the corners of [-1,1]² in counter-clockwise order.
func ReferenceSquare() []RatPoint {
	return []RatPoint{Pt(-1, -1), Pt(1, -1), Pt(1, 1), Pt(-1, 1)}
}

// ClipBelow returns the part of the convex polygon poly where the affine
// function f is ≤ 0 (Sutherland–Hodgman against a single half-plane).
// Intersection points are exact. The result keeps the input orientation and
// may be empty.
//
// Errors: ErrNotAffine when deg(f) > 1.
// Complexity: O(len(poly)).
func ClipBelow(polygon []RatPoint, f Poly) ([]RatPoint, error) {
	if f.Degree() > 1 {
		return nil, fmt.Errorf("ClipBelow: %w", ErrNotAffine)
	}
	n := len(polygon)
	out := make([]RatPoint, 0, n+1)
	for i := 0; i < n; i++ {
		p, q := polygon[i], polygon[(i+1)%n]
		fp, fq := f.EvalRat(p.X, p.Y), f.EvalRat(q.X, q.Y)
		pIn, qIn := fp.Sign() <= 0, fq.Sign() <= 0
		if pIn {
			out = append(out, p)
		}
		if pIn != qIn && fp.Sign() != 0 && fq.Sign() != 0 {
			// t = fp/(fp−fq); r = p + t·(q−p)
			t := new(big.Rat).Sub(fp, fq)
			t.Quo(fp, t)
			out = append(out, lerp(p, q, t))
		}
	}

	return out, nil
}

func lerp(p, q RatPoint, t *big.Rat) RatPoint {
	dx := new(big.Rat).Sub(q.X, p.X)
	dy := new(big.Rat).Sub(q.Y, p.Y)
	return RatPoint{
		X: dx.Add(p.X, dx.Mul(dx, t)),
		Y: dy.Add(p.Y, dy.Mul(dy, t)),
	}
}

// IntegrateTriangle returns the exact integral of p over the triangle (a, b, c).
//
// Implementation:
//   - Stage 1: pull p back onto the unit triangle {s,t ≥ 0, s+t ≤ 1} through
//     ξ = a + s·(b−a) + t·(c−a).
//   - Stage 2: integrate term by term with ∫ s^i t^j = i!·j!/(i+j+2)!.
//   - Stage 3: scale by |det(b−a, c−a)|.
func IntegrateTriangle(p Poly, a, b, c RatPoint) *big.Rat {
	e1x, e1y := new(big.Rat).Sub(b.X, a.X), new(big.Rat).Sub(b.Y, a.Y)
	e2x, e2y := new(big.Rat).Sub(c.X, a.X), new(big.Rat).Sub(c.Y, a.Y)
	det := new(big.Rat).Mul(e1x, e2y)
	det.Sub(det, new(big.Rat).Mul(e1y, e2x))
	det.Abs(det)
	if det.Sign() == 0 {
		return new(big.Rat)
	}

	x := Affine(a.X, e1x, e2x)
	y := Affine(a.Y, e1y, e2y)
	pulled := Compose(p, x, y)

	sum := new(big.Rat)
	t := new(big.Rat)
	for e, coef := range pulled.terms {
		t.Mul(coef, simplexMoment(e.A, e.B))
		sum.Add(sum, t)
	}

	return sum.Mul(sum, det)
}

// simplexMoment returns i!·j!/(i+j+2)!.
func simplexMoment(i, j int) *big.Rat {
	num := new(big.Int).Mul(factorial(i), factorial(j))
	return new(big.Rat).SetFrac(num, factorial(i+j+2))
}

func factorial(n int) *big.Int {
	return new(big.Int).MulRange(1, int64(max(n, 1)))
}

// IntegratePolygon returns the exact integral of p over a convex polygon by
// fan triangulation from its first vertex. Fewer than three vertices give 0.
func IntegratePolygon(p Poly, polygon []RatPoint) *big.Rat {
	sum := new(big.Rat)
	for i := 1; i+1 < len(polygon); i++ {
		sum.Add(sum, IntegrateTriangle(p, polygon[0], polygon[i], polygon[i+1]))
	}

	return sum
}
