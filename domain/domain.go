// SPDX-License-Identifier: MIT

package domain

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate, physical or reference.
type Point struct {
	X, Y float64
}

// Quadrilateral is an ordered ring of four vertices. Vertex i is the image of
// the reference corner carried by basis function N_i (see package doc).
type Quadrilateral [4]Point

// Rectangle is an axis-aligned box [X0,X1]×[Y0,Y1]. Bounds may be given in
// either order; the box, its area and its integrals do not depend on it.
type Rectangle struct {
	X0, X1, Y0, Y1 float64
}

// ReferenceSquare returns the ring (−1,−1), (1,−1), (1,1), (−1,1).
func ReferenceSquare() Quadrilateral {
	return Quadrilateral{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
}

// referenceCorners are the ξ-corners attached to N0..N3.
var referenceCorners = [4]Point{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}

// Basis returns N0..N3 at ξ.
func Basis(xi Point) [4]float64 {
	var n [4]float64
	for i, c := range referenceCorners {
		n[i] = 0.25 * (1 + c.X*xi.X) * (1 + c.Y*xi.Y)
	}

	return n
}

// basisGrad returns ∂N_i/∂ξ0 and ∂N_i/∂ξ1 at ξ.
func basisGrad(xi Point) (d0, d1 [4]float64) {
	for i, c := range referenceCorners {
		d0[i] = 0.25 * c.X * (1 + c.Y*xi.Y)
		d1[i] = 0.25 * (1 + c.X*xi.X) * c.Y
	}

	return d0, d1
}

// Validate checks that every coordinate is finite and that the Jacobian does
// not vanish identically (all four corner values zero).
func (q Quadrilateral) Validate() error {
	for i, v := range q {
		if !finite(v.X) || !finite(v.Y) {
			return fmt.Errorf("Quadrilateral.Validate: vertex %d %v: %w", i, v, ErrNonFinite)
		}
	}
	for _, c := range referenceCorners {
		if q.DetJ(c) != 0 {
			return nil
		}
	}

	return fmt.Errorf("Quadrilateral.Validate: %w", ErrDegenerate)
}

// Map returns p(ξ).
func (q Quadrilateral) Map(xi Point) Point {
	n := Basis(xi)
	var p Point
	for i, v := range q {
		p.X += n[i] * v.X
		p.Y += n[i] * v.Y
	}

	return p
}

// Jacobian returns the matrix [[∂x/∂ξ0, ∂x/∂ξ1], [∂y/∂ξ0, ∂y/∂ξ1]] at ξ.
func (q Quadrilateral) Jacobian(xi Point) [2][2]float64 {
	d0, d1 := basisGrad(xi)
	var j [2][2]float64
	for i, v := range q {
		j[0][0] += d0[i] * v.X
		j[0][1] += d1[i] * v.X
		j[1][0] += d0[i] * v.Y
		j[1][1] += d1[i] * v.Y
	}

	return j
}

// DetJ returns the signed Jacobian determinant at ξ.
func (q Quadrilateral) DetJ(xi Point) float64 {
	j := q.Jacobian(xi)

	return j[0][0]*j[1][1] - j[1][0]*j[0][1]
}

// AbsDetJ returns |det J| at ξ, branching on sign.
func (q Quadrilateral) AbsDetJ(xi Point) float64 {
	d := q.DetJ(xi)
	if d < 0 {
		return -d
	}

	return d
}

// SignedArea returns the shoelace area of the ring (positive for
// counter-clockwise order). For a simple ring the integral of |det J| over
// the reference square equals |SignedArea|.
func (q Quadrilateral) SignedArea() float64 {
	var s float64
	for i := range q {
		a, b := q[i], q[(i+1)%4]
		s += a.X*b.Y - b.X*a.Y
	}

	return s / 2
}

// IsParallelogram reports whether the bilinear map degenerates to an affine
// one (v0 − v1 + v2 − v3 == 0), i.e. det J is constant.
func (q Quadrilateral) IsParallelogram() bool {
	return q[0].X-q[1].X+q[2].X-q[3].X == 0 && q[0].Y-q[1].Y+q[2].Y-q[3].Y == 0
}

// Bounds returns the axis-aligned bounding box of the ring.
func (q Quadrilateral) Bounds() Rectangle {
	r := Rectangle{X0: q[0].X, X1: q[0].X, Y0: q[0].Y, Y1: q[0].Y}
	for _, v := range q[1:] {
		r.X0, r.X1 = math.Min(r.X0, v.X), math.Max(r.X1, v.X)
		r.Y0, r.Y1 = math.Min(r.Y0, v.Y), math.Max(r.Y1, v.Y)
	}

	return r
}

// Validate checks finiteness and non-zero extent.
func (r Rectangle) Validate() error {
	for _, v := range []float64{r.X0, r.X1, r.Y0, r.Y1} {
		if !finite(v) {
			return fmt.Errorf("Rectangle.Validate: %v: %w", r, ErrNonFinite)
		}
	}
	if r.X0 == r.X1 || r.Y0 == r.Y1 {
		return fmt.Errorf("Rectangle.Validate: %v: %w", r, ErrDegenerate)
	}

	return nil
}

// Quadrilateral returns the ring (x0,y0), (x1,y0), (x1,y1), (x0,y1).
func (r Rectangle) Quadrilateral() Quadrilateral {
	return Quadrilateral{{r.X0, r.Y0}, {r.X1, r.Y0}, {r.X1, r.Y1}, {r.X0, r.Y1}}
}

// Normalized returns r with X0 ≤ X1 and Y0 ≤ Y1.
func (r Rectangle) Normalized() Rectangle {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}

	return r
}

// Area returns |x1−x0|·|y1−y0|.
func (r Rectangle) Area() float64 {
	return math.Abs(r.X1-r.X0) * math.Abs(r.Y1-r.Y0)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
