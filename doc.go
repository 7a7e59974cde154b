// SPDX-License-Identifier: MIT

// Package cubature is a toolkit for quadrature over quadrilaterals and for
// verifying the polynomial degree a cubature scheme integrates exactly.
//
// 🚀 What is in the box?
//
//	• scheme/   – 1D rules (Midpoint, Trapezoidal, Gauss–Legendre, Newton–Cotes
//	              closed/open), the FromLine tensor lift and Stroud rules
//	• domain/   – quadrilaterals, rectangles, the bilinear map and its Jacobian
//	• evaluate/ – Σ w·f(p(ξ))·|det J(ξ)| over a physical quadrilateral
//	• oracle/   – exact integrals of x^a·y^b: symbolic (exact rationals, piecewise
//	              |det J|) and the closed-form rectangle fast path
//	• degree/   – the degree checker state machine
//	• harness/  – catalog runs, parallel checks, YAML tables
//	• plot/     – terminal rendering of a scheme on its domain
//	• matrix/, poly/, monomial/ – supporting numerics
//
// ✨ Quick start:
//
//	l, _ := scheme.GaussLegendre(3)
//	s, _ := scheme.FromLine(l)
//	r := domain.Rectangle{X0: -2, X1: 1, Y0: -1, Y1: 1}
//	exact, _ := oracle.NewRectangle(r)
//	d, _ := degree.Check(evaluate.Monomial(s, r.Quadrilateral()), exact, monomial.Exact, 8)
//	// d == 5
//
// The quadcheck command (cmd/quadcheck) runs the whole catalog:
//
//	go run ./cmd/quadcheck check
package cubature
