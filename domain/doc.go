// SPDX-License-Identifier: MIT

// Package domain describes the physical integration domains: general
// quadrilaterals and axis-aligned rectangles.
//
// A Quadrilateral is an ordered ring of four vertices. The reference square
// [-1,1]² is mapped onto it by the bilinear interpolation
//
//	p(ξ) = Σ_i v_i · N_i(ξ)
//
// with N0 = ¼(1+ξ0)(1+ξ1), N1 = ¼(1−ξ0)(1+ξ1), N2 = ¼(1−ξ0)(1−ξ1),
// N3 = ¼(1+ξ0)(1−ξ1). Winding order therefore fixes the sign of det J;
// integrals always weight by |det J|.
//
// The map is available in two forms: numeric (Map, DetJ, AbsDetJ) for the
// quadrature evaluator, and exact polynomial form (MapPoly, JacobianPoly)
// for the symbolic oracle.
package domain
