// SPDX-License-Identifier: MIT

// Package oracle provides exact integrals of monomials x^a·y^b over a
// quadrilateral domain, the ground truth the degree checker compares
// numerical quadrature against.
//
// Three implementations share the Oracle interface:
//
//   - Symbolic: the general path. The bilinear map, its Jacobian determinant
//     and the pulled-back monomial are exact rational polynomials; the
//     integral over the reference square is carried out term by term with
//     the inner variable ξ1 first. |det J| is applied piecewise: det J is
//     affine for a bilinear map, so its sign on the square is decided by the
//     four corner values. When the sign changes (a folded ring) the negative
//     region is clipped out exactly and integrated over its triangles.
//
//   - Rectangle: the closed-form fast path for axis-aligned boxes,
//     (x1^{a+1} − x0^{a+1})/(a+1) · (y1^{b+1} − y0^{b+1})/(b+1).
//
//   - Cached: a concurrency-safe memo in front of any Oracle, meant to be
//     shared by every scheme checked against the same domain.
//
// Func adapts a plain closure; the numerical evaluator uses it to present
// a scheme as an "oracle" to the checker.
package oracle
