// SPDX-License-Identifier: MIT

// Package poly implements exact bivariate polynomials with rational
// coefficients (math/big.Rat).
//
// It is the symbolic back-end of the exact integral oracle: the bilinear
// reference-to-physical map, its Jacobian determinant and every pulled-back
// probe monomial are polynomials in (ξ0, ξ1), so differentiation, products,
// affine substitution and iterated definite integration can all be carried
// out term by term without a computer-algebra system and without rounding.
//
// Values are immutable: every operation returns a new Poly and never
// mutates its operands, so a Poly can be shared between goroutines.
//
// Variables are addressed by index: X0 (ξ0) and X1 (ξ1). A term ξ0^a·ξ1^b is
// keyed by monomial.Exponent{A: a, B: b}.
package poly
