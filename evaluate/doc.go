// SPDX-License-Identifier: MIT

// Package evaluate applies a cubature scheme to a function over a physical
// quadrilateral:
//
//	∫∫_D f dx dy ≈ Σ_i w_i · f(p(ξ_i)) · |det J(ξ_i)|
//
// where p is the bilinear reference→physical map. The map and |det J| are
// evaluated numerically at each scheme point. Monomial wraps a scheme and
// domain as a Quadrature, an oracle.Scaled the degree checker compares
// against an exact oracle.
package evaluate
