// SPDX-License-Identifier: MIT

// Package scheme holds cubature rules on the reference square [-1,1]² and
// the 1D rules on [-1,1] they are lifted from.
//
// 🚀 What is a scheme?
//
//	An ordered list of (point, weight) pairs plus the declared polynomial
//	degree it integrates exactly. Schemes are immutable once built:
//	constructors validate eagerly (count mismatch, empty rule, negative
//	degree, NaN/Inf) and accessors hand out copies.
//
// ✨ Built-in families:
//   - Line rules: Midpoint, Trapezoidal, GaussLegendre(n) (Golub–Welsch on the
//     Jacobi matrix), GaussLegendreGonum(n), NewtonCotesClosed(n),
//     NewtonCotesOpen(n) (weights from the moment system).
//   - FromLine: tensor-product lift of a line rule, n² points, weights w_i·w_j.
//   - Stroud(k), k = 1..6: symmetric quadrilateral rules from Stroud's
//     "Approximate Calculation of Multiple Integrals" (C2 1-1, 3-1, 3-2,
//     5-1, 5-3, 7-1).
//
// ⚙️ Usage:
//
//	line, _ := scheme.GaussLegendre(5)
//	s, _ := scheme.FromLine(line)   // 25 points, degree 9
//	for p, w := range s.All() { ... }
//
// Lookup resolves a family name and index (as used by config files and the
// CLI) to a quadrilateral scheme.
package scheme
