// SPDX-License-Identifier: MIT

// Package monomial enumerates the 2D exponent pairs (a, b) used as probe
// monomials x^a·y^b when verifying the exactness degree of a cubature scheme.
//
// Two enumeration policies are provided:
//
//   - Exact(d)       — the d+1 pairs with a+b == d: (d,0), (d-1,1), …, (0,d).
//   - Cumulative(D)  — every pair with a+b ≤ D, grouped by degree in increasing
//     order, descending a inside each degree.
//
// Both return lazy, finite, restartable iter.Seq values: every range over the
// sequence starts from the beginning. Ordering is deterministic so failure
// diagnostics are reproducible.
//
//	seq, err := monomial.Exact(3)
//	for e := range seq {
//	    fmt.Println(e) // x^3, x^2*y, x*y^2, y^3
//	}
package monomial
