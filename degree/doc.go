// SPDX-License-Identifier: MIT

// Package degree determines the highest polynomial degree a cubature scheme
// integrates exactly over a domain.
//
// The checker walks total degrees d = 0, 1, …, maxDegree. For each d it asks
// a Generator for every exponent (a, b) with a+b = d and compares the
// numerical oracle (the scheme) with the exact oracle. A degree passes when
// every probe agrees within tolerance; the first failing degree stops the
// walk.
//
//	state: {d, lastGood}          lastGood starts at −1
//	probe all of gen(d) → all agree → lastGood = d, d++
//	                    → any disagree → stop (Result.FailedDegree = d)
//	d > maxDegree → stop (Result.Inconclusive = true)
//
// A probe agrees when |num − exact| ≤ max(AbsTol, RelTol·scale), checked with
// gonum's scalar.EqualWithinAbs. The scale is max(|num|, |exact|), raised to
// Σ|w·f·|J|| when the numerical oracle implements oracle.Scaled: a monomial
// whose integral cancels to zero (odd powers on a symmetric box) is then held
// to the precision its summands carried, not to an absolute constant.
// NaN/Inf values and oracle errors abort the check;
// they are never counted as tolerance failures.
//
// The checker keeps no state between calls.
package degree
