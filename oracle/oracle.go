// SPDX-License-Identifier: MIT

package oracle

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cubature/monomial"
)

// Oracle integrates the monomial x^a·y^b over a fixed domain.
type Oracle interface {
	Integrate(e monomial.Exponent) (float64, error)
}

// Scaled is implemented by numerical oracles that can report the size of
// the sum behind a value: Σ|w_i·f(p_i)·|det J_i||. The degree checker
// measures its tolerance against that scale, so monomials whose integral
// cancels to zero are compared at the precision the sum was formed with.
type Scaled interface {
	Oracle
	IntegrateScaled(e monomial.Exponent) (value, scale float64, err error)
}

// Func adapts an ordinary function to the Oracle interface.
type Func func(e monomial.Exponent) (float64, error)

// Integrate calls f(e).
func (f Func) Integrate(e monomial.Exponent) (float64, error) { return f(e) }

func checkExponent(op string, e monomial.Exponent) error {
	if e.A < 0 || e.B < 0 {
		return fmt.Errorf("%s(%d,%d): %w", op, e.A, e.B, ErrBadExponent)
	}

	return nil
}

func checkFinite(op string, e monomial.Exponent, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s(%v): %w", op, e, ErrNonFinite)
	}

	return v, nil
}
