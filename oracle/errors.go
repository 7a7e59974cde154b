// SPDX-License-Identifier: MIT

package oracle

import "errors"

var (
	// ErrNotConstant indicates that integration left free variables in the
	// result. It is never coerced to zero.
	ErrNotConstant = errors.New("oracle: integral is not a constant")

	// ErrNonFinite indicates an integral that does not fit a finite float64.
	ErrNonFinite = errors.New("oracle: non-finite integral")

	// ErrBadExponent indicates a negative exponent.
	ErrBadExponent = errors.New("oracle: negative exponent")
)
