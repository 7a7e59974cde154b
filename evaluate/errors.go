// SPDX-License-Identifier: MIT

package evaluate

import "errors"

var (
	// ErrNonFinite indicates a NaN or ±Inf integrand value or accumulated sum.
	ErrNonFinite = errors.New("evaluate: non-finite value")

	// ErrNilScheme indicates a nil scheme or integrand.
	ErrNilScheme = errors.New("evaluate: nil scheme or function")

	// ErrDimension indicates a vector integrand returning the wrong length.
	ErrDimension = errors.New("evaluate: vector dimension mismatch")
)
