// SPDX-License-Identifier: MIT

package domain

import "errors"

var (
	// ErrNonFinite indicates a NaN or ±Inf vertex coordinate or bound.
	ErrNonFinite = errors.New("domain: non-finite coordinate")

	// ErrDegenerate indicates a domain of zero extent: a rectangle with
	// x0 == x1 or y0 == y1, or a quadrilateral whose Jacobian vanishes
	// identically.
	ErrDegenerate = errors.New("domain: degenerate domain")
)
