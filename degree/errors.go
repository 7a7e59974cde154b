// SPDX-License-Identifier: MIT

package degree

import "errors"

var (
	// ErrNonFinite indicates a NaN or ±Inf value from either oracle.
	ErrNonFinite = errors.New("degree: non-finite probe value")

	// ErrNilOracle indicates a nil oracle or generator.
	ErrNilOracle = errors.New("degree: nil oracle or generator")

	// ErrNegativeDegree indicates maxDegree < 0.
	ErrNegativeDegree = errors.New("degree: negative maxDegree")

	// ErrBadTolerance indicates a negative or non-finite tolerance option.
	ErrBadTolerance = errors.New("degree: tolerance must be finite and ≥ 0")
)
