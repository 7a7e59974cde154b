// SPDX-License-Identifier: MIT
// Package: cubature/scheme
//
// errors.go — sentinel errors for the scheme package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors wrap sentinels with their name and arguments via %w.

package scheme

import (
	"errors"
	"fmt"
)

var (
	// ErrPointWeightMismatch indicates len(points) != len(weights).
	ErrPointWeightMismatch = errors.New("scheme: point/weight count mismatch")

	// ErrEmptyScheme indicates a rule without points.
	ErrEmptyScheme = errors.New("scheme: no points")

	// ErrNegativeDegree indicates a declared degree < 0.
	ErrNegativeDegree = errors.New("scheme: negative degree")

	// ErrNonFinite indicates a NaN or ±Inf point coordinate or weight.
	ErrNonFinite = errors.New("scheme: non-finite point or weight")

	// ErrUnknownIndex indicates an index outside the range a family supports.
	ErrUnknownIndex = errors.New("scheme: unsupported index")

	// ErrUnknownFamily indicates a family name Lookup does not know.
	ErrUnknownFamily = errors.New("scheme: unknown family")

	// ErrNilLine indicates a nil *Line passed to FromLine.
	ErrNilLine = errors.New("scheme: nil line rule")

	// ErrConstruct indicates that deriving a rule's nodes or weights failed
	// in the underlying linear algebra.
	ErrConstruct = errors.New("scheme: rule construction failed")
)

// schemeErrorf prefixes err with the constructor context.
func schemeErrorf(ctx string, err error) error {
	return fmt.Errorf("%s: %w", ctx, err)
}
