// SPDX-License-Identifier: MIT

package harness

import (
	"errors"
	"fmt"
)

var (
	// ErrDegreeMismatch indicates an observed degree different from the
	// declared one. Returned errors are *MismatchError values.
	ErrDegreeMismatch = errors.New("harness: degree mismatch")

	// ErrConfig indicates an invalid catalog configuration file.
	ErrConfig = errors.New("harness: invalid config")

	// ErrNilScheme indicates a Case without a scheme.
	ErrNilScheme = errors.New("harness: nil scheme")
)

// MismatchError reports a scheme whose observed degree differs from its
// declared degree on a domain.
type MismatchError struct {
	Scheme   string
	Domain   string
	Declared int
	Observed int
}

// Error implements error.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("harness: %s on %s: declared degree %d, observed %d",
		e.Scheme, e.Domain, e.Declared, e.Observed)
}

// Is makes errors.Is(err, ErrDegreeMismatch) hold.
func (e *MismatchError) Is(target error) bool { return target == ErrDegreeMismatch }
