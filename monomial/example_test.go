// SPDX-License-Identifier: MIT
package monomial_test

import (
	"fmt"

	"github.com/katalvlaran/cubature/monomial"
)

// ExampleExact lists the probe monomials of total degree 2.
func ExampleExact() {
	seq, _ := monomial.Exact(2)
	for e := range seq {
		fmt.Println(e)
	}
	// Output:
	// x^2
	// x*y
	// y^2
}
