// SPDX-License-Identifier: MIT
package degree_test

import (
	"fmt"

	"github.com/katalvlaran/cubature/degree"
	"github.com/katalvlaran/cubature/domain"
	"github.com/katalvlaran/cubature/evaluate"
	"github.com/katalvlaran/cubature/monomial"
	"github.com/katalvlaran/cubature/oracle"
	"github.com/katalvlaran/cubature/scheme"
)

// ExampleRun verifies Stroud's degree-5 Radon rule on a rectangle.
func ExampleRun() {
	s, _ := scheme.Stroud(4)
	r := domain.Rectangle{X0: -2, X1: 1, Y0: -1, Y1: 1}
	exact, _ := oracle.NewRectangle(r)

	res, _ := degree.Run(evaluate.Monomial(s, r.Quadrilateral()), exact, monomial.Exact, s.Degree()+1)
	fmt.Println(s.Name(), "degree", res.Degree, "fails at", res.FailedDegree)
	// Output:
	// Stroud C2 5-1 degree 5 fails at 6
}
