// SPDX-License-Identifier: MIT

package monomial

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrNegativeDegree is returned when a degree bound is negative.
var ErrNegativeDegree = errors.New("monomial: degree bound must be >= 0")

// Exponent is the pair (A, B) of the monomial x^A·y^B. Both are non-negative.
type Exponent struct {
	A int // power of x
	B int // power of y
}

// Generator yields the exponents of one total degree. Exact is the canonical
// Generator; the degree checker consumes any function of this shape.
type Generator func(d int) (iter.Seq[Exponent], error)

// Degree returns the total degree A+B.
func (e Exponent) Degree() int { return e.A + e.B }

// Eval returns x^A·y^B.
func (e Exponent) Eval(x, y float64) float64 {
	return ipow(x, e.A) * ipow(y, e.B)
}

// String renders the monomial in a compact, grep-friendly form: "1", "x",
// "x^2*y", "y^3".
func (e Exponent) String() string {
	px, py := factor("x", e.A), factor("y", e.B)
	switch {
	case px == "" && py == "":
		return "1"
	case px == "":
		return py
	case py == "":
		return px
	default:
		return px + "*" + py
	}
}

func factor(name string, k int) string {
	switch k {
	case 0:
		return ""
	case 1:
		return name
	default:
		return fmt.Sprintf("%s^%d", name, k)
	}
}

// Exact returns the exponents with A+B == d in descending-A order.
// Errors: ErrNegativeDegree when d < 0.
// Complexity: O(d) per traversal, O(1) memory.
func Exact(d int) (iter.Seq[Exponent], error) {
	if d < 0 {
		return nil, fmt.Errorf("Exact(%d): %w", d, ErrNegativeDegree)
	}

	return func(yield func(Exponent) bool) {
		for a := d; a >= 0; a-- {
			if !yield(Exponent{A: a, B: d - a}) {
				return
			}
		}
	}, nil
}

// Cumulative returns every exponent with A+B ≤ maxDegree, grouped by degree
// 0, 1, …, maxDegree and descending A inside a degree.
// Errors: ErrNegativeDegree when maxDegree < 0.
// Complexity: O(D²) per traversal, O(1) memory.
func Cumulative(maxDegree int) (iter.Seq[Exponent], error) {
	if maxDegree < 0 {
		return nil, fmt.Errorf("Cumulative(%d): %w", maxDegree, ErrNegativeDegree)
	}

	return func(yield func(Exponent) bool) {
		for d := 0; d <= maxDegree; d++ {
			for a := d; a >= 0; a-- {
				if !yield(Exponent{A: a, B: d - a}) {
					return
				}
			}
		}
	}, nil
}

// Count returns the number of exponents of total degree d (d+1), or 0 for d < 0.
func Count(d int) int {
	if d < 0 {
		return 0
	}

	return d + 1
}

// CumulativeCount returns the number of exponents with total degree ≤ maxDegree.
func CumulativeCount(maxDegree int) int {
	if maxDegree < 0 {
		return 0
	}

	return (maxDegree + 1) * (maxDegree + 2) / 2
}

// ipow computes x^k by repeated squaring; exact for small integer-valued inputs.
func ipow(x float64, k int) float64 {
	if k == 0 {
		return 1
	}
	if k < 0 {
		return math.NaN()
	}
	r := 1.0
	for k > 0 {
		if k&1 == 1 {
			r *= x
		}
		x *= x
		k >>= 1
	}

	return r
}
