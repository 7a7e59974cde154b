// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"

	"github.com/katalvlaran/cubature/monomial"
)

// Variable indices.
const (
	X0 = 0 // first reference coordinate ξ0
	X1 = 1 // second reference coordinate ξ1
)

var (
	// ErrNonFinite is returned when a NaN or ±Inf float is converted to a coefficient.
	ErrNonFinite = errors.New("poly: non-finite coefficient")

	// ErrBadVariable is returned for a variable index other than X0 or X1.
	ErrBadVariable = errors.New("poly: variable index must be 0 or 1")

	// ErrNegativePower is returned by Pow for a negative exponent.
	ErrNegativePower = errors.New("poly: negative power")
)

// Poly is an immutable polynomial Σ c_ab·ξ0^a·ξ1^b with exact rational coefficients.
// The zero value is the zero polynomial.
type Poly struct {
	terms map[monomial.Exponent]*big.Rat // no zero coefficients stored
}

// Zero returns the zero polynomial.
func Zero() Poly { return Poly{} }

// Const returns the constant polynomial r. r is copied.
func Const(r *big.Rat) Poly {
	return Term(r, 0, 0)
}

// ConstInt returns the constant polynomial n.
func ConstInt(n int64) Poly {
	return Const(new(big.Rat).SetInt64(n))
}

// ConstFloat returns the constant polynomial with the exact binary value of f.
// Errors: ErrNonFinite for NaN/±Inf.
func ConstFloat(f float64) (Poly, error) {
	r, err := RatFromFloat(f)
	if err != nil {
		return Poly{}, err
	}

	return Const(r), nil
}

// RatFromFloat converts f into the exactly equal rational.
// Errors: ErrNonFinite for NaN/±Inf.
func RatFromFloat(f float64) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("RatFromFloat(%v): %w", f, ErrNonFinite)
	}

	return new(big.Rat).SetFloat64(f), nil
}

// Term returns the single term c·ξ0^a·ξ1^b. c is copied; a, b must be ≥ 0.
func Term(c *big.Rat, a, b int) Poly {
	if c == nil || c.Sign() == 0 {
		return Poly{}
	}

	return Poly{terms: map[monomial.Exponent]*big.Rat{{A: a, B: b}: new(big.Rat).Set(c)}}
}

// Var returns the polynomial ξ_v.
// Errors: ErrBadVariable.
func Var(v int) (Poly, error) {
	switch v {
	case X0:
		return Term(big.NewRat(1, 1), 1, 0), nil
	case X1:
		return Term(big.NewRat(1, 1), 0, 1), nil
	default:
		return Poly{}, fmt.Errorf("Var(%d): %w", v, ErrBadVariable)
	}
}

// Affine returns c0 + c1·ξ0 + c2·ξ1.
func Affine(c0, c1, c2 *big.Rat) Poly {
	return Add(Add(Term(c0, 0, 0), Term(c1, 1, 0)), Term(c2, 0, 1))
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.terms) == 0 }

// Len returns the number of non-zero terms.
func (p Poly) Len() int { return len(p.terms) }

// Coeff returns a copy of the coefficient of ξ0^a·ξ1^b (zero when absent).
func (p Poly) Coeff(a, b int) *big.Rat {
	if c, ok := p.terms[monomial.Exponent{A: a, B: b}]; ok {
		return new(big.Rat).Set(c)
	}

	return new(big.Rat)
}

// Degree returns the total degree, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	d := -1
	for e := range p.terms {
		if e.Degree() > d {
			d = e.Degree()
		}
	}

	return d
}

// Constant returns the value of a constant polynomial.
// ok is false when any non-constant term remains (free variables).
func (p Poly) Constant() (*big.Rat, bool) {
	for e := range p.terms {
		if e.A != 0 || e.B != 0 {
			return nil, false
		}
	}

	return p.Coeff(0, 0), true
}

// Exponents returns the exponents of the non-zero terms in canonical order
// (descending total degree, then descending power of ξ0).
func (p Poly) Exponents() []monomial.Exponent {
	out := make([]monomial.Exponent, 0, len(p.terms))
	for e := range p.terms {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if di, dj := out[i].Degree(), out[j].Degree(); di != dj {
			return di > dj
		}
		return out[i].A > out[j].A
	})

	return out
}

// Equal reports whether p and q have identical coefficients.
func (p Poly) Equal(q Poly) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for e, c := range p.terms {
		d, ok := q.terms[e]
		if !ok || c.Cmp(d) != 0 {
			return false
		}
	}

	return true
}

// String renders p with exact coefficients in canonical order, e.g.
// "3/2*x0^2*x1 - x1 + 1/4".
func (p Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, e := range p.Exponents() {
		c := p.terms[e]
		neg := c.Sign() < 0
		abs := new(big.Rat).Abs(c)
		switch {
		case i == 0 && neg:
			sb.WriteString("-")
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		mono := monoString(e)
		switch {
		case mono == "":
			sb.WriteString(abs.RatString())
		case abs.Cmp(big.NewRat(1, 1)) == 0:
			sb.WriteString(mono)
		default:
			sb.WriteString(abs.RatString())
			sb.WriteString("*")
			sb.WriteString(mono)
		}
	}

	return sb.String()
}

func monoString(e monomial.Exponent) string {
	var parts []string
	for v, k := range [2]int{e.A, e.B} {
		switch {
		case k == 1:
			parts = append(parts, fmt.Sprintf("x%d", v))
		case k > 1:
			parts = append(parts, fmt.Sprintf("x%d^%d", v, k))
		}
	}

	return strings.Join(parts, "*")
}

// Eval evaluates p at (ξ0, ξ1) in floating point.
func (p Poly) Eval(x0, x1 float64) float64 {
	var sum float64
	for _, e := range p.Exponents() {
		c, _ := p.terms[e].Float64()
		sum += c * e.Eval(x0, x1)
	}

	return sum
}

// EvalRat evaluates p exactly at rational (ξ0, ξ1).
func (p Poly) EvalRat(x0, x1 *big.Rat) *big.Rat {
	sum := new(big.Rat)
	t := new(big.Rat)
	for e, c := range p.terms {
		t.Set(c)
		t.Mul(t, ratPow(x0, e.A))
		t.Mul(t, ratPow(x1, e.B))
		sum.Add(sum, t)
	}

	return sum
}

func ratPow(x *big.Rat, k int) *big.Rat {
	r := big.NewRat(1, 1)
	for i := 0; i < k; i++ {
		r.Mul(r, x)
	}

	return r
}
