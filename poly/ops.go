// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cubature/monomial"
)

// builder accumulates terms and drops cancelled coefficients on finish.
type builder map[monomial.Exponent]*big.Rat

func (b builder) add(e monomial.Exponent, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	if cur, ok := b[e]; ok {
		cur.Add(cur, c)
		return
	}
	b[e] = new(big.Rat).Set(c)
}

func (b builder) poly() Poly {
	for e, c := range b {
		if c.Sign() == 0 {
			delete(b, e)
		}
	}
	if len(b) == 0 {
		return Poly{}
	}

	return Poly{terms: b}
}

// Add returns p + q.
func Add(p, q Poly) Poly {
	b := make(builder, len(p.terms)+len(q.terms))
	for e, c := range p.terms {
		b.add(e, c)
	}
	for e, c := range q.terms {
		b.add(e, c)
	}

	return b.poly()
}

// Sub returns p − q.
func Sub(p, q Poly) Poly {
	return Add(p, Neg(q))
}

// Neg returns −p.
func Neg(p Poly) Poly {
	return Scale(p, big.NewRat(-1, 1))
}

// Scale returns r·p.
func Scale(p Poly, r *big.Rat) Poly {
	b := make(builder, len(p.terms))
	t := new(big.Rat)
	for e, c := range p.terms {
		b.add(e, t.Mul(c, r))
	}

	return b.poly()
}

// Mul returns p·q.
// Complexity: O(|p|·|q|) rational multiplications.
func Mul(p, q Poly) Poly {
	b := make(builder, len(p.terms)*len(q.terms))
	t := new(big.Rat)
	for ep, cp := range p.terms {
		for eq, cq := range q.terms {
			b.add(monomial.Exponent{A: ep.A + eq.A, B: ep.B + eq.B}, t.Mul(cp, cq))
		}
	}

	return b.poly()
}

// Pow returns p^k by repeated squaring; p^0 == 1 (also for p == 0).
// Errors: ErrNegativePower.
func Pow(p Poly, k int) (Poly, error) {
	if k < 0 {
		return Poly{}, fmt.Errorf("Pow(%d): %w", k, ErrNegativePower)
	}
	result := ConstInt(1)
	base := p
	for k > 0 {
		if k&1 == 1 {
			result = Mul(result, base)
		}
		k >>= 1
		if k > 0 {
			base = Mul(base, base)
		}
	}

	return result, nil
}

// Diff returns ∂p/∂ξ_v.
// Errors: ErrBadVariable.
func Diff(p Poly, v int) (Poly, error) {
	if v != X0 && v != X1 {
		return Poly{}, fmt.Errorf("Diff(%d): %w", v, ErrBadVariable)
	}
	b := make(builder, len(p.terms))
	t := new(big.Rat)
	for e, c := range p.terms {
		k := e.A
		ne := monomial.Exponent{A: e.A - 1, B: e.B}
		if v == X1 {
			k = e.B
			ne = monomial.Exponent{A: e.A, B: e.B - 1}
		}
		if k == 0 {
			continue
		}
		b.add(ne, t.Mul(c, big.NewRat(int64(k), 1)))
	}

	return b.poly(), nil
}

// Integrate returns ∫_lo^hi p dξ_v, a polynomial in the remaining variable.
// The antiderivative is taken term by term: ξ^k → ξ^{k+1}/(k+1).
// Errors: ErrBadVariable.
func Integrate(p Poly, v int, lo, hi *big.Rat) (Poly, error) {
	if v != X0 && v != X1 {
		return Poly{}, fmt.Errorf("Integrate(%d): %w", v, ErrBadVariable)
	}
	b := make(builder, len(p.terms))
	t := new(big.Rat)
	for e, c := range p.terms {
		k := e.A
		rest := monomial.Exponent{A: 0, B: e.B}
		if v == X1 {
			k = e.B
			rest = monomial.Exponent{A: e.A, B: 0}
		}
		// (hi^{k+1} − lo^{k+1})/(k+1)
		t.Sub(ratPow(hi, k+1), ratPow(lo, k+1))
		t.Mul(t, big.NewRat(1, int64(k+1)))
		t.Mul(t, c)
		b.add(rest, t)
	}

	return b.poly(), nil
}

// IntegrateSquare returns ∫_{-1}^{1}∫_{-1}^{1} p dξ1 dξ0, integrating the
// inner variable ξ1 first. The result is a polynomial; for any p it is
// constant, and callers should still check Constant() to detect free
// variables.
func IntegrateSquare(p Poly) (Poly, error) {
	lo, hi := big.NewRat(-1, 1), big.NewRat(1, 1)
	inner, err := Integrate(p, X1, lo, hi)
	if err != nil {
		return Poly{}, err
	}

	return Integrate(inner, X0, lo, hi)
}

// Compose returns p(x(ξ0,ξ1), y(ξ0,ξ1)): the first variable of p is replaced
// by x and the second by y.
// Complexity: O(deg(p)) polynomial products with cached powers.
func Compose(p, x, y Poly) Poly {
	xs := powers{base: x}
	ys := powers{base: y}
	b := make(builder)
	for e, c := range p.terms {
		term := Scale(Mul(xs.get(e.A), ys.get(e.B)), c)
		for te, tc := range term.terms {
			b.add(te, tc)
		}
	}

	return b.poly()
}

// powers memoises base^k for k = 0, 1, …
type powers struct {
	base Poly
	memo []Poly
}

func (pw *powers) get(k int) Poly {
	if len(pw.memo) == 0 {
		pw.memo = append(pw.memo, ConstInt(1))
	}
	for len(pw.memo) <= k {
		pw.memo = append(pw.memo, Mul(pw.memo[len(pw.memo)-1], pw.base))
	}

	return pw.memo[k]
}

// Powers is a memoising power table of a fixed polynomial. It is not safe
// for concurrent use; guard it externally when shared.
type Powers struct{ p powers }

// NewPowers returns a power table for base.
func NewPowers(base Poly) *Powers { return &Powers{p: powers{base: base}} }

// Get returns base^k (k ≥ 0).
func (pw *Powers) Get(k int) Poly { return pw.p.get(k) }
