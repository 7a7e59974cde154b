// SPDX-License-Identifier: MIT
package poly_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/cubature/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustVar returns ξ_v or fails the test.
func mustVar(t *testing.T, v int) poly.Poly {
	t.Helper()
	p, err := poly.Var(v)
	require.NoError(t, err)
	return p
}

// rat parses an exact rational like "3/4".
func rat(t *testing.T, s string) *big.Rat {
	t.Helper()
	r, ok := new(big.Rat).SetString(s)
	require.True(t, ok, "bad rational %q", s)
	return r
}

// TestArithmetic exercises Add/Sub/Mul/Pow/Scale and cancellation.
func TestArithmetic(t *testing.T) {
	x, y := mustVar(t, poly.X0), mustVar(t, poly.X1)

	sum := poly.Add(x, y)
	sq, err := poly.Pow(sum, 2)
	require.NoError(t, err)
	assert.Equal(t, "x0^2 + 2*x0*x1 + x1^2", sq.String())

	diff := poly.Sub(sq, poly.Mul(x, x))
	assert.Equal(t, "2*x0*x1 + x1^2", diff.String())

	zero := poly.Sub(sum, sum)
	assert.True(t, zero.IsZero(), "x+y-(x+y) must cancel")
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, -1, zero.Degree())

	half := poly.Scale(sq, big.NewRat(1, 2))
	assert.Equal(t, "1/2*x0^2 + x0*x1 + 1/2*x1^2", half.String())
	assert.Equal(t, 2, half.Degree())

	one, err := poly.Pow(poly.Zero(), 0)
	require.NoError(t, err)
	c, ok := one.Constant()
	require.True(t, ok)
	assert.Equal(t, 0, c.Cmp(big.NewRat(1, 1)))

	_, err = poly.Pow(x, -1)
	require.ErrorIs(t, err, poly.ErrNegativePower)
}

// TestDiff checks term-wise differentiation.
func TestDiff(t *testing.T) {
	x, y := mustVar(t, poly.X0), mustVar(t, poly.X1)
	p := poly.Add(poly.Mul(poly.Mul(x, x), y), poly.Scale(y, big.NewRat(3, 1))) // x²y + 3y

	dx, err := poly.Diff(p, poly.X0)
	require.NoError(t, err)
	assert.Equal(t, "2*x0*x1", dx.String())

	dy, err := poly.Diff(p, poly.X1)
	require.NoError(t, err)
	assert.Equal(t, "x0^2 + 3", dy.String())

	_, err = poly.Diff(p, 2)
	require.ErrorIs(t, err, poly.ErrBadVariable)
}

// TestIntegrateSquare compares ∫∫ ξ0^a ξ1^b over [-1,1]² with the closed form.
func TestIntegrateSquare(t *testing.T) {
	oneD := func(k int) *big.Rat {
		if k%2 == 1 {
			return new(big.Rat)
		}
		return big.NewRat(2, int64(k+1))
	}
	for a := 0; a <= 6; a++ {
		for b := 0; a+b <= 6; b++ {
			p := poly.Term(big.NewRat(1, 1), a, b)
			got, err := poly.IntegrateSquare(p)
			require.NoError(t, err)
			c, ok := got.Constant()
			require.True(t, ok, "result must be constant")
			want := new(big.Rat).Mul(oneD(a), oneD(b))
			assert.Equal(t, 0, want.Cmp(c), "a=%d b=%d got %s want %s", a, b, c, want)
		}
	}
}

// TestIntegrate_Partial leaves the other variable free.
func TestIntegrate_Partial(t *testing.T) {
	x, y := mustVar(t, poly.X0), mustVar(t, poly.X1)
	p := poly.Mul(x, y) // ∫_0^2 x·y dy = 2x

	got, err := poly.Integrate(p, poly.X1, big.NewRat(0, 1), big.NewRat(2, 1))
	require.NoError(t, err)
	assert.Equal(t, "2*x0", got.String())
	_, ok := got.Constant()
	assert.False(t, ok, "x0 remains free")

	_, err = poly.Integrate(p, 5, big.NewRat(0, 1), big.NewRat(1, 1))
	require.ErrorIs(t, err, poly.ErrBadVariable)
}

// TestCompose substitutes affine maps.
func TestCompose(t *testing.T) {
	x, y := mustVar(t, poly.X0), mustVar(t, poly.X1)
	p := poly.Mul(x, y) // x·y
	// x → 1 + ξ0, y → ξ0 − ξ1
	got := poly.Compose(p,
		poly.Affine(big.NewRat(1, 1), big.NewRat(1, 1), new(big.Rat)),
		poly.Affine(new(big.Rat), big.NewRat(1, 1), big.NewRat(-1, 1)))
	assert.Equal(t, "x0^2 - x0*x1 + x0 - x1", got.String())
}

// TestEval evaluates in float and exactly.
func TestEval(t *testing.T) {
	p := poly.Add(poly.Term(rat(t, "3/2"), 2, 1), poly.ConstInt(-4))
	assert.InDelta(t, 3.0/2*4*3-4, p.Eval(2, 3), 1e-15)
	assert.Equal(t, 0, rat(t, "14").Cmp(p.EvalRat(big.NewRat(2, 1), big.NewRat(3, 1))))
	assert.Equal(t, 0, rat(t, "3/2").Cmp(p.Coeff(2, 1)))
	assert.Equal(t, 0, new(big.Rat).Cmp(p.Coeff(5, 5)))
}

// TestConstFloat is exact for binary fractions and rejects non-finite values.
func TestConstFloat(t *testing.T) {
	p, err := poly.ConstFloat(-0.375)
	require.NoError(t, err)
	c, ok := p.Constant()
	require.True(t, ok)
	assert.Equal(t, "-3/8", c.RatString())

	_, err = poly.ConstFloat(math.NaN())
	require.ErrorIs(t, err, poly.ErrNonFinite)
	_, err = poly.RatFromFloat(math.Inf(-1))
	require.ErrorIs(t, err, poly.ErrNonFinite)
}

// TestEqual compares independently built polynomials.
func TestEqual(t *testing.T) {
	x, y := mustVar(t, poly.X0), mustVar(t, poly.X1)
	a := poly.Mul(poly.Add(x, y), poly.Sub(x, y))
	b := poly.Sub(poly.Mul(x, x), poly.Mul(y, y))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(x))
	assert.Equal(t, 2, a.Len())
}
