// SPDX-License-Identifier: MIT
package degree_test

import (
	"errors"
	"iter"
	"math"
	"testing"

	"github.com/katalvlaran/cubature/degree"
	"github.com/katalvlaran/cubature/domain"
	"github.com/katalvlaran/cubature/evaluate"
	"github.com/katalvlaran/cubature/monomial"
	"github.com/katalvlaran/cubature/oracle"
	"github.com/katalvlaran/cubature/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var box = domain.Rectangle{X0: -2, X1: 1, Y0: -1, Y1: 1}

func tensor(t *testing.T, l *scheme.Line, err error) *scheme.Scheme {
	t.Helper()
	require.NoError(t, err)
	s, err := scheme.FromLine(l)
	require.NoError(t, err)

	return s
}

// TestRun_Midpoint: the one-point rule on the box is exact through degree 1
// and fails on x² and y².
func TestRun_Midpoint(t *testing.T) {
	s := tensor(t, scheme.Midpoint(), nil)
	exact, err := oracle.NewRectangle(box)
	require.NoError(t, err)

	res, err := degree.Run(evaluate.Monomial(s, box.Quadrilateral()), exact, monomial.Exact, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Degree)
	assert.Equal(t, 2, res.FailedDegree)
	assert.False(t, res.Inconclusive)
	assert.Equal(t, 1+2+3, res.Probes)
	require.Len(t, res.Failures, 2)
	assert.Equal(t, monomial.Exponent{A: 2, B: 0}, res.Failures[0].Exponent)
	assert.InDelta(t, 1.5, res.Failures[0].Numerical, 1e-14)
	assert.InDelta(t, 6.0, res.Failures[0].Exact, 1e-14)
	assert.Equal(t, monomial.Exponent{A: 0, B: 2}, res.Failures[1].Exponent)
}

// TestCheck_GaussUnitSquare: 5-point Gauss tensor on [0,1]² via the
// symbolic oracle reaches degree 9.
func TestCheck_GaussUnitSquare(t *testing.T) {
	l, err := scheme.GaussLegendre(5)
	s := tensor(t, l, err)
	q := domain.Rectangle{X0: 0, X1: 1, Y0: 0, Y1: 1}.Quadrilateral()
	sym, err := oracle.NewSymbolic(q)
	require.NoError(t, err)

	d, err := degree.Check(evaluate.Monomial(s, q), sym, monomial.Exact, 12)
	require.NoError(t, err)
	require.Equal(t, 9, d)
}

// TestCheck_GaussReferenceSquare: the same rule on [-1,1]² reaches degree 9
// through both the symbolic oracle and the closed-form rectangle.
func TestCheck_GaussReferenceSquare(t *testing.T) {
	l, err := scheme.GaussLegendre(5)
	s := tensor(t, l, err)
	ref := domain.Rectangle{X0: -1, X1: 1, Y0: -1, Y1: 1}
	q := domain.ReferenceSquare()

	sym, err := oracle.NewSymbolic(q)
	require.NoError(t, err)
	fast, err := oracle.NewRectangle(ref)
	require.NoError(t, err)

	for name, exact := range map[string]oracle.Oracle{"symbolic": sym, "rectangle": fast} {
		res, err := degree.Run(evaluate.Monomial(s, q), exact, monomial.Exact, 12)
		require.NoError(t, err, name)
		assert.Equal(t, 9, res.Degree, name)
		assert.Equal(t, 10, res.FailedDegree, name)
	}
}

// TestCheck_GaussHighOrderBox: on [-2,1]×[-1,1] odd monomials cancel to
// rounding noise far above 1e-10 at degree ~20; the scaled tolerance still
// reports the full 2n−1.
func TestCheck_GaussHighOrderBox(t *testing.T) {
	exact, err := oracle.NewRectangle(box)
	require.NoError(t, err)
	for _, build := range []func(int) (*scheme.Line, error){scheme.GaussLegendre, scheme.GaussLegendreGonum} {
		l, err := build(13)
		s := tensor(t, l, err)
		d, err := degree.Check(evaluate.Monomial(s, box.Quadrilateral()), exact, monomial.Exact, 26)
		require.NoError(t, err)
		assert.Equal(t, 25, d, s.Name())
	}
}

// TestRun_Ceiling stops at maxDegree and flags the result inconclusive.
func TestRun_Ceiling(t *testing.T) {
	l, err := scheme.GaussLegendre(5)
	s := tensor(t, l, err)
	exact, err := oracle.NewRectangle(box)
	require.NoError(t, err)

	res, err := degree.Run(evaluate.Monomial(s, box.Quadrilateral()), exact, monomial.Exact, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Degree)
	assert.Equal(t, -1, res.FailedDegree)
	assert.True(t, res.Inconclusive)
	assert.Empty(t, res.Failures)
	assert.Equal(t, monomial.CumulativeCount(5), res.Probes)
}

// TestRun_Idempotent runs the same check twice.
func TestRun_Idempotent(t *testing.T) {
	l, err := scheme.NewtonCotesClosed(2)
	s := tensor(t, l, err)
	exact, err := oracle.NewRectangle(box)
	require.NoError(t, err)
	num := evaluate.Monomial(s, box.Quadrilateral())

	first, err := degree.Run(num, exact, monomial.Exact, 6)
	require.NoError(t, err)
	second, err := degree.Run(num, exact, monomial.Exact, 6)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 3, first.Degree)
}

// TestRun_FailsAtZero: a rule with the wrong total weight has degree −1.
func TestRun_FailsAtZero(t *testing.T) {
	num := oracle.Func(func(monomial.Exponent) (float64, error) { return 1, nil })
	exact := oracle.Func(func(monomial.Exponent) (float64, error) { return 2, nil })
	res, err := degree.Run(num, exact, monomial.Exact, 4)
	require.NoError(t, err)
	assert.Equal(t, -1, res.Degree)
	assert.Equal(t, 0, res.FailedDegree)
}

// TestRun_Tolerance exercises the relative bound and the absolute floor.
func TestRun_Tolerance(t *testing.T) {
	exact := oracle.Func(func(e monomial.Exponent) (float64, error) {
		if e.A%2 == 1 {
			return 0, nil
		}
		return 100, nil
	})
	noisy := oracle.Func(func(e monomial.Exponent) (float64, error) {
		if e.A%2 == 1 {
			return 1e-15, nil // absolute floor near zero
		}
		return 100 * (1 + 1e-12), nil // relative agreement
	})

	res, err := degree.Run(noisy, exact, monomial.Exact, 3)
	require.NoError(t, err)
	require.True(t, res.Inconclusive)

	res, err = degree.Run(noisy, exact, monomial.Exact, 3, degree.WithRelTol(0), degree.WithAbsTol(0))
	require.NoError(t, err)
	require.Equal(t, -1, res.Degree)

	res, err = degree.Run(noisy, exact, monomial.Exact, 3, degree.WithAbsTol(0))
	require.NoError(t, err)
	require.Equal(t, 0, res.Degree, "x has exact 0, only the absolute floor can pass")
}

// scaledFunc is a numerical oracle that reports a fixed summand scale.
type scaledFunc struct {
	value, scale float64
}

func (f scaledFunc) Integrate(monomial.Exponent) (float64, error) { return f.value, nil }

func (f scaledFunc) IntegrateScaled(monomial.Exponent) (float64, float64, error) {
	return f.value, f.scale, nil
}

// TestRun_ScaledCancellation: a value that cancels to 1e-9 agrees with an
// exact 0 when the summands were of size 1e5, and not otherwise.
func TestRun_ScaledCancellation(t *testing.T) {
	zero := oracle.Func(func(monomial.Exponent) (float64, error) { return 0, nil })

	res, err := degree.Run(scaledFunc{value: 1e-9, scale: 1e5}, zero, monomial.Exact, 2)
	require.NoError(t, err)
	assert.True(t, res.Inconclusive)

	res, err = degree.Run(scaledFunc{value: 1e-9, scale: 1}, zero, monomial.Exact, 2)
	require.NoError(t, err)
	assert.Equal(t, -1, res.Degree)
	require.NotEmpty(t, res.Failures)
	assert.Equal(t, 1.0, res.Failures[0].Scale)

	plain := oracle.Func(func(monomial.Exponent) (float64, error) { return 1e-9, nil })
	res, err = degree.Run(plain, zero, monomial.Exact, 2)
	require.NoError(t, err)
	assert.Equal(t, -1, res.Degree, "without a scale only |num| and |exact| count")
}

func TestRun_NonFinite(t *testing.T) {
	exact := oracle.Func(func(monomial.Exponent) (float64, error) { return 1, nil })
	nan := oracle.Func(func(e monomial.Exponent) (float64, error) {
		if e.Degree() == 2 {
			return math.NaN(), nil
		}
		return 1, nil
	})
	_, err := degree.Run(nan, exact, monomial.Exact, 4)
	require.ErrorIs(t, err, degree.ErrNonFinite)

	inf := oracle.Func(func(monomial.Exponent) (float64, error) { return math.Inf(1), nil })
	_, err = degree.Check(exact, inf, monomial.Exact, 4)
	require.ErrorIs(t, err, degree.ErrNonFinite)
}

// TestRun_PropagatesErrors keeps oracle and generator errors distinct from
// tolerance failures.
func TestRun_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	ok := oracle.Func(func(monomial.Exponent) (float64, error) { return 1, nil })
	bad := oracle.Func(func(monomial.Exponent) (float64, error) { return 0, boom })

	_, err := degree.Run(ok, bad, monomial.Exact, 2)
	require.ErrorIs(t, err, boom)
	_, err = degree.Run(bad, ok, monomial.Exact, 2)
	require.ErrorIs(t, err, boom)

	gen := func(d int) (iter.Seq[monomial.Exponent], error) {
		if d == 1 {
			return nil, boom
		}
		return monomial.Exact(d)
	}
	_, err = degree.Run(ok, ok, gen, 3)
	require.ErrorIs(t, err, boom)
}

func TestRun_BadInput(t *testing.T) {
	ok := oracle.Func(func(monomial.Exponent) (float64, error) { return 1, nil })
	_, err := degree.Run(nil, ok, monomial.Exact, 1)
	require.ErrorIs(t, err, degree.ErrNilOracle)
	_, err = degree.Run(ok, nil, monomial.Exact, 1)
	require.ErrorIs(t, err, degree.ErrNilOracle)
	_, err = degree.Run(ok, ok, nil, 1)
	require.ErrorIs(t, err, degree.ErrNilOracle)
	_, err = degree.Check(ok, ok, monomial.Exact, -1)
	require.ErrorIs(t, err, degree.ErrNegativeDegree)

	require.Panics(t, func() { _, _ = degree.Run(ok, ok, monomial.Exact, 1, degree.WithRelTol(-1)) })
	require.Panics(t, func() { _, _ = degree.Run(ok, ok, monomial.Exact, 1, degree.WithAbsTol(math.Inf(1))) })
}

// TestRun_Logger records one debug entry per degree plus the failure entry.
func TestRun_Logger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := tensor(t, scheme.Trapezoidal(), nil)
	exact, err := oracle.NewRectangle(box)
	require.NoError(t, err)

	res, err := degree.Run(evaluate.Monomial(s, box.Quadrilateral()), exact, monomial.Exact, 4,
		degree.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.Equal(t, 1, res.Degree)

	require.Equal(t, 3, logs.FilterMessage("degree probed").Len())
	failed := logs.FilterMessage("exactness lost").All()
	require.Len(t, failed, 1)
	require.Equal(t, int64(2), failed[0].ContextMap()["degree"])
}
