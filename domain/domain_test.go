// SPDX-License-Identifier: MIT
package domain_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cubature/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rect is the [-2,1]×[-1,1] box used throughout the suite.
var rect = domain.Rectangle{X0: -2, X1: 1, Y0: -1, Y1: 1}

// TestMap_Corners checks that each basis corner lands on its vertex.
func TestMap_Corners(t *testing.T) {
	q := rect.Quadrilateral()
	corners := []domain.Point{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}
	for i, c := range corners {
		assert.Equal(t, q[i], q.Map(c), "corner %d", i)
	}

	n := domain.Basis(domain.Point{X: 0.3, Y: -0.7})
	assert.InDelta(t, 1.0, n[0]+n[1]+n[2]+n[3], 1e-15, "partition of unity")
}

// TestDetJ_Rectangle: constant |det J| = area/4 for a box, either winding.
func TestDetJ_Rectangle(t *testing.T) {
	q := rect.Quadrilateral()
	xi := domain.Point{X: 0.2, Y: 0.9}
	assert.InDelta(t, 1.5, q.AbsDetJ(xi), 1e-15)

	reversed := domain.Quadrilateral{q[0], q[3], q[2], q[1]}
	assert.InDelta(t, -q.DetJ(xi), reversed.DetJ(xi), 1e-15, "winding flips the sign")
	assert.InDelta(t, 1.5, reversed.AbsDetJ(xi), 1e-15, "|det J| is orientation independent")

	assert.InDelta(t, 6.0, math.Abs(q.SignedArea()), 1e-15)
	assert.True(t, q.IsParallelogram())
}

// TestJacobianPoly agrees with the numeric Jacobian and is affine.
func TestJacobianPoly(t *testing.T) {
	q := domain.Quadrilateral{{0, 0}, {3, 0.5}, {2.5, 2}, {-0.25, 1.5}}
	j, err := q.JacobianPoly()
	require.NoError(t, err)
	assert.LessOrEqual(t, j.Degree(), 1, "bilinear map has affine det J")
	assert.False(t, q.IsParallelogram())

	for _, xi := range []domain.Point{{X: 0, Y: 0}, {X: 0.5, Y: -0.25}, {X: -1, Y: 1}} {
		assert.InDelta(t, q.DetJ(xi), j.Eval(xi.X, xi.Y), 1e-14)
	}

	x, y, err := q.MapPoly()
	require.NoError(t, err)
	xi := domain.Point{X: -0.4, Y: 0.75}
	p := q.Map(xi)
	assert.InDelta(t, p.X, x.Eval(xi.X, xi.Y), 1e-14)
	assert.InDelta(t, p.Y, y.Eval(xi.X, xi.Y), 1e-14)
}

// TestValidate covers finite and degenerate checks.
func TestValidate(t *testing.T) {
	require.NoError(t, rect.Validate())
	require.NoError(t, rect.Quadrilateral().Validate())

	require.ErrorIs(t, domain.Rectangle{X0: 1, X1: 1, Y0: 0, Y1: 1}.Validate(), domain.ErrDegenerate)
	require.ErrorIs(t, domain.Rectangle{X0: math.NaN(), X1: 1, Y1: 1}.Validate(), domain.ErrNonFinite)

	var collapsed domain.Quadrilateral // all vertices at the origin
	require.ErrorIs(t, collapsed.Validate(), domain.ErrDegenerate)

	bad := domain.ReferenceSquare()
	bad[2].Y = math.Inf(1)
	require.ErrorIs(t, bad.Validate(), domain.ErrNonFinite)
	_, _, err := bad.MapPoly()
	require.ErrorIs(t, err, domain.ErrNonFinite)
}

// TestBounds returns the enclosing box.
func TestBounds(t *testing.T) {
	q := domain.Quadrilateral{{0, 0}, {3, 0.5}, {2.5, 2}, {-0.25, 1.5}}
	assert.Equal(t, domain.Rectangle{X0: -0.25, X1: 3, Y0: 0, Y1: 2}, q.Bounds())
	assert.Equal(t, 6.0, domain.Rectangle{X0: 1, X1: -2, Y0: -1, Y1: 1}.Area())
}

// TestRectangle_Normalized swaps reversed bounds only.
func TestRectangle_Normalized(t *testing.T) {
	want := domain.Rectangle{X0: -2, X1: 1, Y0: -1, Y1: 1}
	for _, r := range []domain.Rectangle{
		want,
		{X0: 1, X1: -2, Y0: -1, Y1: 1},
		{X0: -2, X1: 1, Y0: 1, Y1: -1},
		{X0: 1, X1: -2, Y0: 1, Y1: -1},
	} {
		assert.Equal(t, want, r.Normalized())
		assert.Equal(t, want.Area(), r.Area())
	}
}
