// SPDX-License-Identifier: MIT
package scheme_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/cubature/domain"
	"github.com/katalvlaran/cubature/scheme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers every fail-fast construction error.
func TestNew_Validation(t *testing.T) {
	pt := []domain.Point{{X: 0, Y: 0}}
	cases := []struct {
		name    string
		degree  int
		points  []domain.Point
		weights []float64
		want    error
	}{
		{"mismatch", 1, pt, []float64{1, 2}, scheme.ErrPointWeightMismatch},
		{"empty", 1, nil, nil, scheme.ErrEmptyScheme},
		{"negative degree", -1, pt, []float64{4}, scheme.ErrNegativeDegree},
		{"nan weight", 1, pt, []float64{math.NaN()}, scheme.ErrNonFinite},
		{"inf point", 1, []domain.Point{{X: math.Inf(1)}}, []float64{4}, scheme.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := scheme.New("bad", tc.degree, tc.points, tc.weights)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, s)
		})
	}
}

// TestScheme_Immutable verifies constructors and accessors copy their slices.
func TestScheme_Immutable(t *testing.T) {
	pts := []domain.Point{{X: 0.5, Y: -0.5}, {X: -0.5, Y: 0.5}}
	ws := []float64{2, 2}
	s, err := scheme.New("pair", 1, pts, ws)
	require.NoError(t, err)

	pts[0].X = 9
	ws[0] = 9
	require.Equal(t, 0.5, s.Points()[0].X)
	require.Equal(t, 2.0, s.Weights()[0])

	got := s.Weights()
	got[1] = -1
	require.Equal(t, 2.0, s.Weights()[1])

	assert.Equal(t, "pair", s.Name())
	assert.Equal(t, 1, s.Degree())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 4.0, s.TotalWeight())
	assert.Equal(t, "pair [degree 1, 2 points]", s.String())
}

// TestScheme_AllStopsEarly checks the iterator honours a break.
func TestScheme_AllStopsEarly(t *testing.T) {
	s, err := scheme.Stroud(6)
	require.NoError(t, err)

	seen := 0
	for range s.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	require.Equal(t, 3, seen)
}

// TestFromLine checks point ordering, weights and naming of the tensor lift.
func TestFromLine(t *testing.T) {
	l, err := scheme.GaussLegendre(3)
	require.NoError(t, err)
	s, err := scheme.FromLine(l)
	require.NoError(t, err)

	require.Equal(t, "FromLine(GaussLegendre(3))", s.Name())
	require.Equal(t, 5, s.Degree())
	require.Equal(t, 9, s.Len())
	require.InDelta(t, 4.0, s.TotalWeight(), 1e-14)

	x, w := l.Points(), l.Weights()
	pts, ws := s.Points(), s.Weights()
	for i := range x {
		for j := range x {
			k := i*len(x) + j
			assert.Equal(t, domain.Point{X: x[i], Y: x[j]}, pts[k])
			assert.Equal(t, w[i]*w[j], ws[k])
		}
	}

	_, err = scheme.FromLine(nil)
	require.ErrorIs(t, err, scheme.ErrNilLine)
}

// squareMoment is ∫∫_{[-1,1]²} x^a y^b.
func squareMoment(a, b int) float64 { return lineMoment(a) * lineMoment(b) }

// TestStroud_Exactness integrates every monomial up to the declared degree
// exactly and misses at least one of degree+1.
func TestStroud_Exactness(t *testing.T) {
	wantLen := []int{1, 4, 4, 7, 8, 12}
	for k := 1; k <= scheme.StroudCount; k++ {
		s, err := scheme.Stroud(k)
		require.NoError(t, err)
		require.Equal(t, wantLen[k-1], s.Len(), s.Name())
		require.InDelta(t, 4.0, s.TotalWeight(), 1e-12, s.Name())

		quad := func(a, b int) float64 {
			var sum float64
			for p, w := range s.All() {
				sum += w * math.Pow(p.X, float64(a)) * math.Pow(p.Y, float64(b))
			}
			return sum
		}
		for d := 0; d <= s.Degree(); d++ {
			for a := d; a >= 0; a-- {
				require.InDelta(t, squareMoment(a, d-a), quad(a, d-a), 1e-12, "%s x^%d y^%d", s.Name(), a, d-a)
			}
		}
		d := s.Degree() + 1
		missed := false
		for a := d; a >= 0; a-- {
			if math.Abs(quad(a, d-a)-squareMoment(a, d-a)) > 1e-8 {
				missed = true
			}
		}
		require.True(t, missed, "%s exact beyond degree %d", s.Name(), s.Degree())
	}
}

// TestStroud_PointsInsideSquare checks every Stroud point lies in [-1,1]².
func TestStroud_PointsInsideSquare(t *testing.T) {
	for k := 1; k <= scheme.StroudCount; k++ {
		s, err := scheme.Stroud(k)
		require.NoError(t, err)
		for _, p := range s.Points() {
			require.LessOrEqual(t, math.Abs(p.X), 1.0, s.Name())
			require.LessOrEqual(t, math.Abs(p.Y), 1.0, s.Name())
		}
	}
}

func TestStroud_UnknownIndex(t *testing.T) {
	for _, k := range []int{0, -1, scheme.StroudCount + 1} {
		_, err := scheme.Stroud(k)
		require.ErrorIs(t, err, scheme.ErrUnknownIndex)
	}
}

// TestLookup resolves family names and surfaces index errors.
func TestLookup(t *testing.T) {
	s, err := scheme.Lookup(scheme.FamilyGaussLegendre, 4)
	require.NoError(t, err)
	require.Equal(t, "FromLine(GaussLegendre(4))", s.Name())
	require.Equal(t, 7, s.Degree())

	s, err = scheme.Lookup(scheme.FamilyMidpoint, 0)
	require.NoError(t, err)
	require.Equal(t, "FromLine(Midpoint)", s.Name())

	s, err = scheme.Lookup(scheme.FamilyStroud, 4)
	require.NoError(t, err)
	require.Equal(t, "Stroud C2 5-1", s.Name())

	_, err = scheme.Lookup("simpson", 1)
	require.ErrorIs(t, err, scheme.ErrUnknownFamily)
	_, err = scheme.Lookup(scheme.FamilyNewtonCotesClosed, 0)
	require.ErrorIs(t, err, scheme.ErrUnknownIndex)
	_, err = scheme.Lookup(scheme.FamilyStroud, 7)
	require.ErrorIs(t, err, scheme.ErrUnknownIndex)
	_, err = scheme.Lookup(scheme.FamilyGaussLegendre, scheme.MaxGaussLegendreFamily+1)
	require.ErrorIs(t, err, scheme.ErrUnknownIndex)
	_, err = scheme.Lookup(scheme.FamilyGaussLegendreGonum, 0)
	require.ErrorIs(t, err, scheme.ErrUnknownIndex)

	// the constructor is not capped
	l, err := scheme.GaussLegendre(scheme.MaxGaussLegendreFamily + 1)
	require.NoError(t, err)
	require.Equal(t, 2*scheme.MaxGaussLegendreFamily+1, l.Degree())
}

// TestFamily_Indices walks each family's accepted range; every index builds.
func TestFamily_Indices(t *testing.T) {
	counts := map[string]int{}
	for _, f := range scheme.Families() {
		for i := range f.Indices() {
			_, err := f.Build(i)
			require.NoError(t, err, "%s(%d)", f.Name, i)
			counts[f.Name]++
		}
	}
	assert.Equal(t, 1, counts[scheme.FamilyMidpoint])
	assert.Equal(t, scheme.MaxGaussLegendreFamily, counts[scheme.FamilyGaussLegendre])
	assert.Equal(t, scheme.MaxNewtonCotes+1, counts[scheme.FamilyNewtonCotesOpen])
	assert.Equal(t, scheme.StroudCount, counts[scheme.FamilyStroud])
}

func TestFamilies_Sorted(t *testing.T) {
	fs := scheme.Families()
	require.Len(t, fs, 7)
	for i := 1; i < len(fs); i++ {
		require.Less(t, fs[i-1].Name, fs[i].Name)
	}
}
