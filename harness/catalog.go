// SPDX-License-Identifier: MIT

package harness

import "github.com/katalvlaran/cubature/scheme"

// Catalog returns the built-in scheme table in a fixed order:
// FromLine(Midpoint), FromLine(Trapezoidal), Stroud 1..6,
// FromLine(GaussLegendre(1..5)), FromLine(NewtonCotesClosed(1..4)),
// FromLine(NewtonCotesOpen(0..5)).
func Catalog() ([]*scheme.Scheme, error) {
	type entry struct {
		family   string
		from, to int
	}
	table := []entry{
		{scheme.FamilyMidpoint, 0, 0},
		{scheme.FamilyTrapezoidal, 0, 0},
		{scheme.FamilyStroud, 1, scheme.StroudCount},
		{scheme.FamilyGaussLegendre, 1, 5},
		{scheme.FamilyNewtonCotesClosed, 1, 4},
		{scheme.FamilyNewtonCotesOpen, 0, 5},
	}

	var out []*scheme.Scheme
	for _, e := range table {
		for i := e.from; i <= e.to; i++ {
			s, err := scheme.Lookup(e.family, i)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}

	return out, nil
}

// Cases returns the cross product schemes × domains, scheme-major.
func Cases(schemes []*scheme.Scheme, domains []Domain) []Case {
	out := make([]Case, 0, len(schemes)*len(domains))
	for _, s := range schemes {
		for _, d := range domains {
			out = append(out, Case{Scheme: s, Domain: d})
		}
	}

	return out
}
