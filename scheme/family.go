// SPDX-License-Identifier: MIT

package scheme

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// MaxGaussLegendreFamily is the largest index the Gauss–Legendre families
// accept. Beyond it the degree-2n error of the n-point rule on a unit-sized
// domain falls below double-precision resolution, so the declared degree can
// no longer be observed. GaussLegendre itself takes any n ≥ 1.
const MaxGaussLegendreFamily = 8

// Family names accepted by Lookup.
const (
	FamilyMidpoint           = "midpoint"
	FamilyTrapezoidal        = "trapezoidal"
	FamilyGaussLegendre      = "gauss-legendre"
	FamilyGaussLegendreGonum = "gauss-legendre-gonum"
	FamilyNewtonCotesClosed  = "newton-cotes-closed"
	FamilyNewtonCotesOpen    = "newton-cotes-open"
	FamilyStroud             = "stroud"
)

// Family describes one named scheme family.
type Family struct {
	Name string
	// Indexed reports whether the family takes an index; unindexed families
	// ignore it.
	Indexed bool
	// Min and Max bound the accepted indices (both 0 when not Indexed).
	Min, Max int
	// Usage is a short human description of the valid indices.
	Usage string
	build func(index int) (*Scheme, error)
}

// Build returns the quadrilateral scheme of this family at index.
// Errors: ErrUnknownIndex outside Min..Max, or the constructor's error.
func (f Family) Build(index int) (*Scheme, error) {
	if f.Indexed && (index < f.Min || index > f.Max) {
		return nil, schemeErrorf(fmt.Sprintf("%s(%d)", f.Name, index), ErrUnknownIndex)
	}

	return f.build(index)
}

// Indices yields Min..Max, or the single index 0 for an unindexed family.
func (f Family) Indices() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := f.Min; i <= f.Max; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func lifted(line func(int) (*Line, error)) func(int) (*Scheme, error) {
	return func(index int) (*Scheme, error) {
		l, err := line(index)
		if err != nil {
			return nil, err
		}
		return FromLine(l)
	}
}

var families = map[string]Family{
	FamilyMidpoint: {
		Name: FamilyMidpoint, Usage: "1 point per axis",
		build: func(int) (*Scheme, error) { return FromLine(Midpoint()) },
	},
	FamilyTrapezoidal: {
		Name: FamilyTrapezoidal, Usage: "2 points per axis",
		build: func(int) (*Scheme, error) { return FromLine(Trapezoidal()) },
	},
	FamilyGaussLegendre: {
		Name: FamilyGaussLegendre, Indexed: true, Min: 1, Max: MaxGaussLegendreFamily,
		Usage: fmt.Sprintf("n = 1..%d points per axis", MaxGaussLegendreFamily),
		build: lifted(GaussLegendre),
	},
	FamilyGaussLegendreGonum: {
		Name: FamilyGaussLegendreGonum, Indexed: true, Min: 1, Max: MaxGaussLegendreFamily,
		Usage: fmt.Sprintf("n = 1..%d points per axis", MaxGaussLegendreFamily),
		build: lifted(GaussLegendreGonum),
	},
	FamilyNewtonCotesClosed: {
		Name: FamilyNewtonCotesClosed, Indexed: true, Min: 1, Max: MaxNewtonCotes,
		Usage: fmt.Sprintf("n = 1..%d intervals", MaxNewtonCotes),
		build: lifted(NewtonCotesClosed),
	},
	FamilyNewtonCotesOpen: {
		Name: FamilyNewtonCotesOpen, Indexed: true, Min: 0, Max: MaxNewtonCotes,
		Usage: fmt.Sprintf("n = 0..%d", MaxNewtonCotes),
		build: lifted(NewtonCotesOpen),
	},
	FamilyStroud: {
		Name: FamilyStroud, Indexed: true, Min: 1, Max: StroudCount,
		Usage: fmt.Sprintf("k = 1..%d", StroudCount),
		build: Stroud,
	},
}

// Families returns every known family sorted by name.
func Families() []Family {
	out := make([]Family, 0, len(families))
	for _, f := range families {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b Family) int { return cmp.Compare(a.Name, b.Name) })

	return out
}

// Lookup builds the scheme of the named family at index.
// Errors: ErrUnknownFamily, or the family constructor's error.
func Lookup(family string, index int) (*Scheme, error) {
	f, ok := families[family]
	if !ok {
		return nil, schemeErrorf(fmt.Sprintf("Lookup(%q)", family), ErrUnknownFamily)
	}

	return f.Build(index)
}
