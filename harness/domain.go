// SPDX-License-Identifier: MIT

package harness

import (
	"github.com/katalvlaran/cubature/domain"
	"github.com/katalvlaran/cubature/oracle"
)

// Domain names an integration domain. When Rect is set the closed-form
// rectangle oracle is used and Quad is ignored; otherwise Quad goes through
// the symbolic oracle.
type Domain struct {
	Name string
	Quad domain.Quadrilateral
	Rect *domain.Rectangle
}

// RectangleDomain returns a fast-path domain for r.
func RectangleDomain(name string, r domain.Rectangle) Domain {
	return Domain{Name: name, Quad: r.Quadrilateral(), Rect: &r}
}

// QuadDomain returns a symbolic-path domain for q.
func QuadDomain(name string, q domain.Quadrilateral) Domain {
	return Domain{Name: name, Quad: q}
}

// Quadrilateral returns the ring the numerical evaluator maps onto.
func (d Domain) Quadrilateral() domain.Quadrilateral {
	if d.Rect != nil {
		return d.Rect.Quadrilateral()
	}

	return d.Quad
}

// Oracle returns the exact oracle for d.
func (d Domain) Oracle() (oracle.Oracle, error) {
	if d.Rect != nil {
		return oracle.NewRectangle(*d.Rect)
	}

	return oracle.NewSymbolic(d.Quad)
}

// key identifies a domain for oracle sharing.
type key struct {
	name    string
	quad    domain.Quadrilateral
	rect    domain.Rectangle
	hasRect bool
}

func (d Domain) key() key {
	k := key{name: d.Name, quad: d.Quad}
	if d.Rect != nil {
		k.rect, k.hasRect = *d.Rect, true
	}

	return k
}

// StandardDomains returns the domains every catalog scheme is checked on:
//
//	rectangle      [−2,1]×[−1,1], closed-form oracle
//	unit-square    [0,1]², symbolic oracle
//	parallelogram  (0,0) (2,0.5) (2.5,1.5) (0.5,1), symbolic oracle
//
// All three are affine images of the reference square, so the declared
// degree of every scheme is preserved.
func StandardDomains() []Domain {
	return []Domain{
		RectangleDomain("rectangle", domain.Rectangle{X0: -2, X1: 1, Y0: -1, Y1: 1}),
		QuadDomain("unit-square", domain.Rectangle{X0: 0, X1: 1, Y0: 0, Y1: 1}.Quadrilateral()),
		QuadDomain("parallelogram", domain.Quadrilateral{{X: 0, Y: 0}, {X: 2, Y: 0.5}, {X: 2.5, Y: 1.5}, {X: 0.5, Y: 1}}),
	}
}
