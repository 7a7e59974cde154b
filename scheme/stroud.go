// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cubature/domain"
)

// StroudCount is the number of Stroud rules exposed by Stroud(k), k = 1..StroudCount.
const StroudCount = 6

// stroudRule is one catalog row: label, degree and a generator for points/weights.
type stroudRule struct {
	label  string
	degree int
	build  func() ([]domain.Point, []float64)
}

var stroudRules = [StroudCount]stroudRule{
	{"C2 1-1", 1, stroudC211},
	{"C2 3-1", 3, stroudC231},
	{"C2 3-2", 3, stroudC232},
	{"C2 5-1", 5, stroudC251},
	{"C2 5-3", 5, stroudC253},
	{"C2 7-1", 7, stroudC271},
}

// Stroud returns the k-th symmetric quadrilateral rule (1-based):
//
//	1  C2 1-1  centroid, 1 point,            degree 1
//	2  C2 3-1  axis points,  4 points,       degree 3
//	3  C2 3-2  diagonal points, 4 points,    degree 3
//	4  C2 5-1  Radon, 7 points,              degree 5
//	5  C2 5-3  axis + diagonal, 8 points,    degree 5
//	6  C2 7-1  axis + two diagonals, 12 pts, degree 7
//
// Errors: ErrUnknownIndex for k outside 1..StroudCount.
func Stroud(k int) (*Scheme, error) {
	if k < 1 || k > StroudCount {
		return nil, schemeErrorf(fmt.Sprintf("Stroud(%d)", k), ErrUnknownIndex)
	}
	r := stroudRules[k-1]
	points, weights := r.build()

	return New("Stroud "+r.label, r.degree, points, weights)
}

// axis appends the four points (±r,0), (0,±r) with weight w.
func axis(pts []domain.Point, ws []float64, r, w float64) ([]domain.Point, []float64) {
	pts = append(pts,
		domain.Point{X: r, Y: 0}, domain.Point{X: -r, Y: 0},
		domain.Point{X: 0, Y: r}, domain.Point{X: 0, Y: -r})
	return pts, append(ws, w, w, w, w)
}

// corners appends the four points (±s,±t) with weight w.
func corners(pts []domain.Point, ws []float64, s, t, w float64) ([]domain.Point, []float64) {
	pts = append(pts,
		domain.Point{X: s, Y: t}, domain.Point{X: -s, Y: t},
		domain.Point{X: -s, Y: -t}, domain.Point{X: s, Y: -t})
	return pts, append(ws, w, w, w, w)
}

func stroudC211() ([]domain.Point, []float64) {
	return []domain.Point{{X: 0, Y: 0}}, []float64{4}
}

func stroudC231() ([]domain.Point, []float64) {
	return axis(nil, nil, math.Sqrt(2.0/3.0), 1)
}

func stroudC232() ([]domain.Point, []float64) {
	s := 1 / math.Sqrt(3)
	return corners(nil, nil, s, s, 1)
}

// Radon's seven-point rule.
func stroudC251() ([]domain.Point, []float64) {
	r := math.Sqrt(14.0 / 15.0)
	pts := []domain.Point{{X: 0, Y: 0}, {X: 0, Y: r}, {X: 0, Y: -r}}
	ws := []float64{8.0 / 7.0, 20.0 / 63.0, 20.0 / 63.0}

	return corners(pts, ws, math.Sqrt(3.0/5.0), math.Sqrt(1.0/3.0), 5.0/9.0)
}

func stroudC253() ([]domain.Point, []float64) {
	pts, ws := axis(nil, nil, math.Sqrt(7.0/15.0), 40.0/49.0)
	s := math.Sqrt(7.0 / 9.0)

	return corners(pts, ws, s, s, 9.0/49.0)
}

func stroudC271() ([]domain.Point, []float64) {
	root := math.Sqrt(583)
	pts, ws := axis(nil, nil, math.Sqrt(6.0/7.0), 4*49.0/810.0)
	s := math.Sqrt((114 - 3*root) / 287)
	t := math.Sqrt((114 + 3*root) / 287)
	pts, ws = corners(pts, ws, s, s, 4*(178981+2769*root)/1888920)

	return corners(pts, ws, t, t, 4*(178981-2769*root)/1888920)
}
