// SPDX-License-Identifier: MIT

// Package harness runs the degree checker over a catalog of schemes and
// domains and asserts that every scheme's observed degree equals its
// declared degree.
//
// A Case pairs a scheme with a Domain. Verify checks one case with
// maxDegree = declared+1, so a scheme that is exact beyond its declared
// degree is reported as well as one that falls short. Run checks many
// cases in parallel, sharing one memoising exact oracle per domain, and
// joins every mismatch into the returned error.
//
// Catalog and StandardDomains reproduce the built-in test table; LoadConfig
// reads the same kind of table from a YAML file:
//
//	concurrency: 4
//	tolerance: {relative: 1e-11, absolute: 1e-14}
//	domains:
//	  - name: box
//	    rectangle: {x0: -2, x1: 1, y0: -1, y1: 1}
//	  - name: skew
//	    quadrilateral:
//	      - {x: 0, y: 0}
//	      - {x: 2, y: 0.5}
//	      - {x: 2.5, y: 1.5}
//	      - {x: 0.5, y: 1}
//	schemes:
//	  - family: gauss-legendre
//	    indices: [1, 2, 3]
//	  - family: stroud
//	    index: 6
package harness
