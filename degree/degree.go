// SPDX-License-Identifier: MIT

package degree

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cubature/monomial"
	"github.com/katalvlaran/cubature/oracle"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats/scalar"
)

// Probe is one comparison of numerical against exact integral. Scale is
// max(|Numerical|, |Exact|) raised to the summand magnitude reported by an
// oracle.Scaled numerical oracle.
type Probe struct {
	Exponent  monomial.Exponent
	Numerical float64
	Exact     float64
	Scale     float64
}

// agrees reports |num − exact| ≤ max(AbsTol, RelTol·Scale).
func (p Probe) agrees(o Options) bool {
	return scalar.EqualWithinAbs(p.Numerical, p.Exact, math.Max(o.AbsTol, o.RelTol*p.Scale))
}

// Result is the outcome of Run.
//
// Degree       – highest degree at which every probe agreed (−1 if degree 0 failed).
// FailedDegree – first disagreeing degree, or −1 when the ceiling was reached.
// Failures     – disagreeing probes of FailedDegree, in generator order.
// Probes       – total number of comparisons performed.
// Inconclusive – true when every degree up to maxDegree agreed; the true
// exactness may be higher than Degree.
type Result struct {
	Degree       int
	FailedDegree int
	Failures     []Probe
	Probes       int
	Inconclusive bool
}

// Check returns the highest degree d ≤ maxDegree through which numerical
// and exact agree on every probe. See Run for details.
func Check(numerical, exact oracle.Oracle, gen monomial.Generator, maxDegree int, opts ...Option) (int, error) {
	res, err := Run(numerical, exact, gen, maxDegree, opts...)
	if err != nil {
		return 0, err
	}

	return res.Degree, nil
}

// Run executes the degree state machine.
// Implementation:
//   - Stage 1: Validate inputs and apply options over DefaultOptions.
//   - Stage 2: For d = 0..maxDegree, probe every exponent of gen(d). A degree
//     with no disagreement advances lastGood; the first disagreeing degree
//     is finished (all its failures collected) and ends the walk.
//   - Stage 3: Reaching maxDegree without a failure marks the result
//     inconclusive.
//
// Errors: ErrNilOracle, ErrNegativeDegree, ErrNonFinite, or a wrapped
// generator/oracle error. Errors abort; they are not tolerance failures.
//
// Complexity: O(maxDegree²) probes.
func Run(numerical, exact oracle.Oracle, gen monomial.Generator, maxDegree int, opts ...Option) (Result, error) {
	if numerical == nil || exact == nil || gen == nil {
		return Result{}, fmt.Errorf("Run: %w", ErrNilOracle)
	}
	if maxDegree < 0 {
		return Result{}, fmt.Errorf("Run(maxDegree=%d): %w", maxDegree, ErrNegativeDegree)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{Degree: -1, FailedDegree: -1}
	for d := 0; d <= maxDegree; d++ {
		seq, err := gen(d)
		if err != nil {
			return Result{}, fmt.Errorf("Run: degree %d: %w", d, err)
		}
		var failures []Probe
		n := 0
		for e := range seq {
			p, err := probe(numerical, exact, e)
			if err != nil {
				return Result{}, fmt.Errorf("Run: degree %d: %w", d, err)
			}
			n++
			if !p.agrees(o) {
				failures = append(failures, p)
			}
		}
		res.Probes += n
		o.Logger.Debug("degree probed",
			zap.Int("degree", d),
			zap.Int("probes", n),
			zap.Int("failures", len(failures)))

		if len(failures) > 0 {
			res.FailedDegree = d
			res.Failures = failures
			o.Logger.Debug("exactness lost",
				zap.Int("degree", d),
				zap.Stringer("exponent", failures[0].Exponent),
				zap.Float64("numerical", failures[0].Numerical),
				zap.Float64("exact", failures[0].Exact))
			return res, nil
		}
		res.Degree = d
	}
	res.Inconclusive = true

	return res, nil
}

// probe evaluates both oracles at e.
func probe(numerical, exact oracle.Oracle, e monomial.Exponent) (Probe, error) {
	var num, scale float64
	var err error
	if sc, ok := numerical.(oracle.Scaled); ok {
		num, scale, err = sc.IntegrateScaled(e)
	} else {
		num, err = numerical.Integrate(e)
	}
	if err != nil {
		return Probe{}, fmt.Errorf("numerical %v: %w", e, err)
	}
	ex, err := exact.Integrate(e)
	if err != nil {
		return Probe{}, fmt.Errorf("exact %v: %w", e, err)
	}
	if !finite(num) || !finite(ex) {
		return Probe{}, fmt.Errorf("%v: numerical=%g exact=%g: %w", e, num, ex, ErrNonFinite)
	}

	scale = max(scale, math.Abs(num), math.Abs(ex))
	if !finite(scale) {
		return Probe{}, fmt.Errorf("%v: scale=%g: %w", e, scale, ErrNonFinite)
	}

	return Probe{Exponent: e, Numerical: num, Exact: ex, Scale: scale}, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
