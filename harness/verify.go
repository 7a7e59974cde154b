// SPDX-License-Identifier: MIT

package harness

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cubature/degree"
	"github.com/katalvlaran/cubature/evaluate"
	"github.com/katalvlaran/cubature/monomial"
	"github.com/katalvlaran/cubature/oracle"
	"github.com/katalvlaran/cubature/scheme"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Case pairs a scheme with the domain it is checked on.
type Case struct {
	Scheme *scheme.Scheme
	Domain Domain
}

// Outcome is the result of verifying one Case.
type Outcome struct {
	Case     Case
	Declared int
	Observed int
	Result   degree.Result
}

// OK reports whether the observed degree equals the declared degree.
func (o Outcome) OK() bool { return o.Observed == o.Declared }

// Mismatch returns the *MismatchError for a failed outcome, nil otherwise.
func (o Outcome) Mismatch() error {
	if o.OK() {
		return nil
	}

	return &MismatchError{
		Scheme:   o.Case.Scheme.Name(),
		Domain:   o.Case.Domain.Name,
		Declared: o.Declared,
		Observed: o.Observed,
	}
}

// Verify checks one case with maxDegree = declared+1.
// Returns the outcome and, when the degrees differ, a *MismatchError
// (errors.Is(err, ErrDegreeMismatch)). Other errors come from oracle
// construction or the checker.
func Verify(c Case, opts ...Option) (Outcome, error) {
	if c.Scheme == nil {
		return Outcome{}, fmt.Errorf("Verify: %w", ErrNilScheme)
	}
	exact, err := c.Domain.Oracle()
	if err != nil {
		return Outcome{}, fmt.Errorf("Verify(%s on %s): %w", c.Scheme.Name(), c.Domain.Name, err)
	}
	o := buildOptions(opts)
	out, err := verifyWith(c, exact, o)
	if err != nil {
		return out, err
	}

	return out, out.Mismatch()
}

// verifyWith runs the checker against a prepared exact oracle and logs the
// outcome. Mismatches are not errors here.
func verifyWith(c Case, exact oracle.Oracle, o Options) (Outcome, error) {
	declared := c.Scheme.Degree()
	res, err := degree.Run(
		evaluate.Monomial(c.Scheme, c.Domain.Quadrilateral()),
		exact, monomial.Exact, declared+1, o.checkOptions()...)
	if err != nil {
		return Outcome{}, fmt.Errorf("Verify(%s on %s): %w", c.Scheme.Name(), c.Domain.Name, err)
	}
	out := Outcome{Case: c, Declared: declared, Observed: res.Degree, Result: res}

	fields := []zap.Field{
		zap.String("scheme", c.Scheme.Name()),
		zap.String("domain", c.Domain.Name),
		zap.Int("declared", declared),
		zap.Int("observed", res.Degree),
		zap.Int("probes", res.Probes),
	}
	if out.OK() {
		o.Logger.Info("scheme verified", fields...)
	} else {
		o.Logger.Warn("degree mismatch", fields...)
	}

	return out, nil
}

// Run verifies every case, up to Options.Concurrency at a time.
// Implementation:
//   - Stage 1: Build one oracle.Cached per distinct domain, shared by all
//     schemes on that domain.
//   - Stage 2: Check cases in an errgroup; outcomes land at their input index.
//   - Stage 3: Join all mismatches in input order.
//
// Errors: the first construction or checker error cancels the remaining
// cases and is returned as is; ctx cancellation returns ctx.Err(). Otherwise
// the error is errors.Join of every *MismatchError, or nil.
func Run(ctx context.Context, cases []Case, opts ...Option) ([]Outcome, error) {
	o := buildOptions(opts)

	oracles := make(map[key]*oracle.Cached)
	for _, c := range cases {
		if c.Scheme == nil {
			return nil, fmt.Errorf("Run: %w", ErrNilScheme)
		}
		k := c.Domain.key()
		if _, ok := oracles[k]; ok {
			continue
		}
		exact, err := c.Domain.Oracle()
		if err != nil {
			return nil, fmt.Errorf("Run: domain %s: %w", c.Domain.Name, err)
		}
		oracles[k] = oracle.NewCached(exact)
	}

	outcomes := make([]Outcome, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Concurrency)
	for i, c := range cases {
		exact := oracles[c.Domain.key()]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := verifyWith(c, exact, o)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var mismatches []error
	for _, out := range outcomes {
		if err := out.Mismatch(); err != nil {
			mismatches = append(mismatches, err)
		}
	}
	o.Logger.Info("catalog checked",
		zap.Int("cases", len(cases)),
		zap.Int("mismatches", len(mismatches)))

	return outcomes, errors.Join(mismatches...)
}
