// SPDX-License-Identifier: MIT

package harness

import (
	"runtime"

	"github.com/katalvlaran/cubature/degree"
	"go.uber.org/zap"
)

// Options configures Verify and Run.
//
// Concurrency – maximum number of cases checked at once by Run (≥ 1).
// Logger      – receives one entry per verified case; no-op by default.
// Check       – options forwarded to the degree checker (tolerances).
type Options struct {
	Concurrency int
	Logger      *zap.Logger
	Check       []degree.Option
}

// Option is a functional option for Verify and Run.
type Option func(*Options)

// DefaultOptions returns GOMAXPROCS workers, a no-op logger and the
// checker's default tolerances.
func DefaultOptions() Options {
	return Options{Concurrency: runtime.GOMAXPROCS(0), Logger: zap.NewNop()}
}

// WithConcurrency bounds the number of parallel checks. Panics if n < 1.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic("harness: concurrency must be ≥ 1")
		}
		o.Concurrency = n
	}
}

// WithLogger sets the logger; nil restores the no-op logger. The checker
// receives the same logger, named "degree".
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithTolerance sets the checker's relative and absolute tolerances.
// Panics on negative or non-finite values (see degree.WithRelTol).
func WithTolerance(rel, abs float64) Option {
	return func(o *Options) {
		o.Check = append(o.Check, degree.WithRelTol(rel), degree.WithAbsTol(abs))
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// checkOptions returns the degree options with the logger applied first so
// explicit Check entries can override it.
func (o Options) checkOptions() []degree.Option {
	return append([]degree.Option{degree.WithLogger(o.Logger.Named("degree"))}, o.Check...)
}
