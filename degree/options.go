// SPDX-License-Identifier: MIT

package degree

import (
	"math"

	"go.uber.org/zap"
)

const (
	// DefaultRelTol is the default tolerance relative to a probe's scale.
	DefaultRelTol = 1e-11
	// DefaultAbsTol is the default absolute floor, used when both values and
	// the scale are near zero.
	DefaultAbsTol = 1e-14
)

// Options configures a check.
//
// RelTol – tolerance on |num − exact| relative to the probe scale
// max(|num|, |exact|, Σ|summands|); the last term is only known when the
// numerical oracle implements oracle.Scaled.
// AbsTol – absolute floor on |num − exact|; the larger bound wins.
// Logger – receives a debug entry per degree; zap.NewNop() by default.
type Options struct {
	RelTol float64
	AbsTol float64
	Logger *zap.Logger
}

// Option is a functional option for Check and Run.
type Option func(*Options)

// DefaultOptions returns rel 1e-11, abs 1e-14 and a no-op logger.
func DefaultOptions() Options {
	return Options{RelTol: DefaultRelTol, AbsTol: DefaultAbsTol, Logger: zap.NewNop()}
}

// WithRelTol sets the relative tolerance. Panics on negative or non-finite tol.
func WithRelTol(tol float64) Option {
	return func(o *Options) {
		if !validTol(tol) {
			panic(ErrBadTolerance.Error())
		}
		o.RelTol = tol
	}
}

// WithAbsTol sets the absolute tolerance. Panics on negative or non-finite tol.
func WithAbsTol(tol float64) Option {
	return func(o *Options) {
		if !validTol(tol) {
			panic(ErrBadTolerance.Error())
		}
		o.AbsTol = tol
	}
}

// WithLogger routes per-degree trace output to l; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

func validTol(tol float64) bool {
	return tol >= 0 && !math.IsInf(tol, 0)
}
