// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the iterative solvers.
// This file defines:
//   - Option / Options (functional options),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIter caps conjugate-gradient iterations.
	DefaultMaxIter = 1000

	// DefaultTolerance is the absolute residual norm at which CG stops.
	DefaultTolerance = 1e-6

	// DefaultBreakdownEps is the |pᵀAp| floor below which CG gives up.
	DefaultBreakdownEps = 1e-20
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxIterInvalid   = "matrix: WithMaxIter: iterations must be non-negative"
	panicToleranceInvalid = "matrix: WithTolerance: tolerance must be finite, non-negative"
)

// Option mutates solver options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options configures ConjugateGradient.
type Options struct {
	// MaxIter is the iteration limit.
	MaxIter int

	// Tolerance is the residual 2-norm that counts as converged.
	Tolerance float64

	// X0 is the initial guess; nil means the zero vector.
	X0 []float64

	// OnIteration, when set, observes (iteration, residual norm) after each step.
	OnIteration func(iter int, residual float64)
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		MaxIter:   DefaultMaxIter,
		Tolerance: DefaultTolerance,
	}
}

// WithMaxIter sets the iteration limit. Zero returns the initial guess.
func WithMaxIter(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.MaxIter = n }
}

// WithTolerance sets the absolute residual tolerance.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.Tolerance = tol }
}

// WithInitialGuess starts the iteration from x0 (copied).
func WithInitialGuess(x0 []float64) Option {
	return func(o *Options) {
		if x0 == nil {
			o.X0 = nil
			return
		}
		o.X0 = append([]float64(nil), x0...)
	}
}

// WithIterationHook registers a per-iteration observer, typically a debug logger.
func WithIterationHook(fn func(iter int, residual float64)) Option {
	return func(o *Options) { o.OnIteration = fn }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
