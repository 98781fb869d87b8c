// Package tsp — solver factory.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspkit/matrix"
)

// Options configures the factory. Zero value: no exact-solver ceiling.
type Options struct {
	// MaxVertices caps n for the exact solver; 0 disables the cap.
	MaxVertices int
}

// Option mutates Options.
type Option func(*Options)

// WithMaxVertices rejects instances with more than k vertices in the exact
// solver (ErrTooLarge). k ≤ 0 disables the cap. The approximate solver
// ignores it.
func WithMaxVertices(k int) Option {
	return func(o *Options) {
		if k < 0 {
			k = 0
		}
		o.MaxVertices = k
	}
}

// DefaultOptions returns the zero configuration.
func DefaultOptions() Options { return Options{} }

// New returns the solver for algo.
//
// Errors: ErrUnsupportedAlgorithm for values outside {Approx, Exact}.
//
// Complexity: O(k) for k options.
func New(algo Algorithm, opts ...Option) (Solver, error) {
	o := DefaultOptions()
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	switch algo {
	case Approx:
		return ApproxSolver{}, nil
	case Exact:
		return ExactSolver{MaxVertices: o.MaxVertices}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, algo)
	}
}

// Solve is a one-shot helper: New(algo, opts...) then Solve(m).
func Solve(m *matrix.Distance, algo Algorithm, opts ...Option) (Solution, error) {
	s, err := New(algo, opts...)
	if err != nil {
		return Solution{}, err
	}

	return s.Solve(m)
}
