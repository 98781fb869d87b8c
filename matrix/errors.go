// Package matrix: sentinel error set for distance matrices.
// This file defines ONLY package-level sentinel errors. Constructors and the
// loader MUST return these sentinels (optionally wrapped with position
// context) and tests MUST check them via errors.Is. No function in this
// package panics on user-supplied data.
package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & HIERARCHY
// --------------------------
// Every message is prefixed with "matrix: ...". All validation failures wrap
// ErrInvalidInput, so callers may match either the family or the exact cause:
//
//	errors.Is(err, matrix.ErrInvalidInput)   // any rejected input
//	errors.Is(err, matrix.ErrNegativeWeight) // one specific cause
//
// ERROR PRIORITY (documented, enforced in tests):
// empty -> shape -> diagonal/negativity (row-major scan) -> symmetry -> overflow.

// ErrInvalidInput is the family of every rejected matrix.
var ErrInvalidInput = errors.New("matrix: invalid input")

var (
	// ErrEmpty is returned for a matrix with no rows (n must be ≥ 1).
	ErrEmpty = fmt.Errorf("%w: empty matrix", ErrInvalidInput)

	// ErrNonSquare signals that some row length differs from the row count.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidInput)

	// ErrNegativeWeight signals a negative distance.
	ErrNegativeWeight = fmt.Errorf("%w: negative weight", ErrInvalidInput)

	// ErrNonZeroDiagonal signals d(i,i) != 0.
	ErrNonZeroDiagonal = fmt.Errorf("%w: diagonal not zero", ErrInvalidInput)

	// ErrAsymmetry signals d(i,j) != d(j,i) when symmetry was requested.
	ErrAsymmetry = fmt.Errorf("%w: matrix is not symmetric", ErrInvalidInput)

	// ErrWeightOverflow signals that n × max weight would reach CostLimit,
	// i.e. a tour cost could no longer be told apart from "unreachable".
	ErrWeightOverflow = fmt.Errorf("%w: weights too large for cost arithmetic", ErrInvalidInput)

	// ErrSyntax signals a token in a text matrix that is not a base-10 integer.
	ErrSyntax = fmt.Errorf("%w: malformed integer", ErrInvalidInput)
)

// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
// Public indexers (At) MUST return this, not panic.
var ErrOutOfRange = errors.New("matrix: index out of range")

// cellErrorf wraps err with the offending cell position.
func cellErrorf(i, j int, err error) error {
	return fmt.Errorf("matrix: cell (%d,%d): %w", i, j, err)
}

// rowErrorf reports a row whose length differs from the row count.
func rowErrorf(row, got, want int) error {
	return fmt.Errorf("matrix: row %d has %d columns, want %d: %w", row, got, want, ErrNonSquare)
}
