// Package matrix: functional options for distance-matrix validation.
//
// Defaults reflect the contract every solver relies on:
//   - zero diagonal is required,
//   - symmetry is NOT required (asymmetric inputs are accepted and solved,
//     only the approximation guarantee is lost).
//
// Option setters are pure; the effective configuration is resolved once by
// gatherOptions and never escapes the package.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRequireSymmetric if true, New rejects d(i,j) != d(j,i).
	DefaultRequireSymmetric = false

	// DefaultRequireZeroDiagonal if true, New rejects d(i,i) != 0.
	DefaultRequireZeroDiagonal = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective validation policy after applying Option setters.
// Its fields are unexported; callers compose ...Option values instead.
type Options struct {
	symmetric    bool // DefaultRequireSymmetric
	zeroDiagonal bool // DefaultRequireZeroDiagonal
}

// WithSymmetric requires d(i,j) == d(j,i) for every pair.
// Use it when the caller needs the 2-approximation guarantee to be meaningful.
//
// Complexity: O(1).
func WithSymmetric() Option {
	return func(o *Options) {
		o.symmetric = true
	}
}

// WithAsymmetric restores the default: symmetry is not checked.
//
// Complexity: O(1).
func WithAsymmetric() Option {
	return func(o *Options) {
		o.symmetric = false
	}
}

// WithAnyDiagonal disables the zero-diagonal check. Solvers never read the
// diagonal for n ≥ 2, so this is safe for instances that store junk there.
//
// Complexity: O(1).
func WithAnyDiagonal() Option {
	return func(o *Options) {
		o.zeroDiagonal = false
	}
}

// NewMatrixOptions resolves opts on top of the documented defaults.
// Exposed for callers that want to inspect the effective policy.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// RequireSymmetric reports whether the symmetry check is active.
func (o Options) RequireSymmetric() bool { return o.symmetric }

// RequireZeroDiagonal reports whether the zero-diagonal check is active.
func (o Options) RequireZeroDiagonal() bool { return o.zeroDiagonal }

// gatherOptions applies user setters on top of defaults (last-writer-wins).
//
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		symmetric:    DefaultRequireSymmetric,
		zeroDiagonal: DefaultRequireZeroDiagonal,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
