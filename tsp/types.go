// Package tsp — shared contract, algorithm selector and sentinel errors.
//
// Every solver in this package implements Solver. The set of algorithms is
// closed (Approx, Exact) and selected by the caller through New; there is no
// registration mechanism.
package tsp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tspkit/matrix"
	"github.com/katalvlaran/tspkit/prim_kruskal"
)

// Root is the fixed start and end vertex of every tour.
const Root = 0

// Infinity is the "unreachable" cost sentinel used by the exact solver.
// matrix.New guarantees n × maxWeight < Infinity, and Infinity + maxWeight
// cannot overflow int64.
const Infinity = matrix.CostLimit

// Sentinel errors. Match with errors.Is.
var (
	// ErrInvalidInput is matrix.ErrInvalidInput, re-exported so callers of
	// this package need a single import to classify rejected inputs.
	ErrInvalidInput = matrix.ErrInvalidInput

	// ErrDisconnected is prim_kruskal.ErrDisconnected, surfaced unchanged by
	// the approximate solver instead of walking a partial tree.
	ErrDisconnected = prim_kruskal.ErrDisconnected

	// ErrUnsolvable signals that Held–Karp found no finite closing cost.
	ErrUnsolvable = errors.New("tsp: no finite Hamiltonian cycle")

	// ErrTooLarge signals n beyond the exact solver ceiling. The ceiling is
	// either configured (WithMaxVertices) or imposed by bitmask width.
	ErrTooLarge = errors.New("tsp: instance too large for exact solver")

	// ErrUnsupportedAlgorithm signals an Algorithm value outside the closed set.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidTour signals a tour that violates the Hamiltonian-cycle shape.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// errNilMatrix is ErrInvalidInput for a nil *matrix.Distance.
	errNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidInput)
)

// Solution holds the outcome of a TSP solver.
type Solution struct {
	// Tour is the sequence of vertex indices, starting and ending at Root.
	// For n vertices, len(Tour) == n+1 and Tour[0] == Tour[n] == Root.
	Tour []int

	// Cost is the sum of m(Tour[i], Tour[i+1]); always equal to TourCost(m, Tour).
	Cost int64
}

// Solver is the capability shared by every algorithm.
// Implementations are stateless: a single value may be reused, and called
// concurrently on independent matrices.
type Solver interface {
	Solve(m *matrix.Distance) (Solution, error)
}

// Algorithm selects a solver variant.
type Algorithm int

const (
	// Approx is the MST-based 2-approximation, O(n² log n).
	Approx Algorithm = iota
	// Exact is Held–Karp dynamic programming, O(n²·2ⁿ) time, O(n·2ⁿ) memory.
	Exact
)

// String returns the lower-case algorithm name.
func (a Algorithm) String() string {
	switch a {
	case Approx:
		return "approx"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name (case-insensitive) back to an Algorithm.
// Accepted: "approx", "approximate", "mst", "exact", "held-karp", "heldkarp".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approx", "approximate", "mst":
		return Approx, nil
	case "exact", "held-karp", "heldkarp":
		return Exact, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}
