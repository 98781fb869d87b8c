// Package tsp — cost utilities shared by both solvers.
//
// TourCost is the single source of truth for a Solution's cost: solvers
// compute it the same way callers re-check it, so the round trip
// TourCost(m, sol.Tour) == sol.Cost always holds.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspkit/matrix"
)

// TourCost sums m(tour[i], tour[i+1]) over consecutive pairs.
//
// Contract:
//   - len(tour) ≥ 2 and every index in [0..n-1]; the tour does not need to
//     be Hamiltonian (use ValidateTour for that).
//
// Errors: ErrInvalidInput for a nil matrix, ErrInvalidTour otherwise.
// The sum cannot overflow: matrix.New bounds n × maxWeight, and a closed
// walk of length n+1 has n edges.
//
// Complexity: O(len(tour)).
func TourCost(m *matrix.Distance, tour []int) (int64, error) {
	if m == nil {
		return 0, errNilMatrix
	}
	if len(tour) < 2 {
		return 0, fmt.Errorf("%w: length %d, want ≥ 2", ErrInvalidTour, len(tour))
	}

	var (
		n    = m.N()
		sum  int64
		u, v int
	)
	for i := 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, fmt.Errorf("%w: vertex out of range at position %d", ErrInvalidTour, i)
		}
		sum += m.Weight(u, v)
	}

	return sum, nil
}
