// Package tsp — 2-opt local search.
//
// TwoOpt shortens a closed tour by first-improvement 2-opt moves: for cut
// positions 1 ≤ i < k ≤ n−1 with a=T[i−1], b=T[i], c=T[k], d=T[k+1],
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// and a move with Δ < 0 reverses T[i..k]. Scanning restarts after every
// accepted move until no move improves, i.e. at a 2-opt local optimum.
//
// Contracts:
//   - m is symmetric: a reversed segment costs the same in both directions.
//   - tour passes ValidateTour; Root stays first and last.
//
// Complexity:
//   - One pass: O(n²) candidate checks, O(n) per accepted move.
//   - Costs are integers and strictly decrease, so the search terminates.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspkit/matrix"
)

// TwoOpt returns the 2-opt local optimum reached from tour. The input slice
// is not modified.
//
// Errors: ErrInvalidInput (nil or asymmetric matrix), ErrInvalidTour.
func TwoOpt(m *matrix.Distance, tour []int) (Solution, error) {
	if m == nil {
		return Solution{}, errNilMatrix
	}
	n := m.N()
	if err := ValidateTour(tour, n); err != nil {
		return Solution{}, err
	}
	if !m.Symmetric() {
		return Solution{}, fmt.Errorf("%w: 2-opt requires a symmetric matrix", ErrInvalidInput)
	}

	cur := append([]int(nil), tour...)
	cost, err := TourCost(m, cur)
	if err != nil {
		return Solution{}, err
	}

	var (
		a, b, c, d int
		i, k       int
		delta      int64
	)
	for improved := true; improved; {
		improved = false
	scan:
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				delta = m.Weight(a, c) + m.Weight(b, d) - m.Weight(a, b) - m.Weight(c, d)
				if delta >= 0 {
					continue
				}
				reverse(cur[i : k+1])
				cost += delta
				improved = true
				break scan
			}
		}
	}

	return Solution{Tour: cur, Cost: cost}, nil
}

// reverse flips s in place.
func reverse(s []int) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
