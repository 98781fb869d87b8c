// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package: deterministic instance generators, a brute-force
// reference and a Solution shape check.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspkit/matrix"
	"github.com/katalvlaran/tspkit/tsp"
)

const (
	// seedDet is the deterministic seed used by every generator.
	seedDet = int64(20240611)

	// bruteMaxN bounds brute-force enumeration ((n-1)! tours).
	bruteMaxN = 8
)

// example1 is the classic 4-city instance with optimum 80.
var example1 = [][]int64{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

// manhattan places n points on a side×side integer grid and returns the
// L1 distance matrix: symmetric, zero diagonal, triangle inequality exact.
func manhattan(r *rand.Rand, n int, side int) *matrix.Distance {
	xs := make([]int64, n)
	ys := make([]int64, n)
	for i := 0; i < n; i++ {
		xs[i] = r.Int63n(int64(side))
		ys[i] = r.Int63n(int64(side))
	}
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = abs(xs[i]-xs[j]) + abs(ys[i]-ys[j])
		}
	}

	return matrix.MustNew(rows, matrix.WithSymmetric())
}

// randomAsymmetric returns an n×n matrix with independent weights in [0..maxW).
func randomAsymmetric(r *rand.Rand, n int, maxW int64) *matrix.Distance {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			if i != j {
				rows[i][j] = r.Int63n(maxW)
			}
		}
	}

	return matrix.MustNew(rows)
}

// line returns m(i,j) = |i-j|: its MST is the path 0-1-…-(n-1).
func line(n int) *matrix.Distance {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = abs(int64(i - j))
		}
	}

	return matrix.MustNew(rows)
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// bruteForce enumerates every permutation of 1..n-1 and returns the optimum.
func bruteForce(m *matrix.Distance) int64 {
	n := m.N()
	if n == 1 {
		return 0
	}
	perm := make([]int, n-1)
	for i := range perm {
		perm[i] = i + 1
	}
	best := int64(-1)
	var rec func(k int)
	rec = func(k int) {
		if k == len(perm) {
			cost := m.Weight(tsp.Root, perm[0])
			for i := 0; i+1 < len(perm); i++ {
				cost += m.Weight(perm[i], perm[i+1])
			}
			cost += m.Weight(perm[len(perm)-1], tsp.Root)
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		for i := k; i < len(perm); i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)

	return best
}

// requireValidSolution checks the tour shape and the cost round trip.
func requireValidSolution(t *testing.T, m *matrix.Distance, sol tsp.Solution) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(sol.Tour, m.N()), "tour %v", sol.Tour)
	cost, err := tsp.TourCost(m, sol.Tour)
	require.NoError(t, err)
	require.Equal(t, cost, sol.Cost, "cost must be recomputable from the tour")
}
