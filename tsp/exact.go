package tsp

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/tspkit/matrix"
)

// maxBitmaskVertices is the largest n whose subset index mask*n+u, table
// size (1<<n)*n and shift 1<<n stay representable in int on this platform.
// Reaching it is only theoretical: memory runs out decades earlier.
const maxBitmaskVertices = bits.UintSize - 8

// ExactSolver solves the TSP optimally with Held–Karp dynamic programming.
//
// MaxVertices, when positive, rejects larger instances with ErrTooLarge
// before any table is allocated. Memory grows as HeldKarpTableBytes(n);
// without a ceiling, bounding n is the caller's job and exhausting memory is
// fatal.
type ExactSolver struct {
	MaxVertices int
}

var _ Solver = ExactSolver{}

// Solve runs Held–Karp on m.
//
// Errors: ErrInvalidInput (nil matrix), ErrTooLarge, ErrUnsolvable.
func (s ExactSolver) Solve(m *matrix.Distance) (Solution, error) {
	if m == nil {
		return Solution{}, errNilMatrix
	}
	n := m.N()
	if s.MaxVertices > 0 && n > s.MaxVertices {
		return Solution{}, fmt.Errorf("%w: n=%d exceeds limit %d", ErrTooLarge, n, s.MaxVertices)
	}

	return TSPExact(m)
}

// TSPExact solves the Travelling Salesman Problem exactly on m using the
// Held–Karp dynamic-programming algorithm, without a vertex ceiling.
//
// State: dp[mask][u] = minimum cost of a path that starts at Root, visits
// exactly the vertices of mask (which always contains Root and u) and ends
// at u; pred[mask][u] is the vertex before u on that path.
//
// Tables are flat, index mask*n + u, allocated once per call.
//
// Enumeration order is the tie-break: masks ascending, then u ascending,
// then v ascending, and an entry is overwritten only by a strictly smaller
// cost. Among equal-cost paths the first one found is kept, so results are
// fully deterministic.
//
// Returns a tour of length n+1 starting and ending at Root.
// n == 1 yields [0 0] with cost 0 and no tables.
//
// Time complexity:   O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ), see HeldKarpTableBytes.
func TSPExact(m *matrix.Distance) (Solution, error) {
	if m == nil {
		return Solution{}, errNilMatrix
	}
	n := m.N()
	if n == 1 {
		return Solution{Tour: []int{Root, Root}, Cost: 0}, nil
	}
	if n > maxBitmaskVertices {
		return Solution{}, fmt.Errorf("%w: n=%d exceeds bitmask width", ErrTooLarge, n)
	}

	return heldKarp(n, m.Flat())
}

// heldKarp fills the tables and reconstructs the optimal tour (n ≥ 2).
// w holds the n×n weights in row-major order.
func heldKarp(n int, w []int64) (Solution, error) {
	var (
		states  = 1 << n
		full    = states - 1
		dp      = make([]int64, states*n)
		pred    = make([]int32, states*n)
		startSt = 1 << Root
	)

	// --- 1. Base case ---
	for i := range dp {
		dp[i] = Infinity
	}
	dp[startSt*n+Root] = 0
	pred[startSt*n+Root] = -1

	// --- 2. Forward transitions ---
	var (
		mask, u, v int
		base       int   // mask*n
		costU      int64 // dp[mask][u]
		cand       int64
		next       int // index of dp[mask|1<<v][v]
	)
	for mask = startSt; mask < states; mask++ {
		if mask&startSt == 0 {
			continue // every path starts at Root
		}
		base = mask * n
		for u = 0; u < n; u++ {
			if mask&(1<<u) == 0 {
				continue
			}
			costU = dp[base+u]
			if costU >= Infinity {
				continue
			}
			for v = 0; v < n; v++ {
				if mask&(1<<v) != 0 {
					continue
				}
				cand = costU + w[u*n+v]
				next = (mask|1<<v)*n + v
				if cand < dp[next] {
					dp[next] = cand
					pred[next] = int32(u)
				}
			}
		}
	}

	// --- 3. Close the cycle back to Root ---
	var (
		bestCost = Infinity
		last     = -1
		total    int64
	)
	base = full * n
	for u = 1; u < n; u++ {
		if dp[base+u] >= Infinity {
			continue
		}
		total = dp[base+u] + w[u*n+Root]
		if total < bestCost {
			bestCost = total
			last = u
		}
	}
	if last < 0 {
		return Solution{}, ErrUnsolvable
	}

	// --- 4. Reconstruct backwards into a preallocated tour ---
	tour := make([]int, n+1)
	tour[0], tour[n] = Root, Root
	mask = full
	u = last
	for i := n - 1; i >= 1; i-- {
		tour[i] = u
		p := int(pred[mask*n+u])
		mask ^= 1 << u
		u = p
	}

	return Solution{Tour: tour, Cost: bestCost}, nil
}

// HeldKarpTableBytes returns the bytes the exact solver allocates for its
// dp (int64) and pred (int32) tables on an instance of n vertices:
// 12 · n · 2ⁿ. Use it to bound n before calling the exact solver.
// It saturates at the maximum uint64 value instead of overflowing.
//
// Complexity: O(1).
func HeldKarpTableBytes(n int) uint64 {
	if n <= 1 {
		return 0
	}
	const perState = 8 + 4
	if n >= 64 {
		return ^uint64(0)
	}
	hi, lo := bits.Mul64(uint64(n)*perState, uint64(1)<<uint(n))
	if hi != 0 {
		return ^uint64(0)
	}

	return lo
}
