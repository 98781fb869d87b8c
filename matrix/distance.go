// Package matrix provides the integer distance matrix consumed by the TSP
// solvers. Distance is a concrete, row-major n×n matrix of non-negative int64
// weights stored in a flat slice for cache friendliness.
//
// A Distance is validated once, at construction, and is immutable afterwards:
// every holder of a *Distance may rely on its invariants without re-checking.
package matrix

import (
	"math"
	"strconv"
	"strings"
)

// CostLimit is the exclusive upper bound for any tour or path cost.
// It is a quarter of the int64 range, so CostLimit + maxWeight never
// overflows, and New guarantees n × maxWeight < CostLimit.
// Solvers use it as their "unreachable" sentinel.
const CostLimit int64 = math.MaxInt64 / 4

// Distance is an immutable n×n distance matrix.
// n is the order, data holds n*n weights in row-major order.
type Distance struct {
	n    int     // matrix order (vertices 0..n-1)
	data []int64 // flat backing storage, len == n*n
	maxW int64   // largest off-diagonal weight
	sym  bool    // true if d(i,j) == d(j,i) for all pairs
}

// New validates rows and copies them into a Distance.
// Stage 1 (Validate shape): at least one row, every row of length n.
// Stage 2 (Validate values): zero diagonal (unless WithAnyDiagonal), no
// negatives, symmetry (if WithSymmetric), n × maxWeight < CostLimit.
// Stage 3 (Finalize): copy into flat storage.
//
// Errors: ErrEmpty, ErrNonSquare, ErrNonZeroDiagonal, ErrNegativeWeight,
// ErrAsymmetry, ErrWeightOverflow; all wrap ErrInvalidInput.
//
// Complexity: O(n²) time and memory.
func New(rows [][]int64, opts ...Option) (*Distance, error) {
	o := gatherOptions(opts...)

	var n = len(rows)
	if n == 0 {
		return nil, ErrEmpty
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, rowErrorf(i, len(rows[i]), n)
		}
	}

	d := &Distance{n: n, data: make([]int64, n*n), sym: true}
	var w int64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w = rows[i][j]
			if i == j {
				if o.zeroDiagonal && w != 0 {
					return nil, cellErrorf(i, j, ErrNonZeroDiagonal)
				}
			} else if w > d.maxW {
				d.maxW = w
			}
			if w < 0 {
				return nil, cellErrorf(i, j, ErrNegativeWeight)
			}
			d.data[i*n+j] = w
		}
	}

	// Symmetry is always recorded; enforced only on request.
	for i = 0; i < n && d.sym; i++ {
		for j = i + 1; j < n; j++ {
			if d.data[i*n+j] != d.data[j*n+i] {
				d.sym = false
				if o.symmetric {
					return nil, cellErrorf(i, j, ErrAsymmetry)
				}
				break
			}
		}
	}

	if d.maxW > 0 && int64(n) > (CostLimit-1)/d.maxW {
		return nil, ErrWeightOverflow
	}

	return d, nil
}

// MustNew is like New but panics on error. Intended for literals in tests
// and examples.
func MustNew(rows [][]int64, opts ...Option) *Distance {
	d, err := New(rows, opts...)
	if err != nil {
		panic(err)
	}

	return d
}

// N returns the matrix order.
// Complexity: O(1).
func (d *Distance) N() int { return d.n }

// At returns d(i,j) or ErrOutOfRange.
// Complexity: O(1).
func (d *Distance) At(i, j int) (int64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, cellErrorf(i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Weight returns d(i,j) without bounds reporting; out-of-range indices panic
// like a slice access. Hot loops in the solvers use it after establishing
// their own index ranges.
// Complexity: O(1).
func (d *Distance) Weight(i, j int) int64 {
	return d.data[i*d.n+j]
}

// Flat returns a copy of the weights in row-major order: d(i,j) at i*n+j.
// Complexity: O(n²).
func (d *Distance) Flat() []int64 {
	return append([]int64(nil), d.data...)
}

// MaxWeight returns the largest off-diagonal weight (0 for n==1).
func (d *Distance) MaxWeight() int64 { return d.maxW }

// Symmetric reports whether d(i,j) == d(j,i) for every pair.
func (d *Distance) Symmetric() bool { return d.sym }

// Rows returns a deep copy of the matrix as a slice of rows.
// Complexity: O(n²).
func (d *Distance) Rows() [][]int64 {
	out := make([][]int64, d.n)
	for i := range out {
		out[i] = append([]int64(nil), d.data[i*d.n:(i+1)*d.n]...)
	}

	return out
}

// String renders one row per line, values separated by single spaces:
// exactly the text format Parse accepts.
// Complexity: O(n²).
func (d *Distance) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < d.n; i++ {
		for j = 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatInt(d.data[i*d.n+j], 10))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
