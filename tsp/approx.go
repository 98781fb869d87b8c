// Package tsp — MST 2-approximation.
//
// ApproxSolver computes a Hamiltonian cycle whose cost is at most twice the
// optimum on symmetric instances satisfying the triangle inequality:
//
//  1. Minimum Spanning Tree via Kruskal (prim_kruskal.Kruskal).
//  2. Adjacency lists whose neighbor order is the MST acceptance order:
//     ascending weight, ties by (u, v). This order fixes the traversal and is
//     part of the contract, so equal inputs always yield equal tours.
//  3. Depth-first preorder from Root using an explicit stack.
//  4. Close the cycle at Root.
//  5. Cost over the ORIGINAL matrix: the preorder skips already-visited
//     vertices, i.e. it takes shortcuts across the complete graph.
//
// Mathematical guarantee:
//   - w(MST) ≤ OPT, and the shortcut walk costs ≤ 2·w(MST) under the triangle
//     inequality, hence cost ≤ 2·OPT. The precondition is never validated;
//     on other inputs the tour is still valid, only the bound is lost.
//
// Complexity: O(n² log n) time (the Kruskal sort), O(n²) memory for edges.
package tsp

import (
	"github.com/katalvlaran/tspkit/matrix"
	"github.com/katalvlaran/tspkit/prim_kruskal"
)

// ApproxSolver is the MST-based 2-approximation. The zero value is ready.
type ApproxSolver struct{}

var _ Solver = ApproxSolver{}

// Solve runs the approximation on m.
//
// Errors: ErrInvalidInput for a nil matrix, ErrDisconnected (MST stage).
func (ApproxSolver) Solve(m *matrix.Distance) (Solution, error) {
	return TSPApprox(m)
}

// TSPApprox is the function form of ApproxSolver.Solve.
func TSPApprox(m *matrix.Distance) (Solution, error) {
	if m == nil {
		return Solution{}, errNilMatrix
	}
	n := m.N()

	// 1) MST.
	mst, _, err := prim_kruskal.Kruskal(m)
	if err != nil {
		return Solution{}, err
	}

	// 2) Adjacency in acceptance order.
	offsets, neighbors := buildAdjacency(n, mst)

	// 3) + 4) Preorder walk, closed at Root.
	tour := preorder(n, offsets, neighbors)

	// 5) Shortcut cost on the original matrix.
	cost, err := TourCost(m, tour)
	if err != nil {
		return Solution{}, err
	}

	return Solution{Tour: tour, Cost: cost}, nil
}

// buildAdjacency lays out the tree in compressed form: the neighbors of v are
// neighbors[offsets[v]:offsets[v+1]], in the order edges appear in tree.
// Both slices are allocated once with exact sizes.
//
// Complexity: O(n) time and memory.
func buildAdjacency(n int, tree []prim_kruskal.Edge) (offsets, neighbors []int) {
	offsets = make([]int, n+1)
	for _, e := range tree {
		offsets[e.U+1]++
		offsets[e.V+1]++
	}
	for v := 0; v < n; v++ {
		offsets[v+1] += offsets[v]
	}

	neighbors = make([]int, 2*len(tree))
	fill := make([]int, n) // next free slot per vertex, relative to offsets
	for _, e := range tree {
		neighbors[offsets[e.U]+fill[e.U]] = e.V
		fill[e.U]++
		neighbors[offsets[e.V]+fill[e.V]] = e.U
		fill[e.V]++
	}

	return offsets, neighbors
}

// frame is one pending vertex of the iterative DFS: next is the index (into
// neighbors) of the next neighbor to try.
type frame struct {
	vertex int
	next   int
}

// preorder emits vertices in depth-first preorder from Root, trying
// neighbors in stored order, then appends Root. The visit order is identical
// to the recursive formulation; the explicit stack bounds depth at n frames
// without touching the goroutine stack.
//
// Complexity: O(n) time, O(n) memory.
func preorder(n int, offsets, neighbors []int) []int {
	var (
		tour    = make([]int, 0, n+1)
		visited = make([]bool, n)
		stack   = make([]frame, 0, n)
	)

	visited[Root] = true
	tour = append(tour, Root)
	stack = append(stack, frame{vertex: Root, next: offsets[Root]})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == offsets[top.vertex+1] {
			stack = stack[:len(stack)-1] // all neighbors done
			continue
		}
		v := neighbors[top.next]
		top.next++
		if visited[v] {
			continue
		}
		visited[v] = true
		tour = append(tour, v)
		stack = append(stack, frame{vertex: v, next: offsets[v]})
	}

	return append(tour, Root)
}
