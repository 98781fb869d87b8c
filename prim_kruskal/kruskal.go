// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm
// over integer-weighted graphs on vertex indices 0..n-1.
package prim_kruskal

import (
	"slices"

	"github.com/katalvlaran/tspkit/matrix"
)

// CompleteEdges enumerates every undirected edge (i,j), i<j, of the complete
// graph described by m, in lexicographic (i,j) order. For asymmetric inputs
// the upper triangle m(i,j) is used.
//
// Complexity: O(n²) time and memory.
func CompleteEdges(m *matrix.Distance) []Edge {
	var n = m.N()
	edges := make([]Edge, 0, n*(n-1)/2)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, Edge{U: i, V: j, Weight: m.Weight(i, j)})
		}
	}

	return edges
}

// Kruskal computes the MST of the complete graph over m.
// It is KruskalEdges(m.N(), CompleteEdges(m)).
//
// Complexity: O(n² log n), dominated by the sort.
func Kruskal(m *matrix.Distance) ([]Edge, int64, error) {
	if m == nil {
		return nil, 0, ErrInvalidGraph
	}

	return KruskalEdges(m.N(), CompleteEdges(m))
}

// KruskalEdges computes a Minimum Spanning Tree over vertices 0..n-1.
//
// Steps:
//  1. Validate: n ≥ 1, every endpoint in range, no self-loops. Edges are
//     normalized to U < V.
//  2. Sort a copy ascending by (Weight, U, V). The order is total, so the
//     result does not depend on the input order.
//  3. Scan: accept an edge iff its endpoints are in different DisjointSet
//     components; stop at n-1 accepted edges.
//  4. Fewer than n-1 accepted edges ⇒ ErrDisconnected.
//
// Returns the accepted edges in acceptance order and their total weight.
// n == 1 yields an empty tree with weight 0.
//
// Complexity: O(E log E + E·α(n)) time, O(E + n) memory.
func KruskalEdges(n int, edges []Edge) ([]Edge, int64, error) {
	// 1. Validate.
	if n <= 0 {
		return nil, 0, ErrInvalidGraph
	}
	sorted := make([]Edge, len(edges))
	for k, e := range edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n || e.U == e.V {
			return nil, 0, ErrInvalidGraph
		}
		if e.U > e.V {
			e.U, e.V = e.V, e.U
		}
		sorted[k] = e
	}
	if n == 1 {
		return []Edge{}, 0, nil
	}

	// 2. Deterministic order.
	slices.SortFunc(sorted, edgeLess)

	// 3. Greedy scan with union-find.
	var (
		ds    = NewDisjointSet(n)
		mst   = make([]Edge, 0, n-1)
		total int64
	)
	for _, e := range sorted {
		if ds.Union(e.U, e.V) {
			mst = append(mst, e)
			total += e.Weight
			if len(mst) == n-1 {
				break
			}
		}
	}

	// 4. Explicit connectivity check; never return a partial forest.
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
