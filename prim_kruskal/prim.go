// Package prim_kruskal provides a dense O(n²) Prim’s algorithm used as the
// reference MST for cross-checking Kruskal on complete graphs.
package prim_kruskal

import "github.com/katalvlaran/tspkit/matrix"

// Prim computes an MST of the complete graph over m by growing a tree from
// vertex 0. A dense array scan replaces the heap: on a complete graph every
// vertex is adjacent to every other, so the O(n²) scan is optimal.
//
// Steps:
//  1. bestCost[v] = cheapest known edge from the tree to v; start with {0}.
//  2. n-1 times: pick the cheapest outside vertex u (smallest index on ties),
//     add edge (parent[u], u), relax bestCost through u.
//
// For asymmetric inputs the upper triangle is read, matching CompleteEdges.
// Edges are returned in insertion order with U < V, plus the total weight.
//
// Complexity: O(n²) time, O(n) memory.
func Prim(m *matrix.Distance) ([]Edge, int64, error) {
	if m == nil {
		return nil, 0, ErrInvalidGraph
	}
	var n = m.N()
	if n == 1 {
		return []Edge{}, 0, nil
	}

	var (
		inTree   = make([]bool, n)
		parent   = make([]int, n)
		bestCost = make([]int64, n)
		mst      = make([]Edge, 0, n-1)
		total    int64
		u, v     int
	)
	for v = 0; v < n; v++ {
		bestCost[v] = matrix.CostLimit
		parent[v] = -1
	}
	bestCost[0] = 0

	for it := 0; it < n; it++ {
		// (a) Cheapest vertex outside the tree.
		u = -1
		for v = 0; v < n; v++ {
			if !inTree[v] && (u < 0 || bestCost[v] < bestCost[u]) {
				u = v
			}
		}
		// (b) Add it with its connecting edge.
		inTree[u] = true
		if p := parent[u]; p >= 0 {
			e := Edge{U: p, V: u, Weight: bestCost[u]}
			if e.U > e.V {
				e.U, e.V = e.V, e.U
			}
			mst = append(mst, e)
			total += e.Weight
		}
		// (c) Relax.
		for v = 0; v < n; v++ {
			if !inTree[v] {
				if w := upper(m, u, v); w < bestCost[v] {
					bestCost[v] = w
					parent[v] = u
				}
			}
		}
	}

	return mst, total, nil
}

// upper reads the undirected weight of {a,b} from the upper triangle.
func upper(m *matrix.Distance, a, b int) int64 {
	if a > b {
		a, b = b, a
	}

	return m.Weight(a, b)
}
