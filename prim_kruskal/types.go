// Package prim_kruskal defines the edge type and sentinel errors for MST computation.
package prim_kruskal

import "errors"

// ErrInvalidGraph indicates an unusable edge list: non-positive vertex count,
// an endpoint outside [0..n-1], or a self-loop.
var ErrInvalidGraph = errors.New("prim_kruskal: invalid graph")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. Kruskal reports it only after
// exhausting every edge with fewer than n-1 accepted.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// Edge is an undirected weighted edge between vertex indices U and V.
// Builders in this package always emit U < V.
type Edge struct {
	U, V   int
	Weight int64
}

// edgeLess orders edges by (Weight, U, V) ascending. This total order is the
// tie-breaking rule of Kruskal and is observable downstream (the TSP
// approximation walks MST neighbors in acceptance order).
func edgeLess(a, b Edge) int {
	switch {
	case a.Weight != b.Weight:
		if a.Weight < b.Weight {
			return -1
		}
		return 1
	case a.U != b.U:
		return a.U - b.U
	default:
		return a.V - b.V
	}
}

// TotalWeight sums the weights of edges.
// Complexity: O(len(edges)).
func TotalWeight(edges []Edge) int64 {
	var sum int64
	for _, e := range edges {
		sum += e.Weight
	}

	return sum
}
