// Package prim_kruskal computes Minimum Spanning Trees (MST) over integer
// distance matrices and explicit edge lists on vertex indices 0..n-1.
//
// What & Why
//
//   - An MST of a connected weighted graph G = (V, E) is a subset T ⊆ E that
//     spans V with minimum total weight.
//   - Here it is the first stage of the TSP 2-approximation: a preorder walk
//     of the MST, shortcut across the complete graph, costs at most 2·OPT on
//     metric instances.
//
// Provided
//
//   - DisjointSet: union-find with full path compression and union by rank.
//   - Kruskal(m) / KruskalEdges(n, edges): sort edges by (weight, u, v),
//     accept with union-find, stop at n-1 edges.
//     Time O(E log E), memory O(E + V).
//   - Prim(m): dense O(n²) growth from vertex 0, the reference used to
//     cross-check Kruskal on complete graphs.
//
// Determinism
//
//	Kruskal's tie-break is the total order (weight, u, v), independent of the
//	order in which edges are supplied. The accepted edges are returned in
//	acceptance order, which callers may depend on.
//
// Error Conditions
//
//   - ErrInvalidGraph: nil matrix, n ≤ 0, endpoint out of range, self-loop.
//   - ErrDisconnected: fewer than n-1 edges could be accepted. Never returned
//     for a complete matrix, but checked explicitly instead of returning a
//     partial forest.
package prim_kruskal
