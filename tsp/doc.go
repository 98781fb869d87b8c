// Package tsp provides Travelling Salesman Problem solvers over integer
// distance matrices (*matrix.Distance).
//
// Two algorithms implement the common Solver contract:
//
//	Exact  (ExactSolver, TSPExact)   Held–Karp dynamic programming.
//	       O(n²·2ⁿ) time, HeldKarpTableBytes(n) memory. Optimal;
//	       ties broken by enumeration order.
//	Approx (ApproxSolver, TSPApprox) MST preorder 2-approximation.
//	       O(n² log n). Cost ≤ 2·OPT on symmetric metric instances.
//
// TwoOpt is an optional local search that shortens any valid tour on a
// symmetric matrix.
//
// Every tour starts and ends at Root (vertex 0) and has length n+1. The
// Solution cost always equals TourCost(m, Solution.Tour).
//
// Select a variant with New(Exact) / New(Approx), or call the solvers
// directly. Solvers keep no state between calls and may be shared.
//
// Use the exact solver on small instances only (n = 20 costs ~250 MB of
// tables; every extra vertex doubles it). ExactSolver.MaxVertices or
// WithMaxVertices turns an oversized call into ErrTooLarge.
package tsp
