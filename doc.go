// Package tspkit solves the Travelling Salesman Problem on integer distance
// matrices and benchmarks the solvers against known optima.
//
// What is inside?
//
//	• matrix/         validated n×n distance matrix + whitespace text loader
//	• prim_kruskal/   DisjointSet, Kruskal MST (total tie order), Prim reference
//	• tsp/            Held–Karp exact solver, MST 2-approximation, tour utilities
//	• catalog/        benchmark instances and run settings (YAML)
//	• bench/          warm-up/measure runner, statistics, markdown report
//	• menu/           numbered instance picker for the interactive CLI
//	• cmd/tspbench    the benchmark command
//
// Quick example:
//
//	m, _ := matrix.ReadFile("instances/tsp1_253.txt")
//	exact, _ := tsp.Solve(m, tsp.Exact)
//	approx, _ := tsp.Solve(m, tsp.Approx)
//	fmt.Println(exact.Cost, approx.Cost)
//
// Both solvers return a closed tour starting at vertex 0 and are
// deterministic: equal matrices always give equal tours.
//
// Exact solving costs O(n²·2ⁿ) time and 12·n·2ⁿ bytes; keep n ≲ 25.
// The approximation runs in O(n² log n) and is within 2× of the optimum on
// metric instances.
//
//	go install github.com/katalvlaran/tspkit/cmd/tspbench@latest
package tspkit
