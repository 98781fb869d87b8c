// Package tsp — tour utilities.
//
// Provided helpers:
//   - ValidateTour: enforce the Hamiltonian-cycle shape rooted at Root.
//   - EquivalentTours: equality of closed tours up to rotation and reflection.
//
// Design:
//   - No logging, no panics on user input; only sentinel errors from types.go.
//   - O(n) time.
package tsp

import "fmt"

// ValidateTour enforces:
//
//	len(tour) == n+1, tour[0] == tour[n] == Root,
//	each vertex v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidTour, n)
	}
	if len(tour) != n+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(tour), n+1)
	}
	if tour[0] != Root || tour[n] != Root {
		return fmt.Errorf("%w: must start and end at %d", ErrInvalidTour, Root)
	}

	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: vertex %d out of range at position %d", ErrInvalidTour, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %d repeated at position %d", ErrInvalidTour, v, i)
		}
		seen[v] = true
	}

	return nil
}

// EquivalentTours reports whether two closed tours describe the same cycle,
// regardless of starting vertex and direction. Both must be closed
// (first == last) and of equal length.
//
// Complexity: O(n) time.
func EquivalentTours(a, b []int) bool {
	if len(a) != len(b) || len(a) < 2 {
		return false
	}
	n := len(a) - 1
	if a[0] != a[n] || b[0] != b[n] {
		return false
	}

	// Locate a[0] in b's cycle.
	p := -1
	for j := 0; j < n; j++ {
		if b[j] == a[0] {
			p = j
			break
		}
	}
	if p < 0 {
		return false
	}

	forward, backward := true, true
	for i := 0; i < n && (forward || backward); i++ {
		if a[i] != b[(p+i)%n] {
			forward = false
		}
		if a[i] != b[((p-i)%n+n)%n] {
			backward = false
		}
	}

	return forward || backward
}
