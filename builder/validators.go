// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel wrapped via builderErrorf
// when its precondition is violated.
package builder

import "math"

// validatePartition checks that the two partition sizes are each ≥ MinPartition.
// Empty partitions are valid: they yield a graph without edges.
//
// Complexity: O(1) time and space.
func validatePartition(method string, n, m int) error {
	if n < MinPartition || m < MinPartition {
		return builderErrorf(method, ErrTooFewVertices,
			"n=%d, m=%d (each must be ≥ %d)", n, m, MinPartition)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// NaN fails the check as well; it is never silently clamped.
//
// Complexity: O(1) time and space.
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability,
			"p=%.6f not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}

	return nil
}
