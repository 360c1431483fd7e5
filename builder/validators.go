// Package builder provides validation helpers that enforce parameter
// contracts of fixtures and models.
//
// Fixture checks wrap ErrTooFewVertices with fmt %w; model checks go through
// invalidConfig so the error also classifies as ErrInvalidConfig.
package builder

import "fmt"

// validateMin ensures that got ≥ min for a fixture parameter.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// checkNodes ensures n ≥ min for a model.
func checkNodes(method string, n, min int) error {
	if n < min {
		return invalidConfig(ErrTooFewVertices, method, "%s=%d < min=%d", ParamNumNodes, n, min)
	}

	return nil
}

// checkProbability enforces p ∈ [MinProbability, max], with max exclusive
// when closed is false.
func checkProbability(method string, p, max float64, closed bool) error {
	bad := p < MinProbability || p > max || (!closed && p == max)
	if !bad {
		return nil
	}
	right := "]"
	if !closed {
		right = ")"
	}

	return invalidConfig(ErrInvalidProbability, method, "%s=%g not in [%g,%g%s", ParamP, p, MinProbability, max, right)
}

// checkDegree enforces lo ≤ d ≤ hi for the degree parameter named name.
func checkDegree(method, name string, d, lo, hi int) error {
	if d < lo || d > hi {
		return invalidConfig(ErrInvalidDegree, method, "%s=%d not in [%d,%d]", name, d, lo, hi)
	}

	return nil
}
