package core

import "strconv"

// CompareIDs orders two vertex IDs: numerically when both parse as base-10
// integers, lexicographically otherwise (numbers sort before names).
// Returns -1, 0 or +1.
func CompareIDs(a, b string) int {
	ai, aerr := strconv.ParseInt(a, 10, 64)
	bi, berr := strconv.ParseInt(b, 10, 64)
	switch {
	case aerr == nil && berr == nil:
		switch {
		case ai < bi:
			return -1
		case ai > bi:
			return 1
		}
		// "01" vs "1": fall through to the textual order.
	case aerr == nil:
		return -1
	case berr == nil:
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

// RequireVertices returns ErrEmptyGraph when g has no vertices.
func RequireVertices(g *Graph) error {
	if g == nil || g.VertexCount() == 0 {
		return ErrEmptyGraph
	}

	return nil
}
