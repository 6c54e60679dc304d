// File: ring.go
// Role: Ring accessors, validation and winding normalisation.
// Determinism:
//   - All functions are pure; Oriented and Clone return fresh slices.

package polygon

import (
	"fmt"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
)

// Len returns the number of positions in r.
func (r Ring) Len() int { return len(r) }

// Next returns the position following i, wrapping around.
func (r Ring) Next(i int) int { return (i + 1) % len(r) }

// Prev returns the position preceding i, wrapping around.
func (r Ring) Prev(i int) int { return (i + len(r) - 1) % len(r) }

// Clone returns a copy of r.
func (r Ring) Clone() Ring {
	out := make(Ring, len(r))
	copy(out, r)

	return out
}

// Reversed returns r traversed in the opposite direction, starting at the
// same vertex.
func (r Ring) Reversed() Ring {
	n := len(r)
	out := make(Ring, n)
	for i := 0; i < n; i++ {
		out[i] = r[(n-i)%n]
	}

	return out
}

// Points resolves r against vb.
func (r Ring) Points(vb VertexBuffer) []geom.Point {
	out := make([]geom.Point, len(r))
	for i, id := range r {
		out[i] = vb[id]
	}

	return out
}

// Edges returns the boundary edges of r in traversal order.
func (r Ring) Edges() []Edge {
	out := make([]Edge, len(r))
	for i := range r {
		out[i] = Edge{U: r[i], V: r[r.Next(i)]}
	}

	return out
}

// Area returns the signed area of r (counter-clockwise positive).
func (r Ring) Area(vb VertexBuffer) float64 {
	return geom.SignedArea(r.Points(vb))
}

// Winding classifies the orientation of r.
func (r Ring) Winding(vb VertexBuffer) Winding {
	a := r.Area(vb)
	switch {
	case a > 0:
		return CCW
	case a < 0:
		return CW
	default:
		return Degenerate
	}
}

// Oriented returns r with the requested winding, reversing a copy when needed.
// want must be CCW or CW. A degenerate ring is returned unchanged.
func (r Ring) Oriented(vb VertexBuffer, want Winding) Ring {
	got := r.Winding(vb)
	if got == Degenerate || got == want {
		return r.Clone()
	}

	return r.Reversed()
}

// Validate checks r against vb and returns ErrInvalidInput wrapped with the
// first problem found. Zero-length edges are detected with pred's tolerance.
//
// Complexity: O(n).
func (r Ring) Validate(vb VertexBuffer, pred geom.Predicates) error {
	n := len(r)
	if n < 3 {
		return fmt.Errorf("%w: ring has %d vertices, need at least 3", ErrInvalidInput, n)
	}
	for i, id := range r {
		if id < 0 || id >= len(vb) {
			return fmt.Errorf("%w: vertex id %d at position %d out of range [0,%d)", ErrInvalidInput, id, i, len(vb))
		}
	}
	for i := 0; i < n; i++ {
		u, v := r[i], r[r.Next(i)]
		if u == v {
			return fmt.Errorf("%w: repeated vertex id %d at positions %d,%d", ErrInvalidInput, u, i, r.Next(i))
		}
		if geom.Distance(vb[u], vb[v]) < pred.Eps {
			return fmt.Errorf("%w: zero-length edge %v at position %d", ErrInvalidInput, Edge{U: u, V: v}, i)
		}
	}
	if r.Winding(vb) == Degenerate {
		return fmt.Errorf("%w: ring has zero area", ErrInvalidInput)
	}

	return nil
}
