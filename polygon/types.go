package polygon

import (
	"errors"
	"fmt"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
)

// ErrInvalidInput indicates a malformed vertex buffer or ring.
var ErrInvalidInput = errors.New("polygon: invalid input")

// VertexBuffer is the shared, index-addressed point storage.
type VertexBuffer []geom.Point

// Concat returns a new buffer holding vb followed by other.
// Neither input is modified.
func (vb VertexBuffer) Concat(other VertexBuffer) VertexBuffer {
	out := make(VertexBuffer, 0, len(vb)+len(other))
	out = append(out, vb...)

	return append(out, other...)
}

// Ring is an ordered closed sequence of vertex ids.
type Ring []int

// Diagonal is a split edge expressed as two positions of the ring that
// produced it.
type Diagonal struct {
	A, B int
}

// Resolve converts d into the vertex-id edge it denotes in r.
func (d Diagonal) Resolve(r Ring) Edge {
	return Edge{U: r[d.A], V: r[d.B]}
}

// String implements fmt.Stringer.
func (d Diagonal) String() string { return fmt.Sprintf("<%d,%d>", d.A, d.B) }

// Edge is a pair of vertex ids.
type Edge struct {
	U, V int
}

// Key returns the unordered form of e (U <= V).
func (e Edge) Key() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// String implements fmt.Stringer.
func (e Edge) String() string { return fmt.Sprintf("(%d,%d)", e.U, e.V) }

// Winding is the orientation of a ring.
type Winding int

const (
	// Degenerate rings have (near) zero signed area.
	Degenerate Winding = iota
	// CCW rings have positive signed area.
	CCW
	// CW rings have negative signed area.
	CW
)

// String implements fmt.Stringer.
func (w Winding) String() string {
	switch w {
	case CCW:
		return "ccw"
	case CW:
		return "cw"
	default:
		return "degenerate"
	}
}
