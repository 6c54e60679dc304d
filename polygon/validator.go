package polygon

import "github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"

// Validator decides whether candidate diagonals of rings over a fixed vertex
// buffer are internal. It holds no mutable state and is safe for concurrent use.
type Validator struct {
	vb   VertexBuffer
	pred geom.Predicates
}

// NewValidator binds a Validator to vb and pred.
func NewValidator(vb VertexBuffer, pred geom.Predicates) *Validator {
	return &Validator{vb: vb, pred: pred}
}

// Vertices returns the buffer the validator resolves ids against.
func (v *Validator) Vertices() VertexBuffer { return v.vb }

// Predicates returns the predicates used by v.
func (v *Validator) Predicates() geom.Predicates { return v.pred }

// EdgeFree reports whether segment (r[ia], r[ib]) avoids every boundary edge
// of r that is not incident to either endpoint. Incidence is decided by
// vertex id, not by position, so doubled bridge vertices are skipped too.
//
// Complexity: O(len(r)).
func (v *Validator) EdgeFree(r Ring, ia, ib int) bool {
	a, b := r[ia], r[ib]
	pa, pb := v.vb[a], v.vb[b]
	for i := range r {
		u, w := r[i], r[r.Next(i)]
		if u == a || u == b || w == a || w == b {
			continue
		}
		if v.pred.SegmentsIntersect(pa, pb, v.vb[u], v.vb[w]) {
			return false
		}
	}

	return true
}

// InCone reports whether the direction from r[ia] toward r[ib] falls inside
// the interior wedge formed at ia by its boundary neighbours (geom.InCone).
func (v *Validator) InCone(r Ring, ia, ib int) bool {
	return geom.InCone(v.vb[r[r.Prev(ia)]], v.vb[r[ia]], v.vb[r[r.Next(ia)]], v.vb[r[ib]])
}

// IsInternalDiagonal reports whether (ia, ib) is an internal diagonal of r.
func (v *Validator) IsInternalDiagonal(r Ring, ia, ib int) bool {
	return v.InCone(r, ia, ib) && v.InCone(r, ib, ia) && v.EdgeFree(r, ia, ib)
}
