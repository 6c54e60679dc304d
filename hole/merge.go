package hole

import (
	"fmt"
	"sort"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

// Merge bridges the hole (holeVB, holeRing) into the outer boundary
// (outerVB, outer).
//
// Both rings are validated (polygon.ErrInvalidInput, nil Result) and
// normalised on copies: the outer ring to counter-clockwise, the hole to
// clockwise, keeping the hole's first vertex as anchor. On an unreachable hole
// the returned Result carries the outer buffer and ring unchanged with a nil
// Bridge, alongside ErrHoleUnreachable.
func Merge(outerVB polygon.VertexBuffer, outer polygon.Ring, holeVB polygon.VertexBuffer, holeRing polygon.Ring, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	pred := cfg.Predicates

	if err := outer.Validate(outerVB, pred); err != nil {
		return nil, fmt.Errorf("outer ring: %w", err)
	}
	if err := holeRing.Validate(holeVB, pred); err != nil {
		return nil, fmt.Errorf("hole ring: %w", err)
	}

	res, err := merge(pred, outerVB, outer.Oriented(outerVB, polygon.CCW),
		Input{Vertices: holeVB, Ring: holeRing.Oriented(holeVB, polygon.CW)}, nil)
	if err != nil {
		return &Result{Vertices: outerVB, Ring: outer}, err
	}

	return res, nil
}

// MergeAll merges holes into (vb, outer) one at a time, each pass operating on
// the previous pass's ring. Holes are merged in order of their leftmost
// vertex (lowest X, then lowest Y, then input index), and a bridge is never
// allowed to cross a hole that is still waiting to be merged.
//
// Rings are validated and normalised as in Merge. On success the bridges are
// returned in input order, one per hole. The first unreachable hole aborts the
// merge with its input index in the error; the partial Result and the bridges
// created so far (in merge order) are returned with it.
func MergeAll(vb polygon.VertexBuffer, outer polygon.Ring, holes []Input, opts ...Option) (*Result, []Bridge, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	pred := cfg.Predicates

	// 1) Validate and normalise.
	if err := outer.Validate(vb, pred); err != nil {
		return nil, nil, fmt.Errorf("outer ring: %w", err)
	}
	norm := make([]Input, len(holes))
	for i, h := range holes {
		if err := h.Ring.Validate(h.Vertices, pred); err != nil {
			return nil, nil, fmt.Errorf("hole %d: %w", i, err)
		}
		norm[i] = Input{Vertices: h.Vertices, Ring: h.Ring.Oriented(h.Vertices, polygon.CW)}
	}

	// 2) Leftmost hole first.
	order := make([]int, len(norm))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		pa, pb := leftmost(norm[order[a]]), leftmost(norm[order[b]])
		if pa.X != pb.X {
			return pa.X < pb.X
		}

		return pa.Y < pb.Y
	})

	// 3) Merge, keeping bridges clear of the holes still pending.
	cur := &Result{Vertices: vb, Ring: outer.Oriented(vb, polygon.CCW)}
	merged := make([]Bridge, 0, len(holes))
	byInput := make([]Bridge, len(holes))
	pending := make([]Input, 0, len(order))
	for k, i := range order {
		pending = pending[:0]
		for _, j := range order[k+1:] {
			pending = append(pending, norm[j])
		}
		next, err := merge(pred, cur.Vertices, cur.Ring, norm[i], pending)
		if err != nil {
			return cur, merged, fmt.Errorf("hole %d: %w", i, err)
		}
		merged = append(merged, *next.Bridge)
		byInput[i] = *next.Bridge
		cur = next
	}

	return cur, byInput, nil
}

// leftmost returns the ring vertex with the lowest X, ties broken by lowest Y.
func leftmost(h Input) geom.Point {
	best := h.Vertices[h.Ring[0]]
	for _, id := range h.Ring[1:] {
		p := h.Vertices[id]
		if p.X < best.X || (p.X == best.X && p.Y < best.Y) {
			best = p
		}
	}

	return best
}

// merge splices h into (outerVB, outer). outer must be counter-clockwise and
// h.Ring clockwise; both are assumed valid.
func merge(pred geom.Predicates, outerVB polygon.VertexBuffer, outer polygon.Ring, h Input, pending []Input) (*Result, error) {
	unchanged := &Result{Vertices: outerVB, Ring: outer}
	holeVB, holeRing := h.Vertices, h.Ring

	// 1) The hole must sit strictly inside the outer boundary.
	for _, id := range holeRing {
		if !strictlyInside(pred, outerVB, outer, holeVB[id]) {
			return unchanged, fmt.Errorf("%w: hole vertex %d %v is not strictly inside the outer ring",
				ErrHoleUnreachable, id, holeVB[id])
		}
	}

	// 2) First ring position whose vertex sees the anchor from inside its wedge.
	anchor := holeRing[0]
	pos := -1
	for i := range outer {
		if visible(pred, outerVB, outer, i, h, anchor, pending) {
			pos = i
			break
		}
	}
	if pos < 0 {
		return unchanged, fmt.Errorf("%w: anchor %d %v", ErrHoleUnreachable, anchor, holeVB[anchor])
	}

	// 3) Splice: p, anchor, hole..., anchor, p, outer...
	off := len(outerVB)
	p := outer[pos]
	ring := make(polygon.Ring, 0, len(outer)+len(holeRing)+2)
	ring = append(ring, p, anchor+off)
	for k := 1; k < len(holeRing); k++ {
		ring = append(ring, holeRing[k]+off)
	}
	ring = append(ring, anchor+off, p)
	// walk by count: p may already appear twice if it ends an earlier bridge
	for k := 1; k < len(outer); k++ {
		ring = append(ring, outer[(pos+k)%len(outer)])
	}

	return &Result{
		Vertices: outerVB.Concat(holeVB),
		Ring:     ring,
		Bridge:   &Bridge{Hole: anchor + off, Outer: p},
	}, nil
}

// visible reports whether segment (outer[pos], anchor) leaves outer[pos]
// inside its interior wedge and avoids every outer edge not incident to
// outer[pos], every hole edge not incident to anchor, and every pending hole.
//
// The wedge test picks the right copy of a vertex that already carries a
// bridge and so appears more than once in outer.
func visible(pred geom.Predicates, outerVB polygon.VertexBuffer, outer polygon.Ring, pos int,
	h Input, anchor int, pending []Input) bool {
	p := outer[pos]
	a, b := outerVB[p], h.Vertices[anchor]

	if !geom.InCone(outerVB[outer[outer.Prev(pos)]], a, outerVB[outer[outer.Next(pos)]], b) {
		return false
	}
	for i := range outer {
		u, w := outer[i], outer[outer.Next(i)]
		if u == p || w == p {
			continue
		}
		if pred.SegmentsIntersect(a, b, outerVB[u], outerVB[w]) {
			return false
		}
	}
	for i := range h.Ring {
		u, w := h.Ring[i], h.Ring[h.Ring.Next(i)]
		if u == anchor || w == anchor {
			continue
		}
		if pred.SegmentsIntersect(a, b, h.Vertices[u], h.Vertices[w]) {
			return false
		}
	}
	for _, ph := range pending {
		for i := range ph.Ring {
			u, w := ph.Ring[i], ph.Ring[ph.Ring.Next(i)]
			if pred.SegmentsIntersect(a, b, ph.Vertices[u], ph.Vertices[w]) {
				return false
			}
		}
	}

	return true
}

// strictlyInside reports whether q lies inside ring r and not on any of its
// edges, using the crossing-number rule.
func strictlyInside(pred geom.Predicates, vb polygon.VertexBuffer, r polygon.Ring, q geom.Point) bool {
	inside := false
	for i := range r {
		a, b := vb[r[i]], vb[r[r.Next(i)]]
		if pred.Collinear(a, b, q) && pred.Between(a, b, q) {
			return false
		}
		if (a.Y > q.Y) != (b.Y > q.Y) {
			x := a.X + (q.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if q.X < x {
				inside = !inside
			}
		}
	}

	return inside
}
