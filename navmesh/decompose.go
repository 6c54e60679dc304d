package navmesh

import (
	"fmt"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/convexify"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/hole"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

// DecomposeWithHoles builds a NavMesh from the boundary (outer, vb) and the
// given holes, and returns the bridges created while merging the holes.
//
// Input rings are validated (polygon.ErrInvalidInput) and normalised so that
// the outer ring is counter-clockwise and every hole clockwise; the caller's
// slices are never modified. Bridges are linked as portals.
//
// Errors (wrapped with context):
//   - polygon.ErrInvalidInput
//   - hole.ErrHoleUnreachable
//   - convexify.ErrNoInternalDiagonal
//   - ErrInconsistentMesh
//   - ErrOptionViolation
func DecomposeWithHoles(outer polygon.Ring, vb polygon.VertexBuffer, holes []hole.Input, opts ...Option) (*NavMesh, []hole.Bridge, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	pred := cfg.Predicates

	// 1) Validate and normalise winding.
	if err := outer.Validate(vb, pred); err != nil {
		return nil, nil, fmt.Errorf("outer ring: %w", err)
	}
	outer = outer.Oriented(vb, polygon.CCW)

	normalised := make([]hole.Input, len(holes))
	for i, h := range holes {
		if err := h.Ring.Validate(h.Vertices, pred); err != nil {
			return nil, nil, fmt.Errorf("hole %d: %w", i, err)
		}
		normalised[i] = hole.Input{Vertices: h.Vertices, Ring: h.Ring.Oriented(h.Vertices, polygon.CW)}
	}

	// 2) Bridge holes into one ring.
	merged, bridges, err := hole.MergeAll(vb, outer, normalised, hole.WithPredicates(pred))
	if err != nil {
		return nil, nil, err
	}

	// 3) Convex decomposition of the merged ring.
	res, err := convexify.Decompose(merged.Vertices, merged.Ring,
		convexify.WithPredicates(pred), convexify.WithOnSplit(cfg.OnSplit))
	if err != nil {
		return nil, nil, err
	}

	// 4) Adjacency over diagonals and bridges.
	cfg.Bridges = append(append([]hole.Bridge(nil), cfg.Bridges...), bridges...)
	m, err := build(merged.Vertices, res.Cells, res.Edges(merged.Ring), cfg)
	if err != nil {
		return nil, nil, err
	}
	m.ring = merged.Ring.Clone()

	return m, bridges, nil
}
