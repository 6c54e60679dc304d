package navmesh

import (
	"fmt"
	"sort"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

// Build creates a NavMesh from convex cells over vb and the diagonals that
// separate them, given as vertex-id pairs. Bridges passed with WithBridges are
// linked the same way and flagged on their portals.
//
// Steps:
//  1. Validate cells (≥3 vertices, ids in range).
//  2. Index every boundary edge by its unordered vertex pair.
//  3. For each distinct diagonal and bridge, require exactly two owning cells
//     and record a portal in both directions.
//  4. Sort each adjacency list by neighbour id.
//
// Complexity: O(E + D log D) where E is the total number of cell edges and D
// the number of links.
func Build(vb polygon.VertexBuffer, cells []polygon.Ring, diagonals []polygon.Edge, opts ...Option) (*NavMesh, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return build(vb, cells, diagonals, cfg)
}

func build(vb polygon.VertexBuffer, rings []polygon.Ring, diagonals []polygon.Edge, cfg Options) (*NavMesh, error) {
	m := &NavMesh{
		vertices: append(polygon.VertexBuffer(nil), vb...),
		cells:    make([]Cell, len(rings)),
		adj:      make([][]Portal, len(rings)),
	}

	// 1) Cells with their centroid and area.
	for i, r := range rings {
		if len(r) < 3 {
			return nil, fmt.Errorf("%w: cell %d has %d vertices", polygon.ErrInvalidInput, i, len(r))
		}
		for _, id := range r {
			if id < 0 || id >= len(vb) {
				return nil, fmt.Errorf("%w: cell %d references vertex %d out of range [0,%d)",
					polygon.ErrInvalidInput, i, id, len(vb))
			}
		}
		pts := r.Points(vb)
		m.cells[i] = Cell{
			ID:       CellID(i),
			Ring:     r.Clone(),
			Centroid: geom.Centroid(pts),
			Area:     geom.Area(pts),
		}
	}

	// 2) Edge → owning cells.
	owners := make(map[polygon.Edge][]CellID)
	for _, c := range m.cells {
		for _, e := range c.Ring.Edges() {
			k := e.Key()
			list := owners[k]
			if n := len(list); n > 0 && list[n-1] == c.ID {
				continue
			}
			owners[k] = append(list, c.ID)
		}
	}

	// 3) Link diagonals, then bridges.
	seen := make(map[polygon.Edge]struct{}, len(diagonals)+len(cfg.Bridges))
	link := func(e polygon.Edge, bridge bool) error {
		k := e.Key()
		if _, dup := seen[k]; dup {
			return nil
		}
		seen[k] = struct{}{}

		ids := owners[k]
		if len(ids) != 2 {
			kind := "diagonal"
			if bridge {
				kind = "bridge"
			}
			return fmt.Errorf("%w: %s %v is a boundary edge of %d cells %v, want 2",
				ErrInconsistentMesh, kind, e, len(ids), ids)
		}
		m.addPortal(ids[0], ids[1], e, bridge)
		if bridge {
			m.bridges = append(m.bridges, e)
		} else {
			m.diagonals = append(m.diagonals, e)
		}

		return nil
	}
	for _, e := range diagonals {
		if err := link(e, false); err != nil {
			return nil, err
		}
	}
	for _, b := range cfg.Bridges {
		if err := link(b.Edge(), true); err != nil {
			return nil, err
		}
	}

	// 4) Deterministic neighbour order.
	for i := range m.adj {
		sort.Slice(m.adj[i], func(a, b int) bool { return m.adj[i][a].To < m.adj[i][b].To })
	}

	return m, nil
}

// addPortal records the link a↔b across e in both adjacency lists.
func (m *NavMesh) addPortal(a, b CellID, e polygon.Edge, bridge bool) {
	cost := geom.Distance(m.cells[a].Centroid, m.cells[b].Centroid)
	mid := geom.Midpoint(m.vertices[e.U], m.vertices[e.V])
	m.adj[a] = append(m.adj[a], Portal{From: a, To: b, Edge: e, Mid: mid, Cost: cost, Bridge: bridge})
	m.adj[b] = append(m.adj[b], Portal{From: b, To: a, Edge: e, Mid: mid, Cost: cost, Bridge: bridge})
	m.links++
}
