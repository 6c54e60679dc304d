// File: mesh.go
// Role: The immutable NavMesh value and its read-only accessors.
// Determinism:
//   - Cells() is ordered by CellID; Neighbors() by neighbour CellID.
// Concurrency:
//   - No locks: nothing mutates a NavMesh after build. Accessors copy.

package navmesh

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

// NavMesh is a set of convex cells plus their adjacency across shared
// diagonals (and, optionally, hole bridges).
type NavMesh struct {
	vertices  polygon.VertexBuffer
	ring      polygon.Ring // ring that was decomposed; nil when built directly
	cells     []Cell
	diagonals []polygon.Edge
	bridges   []polygon.Edge
	adj       [][]Portal // adj[CellID] sorted by Portal.To
	links     int
}

// Len returns the number of cells.
func (m *NavMesh) Len() int { return len(m.cells) }

// Vertices returns a copy of the vertex buffer cells refer to.
func (m *NavMesh) Vertices() polygon.VertexBuffer {
	return append(polygon.VertexBuffer(nil), m.vertices...)
}

// Ring returns a copy of the ring that was decomposed, or nil when the mesh
// was assembled with Build.
func (m *NavMesh) Ring() polygon.Ring {
	if m.ring == nil {
		return nil
	}

	return m.ring.Clone()
}

// Cells returns a copy of every cell, ordered by id.
func (m *NavMesh) Cells() []Cell {
	out := make([]Cell, len(m.cells))
	for i, c := range m.cells {
		c.Ring = c.Ring.Clone()
		out[i] = c
	}

	return out
}

// Cell returns the cell with the given id.
func (m *NavMesh) Cell(id CellID) (Cell, error) {
	if !m.has(id) {
		return Cell{}, fmt.Errorf("%w: %d", ErrCellNotFound, id)
	}
	c := m.cells[id]
	c.Ring = c.Ring.Clone()

	return c, nil
}

// Centroid returns the centroid of cell id.
func (m *NavMesh) Centroid(id CellID) (geom.Point, error) {
	if !m.has(id) {
		return geom.Point{}, fmt.Errorf("%w: %d", ErrCellNotFound, id)
	}

	return m.cells[id].Centroid, nil
}

// Diagonals returns the linked diagonals as vertex-id pairs.
func (m *NavMesh) Diagonals() []polygon.Edge {
	return append([]polygon.Edge(nil), m.diagonals...)
}

// Bridges returns the linked hole bridges as vertex-id pairs.
func (m *NavMesh) Bridges() []polygon.Edge {
	return append([]polygon.Edge(nil), m.bridges...)
}

// Neighbors returns the portals leaving cell id, sorted by neighbour id.
func (m *NavMesh) Neighbors(id CellID) ([]Portal, error) {
	if !m.has(id) {
		return nil, fmt.Errorf("%w: %d", ErrCellNotFound, id)
	}

	return append([]Portal(nil), m.adj[id]...), nil
}

// Portal returns the portal from a to b, if the cells are adjacent.
func (m *NavMesh) Portal(a, b CellID) (Portal, bool) {
	if !m.has(a) || !m.has(b) {
		return Portal{}, false
	}
	for _, p := range m.adj[a] {
		if p.To == b {
			return p, true
		}
	}

	return Portal{}, false
}

// Adjacent reports whether a and b share a portal.
func (m *NavMesh) Adjacent(a, b CellID) bool {
	_, ok := m.Portal(a, b)

	return ok
}

// Bounds returns the bounding rectangle of all cell vertices.
func (m *NavMesh) Bounds() r2.Rect {
	var pts []geom.Point
	for _, c := range m.cells {
		pts = append(pts, c.Ring.Points(m.vertices)...)
	}

	return geom.Bounds(pts)
}

// Stats returns a summary of the mesh.
// Complexity: O(C).
func (m *NavMesh) Stats() Stats {
	s := Stats{
		Vertices:  len(m.vertices),
		Cells:     len(m.cells),
		Diagonals: len(m.diagonals),
		Bridges:   len(m.bridges),
		Portals:   m.links,
	}
	for _, c := range m.cells {
		s.Area += c.Area
	}

	return s
}

// Contains reports whether p lies inside or on the boundary of cell id.
func (m *NavMesh) Contains(id CellID, p geom.Point) bool {
	if !m.has(id) {
		return false
	}
	r := m.cells[id].Ring
	for i := range r {
		if !geom.LeftOn(m.vertices[r[i]], m.vertices[r[r.Next(i)]], p) {
			return false
		}
	}

	return true
}

// LocateCell returns the first cell containing p.
// A point on an edge shared by several cells resolves to the lowest id.
// Complexity: O(total cell vertices).
func (m *NavMesh) LocateCell(p geom.Point) (CellID, error) {
	for _, c := range m.cells {
		if m.Contains(c.ID, p) {
			return c.ID, nil
		}
	}

	return -1, fmt.Errorf("%w: %v", ErrPointOutsideMesh, p)
}

func (m *NavMesh) has(id CellID) bool { return id >= 0 && int(id) < len(m.cells) }
