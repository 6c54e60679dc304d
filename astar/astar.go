package astar

import (
	"fmt"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/navmesh"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/pqueue"
)

// FindPath returns the cheapest cell path from the cell containing start to
// the cell containing end.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. mesh must be non-nil (ErrNilMesh).
//  3. start and end must each lie in a cell (navmesh.ErrPointOutsideMesh).
//
// When both points share a cell the path is that single cell with zero cost.
//
// Complexity:
//
//   - Time:  O((C + P) log C)
//   - Space: O(C)
func FindPath(mesh *navmesh.NavMesh, start, end geom.Point, opts ...Option) (*Path, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate mesh
	if mesh == nil {
		return nil, ErrNilMesh
	}

	// 3) Locate both endpoints.
	from, err := mesh.LocateCell(start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	to, err := mesh.LocateCell(end)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	// 4) Search.
	r := newRunner(mesh, cfg, from, to)
	r.init()
	if err = r.process(); err != nil {
		return nil, err
	}

	// 5) Cells and waypoints.
	cells := r.reconstruct()
	waypoints := make([]geom.Point, 0, len(cells)+1)
	waypoints = append(waypoints, start)
	for i := 1; i < len(cells); i++ {
		p, ok := mesh.Portal(cells[i-1], cells[i])
		if !ok {
			panic(fmt.Sprintf("astar: cells %d and %d on the path are not adjacent", cells[i-1], cells[i]))
		}
		waypoints = append(waypoints, p.Mid)
	}
	waypoints = append(waypoints, end)

	return &Path{
		Cells:     cells,
		Cost:      r.best[to].G,
		Waypoints: waypoints,
		Expanded:  r.expanded,
	}, nil
}

// runner holds the mutable state of one search.
type runner struct {
	mesh     *navmesh.NavMesh
	options  Options
	start    navmesh.CellID
	goal     navmesh.CellID
	goalPt   geom.Point
	best     []Entry // best[c] is the final or current entry of c
	seen     []bool  // c was ever pushed
	closed   []bool  // c was expanded
	open     *pqueue.Heap[navmesh.CellID, Entry]
	expanded int
}

func newRunner(mesh *navmesh.NavMesh, cfg Options, from, to navmesh.CellID) *runner {
	n := mesh.Len()
	goalPt, err := mesh.Centroid(to)
	if err != nil {
		panic(fmt.Sprintf("astar: located goal cell %d has no centroid: %v", to, err))
	}

	return &runner{
		mesh:    mesh,
		options: cfg,
		start:   from,
		goal:    to,
		goalPt:  goalPt,
		best:    make([]Entry, n),
		seen:    make([]bool, n),
		closed:  make([]bool, n),
		open:    pqueue.New[navmesh.CellID, Entry](entryLess),
	}
}

// entryLess orders by F, then by cell id for a deterministic expansion order.
func entryLess(a, b Entry) bool {
	if a.F != b.F {
		return a.F < b.F
	}

	return a.Cell < b.Cell
}

// init pushes the start cell with G = 0.
func (r *runner) init() {
	h := r.heuristic(r.start)
	e := Entry{F: h, G: 0, H: h, Cell: r.start, Parent: -1}
	r.best[r.start] = e
	r.seen[r.start] = true
	if err := r.open.Push(r.start, e); err != nil {
		panic(fmt.Sprintf("astar: push of start cell %d into an empty heap failed: %v", r.start, err))
	}
}

// process expands cells in F order until the goal is closed.
func (r *runner) process() error {
	for r.open.Len() > 0 {
		// 1) Cheapest open cell.
		u, e, err := r.open.Pop()
		if err != nil {
			panic(fmt.Sprintf("astar: pop from heap of length %d failed: %v", r.open.Len(), err))
		}

		// 2) Respect the expansion budget.
		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			return fmt.Errorf("%w: %w after %d cells", ErrPathNotFound, ErrExpansionLimit, r.expanded)
		}
		r.expanded++
		r.closed[u] = true
		r.options.OnExpand(u, e.F)

		// 3) Done once the goal leaves the open set.
		if u == r.goal {
			return nil
		}

		// 4) Relax neighbours.
		r.relax(e)
	}

	return fmt.Errorf("%w: no route from cell %d to cell %d", ErrPathNotFound, r.start, r.goal)
}

// relax offers every open or unseen neighbour of e a route through e.
func (r *runner) relax(e Entry) {
	portals, err := r.mesh.Neighbors(e.Cell)
	if err != nil {
		panic(fmt.Sprintf("astar: expanded cell %d has no adjacency: %v", e.Cell, err))
	}
	for _, p := range portals {
		v := p.To
		if r.closed[v] {
			continue
		}
		g := e.G + p.Cost

		if !r.seen[v] {
			h := r.heuristic(v)
			ne := Entry{F: g + h, G: g, H: h, Cell: v, Parent: e.Cell}
			r.best[v] = ne
			r.seen[v] = true
			if err := r.open.Push(v, ne); err != nil {
				panic(fmt.Sprintf("astar: unseen cell %d already in heap: %v", v, err))
			}

			continue
		}

		// decrease-key on a strictly better route
		if g >= r.best[v].G {
			continue
		}
		ne := r.best[v]
		ne.G, ne.F, ne.Parent = g, g+ne.H, e.Cell
		r.best[v] = ne
		if err := r.open.Update(v, ne); err != nil {
			panic(fmt.Sprintf("astar: open cell %d missing from heap: %v", v, err))
		}
	}
}

func (r *runner) heuristic(c navmesh.CellID) float64 {
	p, err := r.mesh.Centroid(c)
	if err != nil {
		panic(fmt.Sprintf("astar: cell %d has no centroid: %v", c, err))
	}

	return geom.Distance(p, r.goalPt)
}

// reconstruct follows parents from the goal back to the start.
func (r *runner) reconstruct() []navmesh.CellID {
	var rev []navmesh.CellID
	for c := r.goal; c != -1; c = r.best[c].Parent {
		rev = append(rev, c)
	}
	out := make([]navmesh.CellID, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}

	return out
}
