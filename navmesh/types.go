package navmesh

import (
	"errors"
	"fmt"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/hole"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

// Sentinel errors for mesh construction and queries.
var (
	// ErrInconsistentMesh indicates a diagonal shared by other than two cells.
	ErrInconsistentMesh = errors.New("navmesh: inconsistent mesh")

	// ErrPointOutsideMesh indicates a point contained in no cell.
	ErrPointOutsideMesh = errors.New("navmesh: point outside mesh")

	// ErrCellNotFound indicates a CellID that does not exist in the mesh.
	ErrCellNotFound = errors.New("navmesh: cell not found")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("navmesh: invalid option supplied")
)

// CellID identifies a cell; ids are dense, starting at 0, in decomposition order.
type CellID int

// Cell is a convex region of the mesh.
type Cell struct {
	ID       CellID
	Ring     polygon.Ring
	Centroid geom.Point
	Area     float64
}

// Portal is one direction of a link between two adjacent cells.
type Portal struct {
	From, To CellID

	// Edge is the shared boundary edge, as vertex ids.
	Edge polygon.Edge

	// Mid is the midpoint of Edge.
	Mid geom.Point

	// Cost is the distance between the two cell centroids.
	Cost float64

	// Bridge is set when Edge is a hole bridge rather than a diagonal.
	Bridge bool
}

// Stats is a read-only summary of a mesh.
type Stats struct {
	Vertices  int
	Cells     int
	Diagonals int
	Bridges   int
	Portals   int // undirected links
	Area      float64
}

// Options configures Build and DecomposeWithHoles.
type Options struct {
	// Predicates used by validation, merging and decomposition.
	Predicates geom.Predicates

	// Bridges are linked like diagonals when set (Build only; DecomposeWithHoles
	// always links the bridges it creates).
	Bridges []hole.Bridge

	// OnSplit is forwarded to convexify.WithOnSplit.
	OnSplit func(reflex, target, depth int)

	err error
}

// Option configures mesh construction via functional arguments.
type Option func(*Options)

// DefaultOptions returns geom.Default predicates, no bridges and a no-op OnSplit.
func DefaultOptions() Options {
	return Options{
		Predicates: geom.Default,
		OnSplit:    func(int, int, int) {},
	}
}

// WithTolerance sets the collinearity tolerance.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		p, err := geom.NewPredicates(eps)
		if err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)

			return
		}
		o.Predicates = p
	}
}

// WithBridges links the given hole bridges in addition to the diagonals.
func WithBridges(bridges ...hole.Bridge) Option {
	return func(o *Options) {
		o.Bridges = append(o.Bridges, bridges...)
	}
}

// WithOnSplit registers a hook run for every split made by the decomposer.
func WithOnSplit(fn func(reflex, target, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSplit = fn
		}
	}
}
