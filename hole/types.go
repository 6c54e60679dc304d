package hole

import (
	"errors"
	"fmt"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

// Sentinel errors returned by Merge and MergeAll.
var (
	// ErrHoleUnreachable indicates no outer vertex can see the hole anchor,
	// or the hole is not strictly inside the outer boundary.
	ErrHoleUnreachable = errors.New("hole: no visible outer vertex for hole")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("hole: invalid option supplied")
)

// Bridge is the seam joining a hole to the outer boundary, as vertex ids of
// the merged buffer: Hole is the hole anchor, Outer the visible outer vertex.
type Bridge struct {
	Hole, Outer int
}

// Edge returns b as a polygon.Edge from the hole anchor to the outer vertex.
func (b Bridge) Edge() polygon.Edge { return polygon.Edge{U: b.Hole, V: b.Outer} }

// String implements fmt.Stringer.
func (b Bridge) String() string { return fmt.Sprintf("%d->%d", b.Hole, b.Outer) }

// Input is one hole: a ring over its own vertex buffer.
type Input struct {
	Vertices polygon.VertexBuffer
	Ring     polygon.Ring
}

// Result is the outcome of a merge.
type Result struct {
	// Vertices is the concatenated buffer (outer first, then hole).
	Vertices polygon.VertexBuffer

	// Ring is the merged weakly simple ring.
	Ring polygon.Ring

	// Bridge is nil when the merge failed.
	Bridge *Bridge
}

// Options configures Merge and MergeAll.
type Options struct {
	Predicates geom.Predicates

	err error
}

// Option configures the merger via functional arguments.
type Option func(*Options)

// DefaultOptions uses geom.Default.
func DefaultOptions() Options {
	return Options{Predicates: geom.Default}
}

// WithTolerance sets the collinearity tolerance used by the visibility tests.
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

// WithPredicates uses p for the visibility tests.
func WithPredicates(p geom.Predicates) Option {
	return func(o *Options) {
		if p.Eps <= 0 {
			o.err = fmt.Errorf("%w: predicates tolerance %v", ErrOptionViolation, p.Eps)

			return
		}
		o.Predicates = p
	}
}
