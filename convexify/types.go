package convexify

import (
	"errors"
	"fmt"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

// Sentinel errors returned by Decompose.
var (
	// ErrNoInternalDiagonal indicates a reflex vertex with no legal split.
	ErrNoInternalDiagonal = errors.New("convexify: no internal diagonal from reflex vertex")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("convexify: invalid option supplied")
)

// Result holds the cells and diagonals produced by Decompose.
type Result struct {
	// Cells are convex rings over the input vertex buffer.
	Cells []polygon.Ring

	// Diagonals are positions in the ring passed to Decompose.
	Diagonals []polygon.Diagonal
}

// Edges resolves every diagonal of res against r, which must be the ring
// that was passed to Decompose.
func (res *Result) Edges(r polygon.Ring) []polygon.Edge {
	out := make([]polygon.Edge, len(res.Diagonals))
	for i, d := range res.Diagonals {
		out[i] = d.Resolve(r)
	}

	return out
}

// Options configures Decompose.
type Options struct {
	// Predicates used for every geometric test.
	Predicates geom.Predicates

	// OnSplit is called after each accepted split with the reflex and target
	// positions (relative to the sub-ring being split) and the recursion depth.
	OnSplit func(reflex, target, depth int)

	err error
}

// Option configures Decompose via functional arguments.
type Option func(*Options)

// DefaultOptions returns geom.Default predicates and a no-op OnSplit.
func DefaultOptions() Options {
	return Options{
		Predicates: geom.Default,
		OnSplit:    func(int, int, int) {},
	}
}

// WithTolerance sets the collinearity tolerance. Non-positive values are
// surfaced as ErrOptionViolation by Decompose.
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

// WithPredicates uses p for every geometric test.
func WithPredicates(p geom.Predicates) Option {
	return func(o *Options) {
		if p.Eps <= 0 {
			o.err = fmt.Errorf("%w: predicates tolerance %v", ErrOptionViolation, p.Eps)

			return
		}
		o.Predicates = p
	}
}

// WithOnSplit registers a hook run for every accepted split.
func WithOnSplit(fn func(reflex, target, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSplit = fn
		}
	}
}
