package convexify

import (
	"fmt"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

// FindReflex returns the first position of r whose vertex turns clockwise
// (LeftOn(prev, cur, next) is false), or -1 when r is convex.
// Complexity: O(n).
func FindReflex(vb polygon.VertexBuffer, r polygon.Ring) int {
	for i := range r {
		if !geom.LeftOn(vb[r[r.Prev(i)]], vb[r[i]], vb[r[r.Next(i)]]) {
			return i
		}
	}

	return -1
}

// Decompose splits the counter-clockwise ring r over vb into convex cells.
//
// The returned diagonals are positions in r. Decompose validates r but does
// not re-orient it; navmesh.DecomposeWithHoles normalises raw input first.
//
// Errors:
//   - ErrOptionViolation for an invalid option.
//   - polygon.ErrInvalidInput for a malformed ring.
//   - ErrNoInternalDiagonal, wrapped with the offending sub-ring and position.
func Decompose(vb polygon.VertexBuffer, r polygon.Ring, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := r.Validate(vb, cfg.Predicates); err != nil {
		return nil, err
	}

	d := &decomposer{
		vb:      vb,
		val:     polygon.NewValidator(vb, cfg.Predicates),
		onSplit: cfg.OnSplit,
	}
	cells, diags, err := d.split(r, 0)
	if err != nil {
		return nil, err
	}

	return &Result{Cells: cells, Diagonals: diags}, nil
}

// decomposer carries the read-only state shared by every recursion level.
type decomposer struct {
	vb      polygon.VertexBuffer
	val     *polygon.Validator
	onSplit func(reflex, target, depth int)
}

// split decomposes r and returns diagonals relative to r.
func (d *decomposer) split(r polygon.Ring, depth int) ([]polygon.Ring, []polygon.Diagonal, error) {
	n := len(r)

	// 1) Base case: no reflex vertex.
	c := FindReflex(d.vb, r)
	if c < 0 {
		return []polygon.Ring{r}, nil, nil
	}

	// 2) First legal partner for the reflex vertex.
	b := -1
	for i := 0; i < n; i++ {
		if i == c || r[i] == r[c] {
			continue
		}
		if d.val.IsInternalDiagonal(r, c, i) {
			b = i
			break
		}
	}
	if b < 0 {
		return nil, nil, fmt.Errorf("%w: reflex position %d (vertex %d) in ring %v at depth %d",
			ErrNoInternalDiagonal, c, r[c], r, depth)
	}
	d.onSplit(c, b, depth)

	// 3) Walk c→b and b→c, both inclusive.
	first := walk(r, c, b)
	second := walk(r, b, c)
	if len(first) < 3 || len(second) < 3 {
		panic(fmt.Sprintf("convexify: split <%d,%d> of ring %v produced a sub-ring shorter than 3", c, b, r))
	}

	// 4) Recurse.
	cells1, diags1, err := d.split(first, depth+1)
	if err != nil {
		return nil, nil, err
	}
	cells2, diags2, err := d.split(second, depth+1)
	if err != nil {
		return nil, nil, err
	}

	// 5) Merge, remapping sub-ring positions back onto r.
	diags := make([]polygon.Diagonal, 0, 1+len(diags1)+len(diags2))
	diags = append(diags, polygon.Diagonal{A: c, B: b})
	for _, dg := range diags1 {
		diags = append(diags, polygon.Diagonal{A: (dg.A + c) % n, B: (dg.B + c) % n})
	}
	for _, dg := range diags2 {
		diags = append(diags, polygon.Diagonal{A: (dg.A + b) % n, B: (dg.B + b) % n})
	}

	cells := make([]polygon.Ring, 0, len(cells1)+len(cells2))
	cells = append(cells, cells1...)
	cells = append(cells, cells2...)

	return cells, diags, nil
}

// walk returns the vertex ids of r from position from to position to,
// both inclusive, moving forward.
func walk(r polygon.Ring, from, to int) polygon.Ring {
	out := make(polygon.Ring, 0, len(r))
	for i := from; i != to; i = r.Next(i) {
		out = append(out, r[i])
	}

	return append(out, r[to])
}
