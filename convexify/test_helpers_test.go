package convexify_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/convexify"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

// arrowListed returns the arrow polygon in its listed (clockwise) vertex
// order together with the counter-clockwise ring over it.
func arrowListed() (polygon.VertexBuffer, polygon.Ring) {
	vb := polygon.VertexBuffer{
		geom.Pt(0, 0), geom.Pt(0, 4), geom.Pt(2, 4), geom.Pt(1, 3),
		geom.Pt(2, 1), geom.Pt(3, 3), geom.Pt(4, 1), geom.Pt(1, 0),
	}

	return vb, polygon.Ring{7, 6, 5, 4, 3, 2, 1, 0}
}

func identity(n int) polygon.Ring {
	r := make(polygon.Ring, n)
	for i := range r {
		r[i] = i
	}

	return r
}

// star builds a CCW star with n vertices alternating between radii outer and inner.
func star(n int, outer, inner float64) polygon.VertexBuffer {
	vb := make(polygon.VertexBuffer, n)
	for i := 0; i < n; i++ {
		rad := outer
		if i%2 == 1 {
			rad = inner
		}
		a := 2 * math.Pi * float64(i) / float64(n)
		vb[i] = geom.Pt(rad*math.Cos(a), rad*math.Sin(a))
	}

	return vb
}

// comb builds a CCW comb with k teeth of height 3 standing on a spine of height 1.
func comb(k int) polygon.VertexBuffer {
	vb := polygon.VertexBuffer{geom.Pt(0, 0), geom.Pt(float64(2*k-1), 0)}
	for i := k - 1; i >= 0; i-- {
		x0, x1 := float64(2*i), float64(2*i+1)
		vb = append(vb, geom.Pt(x1, 3), geom.Pt(x0, 3))
		if i > 0 {
			vb = append(vb, geom.Pt(x0, 1), geom.Pt(x0-1, 1))
		}
	}

	return vb
}

// assertDecomposition checks the area, convexity, size and non-crossing
// properties of res against the polygon (vb, r).
func assertDecomposition(t *testing.T, vb polygon.VertexBuffer, r polygon.Ring, res *convexify.Result) {
	t.Helper()

	var sum float64
	for _, c := range res.Cells {
		require.GreaterOrEqual(t, len(c), 3, "cell %v", c)
		assert.True(t, geom.IsConvex(c.Points(vb)), "cell %v is not convex", c)
		sum += c.Area(vb)
	}
	assert.InEpsilon(t, r.Area(vb), sum, 1e-9, "area must be preserved")

	edges := res.Edges(r)
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			a, b := edges[i], edges[j]
			if a.U == b.U || a.U == b.V || a.V == b.U || a.V == b.V {
				continue
			}
			assert.False(t, geom.SegmentsIntersect(vb[a.U], vb[a.V], vb[b.U], vb[b.V]),
				"diagonals %v and %v cross", a, b)
		}
	}
	assert.Len(t, res.Cells, len(res.Diagonals)+1, "each diagonal adds exactly one cell")
}
