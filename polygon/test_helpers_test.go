package polygon_test

import (
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

// arrowCCW is the arrow-shaped test polygon with its vertices stored in
// counter-clockwise order, so the identity ring is CCW.
func arrowCCW() polygon.VertexBuffer {
	return polygon.VertexBuffer{
		geom.Pt(1, 0), geom.Pt(4, 1), geom.Pt(3, 3), geom.Pt(2, 1),
		geom.Pt(1, 3), geom.Pt(2, 4), geom.Pt(0, 4), geom.Pt(0, 0),
	}
}

func identity(n int) polygon.Ring {
	r := make(polygon.Ring, n)
	for i := range r {
		r[i] = i
	}

	return r
}
