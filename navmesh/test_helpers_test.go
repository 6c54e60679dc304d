package navmesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/navmesh"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

// lineMesh returns three unit squares in a row, centred on (0,0), (1,0), (2,0).
func lineMesh(t *testing.T) *navmesh.NavMesh {
	t.Helper()
	vb, cells, diags := lineInput()
	m, err := navmesh.Build(vb, cells, diags)
	require.NoError(t, err)

	return m
}

func lineInput() (polygon.VertexBuffer, []polygon.Ring, []polygon.Edge) {
	vb := polygon.VertexBuffer{
		geom.Pt(-0.5, -0.5), geom.Pt(0.5, -0.5), geom.Pt(1.5, -0.5), geom.Pt(2.5, -0.5),
		geom.Pt(2.5, 0.5), geom.Pt(1.5, 0.5), geom.Pt(0.5, 0.5), geom.Pt(-0.5, 0.5),
	}
	cells := []polygon.Ring{{0, 1, 6, 7}, {1, 2, 5, 6}, {2, 3, 4, 5}}
	diags := []polygon.Edge{{U: 1, V: 6}, {U: 2, V: 5}}

	return vb, cells, diags
}

// arrow returns the arrow polygon with its counter-clockwise ring.
func arrow() (polygon.VertexBuffer, polygon.Ring) {
	vb := polygon.VertexBuffer{
		geom.Pt(0, 0), geom.Pt(0, 4), geom.Pt(2, 4), geom.Pt(1, 3),
		geom.Pt(2, 1), geom.Pt(3, 3), geom.Pt(4, 1), geom.Pt(1, 0),
	}

	return vb, polygon.Ring{7, 6, 5, 4, 3, 2, 1, 0}
}

func square(x0, y0, size float64) polygon.VertexBuffer {
	return polygon.VertexBuffer{
		geom.Pt(x0, y0), geom.Pt(x0+size, y0), geom.Pt(x0+size, y0+size), geom.Pt(x0, y0+size),
	}
}

func quad() polygon.VertexBuffer {
	return polygon.VertexBuffer{geom.Pt(0.5, 0.5), geom.Pt(0.2, 1.5), geom.Pt(0.4, 2), geom.Pt(1.8, 0.5)}
}

// requireSymmetric checks that every portal has a mirror with equal cost and edge.
func requireSymmetric(t *testing.T, m *navmesh.NavMesh) {
	t.Helper()
	for _, c := range m.Cells() {
		ps, err := m.Neighbors(c.ID)
		require.NoError(t, err)
		for _, p := range ps {
			back, ok := m.Portal(p.To, p.From)
			require.True(t, ok, "missing mirror of %d->%d", p.From, p.To)
			require.Equal(t, p.Edge, back.Edge)
			require.Equal(t, p.Cost, back.Cost)
			require.Equal(t, p.Bridge, back.Bridge)
		}
	}
}
