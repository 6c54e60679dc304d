package navmesh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/hole"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/navmesh"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

func TestDecomposeWithHoles_Arrow(t *testing.T) {
	vb, ring := arrow()

	m, bridges, err := navmesh.DecomposeWithHoles(ring, vb, nil)
	require.NoError(t, err)
	assert.Empty(t, bridges)

	want := []polygon.Ring{{3, 2, 1}, {1, 0, 7, 4, 3}, {4, 7, 6}, {6, 5, 4}}
	cells := m.Cells()
	require.Len(t, cells, len(want))
	for i, c := range cells {
		assert.Equal(t, want[i], c.Ring)
		assert.True(t, geom.IsConvex(c.Ring.Points(vb)))
	}
	assert.Equal(t, []polygon.Edge{{U: 4, V: 7}, {U: 3, V: 1}, {U: 4, V: 6}}, m.Diagonals())
	assert.Equal(t, ring, m.Ring())

	// the cells form a chain 0-1-2-3
	for i := 0; i < 3; i++ {
		assert.True(t, m.Adjacent(navmesh.CellID(i), navmesh.CellID(i+1)), "%d-%d", i, i+1)
	}
	assert.False(t, m.Adjacent(0, 2))
	requireSymmetric(t, m)

	c1, err := m.Centroid(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, c1.X, 1e-12)
	assert.InDelta(t, 1.6, c1.Y, 1e-12)

	s := m.Stats()
	assert.Equal(t, 4, s.Cells)
	assert.Equal(t, 3, s.Diagonals)
	assert.Equal(t, 3, s.Portals)
	assert.InDelta(t, 9.0, s.Area, 1e-9)

	id, err := m.LocateCell(geom.Pt(0.5, 2))
	require.NoError(t, err)
	assert.Equal(t, navmesh.CellID(1), id)
	id, err = m.LocateCell(geom.Pt(3, 1.5))
	require.NoError(t, err)
	assert.Equal(t, navmesh.CellID(3), id)
	id, err = m.LocateCell(geom.Pt(2, 1))
	require.NoError(t, err)
	assert.Equal(t, navmesh.CellID(1), id, "shared vertex resolves to the lowest id")
	_, err = m.LocateCell(geom.Pt(2, 2.5))
	assert.ErrorIs(t, err, navmesh.ErrPointOutsideMesh, "notch between the arrow heads")

	// on the notch edge (2,4)-(1,3): boundary of cell 0
	id, err = m.LocateCell(geom.Pt(1.5, 3.5))
	require.NoError(t, err)
	assert.Equal(t, navmesh.CellID(0), id)
}

func TestDecomposeWithHoles_ClockwiseInputIsNormalised(t *testing.T) {
	vb, _ := arrow()
	listed := polygon.Ring{0, 1, 2, 3, 4, 5, 6, 7}
	require.Equal(t, polygon.CW, listed.Winding(vb))

	var splits int
	m, _, err := navmesh.DecomposeWithHoles(listed, vb, nil,
		navmesh.WithOnSplit(func(reflex, target, depth int) { splits++ }))
	require.NoError(t, err)

	assert.Equal(t, polygon.CCW, m.Ring().Winding(vb))
	assert.Equal(t, polygon.Ring{0, 1, 2, 3, 4, 5, 6, 7}, listed, "input must not be mutated")
	assert.Equal(t, splits, len(m.Diagonals()))
	assert.Equal(t, m.Len(), len(m.Diagonals())+1)
	assert.InDelta(t, 9.0, m.Stats().Area, 1e-9)
	for _, c := range m.Cells() {
		assert.True(t, geom.IsConvex(c.Ring.Points(vb)), "cell %v", c.Ring)
	}
	requireSymmetric(t, m)
}

func TestDecomposeWithHoles_ArrowWithQuadHole(t *testing.T) {
	vb, ring := arrow()
	holes := []hole.Input{{Vertices: quad(), Ring: polygon.Ring{2, 3, 0, 1}}}

	m, bridges, err := navmesh.DecomposeWithHoles(ring, vb, holes)
	require.NoError(t, err)
	require.Equal(t, []hole.Bridge{{Hole: 10, Outer: 4}}, bridges)

	s := m.Stats()
	assert.Equal(t, 12, s.Vertices)
	assert.Equal(t, 11, s.Cells)
	assert.Equal(t, 10, s.Diagonals)
	assert.Equal(t, 1, s.Bridges)
	assert.Equal(t, 11, s.Portals)
	assert.InDelta(t, 7.85, s.Area, 1e-9)
	assert.Equal(t, []polygon.Edge{{U: 10, V: 4}}, m.Bridges())

	p, ok := m.Portal(0, 1)
	require.True(t, ok)
	assert.True(t, p.Bridge)
	assert.Equal(t, polygon.Edge{U: 10, V: 4}, p.Edge)
	requireSymmetric(t, m)

	// points inside the hole belong to no cell
	_, err = m.LocateCell(geom.Pt(1, 1))
	assert.ErrorIs(t, err, navmesh.ErrPointOutsideMesh)
}

func TestDecomposeWithHoles_HoleWindingIsNormalised(t *testing.T) {
	vb, ring := arrow()
	ccwHole := polygon.Ring{1, 0, 3, 2}
	require.Equal(t, polygon.CCW, ccwHole.Winding(quad()))

	m, bridges, err := navmesh.DecomposeWithHoles(ring, vb, []hole.Input{{Vertices: quad(), Ring: ccwHole}})
	require.NoError(t, err)
	require.Len(t, bridges, 1)
	assert.InDelta(t, 7.85, m.Stats().Area, 1e-9)
	requireSymmetric(t, m)
}

func TestDecomposeWithHoles_Errors(t *testing.T) {
	vb, ring := arrow()

	cases := []struct {
		name  string
		outer polygon.Ring
		holes []hole.Input
		opts  []navmesh.Option
		want  error
	}{
		{"OuterTooShort", polygon.Ring{0, 1}, nil, nil, polygon.ErrInvalidInput},
		{"OuterOutOfRange", polygon.Ring{0, 1, 42}, nil, nil, polygon.ErrInvalidInput},
		{"BadHoleRing", ring, []hole.Input{{Vertices: quad(), Ring: polygon.Ring{0, 0, 1}}}, nil, polygon.ErrInvalidInput},
		{"HoleOutside", ring, []hole.Input{{
			Vertices: polygon.VertexBuffer{geom.Pt(5, 5), geom.Pt(6, 5), geom.Pt(6, 6), geom.Pt(5, 6)},
			Ring:     polygon.Ring{0, 3, 2, 1},
		}}, nil, hole.ErrHoleUnreachable},
		{"BadTolerance", ring, nil, []navmesh.Option{navmesh.WithTolerance(-1)}, navmesh.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _, err := navmesh.DecomposeWithHoles(tc.outer, vb, tc.holes, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
		})
	}
}

func TestDecomposeWithHoles_HoleBetweenCornerAndHole(t *testing.T) {
	vb := square(0, 0, 10)
	holes := []hole.Input{
		{Vertices: square(6, 6, 2), Ring: polygon.Ring{0, 3, 2, 1}},
		{Vertices: square(2, 3, 2), Ring: polygon.Ring{0, 3, 2, 1}},
	}

	m, bridges, err := navmesh.DecomposeWithHoles(polygon.Ring{0, 1, 2, 3}, vb, holes)
	require.NoError(t, err)
	assert.Equal(t, []hole.Bridge{{Hole: 8, Outer: 7}, {Hole: 4, Outer: 0}}, bridges)

	s := m.Stats()
	assert.Equal(t, 13, s.Cells)
	assert.Equal(t, 2, s.Bridges)
	assert.Equal(t, s.Diagonals+s.Bridges, s.Portals)
	assert.InDelta(t, 92.0, s.Area, 1e-9)
	for _, c := range m.Cells() {
		assert.True(t, geom.IsConvex(c.Ring.Points(m.Vertices())), "cell %v", c.Ring)
	}
	requireSymmetric(t, m)

	for _, p := range []geom.Point{geom.Pt(3, 4), geom.Pt(7, 7)} {
		_, err = m.LocateCell(p)
		assert.ErrorIs(t, err, navmesh.ErrPointOutsideMesh, "inside a hole at %v", p)
	}
}

func TestDecomposeWithHoles_PillarGrid(t *testing.T) {
	var holes []hole.Input
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			holes = append(holes, hole.Input{
				Vertices: square(1+3*float64(i), 1+3*float64(j), 1.5),
				Ring:     polygon.Ring{0, 3, 2, 1},
			})
		}
	}

	m, bridges, err := navmesh.DecomposeWithHoles(polygon.Ring{0, 1, 2, 3}, square(0, 0, 10), holes)
	require.NoError(t, err)
	assert.Len(t, bridges, 9)

	s := m.Stats()
	assert.Equal(t, 44, s.Cells)
	assert.Equal(t, 43, s.Diagonals)
	assert.Equal(t, 9, s.Bridges)
	assert.Equal(t, 52, s.Portals)
	assert.InDelta(t, 100-9*2.25, s.Area, 1e-9)
	requireSymmetric(t, m)
}
