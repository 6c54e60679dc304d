package astar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/astar"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/hole"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/navmesh"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/polygon"
)

// lineMesh returns three unit squares in a row, centred on (0,0), (1,0), (2,0).
// Without links the cells are mutually unreachable.
func lineMesh(t testing.TB, linked bool) *navmesh.NavMesh {
	t.Helper()
	vb := polygon.VertexBuffer{
		geom.Pt(-0.5, -0.5), geom.Pt(0.5, -0.5), geom.Pt(1.5, -0.5), geom.Pt(2.5, -0.5),
		geom.Pt(2.5, 0.5), geom.Pt(1.5, 0.5), geom.Pt(0.5, 0.5), geom.Pt(-0.5, 0.5),
	}
	cells := []polygon.Ring{{0, 1, 6, 7}, {1, 2, 5, 6}, {2, 3, 4, 5}}
	var diags []polygon.Edge
	if linked {
		diags = []polygon.Edge{{U: 1, V: 6}, {U: 2, V: 5}}
	}
	m, err := navmesh.Build(vb, cells, diags)
	require.NoError(t, err)

	return m
}

func arrowMesh(t testing.TB) *navmesh.NavMesh {
	t.Helper()
	vb := polygon.VertexBuffer{
		geom.Pt(0, 0), geom.Pt(0, 4), geom.Pt(2, 4), geom.Pt(1, 3),
		geom.Pt(2, 1), geom.Pt(3, 3), geom.Pt(4, 1), geom.Pt(1, 0),
	}
	m, _, err := navmesh.DecomposeWithHoles(polygon.Ring{7, 6, 5, 4, 3, 2, 1, 0}, vb, nil)
	require.NoError(t, err)

	return m
}

func sq(x0, y0, s float64) polygon.VertexBuffer {
	return polygon.VertexBuffer{geom.Pt(x0, y0), geom.Pt(x0+s, y0), geom.Pt(x0+s, y0+s), geom.Pt(x0, y0+s)}
}

// roomMesh is a 10x10 room with two square pillars.
func roomMesh(t testing.TB) *navmesh.NavMesh {
	t.Helper()
	holes := []hole.Input{
		{Vertices: sq(2, 2, 2), Ring: polygon.Ring{0, 3, 2, 1}},
		{Vertices: sq(6, 6, 2), Ring: polygon.Ring{0, 3, 2, 1}},
	}
	m, _, err := navmesh.DecomposeWithHoles(polygon.Ring{0, 1, 2, 3}, sq(0, 0, 10), holes)
	require.NoError(t, err)

	return m
}

// pillarGridMesh is a 10x10 room with a 3x3 grid of 1.5x1.5 pillars.
func pillarGridMesh(t testing.TB) *navmesh.NavMesh {
	t.Helper()
	var holes []hole.Input
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			holes = append(holes, hole.Input{
				Vertices: sq(1+3*float64(i), 1+3*float64(j), 1.5),
				Ring:     polygon.Ring{0, 3, 2, 1},
			})
		}
	}
	m, _, err := navmesh.DecomposeWithHoles(polygon.Ring{0, 1, 2, 3}, sq(0, 0, 10), holes)
	require.NoError(t, err)

	return m
}

// dijkstraCost is a reference shortest-path cost over the portal graph.
func dijkstraCost(m *navmesh.NavMesh, from, to navmesh.CellID) float64 {
	n := m.Len()
	dist := make([]float64, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[from] = 0
	for {
		u := navmesh.CellID(-1)
		for i := 0; i < n; i++ {
			if !done[i] && (u < 0 || dist[i] < dist[u]) {
				u = navmesh.CellID(i)
			}
		}
		if u < 0 || math.IsInf(dist[u], 1) {
			return math.Inf(1)
		}
		if u == to {
			return dist[u]
		}
		done[u] = true
		ps, _ := m.Neighbors(u)
		for _, p := range ps {
			if d := dist[u] + p.Cost; d < dist[p.To] {
				dist[p.To] = d
			}
		}
	}
}

// requireValidPath checks that path starts and ends in the right cells, walks
// only through portals, and that Cost matches the portal costs.
func requireValidPath(t *testing.T, m *navmesh.NavMesh, start, end geom.Point, path *astar.Path) {
	t.Helper()
	cells, waypoints := path.Cells, path.Waypoints
	require.NotEmpty(t, cells)
	require.True(t, m.Contains(cells[0], start))
	require.True(t, m.Contains(cells[len(cells)-1], end))
	require.Len(t, waypoints, len(cells)+1)
	require.Equal(t, start, waypoints[0])
	require.Equal(t, end, waypoints[len(waypoints)-1])

	var sum float64
	for i := 1; i < len(cells); i++ {
		p, ok := m.Portal(cells[i-1], cells[i])
		require.True(t, ok, "cells %d and %d are not adjacent", cells[i-1], cells[i])
		require.Equal(t, p.Mid, waypoints[i])
		sum += p.Cost
	}
	require.InDelta(t, sum, path.Cost, 1e-9)
}
