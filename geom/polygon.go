// File: polygon.go
// Role: Whole-polygon measures over an ordered point list (closed implicitly).
// Determinism:
//   - Pure functions, no allocation except Bounds' rect accumulation.

package geom

import "github.com/golang/geo/r2"

// SignedArea returns the shoelace area of the closed polygon pts.
// Counter-clockwise polygons have positive area.
// Complexity: O(n).
func SignedArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var twice float64
	for i := 0; i < n; i++ {
		twice += pts[i].Cross(pts[(i+1)%n])
	}

	return twice / 2
}

// Area returns the unsigned area of pts.
func Area(pts []Point) float64 {
	a := SignedArea(pts)
	if a < 0 {
		return -a
	}

	return a
}

// Centroid returns the mean of the vertices of pts.
// The zero Point is returned for an empty slice.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum Point
	for _, q := range pts {
		sum = sum.Add(q)
	}

	return sum.Mul(1 / float64(len(pts)))
}

// IsConvex reports whether every vertex of pts turns left or goes straight,
// i.e. the polygon is convex under counter-clockwise winding.
// Complexity: O(n).
func IsConvex(pts []Point) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		if !LeftOn(pts[(i+n-1)%n], pts[i], pts[(i+1)%n]) {
			return false
		}
	}

	return true
}

// Bounds returns the axis-aligned bounding rectangle of pts.
func Bounds(pts []Point) r2.Rect {
	return r2.RectFromPoints(pts...)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 { return a.Sub(b).Norm() }

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point { return a.Add(b).Mul(0.5) }
