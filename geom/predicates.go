package geom

import "math"

// Orientation returns the cross product of (y−x) and (z−y).
// A strictly positive value means z lies to the left of the directed line x→y.
func Orientation(x, y, z Point) float64 {
	return y.Sub(x).Cross(z.Sub(y))
}

// Left reports whether z is strictly left of the directed line x→y.
func Left(x, y, z Point) bool { return Orientation(x, y, z) > 0 }

// LeftOn reports whether z is left of, or on, the directed line x→y.
func LeftOn(x, y, z Point) bool { return Orientation(x, y, z) >= 0 }

// InCone reports whether the direction from v toward q falls inside the
// interior wedge at v of a counter-clockwise boundary prev → v → next.
//
// At a convex vertex q must be strictly left of (prev, v) and of (v, next).
// At a reflex vertex the wedge is the complement of the exterior one.
func InCone(prev, v, next, q Point) bool {
	if LeftOn(prev, v, next) {
		return Left(v, q, prev) && Left(q, v, next)
	}

	return !(LeftOn(v, q, next) && LeftOn(q, v, prev))
}

// Collinear reports whether x, y, z lie on one line within the tolerance of p.
func (p Predicates) Collinear(x, y, z Point) bool {
	xy := y.Sub(x)
	area := xy.Cross(z.Sub(y))
	// distance of z to line xy, relative to |xy|
	dist := area / (xy.Dot(xy) + p.Eps)

	return math.Abs(dist) < p.Eps
}

// Between reports whether z falls within the closed span of x and y.
// x, y and z are assumed collinear. The X axis discriminates unless x and y
// share the same X coordinate, in which case the Y axis is used.
func (p Predicates) Between(x, y, z Point) bool {
	if x.X != y.X {
		return math.Min(x.X, y.X) <= z.X && z.X <= math.Max(x.X, y.X)
	}

	return math.Min(x.Y, y.Y) <= z.Y && z.Y <= math.Max(x.Y, y.Y)
}

// SegmentsIntersect reports whether segments ab and cd intersect or touch.
//
// Collinear-degenerate configurations are resolved first, in order: c on ab,
// d on ab, a on cd, b on cd. The first endpoint found collinear decides the
// answer through Between. Otherwise the segments intersect iff c and d are on
// strictly opposite sides of ab and a and b are on strictly opposite sides of cd.
func (p Predicates) SegmentsIntersect(a, b, c, d Point) bool {
	switch {
	case p.Collinear(a, b, c):
		return p.Between(a, b, c)
	case p.Collinear(a, b, d):
		return p.Between(a, b, d)
	case p.Collinear(c, d, a):
		return p.Between(c, d, a)
	case p.Collinear(c, d, b):
		return p.Between(c, d, b)
	}

	return Left(a, b, c) != Left(a, b, d) && Left(c, d, a) != Left(c, d, b)
}

// Collinear calls Default.Collinear.
func Collinear(x, y, z Point) bool { return Default.Collinear(x, y, z) }

// Between calls Default.Between.
func Between(x, y, z Point) bool { return Default.Between(x, y, z) }

// SegmentsIntersect calls Default.SegmentsIntersect.
func SegmentsIntersect(a, b, c, d Point) bool { return Default.SegmentsIntersect(a, b, c, d) }
