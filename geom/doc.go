// Package geom provides the planar predicates every other meadowmap package is
// built on: orientation, left/left-on tests, tolerance-based collinearity,
// betweenness and segment intersection, plus a handful of polygon helpers
// (signed area, vertex centroid, convexity, bounds).
//
// Points are github.com/golang/geo/r2 values, re-exported as geom.Point, so
// callers can use the r2 vector methods (Add, Sub, Mul, Norm, Cross) directly.
//
// Precision model:
//
//   - Orientation, Left and LeftOn are exact sign tests on the float64 cross
//     product; no tolerance is applied.
//   - Collinear is tolerance-based: the cross product of (y−x, z−y) divided by
//     |xy|² + Eps must be below Eps in magnitude. The Eps in the denominator only
//     guards against a zero-length xy.
//   - The tolerance is relative to |xy|, not scale-invariant; callers working
//     with very large or very small coordinates should normalise their input or
//     construct their own Predicates via NewPredicates.
//
// Predicates:
//
//	Orientation(x, y, z) float64   // > 0: z left of x→y
//	Left(x, y, z) bool             // strictly left
//	LeftOn(x, y, z) bool           // left or collinear
//	Collinear(x, y, z) bool        // within tolerance
//	Between(x, y, z) bool          // z inside [x, y] on the discriminating axis
//	SegmentsIntersect(a, b, c, d)  // ab and cd intersect or touch
//
// The package-level functions use Default (Eps = 1e-6). Every function is pure
// and safe for concurrent use.
package geom
