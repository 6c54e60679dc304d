// Package navmesh turns convex cells and the diagonals that separate them into
// an immutable adjacency graph, and provides the end-to-end entry point that
// goes from a raw boundary with holes to that graph.
//
// Pipeline (DecomposeWithHoles):
//
//	validate rings → normalise winding (outer CCW, holes CW)
//	  → hole.MergeAll → convexify.Decompose → resolve diagonals → Build
//
// Build links two cells iff they carry the same unordered vertex-id pair as a
// boundary edge and that pair is a diagonal (or, with WithBridges, a hole
// bridge). Every diagonal must map to exactly two cells; anything else is a
// decomposition inconsistency reported as ErrInconsistentMesh.
//
// Each link is a Portal carrying the shared edge, its midpoint and the cost of
// crossing it: the Euclidean distance between the two cell centroids (vertex
// means). The distance is never squared, so costs obey the triangle
// inequality and remain usable by an A* heuristic.
//
// Concurrency:
//
//   - A NavMesh is immutable once built. Accessors return copies, so any
//     number of goroutines may query one mesh without synchronisation.
//
// Point location:
//
//   - LocateCell returns the first cell (lowest CellID) for which the point is
//     left of or on every boundary edge. A point on an edge shared by two cells
//     therefore resolves to the lower id; callers must not rely on which one.
//
// Errors:
//
//	ErrInconsistentMesh  – a diagonal or bridge maps to a number of cells other than two.
//	ErrPointOutsideMesh  – no cell contains the point.
//	ErrCellNotFound      – a CellID outside [0, Len()).
//	ErrOptionViolation   – invalid Option.
//	polygon.ErrInvalidInput, convexify.ErrNoInternalDiagonal and
//	hole.ErrHoleUnreachable are passed through from DecomposeWithHoles.
package navmesh
