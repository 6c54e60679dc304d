// Package meadowmap turns a 2D walkable area into a navigation mesh and finds
// routes across it.
//
// What is inside?
//
//	A small, deterministic, pure-Go toolkit that brings together:
//		• Geometry primitives: orientation tests, segment intersection, areas
//		• Rings over shared vertex buffers, with validation and winding control
//		• Convex decomposition by recursive splitting at reflex vertices
//		• Hole merging: bridge each hole into the outer boundary
//		• NavMesh: convex cells linked through shared diagonals
//		• A* path search over cells, backed by a decrease-key heap
//
// Packages:
//
//	geom/      : points (golang/geo r2), predicates with a configurable tolerance
//	polygon/   : VertexBuffer, Ring, Diagonal, Edge and the diagonal validator
//	convexify/ : convex decomposition of one simple ring
//	hole/      : merging holes into a weakly simple ring
//	navmesh/   : DecomposeWithHoles, Build, LocateCell and read accessors
//	pqueue/    : generic indexed min-heap with Update and Remove
//	astar/     : FindPath between two points of a NavMesh
//
// Quick ASCII example:
//
//	+-------------+
//	|   +---+     |
//	| S |###|   E |      S → cells around the pillar (###) → E
//	|   +---+     |
//	+-------------+
//
// Observability is hook based: convexify.WithOnSplit and astar.WithOnExpand
// report every split and every expanded cell. No package logs or keeps global
// state, and a built NavMesh may be queried from any number of goroutines.
package meadowmap
