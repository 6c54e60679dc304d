// Package polygon defines the index-based polygon model shared by the
// decomposer, the hole merger and the navmesh builder, together with the
// diagonal validator used to pick legal splits.
//
// Model:
//
//   - VertexBuffer: ordered points; vertices are referenced only by their
//     index in the buffer and never duplicated. The buffer is read-only while a
//     polygon is processed and is only ever extended by concatenation.
//   - Ring: ordered vertex ids describing one closed boundary. Consecutive ids
//     (including last→first) must differ.
//   - Diagonal: a pair of positions within a specific Ring; it must be resolved
//     against that ring (Diagonal.Resolve) to obtain vertex ids.
//   - Edge: a pair of vertex ids; Key returns its unordered form.
//
// Winding convention: outer boundaries are counter-clockwise, holes are
// clockwise. Ring.Oriented normalises a ring to a wanted winding.
//
// Diagonal validation (Validator):
//
//	EdgeFree(r, ia, ib)            // segment crosses no edge not incident to ia/ib
//	InCone(r, ia, ib)              // ib lies inside the interior wedge at ia
//	IsInternalDiagonal(r, ia, ib)  // InCone both ways and EdgeFree
//
// The triple test is the classical sufficient condition for a diagonal of a
// simple polygon to lie in its interior. EdgeFree is O(len(r)).
//
// Errors:
//
//	ErrInvalidInput – malformed ring (fewer than 3 vertices, id out of range,
//	                  repeated consecutive id, zero-length edge, zero area).
package polygon
