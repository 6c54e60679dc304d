// Package convexify splits a simple (or weakly simple) counter-clockwise
// polygon into convex cells using a recursive divide-and-conquer on reflex
// vertices.
//
// Algorithm (Decompose):
//
//  1. Find the first reflex position c (FindReflex). None ⇒ the ring is
//     convex and is returned as the single cell, with no diagonals.
//  2. Scan every other position i in order and take the first b for which
//     (c, b) is an internal diagonal (polygon.Validator.IsInternalDiagonal).
//  3. No such b ⇒ ErrNoInternalDiagonal. A simple polygon always has one, so
//     this means malformed, non-simple or wrongly wound input. The region is
//     never returned un-split.
//  4. Split into c..b and b..c (both inclusive), recurse on both halves.
//  5. Diagonals of the halves are remapped by offset c and b (mod n), so every
//     returned Diagonal is a pair of positions in the ring given to Decompose.
//
// Complexity:
//
//   - O(n) reflex scan and up to O(n²) diagonal search per level,
//     O(n³) worst case for a fully reflex polygon.
//
// Weakly simple rings produced by the hole merger (one doubled bridge edge)
// are accepted: edge-freedom skips edges by vertex id, so the doubled
// endpoints never block a diagonal on their own.
//
// Options:
//
//	WithTolerance(eps)   – collinearity tolerance for the predicates.
//	WithOnSplit(fn)      – hook called for every accepted split.
package convexify
