// Package hole bridges polygonal holes into an outer boundary so that the
// result is a single weakly simple ring the decomposer can consume.
//
// Merge picks the hole ring's first vertex as anchor and scans the outer ring
// in order for the first position p such that the anchor lies inside the
// interior wedge at p, and segment (p, anchor) crosses no outer edge not
// incident to p and no hole edge not incident to anchor. The merged ring is
//
//	p, anchor, hole[1..], anchor, p, outer[after p..]
//
// so the bridge (anchor, p) is walked twice. Hole vertex ids are offset by the
// length of the outer vertex buffer, the two buffers are concatenated, and the
// bridge is reported as a vertex-id pair. The wedge test matters once a vertex
// carries a bridge: it then occurs twice in the ring and only one copy faces
// the new hole.
//
// Winding: both rings are validated (polygon.ErrInvalidInput) and normalised
// on copies before merging, the outer ring to counter-clockwise and the hole to
// clockwise. Callers may pass either winding. Reversal keeps ring[0] in place,
// so the anchor is always the first vertex the caller listed.
//
// Every hole vertex must lie strictly inside the outer ring. A hole that is
// not, or one for which no visible outer vertex exists, yields
// ErrHoleUnreachable together with the outer buffer and ring unchanged and a
// nil Bridge.
//
// MergeAll merges several holes one at a time, each pass operating on the
// previous pass's ring. Holes go in order of their leftmost vertex, and a
// bridge must also clear every hole not merged yet, so an early bridge can
// never cut through a later hole.
//
// Complexity: O(n_total × n_total) per hole, n_total counting the outer ring
// and every hole.
package hole
