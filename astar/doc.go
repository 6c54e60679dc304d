// Package astar finds a path between two points across the cells of a
// navmesh.NavMesh using A* over the cell adjacency graph.
//
// Overview:
//
//   - The start and end points are located in their cells with
//     NavMesh.LocateCell.
//   - Every cell is a search node. Moving between adjacent cells costs the
//     Euclidean distance between their centroids (navmesh.Portal.Cost), and the
//     heuristic is the straight-line distance from a cell centroid to the goal
//     centroid. The heuristic is consistent, so a closed cell is never reopened.
//   - Open cells live in a pqueue.Heap keyed by cell id. When a cheaper route to
//     an open cell is found its entry is updated in place (decrease-key), so the
//     heap never holds stale duplicates.
//   - The result lists the cells from start to goal, the accumulated cost, and
//     waypoints: the start point, the midpoint of every crossed portal, and the
//     end point.
//
// Complexity:
//
//   - Time:  O((C + P) log C) for C cells and P portals.
//   - Space: O(C)
//
// Options:
//
//   - WithOnExpand(fn):     hook called for every cell taken off the open set.
//   - WithMaxExpansions(n): give up after n expansions (0 means unbounded).
//
// Errors (sentinel):
//
//   - ErrNilMesh:          mesh is nil.
//   - ErrPathNotFound:     start and end are in disconnected regions.
//   - ErrExpansionLimit:   MaxExpansions reached; also matches ErrPathNotFound.
//   - ErrOptionViolation:  an Option received an invalid value.
//   - navmesh.ErrPointOutsideMesh: start or end lies in no cell.
//
// Concurrency: FindPath keeps all search state local, so any number of
// goroutines may query the same mesh at once.
package astar
