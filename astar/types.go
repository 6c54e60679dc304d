package astar

import (
	"errors"
	"fmt"

	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/geom"
	"github.com/liubai01/DiveRecastNav-Lab1-MeadowMapping/navmesh"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilMesh indicates a nil *navmesh.NavMesh.
	ErrNilMesh = errors.New("astar: mesh is nil")

	// ErrPathNotFound indicates the open set ran empty before reaching the goal.
	ErrPathNotFound = errors.New("astar: path not found")

	// ErrExpansionLimit indicates the search stopped at Options.MaxExpansions.
	// Returned errors wrap ErrPathNotFound as well.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Entry is the search state of one cell.
type Entry struct {
	F      float64 // G + H
	G      float64 // cost from the start cell
	H      float64 // estimate to the goal cell
	Cell   navmesh.CellID
	Parent navmesh.CellID // -1 for the start cell
}

// Path is the result of a successful search.
type Path struct {
	// Cells from the start cell to the goal cell, both included.
	Cells []navmesh.CellID

	// Cost is the sum of centroid-to-centroid distances along Cells.
	Cost float64

	// Waypoints are the start point, the midpoint of every crossed portal,
	// and the end point.
	Waypoints []geom.Point

	// Expanded is the number of cells taken off the open set.
	Expanded int
}

// Options configures FindPath.
type Options struct {
	// OnExpand is called with each cell taken off the open set and its F.
	OnExpand func(id navmesh.CellID, f float64)

	// MaxExpansions bounds the number of expanded cells; 0 means unbounded.
	MaxExpansions int

	err error
}

// Option configures FindPath via functional arguments.
type Option func(*Options)

// DefaultOptions returns a no-op OnExpand and no expansion limit.
func DefaultOptions() Options {
	return Options{
		OnExpand:      func(navmesh.CellID, float64) {},
		MaxExpansions: 0,
	}
}

// WithOnExpand registers a hook run for every expanded cell.
func WithOnExpand(fn func(id navmesh.CellID, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions stops the search after n expansions. n must be ≥ 0.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions must be non-negative, got %d", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}
