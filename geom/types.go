package geom

import (
	"errors"
	"math"

	"github.com/golang/geo/r2"
)

// DefaultTolerance is the collinearity tolerance used by Default.
const DefaultTolerance = 1e-6

// ErrBadTolerance indicates a non-positive, infinite or NaN tolerance.
var ErrBadTolerance = errors.New("geom: tolerance must be a positive finite number")

// Point is a planar point. It is an alias so r2 methods are available.
type Point = r2.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Predicates evaluates geometric predicates with a fixed collinearity tolerance.
// The zero value is not usable; use Default or NewPredicates.
type Predicates struct {
	// Eps is the collinearity threshold and the zero-length guard.
	Eps float64
}

// Default is the Predicates instance behind the package-level functions.
var Default = Predicates{Eps: DefaultTolerance}

// NewPredicates returns Predicates using eps as collinearity tolerance.
func NewPredicates(eps float64) (Predicates, error) {
	if !(eps > 0) || math.IsInf(eps, 0) {
		return Predicates{}, ErrBadTolerance
	}

	return Predicates{Eps: eps}, nil
}
