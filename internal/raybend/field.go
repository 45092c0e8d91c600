// Package raybend propagates light rays through media whose index of
// refraction varies in space, bending each fixed-length step with a
// vector form of Snell's law derived from the local index gradient.
package raybend

import (
	"math"

	"github.com/gradientoptics/raybend/internal/geom"
)

// Real is the scalar type shared with the geom package.
type Real = geom.Real

// IndexField is the query surface the propagator needs from a medium:
// the index of refraction at a point (ok=false at or beyond the domain
// boundary) and an approximate spatial gradient of the index, with
// step as the central-difference half-step where a numeric estimate is
// used.
type IndexField interface {
	ValueAt(p geom.Vector) (Real, bool)
	GradientAt(p geom.Vector, step Real) geom.Vector
}

// Inside the engine a missing index is carried as a NaN sentinel so
// that "no value" is a first-class input to the step law rather than
// an error. The field interface stays explicit via its ok result.
func noIoR() Real { return math.NaN() }

func hasIoR(x Real) bool { return !math.IsNaN(x) }
