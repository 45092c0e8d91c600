package raybend

import (
	"errors"

	"github.com/gradientoptics/raybend/internal/geom"
)

// Start is the immutable initial condition of a trace. Tangent is
// always unit length; build values through NewStart.
type Start struct {
	Tangent geom.Vector
	Point   geom.Vector
}

// NewStart normalizes any nonzero direction into a unit tangent.
func NewStart(direction, point geom.Vector) (Start, error) {
	if direction.IsZero() {
		return Start{}, errors.New("start direction must be nonzero")
	}
	return Start{Tangent: direction.Norm(), Point: point}, nil
}
