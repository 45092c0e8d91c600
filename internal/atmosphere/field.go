package atmosphere

import (
	"math"

	"github.com/gradientoptics/raybend/internal/geom"
	"github.com/gradientoptics/raybend/internal/raybend"
)

// Field is a flat-earth layered index field over a Profile: the Z
// coordinate is height above the station, plus Base. Outside the
// profile's height range the field has no value, which is what stops
// a trace at the top or bottom of the table.
type Field struct {
	Profile *Profile
	Base    Real // height of the trace origin's Z=0 plane, in meters
}

var _ raybend.IndexField = Field{}

func (f Field) height(p geom.Vector) Real { return f.Base + p.Z }

func (f Field) ValueAt(p geom.Vector) (Real, bool) {
	h := f.height(p)
	if h < f.Profile.MinHeight() || h > f.Profile.MaxHeight() {
		return math.NaN(), false
	}
	return f.Profile.IoR(h), true
}

// GradientAt is analytic in direction (vertical) with a numeric height
// derivative; step is the central-difference half-step.
func (f Field) GradientAt(p geom.Vector, step Real) geom.Vector {
	h := f.height(p)
	if h < f.Profile.MinHeight() || h > f.Profile.MaxHeight() {
		return geom.Vector{}
	}
	return geom.Vector{Z: f.Profile.DnDh(h, step)}
}
