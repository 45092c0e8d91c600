package raybend

import (
	"math"

	"github.com/gradientoptics/raybend/internal/geom"
)

// NextTangent computes the ray tangent after crossing the local index
// gradient: a differential, fully 3D form of Snell's law with no angle
// extraction. tIn must be unit length; grad may be zero (no bending).
// A NaN iorIn means the previous index query had no value and reports
// Stopped so the caller terminates the trace.
//
// The bivector B = (iorIn/iorOut) tIn^grad spans the plane of
// incidence with |B| = |grad| sin(theta_out); the refracted tangent is
// the unit gradient carried through the spinor (+-sqrt(|grad|^2-|B|^2), B).
func NextTangent(tIn geom.Vector, iorIn Real, grad geom.Vector, iorOut Real) (geom.Vector, DirChange) {
	if !hasIoR(iorIn) {
		return tIn, Stopped
	}
	gradLen2 := grad.Len2()
	if gradLen2 < math.SmallestNonzeroFloat64 {
		return tIn, Unaltered
	}

	B := tIn.Wedge(grad).Scale(iorIn / iorOut)
	radicand := gradLen2 - B.Len2()
	if radicand < 0 {
		// Past the critical angle: mirror through the interface plane
		// dual to the gradient.
		gn := grad.Norm()
		return tIn.Sub(gn.Mul(2 * tIn.Dot(gn))), Reflected
	}

	root := math.Sqrt(radicand)
	side := tIn.Dot(grad)
	switch {
	case side < 0:
		// Heading down the gradient, toward the thinner side.
		return geom.Spinor{S: -root, B: B}.Unit().MulVec(grad.Norm()), Diverged
	case side > 0:
		return geom.Spinor{S: root, B: B}.Unit().MulVec(grad.Norm()), Converged
	}
	return tIn, Unaltered
}
