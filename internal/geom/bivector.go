package geom

import "math"

// Bivector is an oriented plane element. Components are indexed by the
// basis planes e2^e3, e3^e1 and e1^e2, so the dual axis vector of
// Bivector{a, b, c} is simply Vector{a, b, c}.
type Bivector struct {
	YZ, ZX, XY Real
}

func (b Bivector) Add(c Bivector) Bivector { return Bivector{b.YZ + c.YZ, b.ZX + c.ZX, b.XY + c.XY} }
func (b Bivector) Scale(s Real) Bivector   { return Bivector{b.YZ * s, b.ZX * s, b.XY * s} }
func (b Bivector) Neg() Bivector           { return Bivector{-b.YZ, -b.ZX, -b.XY} }

// Dual maps the plane to its normal axis (right-hand rule).
func (b Bivector) Dual() Vector { return Vector{b.YZ, b.ZX, b.XY} }

func (b Bivector) Len2() Real { return b.YZ*b.YZ + b.ZX*b.ZX + b.XY*b.XY }
func (b Bivector) Len() Real  { return math.Sqrt(b.Len2()) }
