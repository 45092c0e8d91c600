// Package geom is the small geometric algebra kernel used by the ray
// propagation engine: 3D vectors, bivectors and spinors (rotors).
package geom

import "math"

// Real is the scalar type used across the engine.
type Real = float64

// Vector is a point or direction in 3D space.
type Vector struct {
	X, Y, Z Real
}

func (a Vector) Add(b Vector) Vector { return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vector) Sub(b Vector) Vector { return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (v Vector) Mul(s Real) Vector   { return Vector{v.X * s, v.Y * s, v.Z * s} }
func (v Vector) Neg() Vector         { return Vector{-v.X, -v.Y, -v.Z} }

// Dot returns the scalar part of the geometric product ab.
func (a Vector) Dot(b Vector) Real { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Cross returns the vector cross product, the dual of a.Wedge(b).
func (a Vector) Cross(b Vector) Vector {
	return Vector{a.Y*b.Z - a.Z*b.Y, a.Z*b.X - a.X*b.Z, a.X*b.Y - a.Y*b.X}
}

// Wedge returns the bivector part of the geometric product ab: the
// oriented plane spanned by a and b, with area |a||b|sin(angle).
func (a Vector) Wedge(b Vector) Bivector {
	return Bivector{YZ: a.Y*b.Z - a.Z*b.Y, ZX: a.Z*b.X - a.X*b.Z, XY: a.X*b.Y - a.Y*b.X}
}

func (v Vector) Len2() Real { return v.Dot(v) }

// Len returns the Euclidean length of the vector.
func (v Vector) Len() Real { return math.Sqrt(v.Dot(v)) }

// Norm returns a unit-length version of the vector.
func (v Vector) Norm() Vector {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vector{v.X / l, v.Y / l, v.Z / l}
}

func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }
