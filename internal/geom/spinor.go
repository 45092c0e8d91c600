package geom

import "math"

// Spinor is an even-graded element scalar+bivector. A unit spinor is a
// rotor; Rotate applies it to vectors by sandwich conjugation R v R~.
type Spinor struct {
	S Real
	B Bivector
}

func (r Spinor) Len2() Real { return r.S*r.S + r.B.Len2() }
func (r Spinor) Len() Real  { return math.Sqrt(r.Len2()) }

// Unit returns the spinor scaled to unit norm.
func (r Spinor) Unit() Spinor {
	l := r.Len()
	if l == 0 {
		return r
	}
	return Spinor{r.S / l, r.B.Scale(1 / l)}
}

// Reverse flips the bivector part; for a unit spinor this is the
// inverse rotation.
func (r Spinor) Reverse() Spinor { return Spinor{r.S, r.B.Neg()} }

// MulVec returns the grade-1 part of the one-sided product (S+B)v.
// When v lies in the plane of B the product has no trivector part and
// this rotates v by the full spinor angle within that plane.
func (r Spinor) MulVec(v Vector) Vector {
	return v.Mul(r.S).Add(v.Cross(r.B.Dual()))
}

// Rotate applies the rotor to v by sandwich conjugation R v R~; the
// rotation angle is twice the spinor half-angle.
func (r Spinor) Rotate(v Vector) Vector {
	b := r.B.Dual()
	t := v.Cross(b)
	return v.Add(t.Mul(2 * r.S)).Add(t.Cross(b).Mul(2))
}

// Exp maps a bivector to the rotor whose sandwich conjugation rotates
// by twice its magnitude within its plane: exp(B) = cos|B| + sin|B| B^.
func Exp(b Bivector) Spinor {
	a := b.Len()
	if a == 0 {
		return Spinor{S: 1}
	}
	return Spinor{math.Cos(a), b.Scale(math.Sin(a) / a)}
}

// Log inverts Exp for unit spinors.
func (r Spinor) Log() Bivector {
	bl := r.B.Len()
	if bl == 0 {
		return Bivector{}
	}
	return r.B.Scale(math.Atan2(bl, r.S) / bl)
}

// RotorBetween returns the unit rotor whose sandwich conjugation takes
// unit vector a to unit vector b. Degenerate for a == -b (any plane
// through the pair works); callers own that case.
func RotorBetween(a, b Vector) Spinor {
	return Spinor{1 + a.Dot(b), b.Wedge(a)}.Unit()
}
