package raybend

import "github.com/gradientoptics/raybend/internal/geom"

// Box is an axis-aligned clip volume; outside it a Stack has no value.
type Box struct {
	Min, Max geom.Vector
}

func (b Box) Contains(p geom.Vector) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Medium is one region of a Stack with its own index profile.
type Medium interface {
	Contains(p geom.Vector) bool
	IoRAt(p geom.Vector) Real
}

// Slab is a uniform layer between the Lo and Hi offsets along a unit
// normal.
type Slab struct {
	Normal geom.Vector
	Lo, Hi Real
	IoR    Real
}

func (s Slab) Contains(p geom.Vector) bool {
	d := p.Dot(s.Normal)
	return d >= s.Lo && d <= s.Hi
}

func (s Slab) IoRAt(geom.Vector) Real { return s.IoR }

// Lens is a spherical radial-gradient region: CenterIoR at the center
// falling linearly to EdgeIoR at Radius.
type Lens struct {
	Center    geom.Vector
	Radius    Real
	CenterIoR Real
	EdgeIoR   Real
}

func (l Lens) Contains(p geom.Vector) bool { return p.Sub(l.Center).Len() <= l.Radius }

func (l Lens) IoRAt(p geom.Vector) Real {
	u := p.Sub(l.Center).Len() / l.Radius
	return l.CenterIoR + (l.EdgeIoR-l.CenterIoR)*u
}

// Cylinder is an axial region whose index falls off quadratically with
// radial distance from the axis (a GRIN rod).
type Cylinder struct {
	Point   geom.Vector // a point on the axis
	Axis    geom.Vector // unit
	Radius  Real
	AxisIoR Real
	Falloff Real // index drop from axis to Radius
}

func (c Cylinder) radial(p geom.Vector) Real {
	d := p.Sub(c.Point)
	return d.Sub(c.Axis.Mul(d.Dot(c.Axis))).Len()
}

func (c Cylinder) Contains(p geom.Vector) bool { return c.radial(p) <= c.Radius }

func (c Cylinder) IoRAt(p geom.Vector) Real {
	u := c.radial(p) / c.Radius
	return c.AxisIoR - c.Falloff*u*u
}

// Stack composes media into an IndexField over a clipped domain: the
// first medium containing the query point wins, otherwise the
// background index applies.
type Stack struct {
	Domain     Box
	Media      []Medium
	Background Real
}

func (s Stack) ValueAt(p geom.Vector) (Real, bool) {
	if !s.Domain.Contains(p) {
		return noIoR(), false
	}
	for _, m := range s.Media {
		if m.Contains(p) {
			return m.IoRAt(p), true
		}
	}
	return s.Background, true
}

func (s Stack) GradientAt(p geom.Vector, step Real) geom.Vector {
	return NumericGradient(s, p, step)
}

// NumericGradient is the default central-difference gradient estimate,
// with step as the half-step. Axes where either sample has no value
// contribute zero, so the gradient degrades gracefully at the domain
// boundary.
func NumericGradient(f IndexField, p geom.Vector, step Real) geom.Vector {
	if !(step > 0) {
		return geom.Vector{}
	}
	var g geom.Vector
	axes := [3]geom.Vector{{X: 1}, {Y: 1}, {Z: 1}}
	for i, e := range axes {
		hi, okHi := f.ValueAt(p.Add(e.Mul(step)))
		lo, okLo := f.ValueAt(p.Sub(e.Mul(step)))
		if !okHi || !okLo {
			continue
		}
		d := (hi - lo) / (2 * step)
		switch i {
		case 0:
			g.X = d
		case 1:
			g.Y = d
		case 2:
			g.Z = d
		}
	}
	return g
}
