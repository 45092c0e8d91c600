package raybend

import (
	"math"
	"testing"

	"github.com/gradientoptics/raybend/internal/geom"
)

func TestLensRadialProfile(t *testing.T) {
	l := Lens{Center: geom.Vector{X: 1}, Radius: 2, CenterIoR: 1.6, EdgeIoR: 1.4}
	if got := l.IoRAt(l.Center); got != 1.6 {
		t.Fatalf("center ior = %g", got)
	}
	if got := l.IoRAt(geom.Vector{X: 3}); math.Abs(got-1.4) > 1e-12 {
		t.Fatalf("edge ior = %g", got)
	}
	if got := l.IoRAt(geom.Vector{X: 2}); math.Abs(got-1.5) > 1e-12 {
		t.Fatalf("mid ior = %g, want linear falloff", got)
	}
	if l.Contains(geom.Vector{X: 3.1}) {
		t.Fatal("point beyond radius should be outside")
	}
}

func TestCylinderQuadraticProfile(t *testing.T) {
	c := Cylinder{Axis: geom.Vector{Z: 1}, Radius: 2, AxisIoR: 1.7, Falloff: 0.2}
	if got := c.IoRAt(geom.Vector{Z: 5}); got != 1.7 {
		t.Fatalf("on-axis ior = %g", got)
	}
	if got := c.IoRAt(geom.Vector{X: 2}); math.Abs(got-1.5) > 1e-12 {
		t.Fatalf("rim ior = %g", got)
	}
	// quadratic: half the radius drops a quarter of the falloff
	if got := c.IoRAt(geom.Vector{Y: 1}); math.Abs(got-1.65) > 1e-12 {
		t.Fatalf("half-radius ior = %g", got)
	}
	if !c.Contains(geom.Vector{X: 1, Z: -40}) {
		t.Fatal("cylinder should extend along its whole axis")
	}
}

func TestStackFirstMediumWins(t *testing.T) {
	s := Stack{
		Domain: Box{Min: geom.Vector{X: -10, Y: -10, Z: -10}, Max: geom.Vector{X: 10, Y: 10, Z: 10}},
		Media: []Medium{
			Slab{Normal: geom.Vector{Z: 1}, Lo: 0, Hi: 2, IoR: 1.5},
			Slab{Normal: geom.Vector{Z: 1}, Lo: 1, Hi: 3, IoR: 1.9},
		},
		Background: 1.0,
	}
	ior, ok := s.ValueAt(geom.Vector{Z: 1.5}) // in both slabs
	if !ok || ior != 1.5 {
		t.Fatalf("overlap should resolve to the first medium, got %g ok=%v", ior, ok)
	}
	ior, ok = s.ValueAt(geom.Vector{Z: 2.5})
	if !ok || ior != 1.9 {
		t.Fatalf("second slab alone: got %g ok=%v", ior, ok)
	}
	ior, ok = s.ValueAt(geom.Vector{Z: 9})
	if !ok || ior != 1.0 {
		t.Fatalf("background: got %g ok=%v", ior, ok)
	}
	if _, ok = s.ValueAt(geom.Vector{Z: 11}); ok {
		t.Fatal("outside the domain there is no value")
	}
}

func TestNumericGradientPointsUphill(t *testing.T) {
	s := Stack{
		Domain:     Box{Min: geom.Vector{X: -10, Y: -10, Z: -10}, Max: geom.Vector{X: 10, Y: 10, Z: 10}},
		Media:      []Medium{Slab{Normal: geom.Vector{Z: 1}, Lo: 0, Hi: 10, IoR: 1.5}},
		Background: 1.0,
	}
	g := NumericGradient(s, geom.Vector{Z: -0.01}, 0.05)
	if g.X != 0 || g.Y != 0 || g.Z <= 0 {
		t.Fatalf("gradient should point toward the denser side: %+v", g)
	}
	// (1.5 - 1.0) / (2 * 0.05)
	if math.Abs(g.Z-5) > 1e-12 {
		t.Fatalf("gradient magnitude = %g, want 5", g.Z)
	}
}

func TestNumericGradientDegradesAtBoundary(t *testing.T) {
	s := Stack{
		Domain:     Box{Min: geom.Vector{X: -1, Y: -1, Z: -1}, Max: geom.Vector{X: 1, Y: 1, Z: 1}},
		Background: 1.0,
	}
	// x samples straddle the boundary: that axis contributes zero
	g := NumericGradient(s, geom.Vector{X: 0.99}, 0.05)
	if g != (geom.Vector{}) {
		t.Fatalf("boundary-clipped gradient should be zero: %+v", g)
	}
	if g := NumericGradient(s, geom.Vector{}, 0); g != (geom.Vector{}) {
		t.Fatalf("non-positive step should give a zero gradient: %+v", g)
	}
}
