package atmosphere

import "math"

// EarthRadiusM is the mean Earth radius.
const EarthRadiusM = 6371000.0

// BendingAngle is the alternate polar-coordinate refraction model: for
// a spherically layered atmosphere the Bouguer invariant
// a = n r sin(zenith) holds along the ray, and the accumulated bending
// obeys d(psi)/dr = -a (dn/dr) / (n sqrt(n^2 r^2 - a^2)).
//
// It returns the total bending in radians for a sightline leaving a
// station at height h0 with apparent elevation elev (radians above the
// horizon), integrated up to hTop with n RK4 steps. Grazing sightlines
// (elev near zero) are outside this model's validity; the integrand is
// cut off where the radicand vanishes.
func BendingAngle(p *Profile, h0, elev, hTop Real, steps int) Real {
	if steps <= 0 || hTop <= h0 {
		return 0
	}
	r0 := EarthRadiusM + h0
	a := p.IoR(h0) * r0 * math.Cos(elev)
	f := func(r, _ Real) Real {
		h := r - EarthRadiusM
		n := p.IoR(h)
		s := n*n*r*r - a*a
		if s <= 0 {
			return 0
		}
		return -a * p.DnDh(h, 1.0) / (n * math.Sqrt(s))
	}
	h := (hTop - h0) / Real(steps)
	return RK4(f, r0, 0, h, steps)
}
