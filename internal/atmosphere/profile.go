package atmosphere

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Profile interpolates temperature and pressure over height and
// derives the index of refraction of dry air from them.
type Profile struct {
	minH, maxH Real
	temp       interp.PiecewiseLinear
	press      interp.PiecewiseLinear
}

// NewProfile fits piecewise-linear interpolants to a sounding.
func NewProfile(s Sounding) (*Profile, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	n := len(s.Levels)
	hs := make([]float64, n)
	ts := make([]float64, n)
	ps := make([]float64, n)
	for i, l := range s.Levels {
		hs[i], ts[i], ps[i] = l.HeightM, l.TemperatureK, l.PressurePa
	}
	p := &Profile{minH: hs[0], maxH: hs[n-1]}
	if err := p.temp.Fit(hs, ts); err != nil {
		return nil, fmt.Errorf("fitting temperature: %w", err)
	}
	if err := p.press.Fit(hs, ps); err != nil {
		return nil, fmt.Errorf("fitting pressure: %w", err)
	}
	return p, nil
}

func (p *Profile) MinHeight() Real { return p.minH }
func (p *Profile) MaxHeight() Real { return p.maxH }

func (p *Profile) clamp(h Real) Real {
	if h < p.minH {
		return p.minH
	}
	if h > p.maxH {
		return p.maxH
	}
	return h
}

// Temperature returns the interpolated air temperature in K at height h.
func (p *Profile) Temperature(h Real) Real { return p.temp.Predict(p.clamp(h)) }

// Pressure returns the interpolated air pressure in Pa at height h.
func (p *Profile) Pressure(h Real) Real { return p.press.Predict(p.clamp(h)) }

// IoR returns the index of refraction of dry air at height h, from the
// Smith-Weintraub relation N = 77.6 P/T with P in hPa.
func (p *Profile) IoR(h Real) Real {
	h = p.clamp(h)
	return 1 + 77.6e-6*(p.press.Predict(h)/100)/p.temp.Predict(h)
}

// DnDh returns the height derivative of the index by central
// difference with half-step d.
func (p *Profile) DnDh(h, d Real) Real {
	if !(d > 0) {
		return 0
	}
	return (p.IoR(h+d) - p.IoR(h-d)) / (2 * d)
}
