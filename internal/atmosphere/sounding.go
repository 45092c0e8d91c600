// Package atmosphere provides air-property tables (height, temperature,
// pressure), the index-of-refraction profile derived from them, and an
// alternate polar-coordinate refraction-angle model for sightlines.
package atmosphere

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gradientoptics/raybend/internal/geom"
)

// Real is the scalar type shared with the geom package.
type Real = geom.Real

// Level is one sounding sample.
type Level struct {
	HeightM      Real `yaml:"height_m"`
	TemperatureK Real `yaml:"temperature_k"`
	PressurePa   Real `yaml:"pressure_pa"`
}

// Sounding is an ordered set of levels, typically from a radiosonde
// ascent or a standard-atmosphere generator.
type Sounding struct {
	Station string  `yaml:"station,omitempty"`
	Levels  []Level `yaml:"levels"`
}

// LoadSounding reads and validates a YAML sounding file.
func LoadSounding(path string) (Sounding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sounding{}, err
	}
	var s Sounding
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Sounding{}, err
	}
	if err := s.Validate(); err != nil {
		return Sounding{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks that the sounding is usable for interpolation:
// at least two levels, strictly increasing heights, physical values.
func (s Sounding) Validate() error {
	if len(s.Levels) < 2 {
		return fmt.Errorf("sounding needs at least 2 levels, got %d", len(s.Levels))
	}
	for i, l := range s.Levels {
		if l.TemperatureK <= 0 {
			return fmt.Errorf("level %d: temperature must be positive, got %g", i, l.TemperatureK)
		}
		if l.PressurePa <= 0 {
			return fmt.Errorf("level %d: pressure must be positive, got %g", i, l.PressurePa)
		}
		if i > 0 && l.HeightM <= s.Levels[i-1].HeightM {
			return fmt.Errorf("level %d: heights must be strictly increasing", i)
		}
	}
	return nil
}

// ISA generates an International Standard Atmosphere sounding from sea
// level up to topM, sampled every stepM.
func ISA(topM, stepM Real) Sounding {
	const (
		t0    = 288.15    // K at sea level
		p0    = 101325.0  // Pa at sea level
		lapse = 0.0065    // K/m in the troposphere
		tropo = 11000.0   // m, tropopause
		tIso  = 216.65    // K above the tropopause
		g     = 9.80665   // m/s^2
		rAir  = 287.05287 // J/(kg K)
	)
	if stepM <= 0 {
		stepM = 500
	}
	pTropo := p0 * math.Pow(tIso/t0, g/(rAir*lapse))
	var levels []Level
	for h := Real(0); h <= topM; h += stepM {
		var t, p Real
		if h <= tropo {
			t = t0 - lapse*h
			p = p0 * math.Pow(t/t0, g/(rAir*lapse))
		} else {
			t = tIso
			p = pTropo * math.Exp(-g*(h-tropo)/(rAir*tIso))
		}
		levels = append(levels, Level{HeightM: h, TemperatureK: t, PressurePa: p})
	}
	return Sounding{Station: "ISA", Levels: levels}
}
