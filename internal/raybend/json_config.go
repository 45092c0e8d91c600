package raybend

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gradientoptics/raybend/internal/geom"
)

// Scenario is the JSON description of one trace: a start condition,
// the integration policy and the media the ray travels through.
type Scenario struct {
	Direction    geom.Vector  `json:"direction"`
	Point        geom.Vector  `json:"point"`
	StepDistance Real         `json:"stepDistance"`
	SaveDistance Real         `json:"saveDistance,omitempty"`
	Target       *geom.Vector `json:"target,omitempty"`

	Domain     Box           `json:"domain"`
	Background Real          `json:"background,omitempty"`
	Slabs      []SlabCfg     `json:"slabs,omitempty"`
	Lenses     []LensCfg     `json:"lenses,omitempty"`
	Cylinders  []CylinderCfg `json:"cylinders,omitempty"`
}

type SlabCfg struct {
	Normal geom.Vector `json:"normal"`
	Lo     Real        `json:"lo"`
	Hi     Real        `json:"hi"`
	IoR    Real        `json:"ior"`
}

func (c SlabCfg) Build() (Slab, error) {
	if c.Normal.IsZero() {
		return Slab{}, fmt.Errorf("slab normal must be nonzero")
	}
	if c.Hi <= c.Lo {
		return Slab{}, fmt.Errorf("slab hi (%g) must exceed lo (%g)", c.Hi, c.Lo)
	}
	return Slab{Normal: c.Normal.Norm(), Lo: c.Lo, Hi: c.Hi, IoR: c.IoR}, nil
}

type LensCfg struct {
	Center    geom.Vector `json:"center"`
	Radius    Real        `json:"radius"`
	CenterIoR Real        `json:"centerIoR"`
	EdgeIoR   Real        `json:"edgeIoR"`
}

func (c LensCfg) Build() (Lens, error) {
	if c.Radius <= 0 {
		return Lens{}, fmt.Errorf("lens radius must be positive, got %g", c.Radius)
	}
	return Lens{Center: c.Center, Radius: c.Radius, CenterIoR: c.CenterIoR, EdgeIoR: c.EdgeIoR}, nil
}

type CylinderCfg struct {
	Point   geom.Vector `json:"point"`
	Axis    geom.Vector `json:"axis"`
	Radius  Real        `json:"radius"`
	AxisIoR Real        `json:"axisIoR"`
	Falloff Real        `json:"falloff,omitempty"`
}

func (c CylinderCfg) Build() (Cylinder, error) {
	if c.Axis.IsZero() {
		return Cylinder{}, fmt.Errorf("cylinder axis must be nonzero")
	}
	if c.Radius <= 0 {
		return Cylinder{}, fmt.Errorf("cylinder radius must be positive, got %g", c.Radius)
	}
	return Cylinder{
		Point:   c.Point,
		Axis:    c.Axis.Norm(),
		Radius:  c.Radius,
		AxisIoR: c.AxisIoR,
		Falloff: c.Falloff,
	}, nil
}

// LoadScenario reads and validates a scenario file, filling defaults.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	// Defaults / validation
	if sc.Direction.IsZero() {
		return nil, fmt.Errorf("scenario has no start direction")
	}
	if sc.StepDistance <= 0 {
		return nil, fmt.Errorf("stepDistance must be positive, got %g", sc.StepDistance)
	}
	if sc.SaveDistance <= 0 {
		sc.SaveDistance = sc.StepDistance
	}
	if sc.Background <= 0 {
		sc.Background = 1.0
	}
	DebugLog("Loaded scenario from %s: step=%g, save=%g, media=%d",
		path, sc.StepDistance, sc.SaveDistance, len(sc.Slabs)+len(sc.Lenses)+len(sc.Cylinders))
	return &sc, nil
}

// BuildField assembles the scenario's media into a Stack.
func (sc *Scenario) BuildField() (Stack, error) {
	media := make([]Medium, 0, len(sc.Slabs)+len(sc.Lenses)+len(sc.Cylinders))
	for _, c := range sc.Slabs {
		m, err := c.Build()
		if err != nil {
			return Stack{}, err
		}
		media = append(media, m)
	}
	for _, c := range sc.Lenses {
		m, err := c.Build()
		if err != nil {
			return Stack{}, err
		}
		media = append(media, m)
	}
	for _, c := range sc.Cylinders {
		m, err := c.Build()
		if err != nil {
			return Stack{}, err
		}
		media = append(media, m)
	}
	return Stack{Domain: sc.Domain, Media: media, Background: sc.Background}, nil
}

// BuildPath builds the path consumer, targeted when the scenario names
// a target point.
func (sc *Scenario) BuildPath() (*Path, error) {
	start, err := NewStart(sc.Direction, sc.Point)
	if err != nil {
		return nil, err
	}
	if sc.Target != nil {
		return NewPathToward(start, sc.SaveDistance, *sc.Target), nil
	}
	return NewPath(start, sc.SaveDistance), nil
}
