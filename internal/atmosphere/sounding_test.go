package atmosphere

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSounding(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sounding.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadSounding(t *testing.T) {
	path := writeSounding(t, `
station: LOWL
levels:
  - {height_m: 0, temperature_k: 288.15, pressure_pa: 101325}
  - {height_m: 1000, temperature_k: 281.65, pressure_pa: 89875}
  - {height_m: 2000, temperature_k: 275.15, pressure_pa: 79495}
`)
	s, err := LoadSounding(path)
	require.NoError(t, err)
	assert.Equal(t, "LOWL", s.Station)
	require.Len(t, s.Levels, 3)
	assert.Equal(t, 281.65, s.Levels[1].TemperatureK)
}

func TestLoadSoundingErrors(t *testing.T) {
	cases := map[string]string{
		"single level": `
levels:
  - {height_m: 0, temperature_k: 288, pressure_pa: 101325}
`,
		"non-increasing heights": `
levels:
  - {height_m: 1000, temperature_k: 288, pressure_pa: 101325}
  - {height_m: 1000, temperature_k: 281, pressure_pa: 89875}
`,
		"negative temperature": `
levels:
  - {height_m: 0, temperature_k: -1, pressure_pa: 101325}
  - {height_m: 1000, temperature_k: 281, pressure_pa: 89875}
`,
		"zero pressure": `
levels:
  - {height_m: 0, temperature_k: 288, pressure_pa: 0}
  - {height_m: 1000, temperature_k: 281, pressure_pa: 89875}
`,
		"malformed yaml": `levels: [`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSounding(writeSounding(t, body))
			assert.Error(t, err)
		})
	}

	_, err := LoadSounding(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestISA(t *testing.T) {
	s := ISA(20000, 500)
	require.NoError(t, s.Validate())

	sea := s.Levels[0]
	assert.Equal(t, 288.15, sea.TemperatureK)
	assert.Equal(t, 101325.0, sea.PressurePa)

	for i := 1; i < len(s.Levels); i++ {
		assert.Less(t, s.Levels[i].PressurePa, s.Levels[i-1].PressurePa,
			"pressure must fall with height")
	}
	for _, l := range s.Levels {
		if l.HeightM > 11000 {
			assert.Equal(t, 216.65, l.TemperatureK, "isothermal above the tropopause")
		}
	}
	// troposphere lapse rate
	assert.InDelta(t, 288.15-0.0065*5000, s.Levels[10].TemperatureK, 1e-9)
}

func TestISADefaultStep(t *testing.T) {
	s := ISA(2000, 0)
	require.True(t, len(s.Levels) >= 2)
	assert.Equal(t, 500.0, s.Levels[1].HeightM-s.Levels[0].HeightM)
}
