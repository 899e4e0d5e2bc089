package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/intersection-sim/utils/config"
)

func TestDefault(t *testing.T) {
	c := config.DefaultIntersection()
	assert.Equal(t, 0.3, c.ArrivalRateNS)
	assert.Equal(t, 0.2, c.ArrivalRateEW)
	assert.Equal(t, 0.5, c.ServiceRate)
	assert.Equal(t, int32(10), c.MinPhaseDuration)
	assert.Equal(t, int32(60), c.MaxPhaseDuration)
	assert.Equal(t, int32(3), c.YellowDuration)
	assert.Equal(t, int32(100), c.MaxSteps)
	assert.NoError(t, c.Validate())
}

func TestLoadKeepsDefaultsForAbsentKeys(t *testing.T) {
	rc, err := config.Load([]byte(`
intersection:
  arrival_rate_ns: 0
  max_steps: 5
control:
  episodes: 4
  policy: fixed
`))
	require.NoError(t, err)
	assert.Equal(t, 0., rc.I.ArrivalRateNS)
	assert.Equal(t, 0.2, rc.I.ArrivalRateEW)
	assert.Equal(t, int32(5), rc.I.MaxSteps)
	assert.Equal(t, int32(10), rc.I.MinPhaseDuration)
	assert.Equal(t, 4, rc.C.Episodes)
	assert.Equal(t, "fixed", rc.C.Policy)
	assert.Equal(t, int32(20), rc.C.FixedGreenTicks)
	assert.Equal(t, rc.All.Intersection, rc.I)
}

func TestLoadStrict(t *testing.T) {
	_, err := config.Load([]byte("intersection:\n  yellow_light: 3\n"))
	assert.Error(t, err)
}

func TestLoadValidates(t *testing.T) {
	_, err := config.Load([]byte("intersection:\n  service_rate: 2\n"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *config.Intersection){
		"negative rate":     func(c *config.Intersection) { c.ArrivalRateEW = -0.1 },
		"negative min":      func(c *config.Intersection) { c.MinPhaseDuration = -1 },
		"negative max":      func(c *config.Intersection) { c.MaxPhaseDuration = -1 },
		"negative yellow":   func(c *config.Intersection) { c.YellowDuration = -1 },
		"non-positive step": func(c *config.Intersection) { c.MaxSteps = 0 },
	}
	for name, mutate := range cases {
		c := config.DefaultIntersection()
		mutate(&c)
		assert.ErrorIs(t, c.Validate(), config.ErrInvalidConfig, name)
	}
}

func TestNewRuntimeConfigFillsControl(t *testing.T) {
	rc := config.NewRuntimeConfig(config.Config{Intersection: config.DefaultIntersection()})
	def := config.Default().Control
	assert.Equal(t, def.Episodes, rc.C.Episodes)
	assert.Equal(t, def.Policy, rc.C.Policy)
	assert.Equal(t, def.HeartbeatInterval, rc.C.HeartbeatInterval)
	assert.Equal(t, int32(0), rc.C.MaxPressureGreen)
}

func TestMaxPressureGreenZeroMeansUnlimited(t *testing.T) {
	rc, err := config.Load([]byte("control:\n  policy: max_pressure\n"))
	require.NoError(t, err)
	assert.Equal(t, config.Default().Control.MaxPressureGreen, rc.C.MaxPressureGreen)

	rc, err = config.Load([]byte("control:\n  max_pressure_green: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, int32(0), rc.C.MaxPressureGreen)
}
