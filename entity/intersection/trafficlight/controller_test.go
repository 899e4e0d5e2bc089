package trafficlight_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsinghua-fib-lab/intersection-sim/entity/intersection"
	"github.com/tsinghua-fib-lab/intersection-sim/entity/intersection/trafficlight"
	"github.com/tsinghua-fib-lab/intersection-sim/utils/config"
	"github.com/tsinghua-fib-lab/intersection-sim/utils/randengine"
)

func TestFixedTime(t *testing.T) {
	c := trafficlight.NewFixedTime(5)
	assert.Equal(t, "fixed", c.Name())
	obs := intersection.Observation{PhaseDuration: 4}
	assert.Equal(t, intersection.PhaseNSGreen, c.Act(obs, intersection.PhaseNSGreen))
	obs.PhaseDuration = 5
	assert.Equal(t, intersection.PhaseEWGreen, c.Act(obs, intersection.PhaseNSGreen))
	assert.Equal(t, intersection.PhaseNSGreen, c.Act(obs, intersection.PhaseEWGreen))
}

func TestMaxPressure(t *testing.T) {
	c := trafficlight.NewMaxPressure(0)
	assert.Equal(t, "max_pressure", c.Name())

	// 南北排队更长
	obs := intersection.Observation{NSQueue: 5, EWQueue: 2}
	assert.Equal(t, intersection.PhaseNSGreen, c.Act(obs, intersection.PhaseEWGreen))
	// 东西排队更长
	obs = intersection.Observation{NSQueue: 1, EWQueue: 3}
	assert.Equal(t, intersection.PhaseEWGreen, c.Act(obs, intersection.PhaseNSGreen))
	// 相同时保持当前相位
	obs = intersection.Observation{NSQueue: 2, EWQueue: 2}
	assert.Equal(t, intersection.PhaseNSGreen, c.Act(obs, intersection.PhaseNSGreen))
	assert.Equal(t, intersection.PhaseEWGreen, c.Act(obs, intersection.PhaseEWGreen))
}

func TestMaxPressureMaxGreen(t *testing.T) {
	c := trafficlight.NewMaxPressure(10)
	obs := intersection.Observation{NSQueue: 8, EWQueue: 1, PhaseDuration: 9}
	assert.Equal(t, intersection.PhaseNSGreen, c.Act(obs, intersection.PhaseNSGreen))
	obs.PhaseDuration = 10
	assert.Equal(t, intersection.PhaseEWGreen, c.Act(obs, intersection.PhaseNSGreen))
	// 对向无排队时继续保持
	obs.EWQueue = 0
	assert.Equal(t, intersection.PhaseNSGreen, c.Act(obs, intersection.PhaseNSGreen))
}

func TestRandom(t *testing.T) {
	c := trafficlight.NewRandom(randengine.New(9))
	assert.Equal(t, "random", c.Name())
	seen := map[intersection.Phase]int{}
	for i := 0; i < 1000; i++ {
		a := c.Act(intersection.Observation{}, intersection.PhaseNSGreen)
		require.True(t, a.Valid())
		seen[a]++
	}
	assert.Greater(t, seen[intersection.PhaseNSGreen], 0)
	assert.Greater(t, seen[intersection.PhaseEWGreen], 0)
}

func TestNew(t *testing.T) {
	c := config.Default().Control
	for _, name := range []string{"fixed", "max_pressure", "random"} {
		c.Policy = name
		ctrl, err := trafficlight.New(c, randengine.New(1))
		require.NoError(t, err)
		assert.Equal(t, name, ctrl.Name())
	}

	c.Policy = "dqn"
	_, err := trafficlight.New(c, randengine.New(1))
	assert.ErrorIs(t, err, trafficlight.ErrUnknownPolicy)

	c.Policy = "random"
	_, err = trafficlight.New(c, nil)
	assert.ErrorIs(t, err, trafficlight.ErrNilRandom)
	assert.NotErrorIs(t, err, trafficlight.ErrUnknownPolicy)
}

func TestControllerDrivesSimulator(t *testing.T) {
	cfg := config.DefaultIntersection()
	sim, err := intersection.New(cfg, randengine.New(10))
	require.NoError(t, err)
	ctrl := trafficlight.NewFixedTime(cfg.MinPhaseDuration)
	obs := sim.Reset()
	for {
		res, err := sim.Step(ctrl.Act(obs, sim.Phase()))
		require.NoError(t, err)
		obs = res.Observation
		if res.Done {
			break
		}
	}
	assert.Equal(t, cfg.MaxSteps, sim.CurrentStep())
	assert.Greater(t, sim.Stats().PhaseChanges, 0)
}
