package trafficlight

import (
	"github.com/tsinghua-fib-lab/intersection-sim/entity/intersection"
	"github.com/tsinghua-fib-lab/intersection-sim/utils/randengine"
)

// randomController 随机信控
// 功能：按给定权重随机请求相位，作为探索基线
type randomController struct {
	rng     *randengine.Engine
	weights []float64 // 各相位被请求的权重，下标为相位
}

// NewRandom 创建随机信控，两相位等概率
func NewRandom(rng *randengine.Engine) *randomController {
	return &randomController{rng: rng, weights: []float64{0.5, 0.5}}
}

func (c *randomController) Name() string {
	return "random"
}

func (c *randomController) Reset() {}

func (c *randomController) Act(_ intersection.Observation, _ intersection.Phase) intersection.Phase {
	return intersection.Phase(c.rng.DiscreteDistribution(c.weights))
}
