package trafficlight

import "github.com/tsinghua-fib-lab/intersection-sim/entity/intersection"

// fixedTimeController 固定配时信控
// 功能：按固定程序轮换相位，每个相位保持greenTicks步后请求切换到对向相位
type fixedTimeController struct {
	greenTicks int32 // 每个相位的绿灯步数
}

// NewFixedTime 创建固定配时信控
// 参数：greenTicks-每个相位的绿灯步数
func NewFixedTime(greenTicks int32) *fixedTimeController {
	return &fixedTimeController{greenTicks: greenTicks}
}

func (c *fixedTimeController) Name() string {
	return "fixed"
}

func (c *fixedTimeController) Reset() {}

// Act 当前相位保持达到greenTicks步时请求对向相位，否则保持
func (c *fixedTimeController) Act(obs intersection.Observation, phase intersection.Phase) intersection.Phase {
	if obs.PhaseDuration >= c.greenTicks {
		return phase.Opposite()
	}
	return phase
}
