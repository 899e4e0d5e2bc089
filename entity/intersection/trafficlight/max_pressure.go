// 提供Max Pressure信控算法
// 不按固定顺序切换，而是每步计算各相位的pressure（所放行方向的排队长度），请求pressure最大的相位
package trafficlight

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/intersection-sim/entity/intersection"
	"github.com/tsinghua-fib-lab/intersection-sim/utils/container"
)

// mpController 最大压力信控
// 功能：请求排队最长方向对应的相位，压力相同时保持当前相位
// 说明：当前相位保持达到maxGreen步后，若对向仍有排队则让出绿灯，避免对向长时间等待
type mpController struct {
	maxGreen int32 // 当前相位最长保持步数（<=0表示不限制）
}

// NewMaxPressure 创建最大压力信控
// 参数：maxGreen-当前相位最长保持步数，<=0表示不限制
func NewMaxPressure(maxGreen int32) *mpController {
	return &mpController{maxGreen: maxGreen}
}

func (c *mpController) Name() string {
	return "max_pressure"
}

func (c *mpController) Reset() {}

// Act 给出pressure最大的相位
// 算法说明：
// 1. 计算每个相位所放行方向的排队长度作为pressure
// 2. 当前相位最先入堆，pressure相同时优先保持当前相位
// 3. 若最大者为当前相位且已保持maxGreen步，改选第二大且pressure大于0的相位
func (c *mpController) Act(obs intersection.Observation, phase intersection.Phase) intersection.Phase {
	phases := []intersection.Phase{phase, phase.Opposite()}
	pressures := lo.Map(phases, func(p intersection.Phase, _ int) float64 {
		return float64(obs.Queue(p))
	})
	pressureHeap := container.NewPriorityQueue[intersection.Phase]()
	for i, p := range phases {
		pressureHeap.Push(p, -pressures[i]) // 小顶堆，压力越大越靠前
	}
	pressureHeap.Heapify()

	best, _ := pressureHeap.HeapPop()
	if best == phase && c.maxGreen > 0 && obs.PhaseDuration >= c.maxGreen {
		if next, negPressure := pressureHeap.HeapPop(); negPressure < 0 {
			best = next
		}
	}
	return best
}
