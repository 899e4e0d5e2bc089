package trafficlight

import (
	"errors"
	"fmt"

	"github.com/tsinghua-fib-lab/intersection-sim/utils/config"
	"github.com/tsinghua-fib-lab/intersection-sim/utils/randengine"
)

var (
	ErrUnknownPolicy = errors.New("trafficlight: unknown policy")
	ErrNilRandom     = errors.New("trafficlight: nil random engine")
)

var (
	_ IController = (*fixedTimeController)(nil)
	_ IController = (*mpController)(nil)
	_ IController = (*randomController)(nil)
)

// New 按名称创建信控策略
// 参数：c-运行控制配置，rng-随机信控使用的随机数引擎
// 返回：信控策略，名称未知时返回ErrUnknownPolicy，随机信控缺少引擎时返回ErrNilRandom
func New(c config.Control, rng *randengine.Engine) (IController, error) {
	var ctrl IController
	switch c.Policy {
	case "fixed":
		ctrl = NewFixedTime(c.FixedGreenTicks)
	case "max_pressure":
		ctrl = NewMaxPressure(c.MaxPressureGreen)
	case "random":
		if rng == nil {
			return nil, fmt.Errorf("%w: policy %q requires one", ErrNilRandom, c.Policy)
		}
		ctrl = NewRandom(rng)
	default:
		return nil, fmt.Errorf("%w: %q (want fixed|max_pressure|random)", ErrUnknownPolicy, c.Policy)
	}
	log.Debugf("use policy %s", ctrl.Name())
	return ctrl, nil
}
