package trafficlight

import (
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/intersection-sim/entity/intersection"
)

var log = logrus.WithField("module", "trafficlight")

// IController 信控策略接口
// 功能：每步根据观测与当前相位给出请求的相位
// 说明：策略只提出请求，最短绿灯时长由仿真器保证
type IController interface {
	// 策略名
	Name() string
	// episode开始前重置内部状态
	Reset()
	// 根据观测与当前相位给出请求的相位
	Act(obs intersection.Observation, phase intersection.Phase) intersection.Phase
}
