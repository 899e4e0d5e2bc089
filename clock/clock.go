package clock

import "fmt"

// Clock 仿真时钟
// 功能：管理离散仿真的步数推进，步数同时作为车辆到达时间戳
// 说明：步数从START_STEP开始，每步加1，模拟区间为[START_STEP, END_STEP]
type Clock struct {
	START_STEP int32 // 起始步
	END_STEP   int32 // 结束步，步数达到该值时episode结束

	InternalStep int32 // 当前步数
}

// New 创建新的时钟实例
// 功能：以0为起始步、maxSteps为结束步初始化时钟
// 参数：maxSteps-episode最大步数
// 返回：初始化完成的时钟实例
func New(maxSteps int32) *Clock {
	c := &Clock{
		START_STEP: 0,
		END_STEP:   maxSteps,
	}
	c.Init()
	return c
}

// Init 重置时钟状态
func (c *Clock) Init() {
	c.InternalStep = c.START_STEP
}

// Tick 推进一步
// 返回：推进后的步数
func (c *Clock) Tick() int32 {
	c.InternalStep++
	return c.InternalStep
}

// Ended 是否已到达结束步
func (c *Clock) Ended() bool {
	return c.InternalStep >= c.END_STEP
}

// String 获取时钟的字符串表示
func (c *Clock) String() string {
	return fmt.Sprintf("step %d/%d", c.InternalStep, c.END_STEP)
}
