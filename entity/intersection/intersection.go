// 单路口两相位信号控制仿真，以强化学习环境的形式提供reset/step/observe接口
package intersection

import (
	"errors"
	"fmt"

	"github.com/gammazero/deque"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/intersection-sim/clock"
	"github.com/tsinghua-fib-lab/intersection-sim/utils/config"
)

var (
	ErrInvalidAction = errors.New("intersection: invalid action")
	ErrNilRandom     = errors.New("intersection: nil random source")
)

const (
	// 观测空间上界（声明性提示，不做截断）
	maxQueueHint         = 50
	maxPhaseDurationHint = 60
)

var _ IEnvironment = (*Simulator)(nil)

// Simulator 单路口仿真器
// 功能：维护两方向排队、信号相位与等待时间记录，按固定顺序推进每一步
// 说明：所有状态由实例独占，非线程安全；随机数全部来自构造时注入的随机源
type Simulator struct {
	cfg config.Intersection
	rng IRandom

	clock *clock.Clock

	queues        [NumPhases]*deque.Deque[int32] // 各方向排队车辆的到达步，下标为放行该方向的相位
	waitingTimes  [NumPhases][]int32             // 各方向已驶离车辆的等待步数
	phase         Phase                          // 当前相位
	phaseDuration int32                          // 当前相位已保持步数
	phaseChanges  int                            // 本episode相位切换次数
}

// New 创建路口仿真器
// 功能：校验配置并初始化仿真器，返回时已处于reset后的初始状态
// 参数：cfg-路口参数，rng-随机源
// 返回：仿真器实例，配置非法或随机源为空时返回错误
func New(cfg config.Intersection, rng IRandom) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNilRandom
	}
	s := &Simulator{
		cfg:   cfg,
		rng:   rng,
		clock: clock.New(cfg.MaxSteps),
	}
	for i := range s.queues {
		s.queues[i] = new(deque.Deque[int32])
	}
	s.Reset()
	return s, nil
}

// Reset 重置仿真器
// 功能：清空两方向排队与等待记录，相位置为南北绿灯，相位时长与步数归零
// 返回：初始观测[0, 0, 0]
func (s *Simulator) Reset() Observation {
	for i := range s.queues {
		s.queues[i].Clear()
		s.waitingTimes[i] = nil
	}
	s.phase = PhaseNSGreen
	s.phaseDuration = 0
	s.phaseChanges = 0
	s.clock.Init()
	return s.Observe()
}

// Step 执行一步仿真
// 功能：按固定顺序推进一步并返回观测、奖励与结束标志
// 参数：action-请求的相位
// 返回：单步结果；action非法时返回ErrInvalidAction且不改变任何状态
// 算法说明：
// 1. 步数加1
// 2. 相位切换检查：请求相位不同于当前相位且已保持不少于最短绿灯时长时切换并将时长归零，否则时长加1
// 3. 车辆到达：两方向各自独立抽样，随机数小于到达率时将当前步数加入该方向队尾
// 4. 车辆驶离：仅处理绿灯方向，队列非空时反复抽样，小于放行率则队首车辆驶离并记录等待步数，首次不小于放行率时停止
// 5. 奖励：两方向排队总数的相反数
// 6. 结束：步数达到最大步数，或相位保持达到最大相位时长
func (s *Simulator) Step(action Phase) (StepResult, error) {
	if !action.Valid() {
		return StepResult{}, fmt.Errorf("%w: %d (want %d or %d)", ErrInvalidAction, int32(action), PhaseNSGreen, PhaseEWGreen)
	}
	step := s.clock.Tick()

	s.transition(action)
	s.generateArrivals(step)
	s.processDepartures(step)

	reward := -float64(s.queues[PhaseNSGreen].Len() + s.queues[PhaseEWGreen].Len())
	done := s.clock.Ended() || s.phaseDuration >= s.cfg.MaxPhaseDuration
	if done {
		log.Debugf("episode done at step %d (phase %v held %d steps)", step, s.phase, s.phaseDuration)
	}
	return StepResult{
		Observation: s.Observe(),
		Reward:      reward,
		Done:        done,
		Info:        map[string]any{},
	}, nil
}

// transition 相位切换检查，保证最短绿灯时长
func (s *Simulator) transition(action Phase) {
	if action != s.phase && s.phaseDuration >= s.cfg.MinPhaseDuration {
		log.Tracef("step %d: switch %v -> %v after %d steps", s.clock.InternalStep, s.phase, action, s.phaseDuration)
		s.phase = action
		s.phaseDuration = 0
		s.phaseChanges++
		return
	}
	s.phaseDuration++
}

// generateArrivals 两方向独立生成到达车辆（先南北后东西）
func (s *Simulator) generateArrivals(step int32) {
	if s.rng.PTrue(s.cfg.ArrivalRateNS) {
		s.queues[PhaseNSGreen].PushBack(step)
	}
	if s.rng.PTrue(s.cfg.ArrivalRateEW) {
		s.queues[PhaseEWGreen].PushBack(step)
	}
}

// processDepartures 处理绿灯方向的驶离，每步可驶离0辆、1辆或多辆
func (s *Simulator) processDepartures(step int32) {
	q := s.queues[s.phase]
	for q.Len() > 0 && s.rng.PTrue(s.cfg.ServiceRate) {
		arrival := q.PopFront()
		s.waitingTimes[s.phase] = append(s.waitingTimes[s.phase], step-arrival)
	}
}

// Observe 读取当前观测（无副作用）
func (s *Simulator) Observe() Observation {
	return Observation{
		NSQueue:       s.queues[PhaseNSGreen].Len(),
		EWQueue:       s.queues[PhaseEWGreen].Len(),
		PhaseDuration: s.phaseDuration,
	}
}

// WaitingTimeSummary 获取两方向平均等待步数
// 返回：自上次reset以来各方向等待步数的算术平均，无记录时为0
func (s *Simulator) WaitingTimeSummary() (nsAverage, ewAverage float64) {
	return mean(s.waitingTimes[PhaseNSGreen]), mean(s.waitingTimes[PhaseEWGreen])
}

// WaitingTimes 获取指定方向的等待步数记录副本
func (s *Simulator) WaitingTimes(p Phase) []int32 {
	if !p.Valid() {
		return nil
	}
	return append([]int32(nil), s.waitingTimes[p]...)
}

// Phase 当前相位
func (s *Simulator) Phase() Phase {
	return s.phase
}

// CurrentStep 当前步数
func (s *Simulator) CurrentStep() int32 {
	return s.clock.InternalStep
}

// Config 仿真器使用的路口参数
func (s *Simulator) Config() config.Intersection {
	return s.cfg
}

// Stats 获取运行统计快照
func (s *Simulator) Stats() Stats {
	st := Stats{
		Step:          s.clock.InternalStep,
		Phase:         s.phase,
		PhaseDuration: s.phaseDuration,
		PhaseChanges:  s.phaseChanges,
	}
	for i := range s.queues {
		st.Departed[i] = len(s.waitingTimes[i])
		st.Queued[i] = s.queues[i].Len()
	}
	return st
}

// ObservationSpace 观测空间的声明性上下界
func (s *Simulator) ObservationSpace() (low, high [3]float64) {
	return [3]float64{0, 0, 0}, [3]float64{maxQueueHint, maxQueueHint, maxPhaseDurationHint}
}

func mean(xs []int32) float64 {
	if len(xs) == 0 {
		return 0
	}
	return float64(lo.Sum(xs)) / float64(len(xs))
}
