package intersection

import "fmt"

// Phase 信号相位，当前获得通行权的方向（另一方向隐含为红灯）
type Phase int32

const (
	PhaseNSGreen Phase = 0 // 南北绿灯/东西红灯
	PhaseEWGreen Phase = 1 // 南北红灯/东西绿灯
)

// NumPhases 相位数量，即动作空间大小
const NumPhases = 2

// Valid 是否为合法相位
func (p Phase) Valid() bool {
	return p == PhaseNSGreen || p == PhaseEWGreen
}

// Opposite 对向相位
func (p Phase) Opposite() Phase {
	if p == PhaseNSGreen {
		return PhaseEWGreen
	}
	return PhaseNSGreen
}

func (p Phase) String() string {
	switch p {
	case PhaseNSGreen:
		return "NS_GREEN"
	case PhaseEWGreen:
		return "EW_GREEN"
	default:
		return fmt.Sprintf("Phase(%d)", int32(p))
	}
}

// Observation 观测值
// 功能：[南北排队长度, 东西排队长度, 当前相位持续步数]
type Observation struct {
	NSQueue       int   // 南北向排队车辆数
	EWQueue       int   // 东西向排队车辆数
	PhaseDuration int32 // 当前相位已保持的步数
}

// Vector 转为RL框架使用的三元数值向量
func (o Observation) Vector() []float64 {
	return []float64{float64(o.NSQueue), float64(o.EWQueue), float64(o.PhaseDuration)}
}

// Queue 获取指定相位放行方向的排队长度
func (o Observation) Queue(p Phase) int {
	if p == PhaseNSGreen {
		return o.NSQueue
	}
	return o.EWQueue
}

// StepResult 单步执行结果
type StepResult struct {
	Observation Observation    // 执行后的观测
	Reward      float64        // 奖励，两方向排队总数的相反数
	Done        bool           // episode是否结束
	Info        map[string]any // 附加信息（为空）
}

// Stats 路口运行统计（只读快照）
type Stats struct {
	Step          int32  // 当前步数
	Phase         Phase  // 当前相位
	PhaseDuration int32  // 当前相位保持步数
	PhaseChanges  int    // 本episode相位切换次数
	Departed      [2]int // 各方向已驶离车辆数（下标为相位）
	Queued        [2]int // 各方向排队车辆数（下标为相位）
}

// Throughput 本episode两方向累计驶离车辆数
func (s Stats) Throughput() int {
	return s.Departed[PhaseNSGreen] + s.Departed[PhaseEWGreen]
}

// IRandom 随机源，PTrue在[0,1)内抽取一次均匀随机数，小于p时返回true
type IRandom interface {
	PTrue(p float64) bool
}

// IEnvironment 强化学习环境接口
// 功能：reset → 重复step → done 的标准交互约定
type IEnvironment interface {
	// 重置并返回初始观测
	Reset() Observation
	// 执行一步
	Step(action Phase) (StepResult, error)
	// 读取当前观测
	Observe() Observation
	// 两方向平均等待步数
	WaitingTimeSummary() (nsAverage, ewAverage float64)
}
