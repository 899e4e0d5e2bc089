package task

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/intersection-sim/entity/intersection"
)

// EpisodeResult 单个episode的结果
type EpisodeResult struct {
	ID            string  `yaml:"id"`              // episode ID
	Seed          uint64  `yaml:"seed"`            // 随机数种子
	Policy        string  `yaml:"policy"`          // 信控策略
	Steps         int32   `yaml:"steps"`           // 实际运行步数
	TotalReward   float64 `yaml:"total_reward"`    // 累计奖励
	NSAverageWait float64 `yaml:"ns_average_wait"` // 南北向平均等待步数
	EWAverageWait float64 `yaml:"ew_average_wait"` // 东西向平均等待步数
	PhaseChanges  int     `yaml:"phase_changes"`   // 相位切换次数
	Throughput    int     `yaml:"throughput"`      // 驶离车辆总数
	Remaining     int     `yaml:"remaining"`       // 结束时仍在排队的车辆数
	Forced        bool    `yaml:"forced"`          // 是否因相位保持达到最大相位时长而结束（可与最大步数同时发生）
}

func newEpisodeResult(seed uint64, policy string) EpisodeResult {
	return EpisodeResult{
		ID:     uuid.New().String(),
		Seed:   seed,
		Policy: policy,
	}
}

// collect 从仿真器读取episode统计
func (r *EpisodeResult) collect(sim *intersection.Simulator) {
	stats := sim.Stats()
	r.Steps = stats.Step
	r.NSAverageWait, r.EWAverageWait = sim.WaitingTimeSummary()
	r.PhaseChanges = stats.PhaseChanges
	r.Throughput = stats.Throughput()
	r.Remaining = stats.Queued[intersection.PhaseNSGreen] + stats.Queued[intersection.PhaseEWGreen]
}

// Summary 多个episode的汇总
type Summary struct {
	Episodes         int     `yaml:"episodes"`
	MeanReward       float64 `yaml:"mean_reward"`
	MeanNSWait       float64 `yaml:"mean_ns_wait"`
	MeanEWWait       float64 `yaml:"mean_ew_wait"`
	MeanPhaseChanges float64 `yaml:"mean_phase_changes"`
	MeanThroughput   float64 `yaml:"mean_throughput"`
	Forced           int     `yaml:"forced"`
}

// Report 任务报告
type Report struct {
	Job      string          `yaml:"job"`
	Policy   string          `yaml:"policy"`
	Summary  Summary         `yaml:"summary"`
	Episodes []EpisodeResult `yaml:"episodes"`
}

func summarize(results []EpisodeResult) Summary {
	n := len(results)
	if n == 0 {
		return Summary{}
	}
	mean := func(f func(r EpisodeResult) float64) float64 {
		return lo.SumBy(results, f) / float64(n)
	}
	return Summary{
		Episodes:         n,
		MeanReward:       mean(func(r EpisodeResult) float64 { return r.TotalReward }),
		MeanNSWait:       mean(func(r EpisodeResult) float64 { return r.NSAverageWait }),
		MeanEWWait:       mean(func(r EpisodeResult) float64 { return r.EWAverageWait }),
		MeanPhaseChanges: mean(func(r EpisodeResult) float64 { return float64(r.PhaseChanges) }),
		MeanThroughput:   mean(func(r EpisodeResult) float64 { return float64(r.Throughput) }),
		Forced:           lo.CountBy(results, func(r EpisodeResult) bool { return r.Forced }),
	}
}
