package task

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/intersection-sim/entity/intersection"
	"github.com/tsinghua-fib-lab/intersection-sim/entity/intersection/trafficlight"
	"github.com/tsinghua-fib-lab/intersection-sim/utils/config"
	"github.com/tsinghua-fib-lab/intersection-sim/utils/randengine"
)

// 信控策略随机数种子的扰动量，使策略与仿真器的随机序列互不相同
const policySeedMask uint64 = 0x9e3779b97f4a7c15

// Context 仿真任务上下文
// 功能：包含一次仿真任务的配置与日志，负责按配置运行若干episode
// 说明：每个episode独占一个仿真器、一个信控策略与各自的随机数引擎，可以并行运行
type Context struct {
	// 任务名
	job string
	// 运行时配置
	runtimeConfig *config.RuntimeConfig
	// 日志
	log *logrus.Entry
}

// NewContext 创建新的仿真任务上下文
// 功能：校验路口参数与信控策略名，创建任务上下文
// 参数：job-任务名称，rc-运行时配置
// 返回：任务上下文，配置非法时返回错误
func NewContext(job string, rc *config.RuntimeConfig) (*Context, error) {
	if err := rc.I.Validate(); err != nil {
		return nil, err
	}
	if _, err := trafficlight.New(rc.C, randengine.New(0)); err != nil {
		return nil, err
	}
	return &Context{
		job:           job,
		runtimeConfig: rc,
		log:           log.WithField("job", job),
	}, nil
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

// RunEpisode 运行一个episode
// 功能：以给定种子创建仿真器与信控策略，从reset开始循环step直到done
// 参数：runCtx-用于取消的上下文，seed-随机数种子
// 返回：episode结果；上下文取消时返回已运行部分的结果与ctx.Err()
// 算法说明：
// 1. 仿真器使用randengine.New(seed)，信控策略使用扰动后的种子
// 2. 每步由策略根据观测与当前相位给出动作，交给仿真器执行
// 3. 每隔心跳间隔输出一次状态日志
// 4. 结束后汇总奖励、平均等待时间、相位切换次数与通过量
func (ctx *Context) RunEpisode(runCtx context.Context, seed uint64) (EpisodeResult, error) {
	rc := ctx.runtimeConfig
	res := newEpisodeResult(seed, rc.C.Policy)

	sim, err := intersection.New(rc.I, randengine.New(seed))
	if err != nil {
		return res, err
	}
	ctrl, err := trafficlight.New(rc.C, randengine.New(seed^policySeedMask))
	if err != nil {
		return res, err
	}
	ctrl.Reset()

	obs := sim.Reset()
	for {
		if err := runCtx.Err(); err != nil {
			res.collect(sim)
			return res, err
		}
		step, err := sim.Step(ctrl.Act(obs, sim.Phase()))
		if err != nil {
			return res, fmt.Errorf("episode %s step %d: %w", res.ID, sim.CurrentStep(), err)
		}
		obs = step.Observation
		res.TotalReward += step.Reward

		if hb := rc.C.HeartbeatInterval; hb > 0 && sim.CurrentStep()%hb == 0 {
			stats := sim.Stats()
			ctx.log.Debugf(
				"episode %s STEP: %d phase=%v duration=%d queue=%v",
				res.ID, stats.Step, stats.Phase, stats.PhaseDuration, stats.Queued,
			)
		}
		if step.Done {
			break
		}
	}
	res.collect(sim)
	res.Forced = sim.Stats().PhaseDuration >= rc.I.MaxPhaseDuration
	ctx.log.Debugf("episode %s complete: %+v", res.ID, res)
	return res, nil
}
