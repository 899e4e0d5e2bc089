package task

import (
	"context"
	"errors"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
)

// episodeRun 单个episode的运行结果与错误
type episodeRun struct {
	result EpisodeResult
	err    error
}

// Run 运行
// 功能：并行运行配置中指定数量的episode，第i个episode使用种子Seed+i
// 参数：runCtx-用于取消的上下文
// 返回：按种子顺序排列的结果及其汇总；任一episode出错时返回合并后的错误
func (ctx *Context) Run(runCtx context.Context) (*Report, error) {
	c := ctx.runtimeConfig.C
	seeds := make([]uint64, c.Episodes)
	for i := range seeds {
		seeds[i] = c.Seed + uint64(i)
	}
	ctx.log.Infof("run %d episodes with policy %s", len(seeds), c.Policy)

	runs := parallel.GoMap(seeds, func(seed uint64) episodeRun {
		res, err := ctx.RunEpisode(runCtx, seed)
		return episodeRun{result: res, err: err}
	})

	errs := lo.FilterMap(runs, func(r episodeRun, _ int) (error, bool) {
		return r.err, r.err != nil
	})
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	results := lo.Map(runs, func(r episodeRun, _ int) EpisodeResult {
		return r.result
	})
	report := &Report{
		Job:      ctx.job,
		Policy:   c.Policy,
		Episodes: results,
		Summary:  summarize(results),
	}
	ctx.log.Infof("engine complete: %+v", report.Summary)
	return report, nil
}
