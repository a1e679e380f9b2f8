package transition

import (
	"time"

	"github.com/decker502/spacejump/pkg/config"
)

// FrameWaiter 等待下一帧并返回帧时间戳
// *task.Task 满足此接口；测试中可以用脚本化的时间序列代替
type FrameWaiter interface {
	NextFrame() time.Duration
}

// ProbeConfig 帧稳定性探测参数
type ProbeConfig struct {
	FrameBudget  time.Duration // 名义帧预算，帧间隔超过它视为不稳定
	StableFrames int           // 连续稳定采样数达到该值即成功
	MaxSamples   int           // 最多采样次数，超过后无条件放弃
}

// DefaultProbeConfig 返回默认探测参数（1000/60 ms，连续 5 帧，最多 30 次）
func DefaultProbeConfig() ProbeConfig {
	return ProbeConfig{
		FrameBudget:  config.DefaultFrameBudget,
		StableFrames: config.DefaultStableFrames,
		MaxSamples:   config.DefaultMaxSamples,
	}
}

// withDefaults 用默认值补全非法参数
func (c ProbeConfig) withDefaults() ProbeConfig {
	d := DefaultProbeConfig()
	if c.FrameBudget <= 0 {
		c.FrameBudget = d.FrameBudget
	}
	if c.StableFrames <= 0 {
		c.StableFrames = d.StableFrames
	}
	if c.MaxSamples <= 0 {
		c.MaxSamples = d.MaxSamples
	}
	return c
}

// ProbeResult 探测结果
type ProbeResult struct {
	Samples int  // 实际采样次数
	Stable  bool // 是否因连续稳定而结束（false 表示达到采样上限）
}

// WaitForStableFrames 等待帧率稳定
//
// 每次采样等待两个连续帧并取其时间差；时间差超过帧预算时连续计数清零，否则加一。
// 连续计数达到 StableFrames 时成功返回；采样 MaxSamples 次后无条件返回。
// 用于进程从后台恢复后，避免第一帧的巨大间隔打乱淡入的时长。
func WaitForStableFrames(fw FrameWaiter, cfg ProbeConfig) ProbeResult {
	cfg = cfg.withDefaults()

	run := 0
	samples := 0
	for {
		first := fw.NextFrame()
		second := fw.NextFrame()
		samples++

		if second-first > cfg.FrameBudget {
			run = 0
		} else {
			run++
		}

		if run >= cfg.StableFrames {
			return ProbeResult{Samples: samples, Stable: true}
		}
		if samples >= cfg.MaxSamples {
			return ProbeResult{Samples: samples, Stable: false}
		}
	}
}
