// Package transition 提供屏幕切换用的淡入淡出过渡
//
// 每次调用铸造一个严格递增的令牌；过渡结束时只有令牌仍是最新的调用才执行收尾副作用，
// 过时的调用照常完成动画但不会在更新的调用之后错误地收尾。
package transition

import (
	"log"
	"time"

	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/task"
)

// DefaultDuration 普通过渡的时长
const DefaultDuration = config.DefaultFadeDuration

// Token 过渡令牌
type Token uint64

// Scheduler 过渡调度器
type Scheduler struct {
	runner  *task.Runner
	overlay *Overlay
	probe   ProbeConfig
	latest  Token
}

// NewScheduler 创建过渡调度器，遮罩初始为不透明
//
// 参数：
//   - runner: 协作式任务调度器
//   - probe: 帧稳定性探测参数（零值使用默认）
func NewScheduler(runner *task.Runner, probe ProbeConfig) *Scheduler {
	return &Scheduler{
		runner:  runner,
		overlay: NewOverlay(),
		probe:   probe.withDefaults(),
	}
}

// Overlay 返回遮罩
func (s *Scheduler) Overlay() *Overlay {
	return s.overlay
}

// Opacity 返回遮罩在最近一帧的不透明度
func (s *Scheduler) Opacity() float64 {
	return s.overlay.Opacity(s.runner.Now())
}

// Latest 返回最新铸造的令牌
func (s *Scheduler) Latest() Token {
	return s.latest
}

// FadeOut 淡出到黑屏
//
// 遮罩立即回到交互层，不透明度在 d 内升到 1，d 结束后任务完成。
// 淡出没有收尾副作用：遮罩保持不透明且位于交互层。
func (s *Scheduler) FadeOut(d time.Duration) *task.Task {
	return s.runner.Go("fade-out", func(t *task.Task) {
		token := s.mint()
		s.overlay.retarget(1, s.runner.Now(), d)
		s.overlay.raised = true

		t.Sleep(d)
		log.Printf("[Transition] Fade-out %d finished (latest %d)", token, s.latest)
	})
}

// FadeIn 从黑屏淡入
//
// 步骤：铸造令牌；等待帧率稳定；等待一次布局；不透明度在 d 内降到 0；
// d 结束后若令牌仍是最新的，把遮罩移出交互层。
func (s *Scheduler) FadeIn(d time.Duration) *task.Task {
	return s.runner.Go("fade-in", func(t *task.Task) {
		token := s.mint()

		result := WaitForStableFrames(t, s.probe)
		if !result.Stable {
			log.Printf("[Transition] Frame rate did not settle after %d samples", result.Samples)
		}

		t.Relayout()
		s.overlay.retarget(0, s.runner.Now(), d)

		t.Sleep(d)
		if token != s.latest {
			log.Printf("[Transition] Fade-in %d superseded by %d", token, s.latest)
			return
		}
		s.overlay.raised = false
	})
}

// mint 铸造新令牌
func (s *Scheduler) mint() Token {
	s.latest++
	return s.latest
}
