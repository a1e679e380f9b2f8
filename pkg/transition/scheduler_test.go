package transition

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/spacejump/pkg/task"
)

const frame = 16 * time.Millisecond

type clock struct {
	r   *task.Runner
	now time.Duration
}

func (c *clock) tick(n int) {
	for i := 0; i < n; i++ {
		c.now += frame
		c.r.Tick(c.now)
	}
}

// tickUntil 推进直到任务结束，返回推进的帧数
func (c *clock) tickUntil(t *testing.T, tk *task.Task) int {
	t.Helper()
	n := 0
	for !tk.Done() {
		if n > 10000 {
			t.Fatal("task did not finish")
		}
		c.tick(1)
		n++
	}
	return n
}

func newTestScheduler() (*Scheduler, *clock) {
	r := task.NewRunner()
	return NewScheduler(r, DefaultProbeConfig()), &clock{r: r}
}

// TestOverlayStartsOpaqueAndRaised 测试遮罩初始状态
func TestOverlayStartsOpaqueAndRaised(t *testing.T) {
	s, _ := newTestScheduler()
	if s.Opacity() != 1 || !s.Overlay().Raised() {
		t.Errorf("Overlay should start opaque and raised, got opacity=%v raised=%v", s.Opacity(), s.Overlay().Raised())
	}
}

// TestFadeInLowersOverlay 测试单次淡入结束后遮罩移出交互层
func TestFadeInLowersOverlay(t *testing.T) {
	s, c := newTestScheduler()

	tk := s.FadeIn(DefaultDuration)
	if s.Latest() != 1 {
		t.Errorf("Token should be minted at call time, latest=%d", s.Latest())
	}

	// 探测（10 帧）+ 布局（1 帧）之前遮罩保持不透明
	c.tick(10)
	if s.Opacity() != 1 {
		t.Errorf("Overlay should stay opaque during the probe, got %v", s.Opacity())
	}

	c.tickUntil(t, tk)
	if s.Overlay().Raised() {
		t.Error("Overlay should be lowered after the fade-in")
	}
	if s.Opacity() != 0 {
		t.Errorf("Overlay should be transparent, got %v", s.Opacity())
	}
}

// TestFadeInDurationIsTimerBased 测试淡入时长按计时器而非帧数
func TestFadeInDurationIsTimerBased(t *testing.T) {
	s, c := newTestScheduler()
	tk := s.FadeIn(500 * time.Millisecond)

	c.tick(11) // 探测 + 布局
	start := c.now

	c.tickUntil(t, tk)
	elapsed := c.now - start
	if elapsed < 500*time.Millisecond || elapsed > 500*time.Millisecond+frame {
		t.Errorf("Fade should take ~500ms, took %v", elapsed)
	}
}

// TestOverlappingFadeInsOnlyLatestCompletes 测试两个重叠的淡入只有后者收尾
func TestOverlappingFadeInsOnlyLatestCompletes(t *testing.T) {
	s, c := newTestScheduler()

	a := s.FadeIn(DefaultDuration)
	c.tick(3)
	b := s.FadeIn(DefaultDuration)

	c.tickUntil(t, a)
	if !s.Overlay().Raised() {
		t.Fatal("Stale fade-in must not lower the overlay")
	}
	if b.Done() {
		t.Fatal("Later fade-in should still be running")
	}

	c.tickUntil(t, b)
	if s.Overlay().Raised() {
		t.Error("Latest fade-in should lower the overlay")
	}
}

// TestFadeOutSupersedesFadeIn 测试淡入期间开始淡出，淡入结束后遮罩仍在交互层
func TestFadeOutSupersedesFadeIn(t *testing.T) {
	s, c := newTestScheduler()

	in := s.FadeIn(DefaultDuration)
	c.tick(12)
	out := s.FadeOut(DefaultDuration)

	if !s.Overlay().Raised() {
		t.Fatal("Fade-out should raise the overlay immediately")
	}

	c.tickUntil(t, in)
	c.tickUntil(t, out)

	if !s.Overlay().Raised() {
		t.Error("Overlay must stay raised after a superseded fade-in")
	}
	if s.Latest() != 2 {
		t.Errorf("Expected 2 tokens minted, got %d", s.Latest())
	}
}

// TestFadeOutAfterLoweredOverlay 测试淡出让遮罩回到不透明
func TestFadeOutAfterLoweredOverlay(t *testing.T) {
	s, c := newTestScheduler()
	c.tickUntil(t, s.FadeIn(DefaultDuration))

	out := s.FadeOut(200 * time.Millisecond)
	if !s.Overlay().Raised() {
		t.Error("Fade-out should raise the overlay at once")
	}

	c.tick(6) // 96ms，过渡进行中
	mid := s.Opacity()
	if mid <= 0 || mid >= 1 {
		t.Errorf("Opacity should be between 0 and 1 mid-fade, got %v", mid)
	}

	c.tickUntil(t, out)
	if s.Opacity() != 1 {
		t.Errorf("Overlay should be opaque after fade-out, got %v", s.Opacity())
	}
}

// TestOverlayOpacityInterpolation 测试遮罩从当前值向目标插值
func TestOverlayOpacityInterpolation(t *testing.T) {
	o := NewOverlay()
	o.retarget(0, 0, 100*time.Millisecond)

	if o.Opacity(0) != 1 {
		t.Errorf("Opacity at start = %v, want 1", o.Opacity(0))
	}
	if got := o.Opacity(50 * time.Millisecond); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Opacity at midpoint = %v, want 0.5", got)
	}
	if o.Opacity(100*time.Millisecond) != 0 {
		t.Errorf("Opacity at end = %v, want 0", o.Opacity(100*time.Millisecond))
	}

	// 中途改向：从当前值开始
	o.retarget(0, 0, 100*time.Millisecond)
	o.retarget(1, 50*time.Millisecond, 100*time.Millisecond)
	if got := o.Opacity(50 * time.Millisecond); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Retarget should start from the current opacity, got %v", got)
	}
	if o.Target() != 1 {
		t.Errorf("Target = %v, want 1", o.Target())
	}
}
