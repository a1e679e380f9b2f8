package app

import (
	"strings"
	"testing"
	"time"

	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/entities"
	"github.com/decker502/spacejump/pkg/flow"
	"github.com/decker502/spacejump/pkg/scenes"
)

type fakeCursor struct{ enabled bool }

func (c *fakeCursor) Enable()  { c.enabled = true }
func (c *fakeCursor) Disable() { c.enabled = false }

type harness struct {
	core   *Core
	cursor *fakeCursor
	now    time.Duration
}

func newHarness(cfg config.AppConfig) *harness {
	h := &harness{cursor: &fakeCursor{}}
	h.core = NewCore(CoreDeps{
		Config: cfg,
		Cursor: h.cursor,
		Seed:   1,
	})
	return h
}

func (h *harness) tickFor(d time.Duration) {
	end := h.now + d
	for h.now < end {
		h.now += 16 * time.Millisecond
		h.core.Runner.Tick(h.now)
		h.core.Scenes.Update(1.0 / 60)
	}
}

func (h *harness) press(code string) {
	h.core.Router.OnPhysicalKeyDown(code)
	h.core.Router.OnPhysicalKeyUp(code)
}

func (h *harness) focused() string {
	id, ok := h.core.Navigator.Current()
	if !ok {
		return ""
	}
	for _, name := range []string{
		entities.ControlAudioYes, entities.ControlAudioNo, entities.ControlStart,
		entities.ControlAudio, entities.ControlPauseContinue, entities.ControlPauseAbort,
	} {
		if cid, ok := entities.FindControl(h.core.Entities, name); ok && cid == id {
			return name
		}
	}
	return "?"
}

// TestCoreKeyboardWalkthrough 测试纯键盘走完整个流程：
// 音频询问 → 菜单 → 开始游戏 → 暂停 → 中止 → 菜单
func TestCoreKeyboardWalkthrough(t *testing.T) {
	h := newHarness(config.AppConfig{})
	h.core.Flow.Start()

	// 没有全屏能力：直接进入音频询问
	if h.core.Flow.Stage() != flow.StageAudioQuestion {
		t.Fatalf("Expected audio question, got %s", h.core.Flow.Stage())
	}
	if _, ok := entities.FindControl(h.core.Entities, entities.ControlFullscreen); ok {
		t.Error("Fullscreen control should be pruned without the capability")
	}
	h.tickFor(time.Second)

	// 方向键循环焦点
	h.press("ArrowDown")
	if got := h.focused(); got != entities.ControlAudioNo {
		t.Errorf("Expected focus on audio--no, got %q", got)
	}
	h.press("ArrowDown")
	if got := h.focused(); got != entities.ControlAudioYes {
		t.Errorf("Expected focus to wrap to audio--yes, got %q", got)
	}

	h.press("Enter")
	h.tickFor(time.Second)
	if h.core.Flow.Stage() != flow.StageMenu {
		t.Fatalf("Expected menu, got %s", h.core.Flow.Stage())
	}
	if !h.cursor.enabled {
		t.Error("Cursor should be enabled in the menu")
	}
	if h.core.Scenes.GetCurrentScene() != h.core.MenuScene {
		t.Error("Menu backdrop should be the current scene")
	}

	h.press("Enter")
	h.tickFor(time.Second)
	if h.core.Flow.Stage() != flow.StageGame {
		t.Fatalf("Expected game, got %s", h.core.Flow.Stage())
	}
	session, ok := h.core.Pause.Session().(*scenes.JumpSession)
	if !ok {
		t.Fatalf("Expected a JumpSession, got %T", h.core.Pause.Session())
	}
	if !session.Running() {
		t.Error("Session should be running")
	}

	// 游戏中没有焦点控件，确认键切换暂停
	h.press("Enter")
	if !session.State().Paused {
		t.Fatal("Enter should pause the game")
	}
	if got := h.focused(); got != entities.ControlPauseContinue {
		t.Errorf("Expected focus on pause--continue, got %q", got)
	}

	h.press("ArrowDown")
	h.press("Enter")
	h.tickFor(2 * time.Second)

	if session.Running() {
		t.Error("Aborted session should stop")
	}
	if h.core.Flow.Stage() != flow.StageMenu {
		t.Errorf("Expected menu after abort, got %s", h.core.Flow.Stage())
	}
	if h.core.Pause.Session() != nil {
		t.Error("Pause controller should drop the aborted session")
	}
}

// TestCoreSubscriberRevealsRockets 测试订阅配置显示火箭模式
func TestCoreSubscriberRevealsRockets(t *testing.T) {
	cfg := config.AppConfig{}
	cfg.Features.Subscriber = true
	h := newHarness(cfg)
	h.core.Flow.Start()

	id, _ := entities.FindControl(h.core.Entities, entities.ControlRockets)
	h.press("Enter")
	h.tickFor(time.Second)
	if !entities.IsPresent(h.core.Entities, id) {
		t.Error("Rockets should be visible to subscribers in the menu")
	}
}

// TestCoreReport 测试诊断文本
func TestCoreReport(t *testing.T) {
	h := newHarness(config.AppConfig{})
	h.core.Flow.Start()
	h.tickFor(100 * time.Millisecond)

	report := h.core.Report()
	for _, want := range []string{
		"stage: audio-question",
		"active screen: audio-question",
		"focused control: audio--yes",
		"prefs: fullscreen=true audio=true",
		"session: none",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("Report missing %q:\n%s", want, report)
		}
	}
}
