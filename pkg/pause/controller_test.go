package pause

import (
	"testing"
	"time"

	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/ecs"
	"github.com/decker502/spacejump/pkg/entities"
	"github.com/decker502/spacejump/pkg/focus"
	"github.com/decker502/spacejump/pkg/game"
	"github.com/decker502/spacejump/pkg/task"
)

type fakeSession struct {
	state   game.SessionState
	pauses  int
	resumes int
}

func (s *fakeSession) Start()                   {}
func (s *fakeSession) End()                     { s.state.Ending = true }
func (s *fakeSession) Pause()                   { s.pauses++; s.state.Paused = true }
func (s *fakeSession) ResumeLoop()              { s.resumes++; s.state.Paused = false }
func (s *fakeSession) State() game.SessionState { return s.state }

type fakeCursor struct{ enabled bool }

func (c *fakeCursor) Enable()  { c.enabled = true }
func (c *fakeCursor) Disable() { c.enabled = false }

type fixture struct {
	em      *ecs.EntityManager
	screens entities.Screens
	runner  *task.Runner
	nav     *focus.Navigator
	cursor  *fakeCursor
	ctrl    *Controller
	now     time.Duration
}

func newFixture() *fixture {
	em := ecs.NewEntityManager()
	f := &fixture{
		em:      em,
		screens: entities.BuildScreens(em),
		runner:  task.NewRunner(),
		cursor:  &fakeCursor{},
	}
	f.nav = focus.NewNavigator(em, focus.NewNavigationState())
	f.ctrl = NewController(em, f.runner, f.nav, f.screens.Pause, f.cursor, 300*time.Millisecond)
	return f
}

func (f *fixture) tickFor(d time.Duration) {
	end := f.now + d
	for f.now < end {
		f.now += 16 * time.Millisecond
		f.runner.Tick(f.now)
	}
}

func (f *fixture) pauseScreen() *components.ScreenComponent {
	sc, _ := ecs.GetComponent[*components.ScreenComponent](f.em, f.screens.Pause)
	return sc
}

// TestPauseShowsOverlay 测试暂停：会话暂停、遮罩成为活动屏幕并聚焦第一个控件
func TestPauseShowsOverlay(t *testing.T) {
	f := newFixture()
	s := &fakeSession{}
	f.ctrl.SetSession(s)

	f.ctrl.Pause()

	if s.pauses != 1 || !s.state.Paused {
		t.Error("Session should be paused once")
	}
	if !f.nav.State().IsActive(f.screens.Pause) {
		t.Error("Pause overlay should be the active screen")
	}
	cur, ok := f.nav.Current()
	cc, _ := ecs.GetComponent[*components.ControlComponent](f.em, cur)
	if !ok || cc.Name != entities.ControlPauseContinue {
		t.Error("Continue should be focused")
	}
	sc := f.pauseScreen()
	if !sc.Displayed || !sc.Raised {
		t.Error("Pause overlay should be displayed and raised")
	}
	if !f.cursor.enabled {
		t.Error("Cursor should be enabled")
	}
}

// TestPauseGuards 测试没有会话、已暂停、正在结束时暂停无效
func TestPauseGuards(t *testing.T) {
	f := newFixture()
	f.ctrl.Pause() // 没有会话

	s := &fakeSession{state: game.SessionState{Ending: true}}
	f.ctrl.SetSession(s)
	f.ctrl.Pause()
	if s.pauses != 0 {
		t.Error("Pause should be ignored while the session is ending")
	}

	s.state = game.SessionState{Paused: true}
	f.ctrl.Pause()
	if s.pauses != 0 {
		t.Error("Pause should be ignored while already paused")
	}
	if f.nav.HasActiveScreen() {
		t.Error("Ignored pause should not change the active screen")
	}
}

// TestUnpauseResumesAfterSettle 测试恢复：立即隐藏遮罩，等待后移出交互层并恢复
func TestUnpauseResumesAfterSettle(t *testing.T) {
	f := newFixture()
	s := &fakeSession{}
	f.ctrl.SetSession(s)
	f.ctrl.Pause()

	tk := f.ctrl.Unpause()

	sc := f.pauseScreen()
	if sc.Displayed {
		t.Error("Overlay should be hidden immediately")
	}
	if !sc.Raised {
		t.Error("Overlay should stay raised during the settle delay")
	}
	if f.nav.HasActiveScreen() || f.cursor.enabled {
		t.Error("Active screen and cursor should be cleared immediately")
	}
	if s.resumes != 0 {
		t.Error("Loop should not resume before the settle delay")
	}

	f.tickFor(280 * time.Millisecond)
	if s.resumes != 0 || tk.Done() {
		t.Error("Loop should not resume before 300ms")
	}

	f.tickFor(40 * time.Millisecond)
	if s.resumes != 1 || !tk.Done() {
		t.Errorf("Loop should resume once after the settle delay, resumes=%d", s.resumes)
	}
	if sc.Raised {
		t.Error("Overlay should be lowered after the settle delay")
	}
}

// TestUnpauseTwiceResumesOnce 测试连续两次恢复只恢复一次
func TestUnpauseTwiceResumesOnce(t *testing.T) {
	f := newFixture()
	s := &fakeSession{}
	f.ctrl.SetSession(s)
	f.ctrl.Pause()

	first := f.ctrl.Unpause()
	second := f.ctrl.Unpause()

	if !second.Done() {
		t.Error("Second unpause should be a completed no-op")
	}
	f.tickFor(time.Second)

	if !first.Done() {
		t.Error("First unpause should finish")
	}
	if s.resumes != 1 {
		t.Errorf("Loop should resume exactly once, got %d", s.resumes)
	}
}

// TestUnpauseWhenOverlayNotActive 测试遮罩不是活动屏幕时恢复无效
func TestUnpauseWhenOverlayNotActive(t *testing.T) {
	f := newFixture()
	s := &fakeSession{}
	f.ctrl.SetSession(s)
	f.ctrl.Pause()

	// 其它路径已经切走了活动屏幕
	f.nav.State().SetActiveScreen(f.screens.Menu)
	f.ctrl.Unpause()
	f.tickFor(time.Second)

	if s.resumes != 0 {
		t.Error("Unpause should be ignored when the overlay is not active")
	}
}

// TestToggle 测试切换
func TestToggle(t *testing.T) {
	f := newFixture()
	f.ctrl.Toggle() // 没有会话，无操作

	s := &fakeSession{}
	f.ctrl.SetSession(s)

	f.ctrl.Toggle()
	if !s.state.Paused {
		t.Fatal("Toggle should pause")
	}

	f.ctrl.Toggle()
	// 恢复等待期间再次切换：会话仍在暂停，但遮罩已不是活动屏幕
	f.ctrl.Toggle()
	f.tickFor(time.Second)

	if s.resumes != 1 || s.pauses != 1 {
		t.Errorf("Expected 1 pause and 1 resume, got %d / %d", s.pauses, s.resumes)
	}
	if f.ctrl.Session() != s {
		t.Error("Session should be kept")
	}
}
