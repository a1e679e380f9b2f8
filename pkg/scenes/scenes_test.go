package scenes

import (
	"math"
	"testing"

	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/game"
	"github.com/decker502/spacejump/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeBackground struct {
	height float64
}

func (b *fakeBackground) Increment()                                {}
func (b *fakeBackground) Draw(screen *ebiten.Image, offset float64) {}
func (b *fakeBackground) Height() float64                           { return b.height }

type fakeSounds struct {
	played []string
}

func (s *fakeSounds) PlaySound(soundID string) bool {
	s.played = append(s.played, soundID)
	return true
}

func (s *fakeSounds) count(soundID string) int {
	n := 0
	for _, id := range s.played {
		if id == soundID {
			n++
		}
	}
	return n
}

const frame = 1.0 / 60

func step(s *JumpSession, seconds float64) {
	for t := 0.0; t < seconds; t += frame {
		s.Update(frame)
	}
}

// ===== 菜单背景 =====

// TestMenuSceneScrolls 测试菜单背景以 10 像素/秒滚动并在循环高度内折回
func TestMenuSceneScrolls(t *testing.T) {
	bg := &fakeBackground{height: 1000}
	scene := NewMenuScene(bg, 42)

	start := scene.Offset()
	if start < 0 || start >= bg.height {
		t.Fatalf("Start offset %v out of range", start)
	}

	scene.Update(1.0)
	want := math.Mod(start+config.MenuScrollSpeed, bg.height)
	if math.Abs(scene.Offset()-want) > 1e-9 {
		t.Errorf("Expected offset %v, got %v", want, scene.Offset())
	}
}

// TestMenuSceneSeedDeterminesStart 测试相同种子得到相同的起始位置
func TestMenuSceneSeedDeterminesStart(t *testing.T) {
	bg := &fakeBackground{height: 1000}
	a := NewMenuScene(bg, 7)
	b := NewMenuScene(bg, 7)
	if a.Offset() != b.Offset() {
		t.Errorf("Same seed should give the same offset: %v vs %v", a.Offset(), b.Offset())
	}
}

// ===== 游戏会话 =====

func newSession(params game.StartParams, onEnded func()) (*JumpSession, *input.KeyboardState, *fakeSounds) {
	keys := input.NewKeyboardState()
	sounds := &fakeSounds{}
	s := NewJumpSession(params, keys, sounds, &fakeBackground{height: 2560}, 1, onEnded)
	return s, keys, sounds
}

// TestSessionIdleBeforeStart 测试开始前不推进
func TestSessionIdleBeforeStart(t *testing.T) {
	s, keys, _ := newSession(game.StartParams{}, nil)
	keys.Set(input.KeyArrowRight, true)
	x, _ := s.Position()

	step(s, 0.5)

	if nx, _ := s.Position(); nx != x {
		t.Error("Session should not move before Start")
	}
}

// TestSessionJumpAndLand 测试起跳与落地
func TestSessionJumpAndLand(t *testing.T) {
	s, keys, sounds := newSession(game.StartParams{}, nil)
	s.Start()

	keys.Set(input.KeyArrowUp, true)
	s.Update(frame)
	keys.Set(input.KeyArrowUp, false)

	if s.Grounded() {
		t.Fatal("Player should be airborne after jumping")
	}
	if sounds.count(game.SoundJump) != 1 {
		t.Errorf("Expected one jump sound, got %v", sounds.played)
	}

	step(s, 2)

	if !s.Grounded() {
		t.Error("Player should land again")
	}
	if sounds.count(game.SoundLand) == 0 {
		t.Error("Expected a land sound")
	}
	if s.State().Ending {
		t.Error("A single jump should not crash")
	}
}

// TestSessionPauseFreezesLoop 测试暂停时不推进
func TestSessionPauseFreezesLoop(t *testing.T) {
	s, keys, _ := newSession(game.StartParams{}, nil)
	s.Start()
	s.Pause()
	if !s.State().Paused {
		t.Fatal("Session should report paused")
	}

	keys.Set(input.KeyArrowRight, true)
	x, _ := s.Position()
	step(s, 0.5)
	if nx, _ := s.Position(); nx != x {
		t.Error("Paused session should not move")
	}

	s.ResumeLoop()
	step(s, 0.1)
	if nx, _ := s.Position(); nx == x {
		t.Error("Resumed session should move")
	}
}

// TestSessionCrashEndsOnce 测试坠毁：进入结束阶段，动画结束后只通知一次
func TestSessionCrashEndsOnce(t *testing.T) {
	ended := 0
	s, _, sounds := newSession(game.StartParams{}, func() { ended++ })
	s.Start()

	// 把玩家放到视野下方
	s.grounded = false
	s.y = s.cameraY + float64(config.GameWindowHeight) + 1
	s.Update(frame)

	if !s.State().Ending {
		t.Fatal("Session should be ending after a crash")
	}
	if sounds.count(game.SoundCrash) != 1 {
		t.Errorf("Expected one crash sound, got %v", sounds.played)
	}
	if ended != 0 {
		t.Fatal("onEnded should wait for the ending animation")
	}

	step(s, config.EndingDuration+0.5)

	if ended != 1 {
		t.Errorf("Expected onEnded once, got %d", ended)
	}
	if s.Running() {
		t.Error("Session should stop running")
	}
}

// TestSessionEndDoesNotNotify 测试中止不触发结束回调
func TestSessionEndDoesNotNotify(t *testing.T) {
	ended := 0
	s, keys, _ := newSession(game.StartParams{}, func() { ended++ })
	s.Start()
	s.End()

	keys.Set(input.KeyArrowRight, true)
	x, _ := s.Position()
	step(s, 0.5)

	if ended != 0 {
		t.Error("End should not call onEnded")
	}
	if nx, _ := s.Position(); nx != x {
		t.Error("Ended session should not move")
	}
}

// TestRocketsBurnFuel 测试火箭模式：空中按住上键消耗燃料
func TestRocketsBurnFuel(t *testing.T) {
	s, keys, _ := newSession(game.StartParams{Rockets: true}, nil)
	s.Start()
	if s.Fuel() != config.RocketFuelSeconds {
		t.Fatalf("Expected full fuel, got %v", s.Fuel())
	}

	keys.Set(input.KeyArrowUp, true)
	s.Update(frame) // 起跳
	s.Update(frame) // 推进

	if s.Fuel() >= config.RocketFuelSeconds {
		t.Error("Fuel should be consumed while thrusting")
	}
}

// TestNoThrustWithoutRockets 测试普通模式没有燃料
func TestNoThrustWithoutRockets(t *testing.T) {
	s, _, _ := newSession(game.StartParams{}, nil)
	if s.Fuel() != 0 {
		t.Errorf("Expected no fuel, got %v", s.Fuel())
	}
}

// TestCameraFollowsAndPlatformsGenerate 测试镜头上移并持续生成平台
func TestCameraFollowsAndPlatformsGenerate(t *testing.T) {
	s, _, _ := newSession(game.StartParams{}, nil)
	s.Start()

	s.grounded = false
	s.vy = 0
	s.y = -2000
	s.Update(frame)

	if s.cameraY >= 0 {
		t.Fatalf("Camera should move up, cameraY=%v", s.cameraY)
	}
	if s.topY > s.cameraY-config.PlatformLookahead+config.PlatformSpacing {
		t.Errorf("Platforms should be generated above the view: topY=%v cameraY=%v", s.topY, s.cameraY)
	}
	bottom := s.cameraY + float64(config.GameWindowHeight)
	for _, p := range s.platforms {
		if p.y > bottom {
			t.Errorf("Platform below the view should be pruned: %v", p.y)
		}
	}
	if s.Score() <= 0 {
		t.Error("Score should grow with height")
	}
}

// TestSessionFactory 测试会话工厂
func TestSessionFactory(t *testing.T) {
	factory := NewSessionFactory(input.NewKeyboardState(), nil, &fakeBackground{height: 2560})

	a := factory(game.StartParams{Rockets: true}, nil)
	b := factory(game.StartParams{}, nil)

	ja, ok := a.(*JumpSession)
	if !ok {
		t.Fatalf("Expected *JumpSession, got %T", a)
	}
	if _, ok := a.(game.Scene); !ok {
		t.Error("Session should also be a scene")
	}
	if ja.ID() == b.(*JumpSession).ID() {
		t.Error("Session IDs should be unique")
	}
	if !ja.params.Rockets {
		t.Error("Factory should pass start params")
	}
}
