package entities

import (
	"testing"

	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/ecs"
)

// TestBuildScreens 测试屏幕和控件的初始状态
func TestBuildScreens(t *testing.T) {
	em := ecs.NewEntityManager()
	s := BuildScreens(em)

	cases := []struct {
		id        ecs.EntityID
		name      string
		controls  []string
		displayed bool
	}{
		{s.FullscreenQuestion, ScreenFullscreenQuestion, []string{ControlFullscreenYes, ControlFullscreenNo}, true},
		{s.AudioQuestion, ScreenAudioQuestion, []string{ControlAudioYes, ControlAudioNo}, true},
		{s.Menu, ScreenMenu, []string{ControlStart, ControlRockets, ControlAudio, ControlFullscreen}, false},
		{s.Pause, ScreenPause, []string{ControlPauseContinue, ControlPauseAbort}, false},
	}

	for _, c := range cases {
		sc, ok := ecs.GetComponent[*components.ScreenComponent](em, c.id)
		if !ok {
			t.Fatalf("Screen %s not created", c.name)
		}
		if sc.Name != c.name {
			t.Errorf("Screen name = %q, want %q", sc.Name, c.name)
		}
		if sc.Displayed != c.displayed {
			t.Errorf("Screen %s displayed = %v, want %v", c.name, sc.Displayed, c.displayed)
		}
		if len(sc.Controls) != len(c.controls) {
			t.Fatalf("Screen %s has %d controls, want %d", c.name, len(sc.Controls), len(c.controls))
		}
		for i, id := range sc.Controls {
			cc, _ := ecs.GetComponent[*components.ControlComponent](em, id)
			if cc.Name != c.controls[i] {
				t.Errorf("Screen %s control %d = %q, want %q", c.name, i, cc.Name, c.controls[i])
			}
			if cc.Screen != c.id {
				t.Errorf("Control %s belongs to %d, want %d", cc.Name, cc.Screen, c.id)
			}
			if cc.Active {
				t.Errorf("Control %s should not start active", cc.Name)
			}
		}
	}

	// 订阅专属控件默认隐藏
	rockets, _ := FindControl(em, ControlRockets)
	cc, _ := ecs.GetComponent[*components.ControlComponent](em, rockets)
	if !cc.Hidden || !cc.SubscriberOnly {
		t.Error("Rockets control should start hidden as subscriber-only")
	}
}

// TestIsPresent 测试控件存在性测试
func TestIsPresent(t *testing.T) {
	em := ecs.NewEntityManager()
	s := BuildScreens(em)

	yes, _ := FindControl(em, ControlFullscreenYes)
	start, _ := FindControl(em, ControlStart)
	rockets, _ := FindControl(em, ControlRockets)

	if !IsPresent(em, yes) {
		t.Error("Control on a displayed screen should be present")
	}
	if IsPresent(em, start) {
		t.Error("Control on a hidden screen should not be present")
	}

	menu, _ := ecs.GetComponent[*components.ScreenComponent](em, s.Menu)
	menu.Displayed = true
	if !IsPresent(em, start) {
		t.Error("Control should be present once its screen is displayed")
	}
	if IsPresent(em, rockets) {
		t.Error("Hidden control should not be present")
	}

	RevealSubscriberOnly(em)
	if !IsPresent(em, rockets) {
		t.Error("Revealed subscriber control should be present")
	}

	RemoveScreen(em, s.FullscreenQuestion)
	if IsPresent(em, yes) {
		t.Error("Removed control should not be present")
	}
	if IsPresent(em, 0) {
		t.Error("Invalid entity should not be present")
	}
}

// TestRemoveScreen 测试移除屏幕同时移除其控件
func TestRemoveScreen(t *testing.T) {
	em := ecs.NewEntityManager()
	s := BuildScreens(em)
	controls := append([]ecs.EntityID(nil), ScreenControls(em, s.AudioQuestion)...)

	RemoveScreen(em, s.AudioQuestion)

	if em.Exists(s.AudioQuestion) {
		t.Error("Screen should be removed")
	}
	for _, id := range controls {
		if em.Exists(id) {
			t.Errorf("Control %d should be removed with its screen", id)
		}
	}
	if _, ok := FindScreen(em, ScreenAudioQuestion); ok {
		t.Error("Removed screen should not be found by name")
	}

	// 重复移除是无操作
	RemoveScreen(em, s.AudioQuestion)
}

// TestRemoveControl 测试移除单个控件
func TestRemoveControl(t *testing.T) {
	em := ecs.NewEntityManager()
	s := BuildScreens(em)

	fullscreen, ok := FindControl(em, ControlFullscreen)
	if !ok {
		t.Fatal("Fullscreen control not found")
	}
	RemoveControl(em, fullscreen)

	if _, ok := FindControl(em, ControlFullscreen); ok {
		t.Error("Fullscreen control should be removed")
	}
	for _, id := range ScreenControls(em, s.Menu) {
		if id == fullscreen {
			t.Error("Menu should no longer list the removed control")
		}
	}
	if got := len(ScreenControls(em, s.Menu)); got != 3 {
		t.Errorf("Menu should have 3 controls, got %d", got)
	}
}

// TestFirstControlSkipsHidden 测试第一个可见控件
func TestFirstControlSkipsHidden(t *testing.T) {
	em := ecs.NewEntityManager()
	s := BuildScreens(em)

	start, _ := FindControl(em, ControlStart)
	startCC, _ := ecs.GetComponent[*components.ControlComponent](em, start)
	startCC.Hidden = true

	first, ok := FirstControl(em, s.Menu)
	if !ok {
		t.Fatal("Expected a visible control")
	}
	cc, _ := ecs.GetComponent[*components.ControlComponent](em, first)
	if cc.Name != ControlAudio {
		t.Errorf("First visible control = %q, want %q", cc.Name, ControlAudio)
	}
}

// TestSetLabel 测试修改控件文字
func TestSetLabel(t *testing.T) {
	em := ecs.NewEntityManager()
	BuildScreens(em)

	SetLabel(em, ControlAudio, "AUDIO NO")
	id, _ := FindControl(em, ControlAudio)
	cc, _ := ecs.GetComponent[*components.ControlComponent](em, id)
	if cc.Label != "AUDIO NO" {
		t.Errorf("Label = %q, want %q", cc.Label, "AUDIO NO")
	}

	// 不存在的控件被忽略
	SetLabel(em, "missing", "X")
}

// TestBuildTouchPad 测试触摸按键
func TestBuildTouchPad(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := BuildTouchPad(em)

	want := []string{"arrowLeft", "arrowRight", "arrowUp", "enter"}
	if len(ids) != len(want) {
		t.Fatalf("Expected %d touch keys, got %d", len(want), len(ids))
	}
	for i, id := range ids {
		tc, ok := ecs.GetComponent[*components.TouchTargetComponent](em, id)
		if !ok {
			t.Fatalf("Touch key %d missing component", i)
		}
		if tc.Key != want[i] {
			t.Errorf("Touch key %d = %q, want %q", i, tc.Key, want[i])
		}
		if tc.Pressed || tc.TouchID != -1 {
			t.Errorf("Touch key %s should start released", tc.Key)
		}
	}
}
