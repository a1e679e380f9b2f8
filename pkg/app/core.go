package app

import (
	"github.com/decker502/spacejump/pkg/background"
	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/ecs"
	"github.com/decker502/spacejump/pkg/entities"
	"github.com/decker502/spacejump/pkg/flow"
	"github.com/decker502/spacejump/pkg/focus"
	"github.com/decker502/spacejump/pkg/game"
	"github.com/decker502/spacejump/pkg/input"
	"github.com/decker502/spacejump/pkg/pause"
	"github.com/decker502/spacejump/pkg/scenes"
	"github.com/decker502/spacejump/pkg/task"
	"github.com/decker502/spacejump/pkg/transition"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/quasilyte/gdata/v2"
)

// CoreDeps 组装核心所需的外部依赖
type CoreDeps struct {
	Config       config.AppConfig
	KeyMap       input.KeyMap
	AudioContext *audio.Context  // 可为 nil（降级模式）
	Storage      *gdata.Manager  // 可为 nil（偏好只保存在内存）
	Fullscreen   flow.Fullscreen // 可为 nil（不支持全屏）
	Cursor       pause.Cursor
	Seed         uint64
}

// Core 与渲染前端无关的应用核心
// 桌面/移动端的 App 与终端前端共用同一套组装
type Core struct {
	Entities    *ecs.EntityManager
	Screens     entities.Screens
	TouchPad    []ecs.EntityID
	Runner      *task.Runner
	Navigator   *focus.Navigator
	Transitions *transition.Scheduler
	Pause       *pause.Controller
	Flow        *flow.Controller
	Router      *input.Router
	Keys        *input.KeyboardState
	Audio       *game.AudioManager
	Prefs       *game.SettingsManager
	Background  *background.Starfield
	Scenes      *game.SceneManager
	MenuScene   *scenes.MenuScene
}

// NewCore 组装应用核心（尚未开始引导流程，调用 Flow.Start 开始）
func NewCore(deps CoreDeps) *Core {
	cfg := deps.Config
	c := &Core{
		Entities: ecs.NewEntityManager(),
		Runner:   task.NewRunner(),
		Keys:     input.NewKeyboardState(),
		Scenes:   game.NewSceneManager(),
	}

	c.Screens = entities.BuildScreens(c.Entities)
	c.TouchPad = entities.BuildTouchPad(c.Entities)

	c.Prefs = game.NewSettingsManager(deps.Storage)
	c.Audio = game.NewAudioManager(deps.AudioContext, c.Prefs.Get().Audio)
	c.Background = background.NewStarfield(deps.Seed)
	c.MenuScene = scenes.NewMenuScene(c.Background, deps.Seed)

	c.Navigator = focus.NewNavigator(c.Entities, focus.NewNavigationState())
	c.Navigator.SetOnFocusChanged(func(ecs.EntityID) {
		c.Audio.PlayFocusCue()
	})

	c.Transitions = transition.NewScheduler(c.Runner, transition.ProbeConfig{
		FrameBudget:  cfg.Transition.FrameBudget,
		StableFrames: cfg.Transition.StableFrames,
		MaxSamples:   cfg.Transition.MaxSamples,
	})
	c.Pause = pause.NewController(c.Entities, c.Runner, c.Navigator, c.Screens.Pause, deps.Cursor, cfg.Pause.SettleDelay)

	keyMap := deps.KeyMap
	if keyMap == nil {
		keyMap = input.DefaultKeyMap()
	}
	c.Router = input.NewRouter(c.Entities, keyMap, c.Keys, c.Navigator, c.Pause, c.Audio)

	c.Flow = flow.NewController(flow.Deps{
		Entities:    c.Entities,
		Screens:     c.Screens,
		Runner:      c.Runner,
		Navigator:   c.Navigator,
		Transitions: c.Transitions,
		Pause:       c.Pause,
		Background:  c.Background,
		Audio:       c.Audio,
		Prefs:       c.Prefs,
		Fullscreen:  deps.Fullscreen,
		Cursor:      deps.Cursor,
		Scenes:      c.Scenes,
		MenuScene:   c.MenuScene,
		NewSession:  scenes.NewSessionFactory(c.Keys, c.Audio, c.Background),
	}, flow.Options{
		FadeDuration:      cfg.Transition.FadeDuration,
		GameStartDuration: cfg.Transition.GameStartDuration,
		Subscriber:        cfg.Features.Subscriber,
	})

	return c
}
