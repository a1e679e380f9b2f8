// Package flow 编排启动引导（全屏询问 → 音频询问 → 菜单）、开始游戏与返回菜单
package flow

import (
	"log"
	"time"

	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/ecs"
	"github.com/decker502/spacejump/pkg/entities"
	"github.com/decker502/spacejump/pkg/focus"
	"github.com/decker502/spacejump/pkg/game"
	"github.com/decker502/spacejump/pkg/pause"
	"github.com/decker502/spacejump/pkg/task"
	"github.com/decker502/spacejump/pkg/transition"
)

// Audio 流程依赖的音频操作
type Audio interface {
	Enabled() bool
	SetEnabled(enabled bool)
	BuildSamples()
}

// Preferences 持久化偏好
type Preferences interface {
	Get() game.GameSettings
	Update(mutate func(s *game.GameSettings)) error
}

// Fullscreen 全屏能力
type Fullscreen interface {
	// Available 平台是否支持切换全屏
	Available() bool
	IsFullscreen() bool
	Set(fullscreen bool) error
}

// Background 背景变体计数
type Background interface {
	Increment()
}

// Stage 流程所处阶段
type Stage string

const (
	StageBoot               Stage = "boot"
	StageFullscreenQuestion Stage = "fullscreen-question"
	StageAudioQuestion      Stage = "audio-question"
	StageMenu               Stage = "menu"
	StageGame               Stage = "game"
)

// Deps 流程控制器的协作方
type Deps struct {
	Entities    *ecs.EntityManager
	Screens     entities.Screens
	Runner      *task.Runner
	Navigator   *focus.Navigator
	Transitions *transition.Scheduler
	Pause       *pause.Controller
	Background  Background
	Audio       Audio
	Prefs       Preferences
	Fullscreen  Fullscreen // 可为 nil，视为不支持
	Cursor      pause.Cursor
	Scenes      *game.SceneManager // 可为 nil（终端前端）
	MenuScene   game.Scene         // 菜单背景场景，可为 nil
	NewSession  game.SessionFactory
}

// Options 流程参数
type Options struct {
	FadeDuration      time.Duration // 普通过渡时长
	GameStartDuration time.Duration // 开始游戏时的淡入时长
	Subscriber        bool          // 显示订阅用户专属控件
}

// Controller 屏幕流程控制器
type Controller struct {
	Deps
	opts Options

	stage      Stage
	menuActive bool
	dismissing map[ecs.EntityID]bool // 正在关闭的询问屏幕
}

// NewController 创建流程控制器，并把各控件的动作绑定到流程处理函数
func NewController(deps Deps, opts Options) *Controller {
	if opts.FadeDuration <= 0 {
		opts.FadeDuration = transition.DefaultDuration
	}
	if opts.GameStartDuration <= 0 {
		opts.GameStartDuration = config.DefaultGameStartDuration
	}
	c := &Controller{
		Deps:       deps,
		opts:       opts,
		stage:      StageBoot,
		dismissing: make(map[ecs.EntityID]bool),
	}
	c.bindControls()
	return c
}

// Stage 返回当前阶段
func (c *Controller) Stage() Stage {
	return c.stage
}

// MenuActive 菜单（及其背景动画）是否激活
func (c *Controller) MenuActive() bool {
	return c.menuActive
}

// Start 从初始状态开始引导流程
func (c *Controller) Start() {
	if c.opts.Subscriber {
		n := entities.RevealSubscriberOnly(c.Entities)
		log.Printf("[FlowController] Subscriber features enabled, revealed %d controls", n)
	}
	// 询问屏幕同样需要可见的光标
	c.Cursor.Enable()
	c.goToFullscreen()
}

// bindControls 绑定控件动作
func (c *Controller) bindControls() {
	handlers := map[string]func(){
		entities.ControlFullscreenYes: c.onFullscreenYes,
		entities.ControlFullscreenNo:  c.onFullscreenNo,
		entities.ControlAudioYes:      c.onAudioYes,
		entities.ControlAudioNo:       c.onAudioNo,
		entities.ControlStart:         func() { c.StartGame(game.StartParams{}) },
		entities.ControlRockets:       func() { c.StartGame(game.StartParams{Rockets: true}) },
		entities.ControlAudio:         func() { c.setAudioActive(!c.Audio.Enabled()) },
		entities.ControlFullscreen:    c.onToggleFullscreen,
		entities.ControlPauseContinue: func() { c.Pause.Unpause() },
		entities.ControlPauseAbort:    func() { c.Abort() },
	}
	for name, fn := range handlers {
		id, ok := entities.FindControl(c.Entities, name)
		if !ok {
			continue
		}
		cc, _ := ecs.GetComponent[*components.ControlComponent](c.Entities, id)
		cc.OnInvoke = fn
	}
}

// ===== 引导流程 =====

// goToFullscreen 进入全屏询问；不支持全屏或用户曾拒绝时跳过
func (c *Controller) goToFullscreen() {
	available := c.Fullscreen != nil && c.Fullscreen.Available()
	if !c.Prefs.Get().Fullscreen || !available {
		if !available {
			if id, ok := entities.FindControl(c.Entities, entities.ControlFullscreen); ok {
				entities.RemoveControl(c.Entities, id)
			}
			log.Printf("[FlowController] Fullscreen unavailable, pruned fullscreen controls")
		}
		entities.RemoveScreen(c.Entities, c.Screens.FullscreenQuestion)
		c.goToAudio()
		return
	}

	c.showQuestion(StageFullscreenQuestion, c.Screens.FullscreenQuestion, entities.ControlFullscreenYes)
}

// goToAudio 进入音频询问；用户曾拒绝音频时跳过
func (c *Controller) goToAudio() {
	if !c.Prefs.Get().Audio {
		entities.RemoveScreen(c.Entities, c.Screens.AudioQuestion)
		c.goToMenu()
		return
	}

	c.showQuestion(StageAudioQuestion, c.Screens.AudioQuestion, entities.ControlAudioYes)
}

// goToMenu 显示菜单并淡入
func (c *Controller) goToMenu() {
	c.activateMenu()
	c.updateAudioText()
	c.Transitions.FadeIn(c.opts.FadeDuration)
}

// showQuestion 把询问屏幕设为活动屏幕，默认聚焦"是"，然后淡入
func (c *Controller) showQuestion(stage Stage, screen ecs.EntityID, yes string) {
	c.stage = stage
	c.Navigator.State().SetActiveScreen(screen)
	if id, ok := entities.FindControl(c.Entities, yes); ok {
		c.Navigator.Activate(id)
	}
	c.Transitions.FadeIn(c.opts.FadeDuration)
	log.Printf("[FlowController] Showing %s", stage)
}

// dismissQuestion 关闭询问屏幕：淡出、切换背景变体、移除屏幕、进入下一步
// 同一屏幕重复关闭时返回已结束的任务
func (c *Controller) dismissQuestion(screen ecs.EntityID, next func()) *task.Task {
	if c.dismissing[screen] || !c.Entities.Exists(screen) {
		return task.Completed()
	}
	c.dismissing[screen] = true

	return c.Runner.Go("dismiss-question", func(t *task.Task) {
		t.Await(c.Transitions.FadeOut(c.opts.FadeDuration))
		c.Background.Increment()
		entities.RemoveScreen(c.Entities, screen)
		delete(c.dismissing, screen)
		next()
	})
}

func (c *Controller) onFullscreenYes() {
	closing := c.dismissQuestion(c.Screens.FullscreenQuestion, c.goToAudio)
	c.Runner.Go("request-fullscreen", func(t *task.Task) {
		t.Await(closing)
		if c.Fullscreen == nil {
			return
		}
		if err := c.Fullscreen.Set(true); err != nil {
			log.Printf("[FlowController] Warning: Failed to enter fullscreen: %v", err)
		}
	})
}

func (c *Controller) onFullscreenNo() {
	if err := c.Prefs.Update(func(s *game.GameSettings) { s.Fullscreen = false }); err != nil {
		log.Printf("[FlowController] Warning: Failed to save fullscreen preference: %v", err)
	}
	c.dismissQuestion(c.Screens.FullscreenQuestion, c.goToAudio)
}

func (c *Controller) onAudioYes() {
	c.setAudioActive(true)
	c.dismissQuestion(c.Screens.AudioQuestion, c.goToMenu)
}

func (c *Controller) onAudioNo() {
	c.setAudioActive(false)
	c.dismissQuestion(c.Screens.AudioQuestion, c.goToMenu)
}

// ===== 菜单 =====

// activateMenu 显示菜单并聚焦"开始"
func (c *Controller) activateMenu() {
	c.Background.Increment()
	if c.Scenes != nil && c.MenuScene != nil {
		c.Scenes.SwitchTo(c.MenuScene)
	}

	c.Cursor.Enable()
	c.menuActive = true
	c.stage = StageMenu
	if sc, ok := ecs.GetComponent[*components.ScreenComponent](c.Entities, c.Screens.Menu); ok {
		sc.Displayed = true
		sc.Raised = true
	}
	c.Navigator.State().SetActiveScreen(c.Screens.Menu)
	if id, ok := entities.FindControl(c.Entities, entities.ControlStart); ok {
		c.Navigator.Activate(id)
	}
	log.Printf("[FlowController] Menu activated")
}

// deactivateMenu 隐藏菜单
func (c *Controller) deactivateMenu() {
	c.Cursor.Disable()
	c.menuActive = false
	c.Navigator.State().ClearActiveScreen()
	if sc, ok := ecs.GetComponent[*components.ScreenComponent](c.Entities, c.Screens.Menu); ok {
		sc.Displayed = false
		sc.Raised = false
	}
}

// setAudioActive 保存音频偏好、切换音频并刷新菜单文字
func (c *Controller) setAudioActive(enabled bool) {
	if err := c.Prefs.Update(func(s *game.GameSettings) { s.Audio = enabled }); err != nil {
		log.Printf("[FlowController] Warning: Failed to save audio preference: %v", err)
	}
	c.Audio.SetEnabled(enabled)
	c.updateAudioText()
}

// updateAudioText 刷新菜单中音频控件的文字
func (c *Controller) updateAudioText() {
	label := "AUDIO NO"
	if c.Audio.Enabled() {
		label = "AUDIO YES"
	}
	entities.SetLabel(c.Entities, entities.ControlAudio, label)
}

// onToggleFullscreen 菜单中的全屏切换
func (c *Controller) onToggleFullscreen() {
	if c.Fullscreen == nil {
		return
	}
	if err := c.Fullscreen.Set(!c.Fullscreen.IsFullscreen()); err != nil {
		log.Printf("[FlowController] Warning: Failed to toggle fullscreen: %v", err)
	}
}

// ===== 游戏会话 =====

// StartGame 开始一局游戏
//
// 顺序：隐藏菜单、淡出、合成游戏音效、创建并启动会话、以较长时长淡入。
//
// 返回：
//   - *task.Task: 淡入结束后完成
func (c *Controller) StartGame(params game.StartParams) *task.Task {
	c.deactivateMenu()

	return c.Runner.Go("start-game", func(t *task.Task) {
		t.Await(c.Transitions.FadeOut(c.opts.FadeDuration))
		c.Audio.BuildSamples()

		var session game.Session
		session = c.NewSession(params, func() { c.onSessionEnded(session) })
		c.Pause.SetSession(session)
		session.Start()
		if scene, ok := session.(game.Scene); ok && c.Scenes != nil {
			c.Scenes.SwitchTo(scene)
		}
		c.stage = StageGame
		log.Printf("[FlowController] Game started (rockets=%v)", params.Rockets)

		t.Await(c.Transitions.FadeIn(c.opts.GameStartDuration))
	})
}

// Abort 从暂停遮罩中止游戏：等待恢复完成、结束会话、返回菜单
func (c *Controller) Abort() *task.Task {
	return c.Runner.Go("abort-game", func(t *task.Task) {
		session := c.Pause.Session()
		if session == nil {
			return
		}
		t.Await(c.Pause.Unpause())
		session.End()
		c.Pause.SetSession(nil)
		log.Printf("[FlowController] Game aborted")

		t.Await(c.ReturnToMenu())
	})
}

// ReturnToMenu 淡出、重新激活菜单、淡入
func (c *Controller) ReturnToMenu() *task.Task {
	return c.Runner.Go("return-to-menu", func(t *task.Task) {
		t.Await(c.Transitions.FadeOut(c.opts.FadeDuration))
		c.activateMenu()
		c.updateAudioText()
		t.Await(c.Transitions.FadeIn(c.opts.FadeDuration))
	})
}

// onSessionEnded 会话自然结束（游戏结束）
func (c *Controller) onSessionEnded(session game.Session) {
	if c.Pause.Session() != session {
		return
	}
	c.Pause.SetSession(nil)
	log.Printf("[FlowController] Game over")
	c.ReturnToMenu()
}
