// Package pause 提供游戏会话的暂停/恢复控制
package pause

import (
	"log"
	"time"

	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/ecs"
	"github.com/decker502/spacejump/pkg/entities"
	"github.com/decker502/spacejump/pkg/focus"
	"github.com/decker502/spacejump/pkg/game"
	"github.com/decker502/spacejump/pkg/task"
)

// Cursor 指针光标模式（菜单与暂停时显示自绘光标）
type Cursor interface {
	Enable()
	Disable()
}

// Controller 暂停控制器
//
// 暂停状态由游戏会话持有，控制器只读取和切换；
// 另外以"暂停遮罩是否为活动屏幕"防止重复恢复。
type Controller struct {
	em          *ecs.EntityManager
	runner      *task.Runner
	nav         *focus.Navigator
	pauseScreen ecs.EntityID
	cursor      Cursor
	settleDelay time.Duration

	session game.Session
}

// NewController 创建暂停控制器
//
// 参数：
//   - em: 实体管理器
//   - runner: 协作式任务调度器
//   - nav: 焦点导航器
//   - pauseScreen: 暂停遮罩屏幕实体
//   - cursor: 光标模式
//   - settleDelay: 隐藏遮罩后、恢复游戏前的等待时长
func NewController(em *ecs.EntityManager, runner *task.Runner, nav *focus.Navigator, pauseScreen ecs.EntityID, cursor Cursor, settleDelay time.Duration) *Controller {
	return &Controller{
		em:          em,
		runner:      runner,
		nav:         nav,
		pauseScreen: pauseScreen,
		cursor:      cursor,
		settleDelay: settleDelay,
	}
}

// SetSession 设置当前游戏会话，nil 表示没有进行中的游戏
func (c *Controller) SetSession(s game.Session) {
	c.session = s
}

// Session 返回当前游戏会话
func (c *Controller) Session() game.Session {
	return c.session
}

// Pause 暂停游戏并显示暂停遮罩
// 没有会话、已暂停或会话正在结束时不做任何事
func (c *Controller) Pause() {
	if c.session == nil {
		return
	}
	st := c.session.State()
	if st.Paused || st.Ending {
		return
	}

	c.session.Pause()
	c.nav.State().SetActiveScreen(c.pauseScreen)
	if first, ok := entities.FirstControl(c.em, c.pauseScreen); ok {
		c.nav.Activate(first)
	}
	if sc, ok := ecs.GetComponent[*components.ScreenComponent](c.em, c.pauseScreen); ok {
		sc.Displayed = true
		sc.Raised = true
	}
	c.cursor.Enable()

	log.Printf("[PauseController] Paused")
}

// Unpause 隐藏暂停遮罩并恢复游戏
//
// 仅当会话存在、处于暂停、且暂停遮罩是活动屏幕时生效。
// 遮罩立即隐藏，等待 settleDelay 后移出交互层并恢复游戏循环。
//
// 返回：
//   - *task.Task: 恢复完成后结束；无操作时返回已结束的任务
func (c *Controller) Unpause() *task.Task {
	if c.session == nil || !c.session.State().Paused || !c.nav.State().IsActive(c.pauseScreen) {
		return task.Completed()
	}

	session := c.session
	c.nav.State().ClearActiveScreen()
	sc, _ := ecs.GetComponent[*components.ScreenComponent](c.em, c.pauseScreen)
	if sc != nil {
		sc.Displayed = false
	}
	c.cursor.Disable()

	return c.runner.Go("unpause", func(t *task.Task) {
		t.Sleep(c.settleDelay)
		if sc != nil {
			sc.Raised = false
		}
		session.ResumeLoop()
		log.Printf("[PauseController] Resumed")
	})
}

// Toggle 已暂停时恢复，否则暂停；没有会话时不做任何事
func (c *Controller) Toggle() {
	if c.session == nil {
		return
	}
	if c.session.State().Paused {
		c.Unpause()
	} else {
		c.Pause()
	}
}
