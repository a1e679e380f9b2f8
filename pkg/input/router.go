package input

import (
	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/ecs"
	"github.com/decker502/spacejump/pkg/entities"
)

// Focus 路由依赖的焦点操作
type Focus interface {
	Advance(direction int)
	Activate(control ecs.EntityID)
	Current() (ecs.EntityID, bool)
	Invoke(control ecs.EntityID) bool
	HasActiveScreen() bool
}

// Pauser 路由依赖的暂停切换
type Pauser interface {
	Toggle()
}

// Cues 界面提示音
type Cues interface {
	PlayConfirmCue() bool
}

// Router 输入路由
// 所有输入都是尽力而为：目标缺失时静默忽略，从不返回错误
type Router struct {
	em     *ecs.EntityManager
	keyMap KeyMap
	state  *KeyboardState
	focus  Focus
	pauser Pauser
	cues   Cues
}

// NewRouter 创建输入路由
//
// 参数：
//   - em: 实体管理器（查询控件与触摸按键）
//   - keyMap: 物理按键映射
//   - state: 逻辑按键状态（与游戏会话共享）
//   - focus: 焦点导航器
//   - pauser: 暂停控制器
//   - cues: 提示音，可为 nil
func NewRouter(em *ecs.EntityManager, keyMap KeyMap, state *KeyboardState, focus Focus, pauser Pauser, cues Cues) *Router {
	return &Router{
		em:     em,
		keyMap: keyMap,
		state:  state,
		focus:  focus,
		pauser: pauser,
		cues:   cues,
	}
}

// State 返回逻辑按键状态
func (r *Router) State() *KeyboardState {
	return r.state
}

// KeyMap 返回物理按键映射
func (r *Router) KeyMap() KeyMap {
	return r.keyMap
}

// OnPhysicalKeyDown 处理按键按下
//
// 方向键移动焦点；确认键触发焦点控件，没有焦点控件时切换暂停。
// 随后无论是否有活动屏幕都标记按键按住（菜单与游戏共用同一输入通道）。
func (r *Router) OnPhysicalKeyDown(code string) {
	key, ok := r.keyMap.Lookup(code)
	if !ok {
		return
	}

	switch key {
	case KeyArrowDown, KeyArrowRight:
		r.focus.Advance(+1)
	case KeyArrowLeft, KeyArrowUp:
		r.focus.Advance(-1)
	case KeyEnter:
		if control, ok := r.focus.Current(); ok {
			r.click(control)
		} else {
			r.pauser.Toggle()
		}
	}

	r.state.Set(key, true)
}

// OnPhysicalKeyUp 处理按键松开
func (r *Router) OnPhysicalKeyUp(code string) {
	if key, ok := r.keyMap.Lookup(code); ok {
		r.state.Set(key, false)
	}
}

// OnPointerOver 指针悬停在控件上
// 游戏进行中（没有活动屏幕）忽略
func (r *Router) OnPointerOver(control ecs.EntityID) {
	if !r.focus.HasActiveScreen() {
		return
	}
	r.focus.Activate(control)
}

// OnPointerDown 指针点击控件
func (r *Router) OnPointerDown(control ecs.EntityID) {
	if !entities.IsPresent(r.em, control) {
		return
	}
	r.click(control)
}

// OnTouchStart 触摸按键按下
// 只响应带有已知逻辑按键标签的目标；确认键直接切换暂停
func (r *Router) OnTouchStart(target ecs.EntityID) {
	tc, key, ok := r.touchKey(target)
	if !ok {
		return
	}
	tc.Pressed = true
	r.state.Set(key, true)

	if key == KeyEnter {
		r.pauser.Toggle()
	}
}

// OnTouchEnd 触摸按键松开
func (r *Router) OnTouchEnd(target ecs.EntityID) {
	tc, key, ok := r.touchKey(target)
	if !ok {
		return
	}
	tc.Pressed = false
	tc.TouchID = -1
	r.state.Set(key, false)
}

// click 播放确认音并触发控件
func (r *Router) click(control ecs.EntityID) {
	if r.cues != nil {
		r.cues.PlayConfirmCue()
	}
	r.focus.Invoke(control)
}

// touchKey 读取触摸目标的逻辑按键标签
func (r *Router) touchKey(target ecs.EntityID) (*components.TouchTargetComponent, Key, bool) {
	tc, ok := ecs.GetComponent[*components.TouchTargetComponent](r.em, target)
	if !ok {
		return nil, "", false
	}
	key := Key(tc.Key)
	if !r.state.Recognizes(key) {
		return nil, "", false
	}
	return tc, key, true
}
