package focus

import (
	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/ecs"
	"github.com/decker502/spacejump/pkg/entities"
)

// Navigator 焦点导航器
// 只操作活动屏幕内的控件；没有活动屏幕时所有操作都是无操作
type Navigator struct {
	em    *ecs.EntityManager
	state *NavigationState

	// onFocusChanged 每次 Activate 调用后通知一次（即使重复激活同一控件）
	onFocusChanged func(control ecs.EntityID)
}

// NewNavigator 创建焦点导航器
func NewNavigator(em *ecs.EntityManager, state *NavigationState) *Navigator {
	return &Navigator{
		em:    em,
		state: state,
	}
}

// SetOnFocusChanged 设置焦点变化回调（用于播放提示音）
func (n *Navigator) SetOnFocusChanged(fn func(control ecs.EntityID)) {
	n.onFocusChanged = fn
}

// State 返回导航状态
func (n *Navigator) State() *NavigationState {
	return n.state
}

// HasActiveScreen 是否有活动屏幕
func (n *Navigator) HasActiveScreen() bool {
	return n.state.HasActiveScreen()
}

// Advance 在活动屏幕的可见控件之间循环移动焦点
//
// 可见控件按声明顺序排列，下一个索引为 (count + index + direction) mod count。
// 当前没有焦点控件时不做任何事：初始焦点必须由流程控制器显式设置。
//
// 参数：
//   - direction: +1 下一个，-1 上一个
func (n *Navigator) Advance(direction int) {
	screen, ok := n.state.ActiveScreen()
	if !ok {
		return
	}

	visible := make([]ecs.EntityID, 0)
	for _, id := range entities.ScreenControls(n.em, screen) {
		if entities.IsPresent(n.em, id) {
			visible = append(visible, id)
		}
	}

	count := len(visible)
	for i, id := range visible {
		cc, _ := ecs.GetComponent[*components.ControlComponent](n.em, id)
		if cc.Active {
			next := ((count+i+direction)%count + count) % count
			n.Activate(visible[next])
			return
		}
	}
}

// Activate 把焦点移到指定控件
//
// 先取消活动屏幕内原焦点控件，再激活新控件，并通知一次焦点变化。
// 控件不属于活动屏幕时不做任何事。
func (n *Navigator) Activate(control ecs.EntityID) {
	screen, ok := n.state.ActiveScreen()
	if !ok {
		return
	}
	target, ok := ecs.GetComponent[*components.ControlComponent](n.em, control)
	if !ok || target.Screen != screen {
		return
	}

	for _, id := range entities.ScreenControls(n.em, screen) {
		if cc, ok := ecs.GetComponent[*components.ControlComponent](n.em, id); ok {
			cc.Active = false
		}
	}
	target.Active = true

	if n.onFocusChanged != nil {
		n.onFocusChanged(control)
	}
}

// Current 返回活动屏幕内的焦点控件
func (n *Navigator) Current() (ecs.EntityID, bool) {
	screen, ok := n.state.ActiveScreen()
	if !ok {
		return 0, false
	}
	for _, id := range entities.ScreenControls(n.em, screen) {
		if cc, ok := ecs.GetComponent[*components.ControlComponent](n.em, id); ok && cc.Active {
			return id, true
		}
	}
	return 0, false
}

// Invoke 触发控件的动作
//
// 返回：
//   - bool: 控件存在且可见时返回 true
func (n *Navigator) Invoke(control ecs.EntityID) bool {
	if !entities.IsPresent(n.em, control) {
		return false
	}
	cc, _ := ecs.GetComponent[*components.ControlComponent](n.em, control)
	if cc.OnInvoke != nil {
		cc.OnInvoke()
	}
	return true
}
