// Package focus 维护当前活动屏幕与屏幕内唯一的焦点控件
package focus

import "github.com/decker502/spacejump/pkg/ecs"

// NavigationState 当前活动屏幕的引用
// 同一时刻最多一个屏幕处于活动状态（接收输入）
// 所有修改都经由方法进行，由流程控制器和暂停控制器共享
type NavigationState struct {
	activeScreen ecs.EntityID // 0 表示没有活动屏幕
}

// NewNavigationState 创建空的导航状态
func NewNavigationState() *NavigationState {
	return &NavigationState{}
}

// SetActiveScreen 设置活动屏幕
func (s *NavigationState) SetActiveScreen(screen ecs.EntityID) {
	s.activeScreen = screen
}

// ClearActiveScreen 清除活动屏幕（游戏进行中）
func (s *NavigationState) ClearActiveScreen() {
	s.activeScreen = 0
}

// ActiveScreen 返回活动屏幕
func (s *NavigationState) ActiveScreen() (ecs.EntityID, bool) {
	return s.activeScreen, s.activeScreen != 0
}

// HasActiveScreen 是否有活动屏幕
func (s *NavigationState) HasActiveScreen() bool {
	return s.activeScreen != 0
}

// IsActive 指定屏幕是否为活动屏幕
func (s *NavigationState) IsActive(screen ecs.EntityID) bool {
	return screen != 0 && s.activeScreen == screen
}
