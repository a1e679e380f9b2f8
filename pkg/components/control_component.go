package components

import "github.com/decker502/spacejump/pkg/ecs"

// ControlComponent 控件组件（ECS 架构）
// 屏幕内一个可聚焦、可触发的元素（按钮）
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 焦点状态由 focus.Navigator 维护，其它系统只读
//   - 位置存放在 PositionComponent 中
type ControlComponent struct {
	// Name 控件标识（如 "start", "fullscreen--yes"）
	Name string
	// Label 控件上显示的文字
	Label string
	// Screen 所属屏幕实体ID
	Screen ecs.EntityID

	// ===== 控件状态 =====
	// Active 是否为当前焦点控件（同一屏幕内最多一个）
	Active bool
	// Hidden 是否隐藏（隐藏的控件不参与焦点导航和点击测试）
	Hidden bool
	// SubscriberOnly 仅订阅用户可见的控件，启动时默认隐藏
	SubscriberOnly bool

	// ===== 控件尺寸 =====
	// Width 控件宽度（像素）
	Width float64
	// Height 控件高度（像素）
	Height float64

	// ===== 触发回调 =====
	// OnInvoke 控件被确认（回车或点击）时的回调
	OnInvoke func()
}
