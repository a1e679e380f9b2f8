package components

import "github.com/decker502/spacejump/pkg/ecs"

// ScreenComponent 屏幕状态组件
// 互斥的顶层界面（全屏询问、音频询问、主菜单、暂停遮罩）
type ScreenComponent struct {
	Name      string         // 屏幕标识（如 "menu", "pause"）
	Title     string         // 屏幕标题文字，可为空
	Controls  []ecs.EntityID // 子控件实体ID（声明顺序）
	Displayed bool           // 是否可见
	Raised    bool           // 是否位于交互层（遮罩挡住下层输入）
	Layer     int            // 绘制层级，数值大的在上层
}
