package config

// 布局配置常量
// 本文件定义了屏幕、控件和触摸按键的布局参数
// 所有坐标使用逻辑屏幕坐标（Layout 返回的尺寸），ebiten 自动缩放到窗口

// Game Window (逻辑屏幕尺寸)
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 960

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 640
)

// Screen Controls (屏幕控件布局)
// 控件在屏幕内纵向排列、水平居中
const (
	// ControlWidth 控件宽度（像素）
	ControlWidth = 320.0

	// ControlHeight 控件高度（像素）
	ControlHeight = 48.0

	// ControlSpacing 相邻控件的垂直间距
	ControlSpacing = 16.0

	// ScreenTitleY 屏幕标题的 Y 坐标
	ScreenTitleY = 180.0

	// ControlsStartY 第一个控件的 Y 坐标
	ControlsStartY = 260.0
)

// Touch Pad (触摸按键布局)
// 左下角为方向键，右下角为确认键
const (
	// TouchKeySize 触摸按键边长
	TouchKeySize = 88.0

	// TouchPadMargin 触摸按键到屏幕边缘的距离
	TouchPadMargin = 24.0

	// TouchPadGap 触摸按键之间的间距
	TouchPadGap = 12.0
)

// Screen Layers (屏幕层级)
// 数值大的在上层；过渡遮罩位于询问屏幕之上、暂停屏幕之下
const (
	MenuLayer               = 1
	AudioQuestionLayer      = 2
	FullscreenQuestionLayer = 3

	// OverlayLayer 过渡遮罩所在层级，不低于该层级的屏幕绘制在遮罩之上且不受遮罩阻挡
	OverlayLayer = 4

	PauseLayer = 5
)

// Cursor (自绘光标)
const (
	// CursorSize 光标边长（像素），形状按 100x100 的单位坐标缩放
	CursorSize = 20.0
)

// ControlPosition 计算屏幕中第 index 个控件的左上角坐标
// 返回值：x, y
func ControlPosition(index int) (float64, float64) {
	x := (float64(GameWindowWidth) - ControlWidth) / 2
	y := ControlsStartY + float64(index)*(ControlHeight+ControlSpacing)
	return x, y
}
