package components

// TouchTargetComponent 触摸方向键组件
// 屏幕上的虚拟按键，Key 为逻辑按键名（如 "arrowLeft", "enter"）
// Key 不在按键集合内的触摸目标不响应输入
type TouchTargetComponent struct {
	Key     string
	Label   string
	Pressed bool // 当前是否被按下（用于高亮）
	Width   float64
	Height  float64

	// TouchID 当前按住该按键的触摸点ID，未按下时为 -1
	TouchID int
}
