package game

// SessionState 游戏会话的可观察状态
// 暂停状态由会话持有，暂停控制器只读取和切换
type SessionState struct {
	Paused bool // 会话已暂停
	Ending bool // 会话处于结束动画中
}

// Session 一局游戏的句柄
//
// 由 SessionFactory 创建；若实现同时满足 Scene 接口，
// 流程控制器会在开始游戏时把它切换为当前场景。
type Session interface {
	// Start 开始游戏循环
	Start()
	// End 结束会话（中止，不再触发结束回调）
	End()
	// Pause 暂停游戏循环
	Pause()
	// ResumeLoop 恢复被暂停的游戏循环
	ResumeLoop()
	// State 返回当前状态
	State() SessionState
}

// StartParams 开始游戏的参数
type StartParams struct {
	// Rockets 火箭模式（订阅用户专属）
	Rockets bool
}

// SessionFactory 会话工厂函数类型
//
// 参数：
//   - params: 开始参数
//   - onEnded: 会话自然结束（而非 End 中止）时调用，用于返回菜单
type SessionFactory func(params StartParams, onEnded func()) Session
