package input

// KeyboardState 逻辑按键的按住状态
// 由输入路由写入，游戏会话每帧读取；只包含固定的逻辑按键集合
type KeyboardState struct {
	held map[Key]bool
}

// NewKeyboardState 创建全部松开的按键状态
func NewKeyboardState() *KeyboardState {
	s := &KeyboardState{held: make(map[Key]bool)}
	for _, k := range AllKeys() {
		s.held[k] = false
	}
	return s
}

// IsHeld 按键是否按住
func (s *KeyboardState) IsHeld(k Key) bool {
	return s.held[k]
}

// Recognizes 是否为该状态追踪的按键
func (s *KeyboardState) Recognizes(k Key) bool {
	_, ok := s.held[k]
	return ok
}

// Set 设置按键状态，未知按键被忽略
func (s *KeyboardState) Set(k Key, held bool) {
	if _, ok := s.held[k]; ok {
		s.held[k] = held
	}
}

// Snapshot 返回当前状态的副本
func (s *KeyboardState) Snapshot() map[Key]bool {
	out := make(map[Key]bool, len(s.held))
	for k, v := range s.held {
		out[k] = v
	}
	return out
}

// ReleaseAll 松开所有按键
func (s *KeyboardState) ReleaseAll() {
	for k := range s.held {
		s.held[k] = false
	}
}
