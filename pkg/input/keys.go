// Package input 把键盘、指针和触摸事件统一为逻辑按键与焦点操作
package input

import (
	"log"
	"sort"

	"github.com/decker502/spacejump/pkg/config"
)

// Key 逻辑按键名，与物理设备无关
type Key string

// 逻辑按键集合
const (
	KeyArrowLeft  Key = "arrowLeft"
	KeyArrowRight Key = "arrowRight"
	KeyArrowUp    Key = "arrowUp"
	KeyArrowDown  Key = "arrowDown"
	KeyEnter      Key = "enter"
)

// AllKeys 返回全部逻辑按键
func AllKeys() []Key {
	return []Key{KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown, KeyEnter}
}

// IsKnown 是否为已知逻辑按键
func IsKnown(k Key) bool {
	switch k {
	case KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown, KeyEnter:
		return true
	}
	return false
}

// KeyMap 物理按键名 -> 逻辑按键
type KeyMap map[string]Key

// NewKeyMap 从配置构建按键映射，忽略映射到未知逻辑按键的条目
func NewKeyMap(cfg *config.KeymapConfig) KeyMap {
	km := make(KeyMap, len(cfg.Bindings))
	for code, logical := range cfg.Bindings {
		k := Key(logical)
		if !IsKnown(k) {
			log.Printf("[InputRouter] Warning: ignoring binding %s -> %s (unknown logical key)", code, logical)
			continue
		}
		km[code] = k
	}
	return km
}

// DefaultKeyMap 返回内置按键映射
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeymap())
}

// Lookup 翻译物理按键
func (km KeyMap) Lookup(code string) (Key, bool) {
	k, ok := km[code]
	return k, ok
}

// Codes 返回所有已映射的物理按键名（排序后）
func (km KeyMap) Codes() []string {
	codes := make([]string, 0, len(km))
	for code := range km {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
