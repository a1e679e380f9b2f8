package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 持久化的用户偏好
// 两个开关都表示"是否还要询问/启用"，用户拒绝后置为 false
type GameSettings struct {
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否询问进入全屏
	Audio      bool `yaml:"audio"`      // 是否启用音频
}

// DefaultSettings 返回默认设置
func DefaultSettings() GameSettings {
	return GameSettings{
		Fullscreen: true,
		Audio:      true,
	}
}

// SettingsManager 偏好设置管理器
// 负责偏好的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     GameSettings   // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "prefs"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例（加载失败时使用默认设置）
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 加载失败不是致命错误，使用默认设置
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()

	// 降级模式：无法持久化
	if sm.gdataManager == nil {
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 以默认值为底，缺失字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded: fullscreen=%v audio=%v", loaded.Fullscreen, loaded.Audio)
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// Get 返回当前设置的副本
func (sm *SettingsManager) Get() GameSettings {
	return sm.settings
}

// Update 修改设置并立即持久化
//
// 内存中的修改总是生效；持久化失败时返回错误，由调用方记录
//
// 参数：
//   - mutate: 修改函数
func (sm *SettingsManager) Update(mutate func(s *GameSettings)) error {
	mutate(&sm.settings)
	return sm.Save()
}
