package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed keymap.yaml
var defaultKeymapYAML []byte

// KeymapConfig 按键映射配置
// Bindings: 物理按键名 -> 逻辑按键名
type KeymapConfig struct {
	Bindings map[string]string `yaml:"bindings"`
}

// ParseKeymap 解析按键映射 YAML
func ParseKeymap(data []byte) (*KeymapConfig, error) {
	var cfg KeymapConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse keymap: %w", err)
	}
	if len(cfg.Bindings) == 0 {
		return nil, fmt.Errorf("keymap has no bindings")
	}
	return &cfg, nil
}

// DefaultKeymap 返回内置按键映射
func DefaultKeymap() *KeymapConfig {
	cfg, err := ParseKeymap(defaultKeymapYAML)
	if err != nil {
		// 内置文件随二进制发布，解析失败属于构建错误
		panic(err)
	}
	return cfg
}

// LoadKeymap 加载按键映射
//
// 参数：
//   - path: 自定义映射文件路径，为空时返回内置映射
//
// 返回：
//   - *KeymapConfig: 按键映射
//   - error: 文件读取或解析失败
func LoadKeymap(path string) (*KeymapConfig, error) {
	if path == "" {
		return DefaultKeymap(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keymap %s: %w", path, err)
	}
	return ParseKeymap(data)
}
