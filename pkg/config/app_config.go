package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig 应用启动配置
// 来源优先级：环境变量（SPACEJUMP_ 前缀） > 配置文件 > 默认值
type AppConfig struct {
	Window     WindowConfig     `mapstructure:"window"`
	Transition TransitionConfig `mapstructure:"transition"`
	Pause      PauseConfig      `mapstructure:"pause"`
	Input      InputConfig      `mapstructure:"input"`
	Features   FeaturesConfig   `mapstructure:"features"`
	Verbose    bool             `mapstructure:"verbose"`
}

// WindowConfig 窗口设置
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// TransitionConfig 淡入淡出与帧稳定性探测参数
type TransitionConfig struct {
	FadeDuration      time.Duration `mapstructure:"fade_duration"`
	GameStartDuration time.Duration `mapstructure:"game_start_duration"`
	FrameBudget       time.Duration `mapstructure:"frame_budget"`
	StableFrames      int           `mapstructure:"stable_frames"`
	MaxSamples        int           `mapstructure:"max_samples"`
}

// PauseConfig 暂停遮罩设置
type PauseConfig struct {
	SettleDelay time.Duration `mapstructure:"settle_delay"`
}

// InputConfig 输入设置
type InputConfig struct {
	// KeymapPath 自定义按键映射文件，为空时使用内置映射
	KeymapPath string `mapstructure:"keymap_path"`
}

// FeaturesConfig 功能开关
type FeaturesConfig struct {
	// Subscriber 开启订阅用户专属控件（如 "rockets" 模式）
	Subscriber bool `mapstructure:"subscriber"`
}

// 默认值
const (
	DefaultFadeDuration      = 500 * time.Millisecond
	DefaultGameStartDuration = 5000 * time.Millisecond
	DefaultSettleDelay       = 300 * time.Millisecond
	DefaultFrameBudget       = time.Second / 60
	DefaultStableFrames      = 5
	DefaultMaxSamples        = 30
)

// Load 读取应用配置
//
// 参数：
//   - path: 配置文件路径；为空时依次尝试 $SPACEJUMP_CONFIG 与 ~/.config/spacejump/config.yaml
//
// 返回：
//   - AppConfig: 合并后的配置（文件缺失时为默认值）
//   - error: 配置文件存在但解析失败时返回错误
func Load(path string) (AppConfig, error) {
	v := viper.New()

	// default values
	v.SetDefault("window.width", GameWindowWidth)
	v.SetDefault("window.height", GameWindowHeight)
	v.SetDefault("window.title", "Space Jump")
	v.SetDefault("transition.fade_duration", DefaultFadeDuration)
	v.SetDefault("transition.game_start_duration", DefaultGameStartDuration)
	v.SetDefault("transition.frame_budget", DefaultFrameBudget)
	v.SetDefault("transition.stable_frames", DefaultStableFrames)
	v.SetDefault("transition.max_samples", DefaultMaxSamples)
	v.SetDefault("pause.settle_delay", DefaultSettleDelay)
	v.SetDefault("input.keymap_path", "")
	v.SetDefault("features.subscriber", false)
	v.SetDefault("verbose", false)

	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv("SPACEJUMP_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "spacejump"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPACEJUMP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case explicit:
			return AppConfig{}, fmt.Errorf("read config %s: %w", path, err)
		case !errors.As(err, &notFound):
			return AppConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c AppConfig
	if err := v.Unmarshal(&c); err != nil {
		return AppConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	return c, nil
}

// normalize 修正非法的数值配置
func (c *AppConfig) normalize() {
	if c.Window.Width <= 0 {
		c.Window.Width = GameWindowWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = GameWindowHeight
	}
	if c.Transition.FadeDuration <= 0 {
		c.Transition.FadeDuration = DefaultFadeDuration
	}
	if c.Transition.GameStartDuration <= 0 {
		c.Transition.GameStartDuration = DefaultGameStartDuration
	}
	if c.Transition.FrameBudget <= 0 {
		c.Transition.FrameBudget = DefaultFrameBudget
	}
	if c.Transition.StableFrames <= 0 {
		c.Transition.StableFrames = DefaultStableFrames
	}
	if c.Transition.MaxSamples <= 0 {
		c.Transition.MaxSamples = DefaultMaxSamples
	}
	if c.Pause.SettleDelay < 0 {
		c.Pause.SettleDelay = DefaultSettleDelay
	}
}
