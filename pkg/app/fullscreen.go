package app

import (
	"errors"
	"log"

	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrFullscreenUnavailable 平台不支持切换全屏
var ErrFullscreenUnavailable = errors.New("fullscreen is not available on this platform")

// windowResetDelayFrames 退出全屏后延迟恢复窗口大小的帧数
const windowResetDelayFrames = 3

// Fullscreen 基于 ebiten 窗口的全屏能力
// 移动平台始终全屏，视为不支持切换
type Fullscreen struct {
	available bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewFullscreen 创建全屏能力
func NewFullscreen() *Fullscreen {
	return &Fullscreen{
		available: !utils.IsMobile(),
	}
}

// Available 平台是否支持切换全屏
func (f *Fullscreen) Available() bool {
	return f.available
}

// IsFullscreen 当前是否全屏
func (f *Fullscreen) IsFullscreen() bool {
	return f.available && ebiten.IsFullscreen()
}

// Set 进入或退出全屏
func (f *Fullscreen) Set(fullscreen bool) error {
	if !f.available {
		return ErrFullscreenUnavailable
	}

	if fullscreen {
		ebiten.SetFullscreen(true)
		return nil
	}

	// 退出全屏
	ebiten.SetFullscreen(false)
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
	f.pendingWindowSizeReset = true
	f.windowSizeResetCountdown = windowResetDelayFrames
	log.Printf("[App] Exit fullscreen, will reset window size in %d frames", windowResetDelayFrames)
	return nil
}

// Toggle 切换全屏（F11）
func (f *Fullscreen) Toggle() error {
	return f.Set(!f.IsFullscreen())
}

// Update 每帧调用，处理延迟的窗口大小恢复
func (f *Fullscreen) Update() {
	if !f.pendingWindowSizeReset {
		return
	}
	f.windowSizeResetCountdown--
	if f.windowSizeResetCountdown <= 0 {
		ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
		log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
		f.pendingWindowSizeReset = false
	}
}
