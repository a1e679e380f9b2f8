// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/input"
	"github.com/decker502/spacejump/pkg/systems"
	"github.com/decker502/spacejump/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName 持久化存储使用的应用名
const AppName = "spacejump"

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	core       *Core
	fullscreen *Fullscreen
	cursor     *systems.CursorRenderSystem

	inputSystem  *systems.InputSystem
	renderSystem *systems.ScreenRenderSystem

	start   time.Time
	verbose bool
}

// NewApp 创建并初始化应用，并开始启动引导流程
//
// 参数：
//   - cfg: 应用配置（见 config.Load）
//
// 返回：
//   - *App: 应用实例
//   - error: 按键映射加载失败时返回错误
func NewApp(cfg config.AppConfig) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	keyMap := input.DefaultKeyMap()
	if cfg.Input.KeymapPath != "" {
		km, err := config.LoadKeymap(cfg.Input.KeymapPath)
		if err != nil {
			return nil, fmt.Errorf("按键映射加载失败: %w", err)
		}
		keyMap = input.NewKeyMap(km)
	}

	// 持久化存储失败不是致命错误，偏好只保存在内存中
	storage, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: Failed to open storage: %v (preferences will not persist)", err)
		storage = nil
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)

	fullscreen := NewFullscreen()
	cursor := systems.NewCursorRenderSystem()
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	core := NewCore(CoreDeps{
		Config:       cfg,
		KeyMap:       keyMap,
		AudioContext: audioContext,
		Storage:      storage,
		Fullscreen:   fullscreen,
		Cursor:       cursor,
		Seed:         rand.Uint64(),
	})

	a := &App{
		core:         core,
		fullscreen:   fullscreen,
		cursor:       cursor,
		inputSystem:  systems.NewInputSystem(core.Entities, core.Router, core.Transitions.Overlay()),
		renderSystem: systems.NewScreenRenderSystem(core.Entities, utils.IsMobile()),
		start:        time.Now(),
		verbose:      cfg.Verbose,
	}

	core.Flow.Start()
	log.Printf("[App] Started (stage=%s)", core.Flow.Stage())
	return a, nil
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.fullscreen.Update()

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if err := a.fullscreen.Toggle(); err != nil {
			log.Printf("[App] Warning: %v", err)
		}
	}

	// F9 复制诊断信息
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		if err := a.core.CopyReport(); err != nil {
			log.Printf("[App] Warning: %v", err)
		} else {
			log.Printf("[App] Diagnostics copied to clipboard")
		}
	}

	deltaTime := 1.0 / 60.0
	a.inputSystem.Update(deltaTime)
	a.core.Runner.Tick(time.Since(a.start))
	a.core.Scenes.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 顺序：场景、遮罩下的屏幕、过渡遮罩、暂停屏幕、触摸按键、光标；详细模式下叠加帧率
func (a *App) Draw(screen *ebiten.Image) {
	a.core.Scenes.Draw(screen)
	a.renderSystem.DrawScreensBelow(screen, config.OverlayLayer)
	a.renderSystem.DrawOverlay(screen, a.core.Transitions.Opacity())
	a.renderSystem.DrawScreensFrom(screen, config.OverlayLayer)
	a.renderSystem.DrawTouchPad(screen)
	a.cursor.Draw(screen)

	if a.verbose {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  FPS %.0f  %s",
			ebiten.ActualTPS(), ebiten.ActualFPS(), a.core.Flow.Stage()), 4, 4)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Core 返回应用核心
func (a *App) Core() *Core {
	return a.core
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
