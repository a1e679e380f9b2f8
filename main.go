package main

import (
	"flag"
	"log"

	"github.com/decker502/spacejump/pkg/app"
	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "配置文件路径（默认 ~/.config/spacejump/config.yaml）")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}
	if *verbose {
		cfg.Verbose = true
	}

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("Warning: Failed to prepare storage directory: %v", err)
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// Set window properties
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the game loop
	// This will call Update() and Draw() repeatedly until the window is closed
	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
