//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.spacejump -o build/android/spacejump.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/SpaceJump.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/spacejump/pkg/app"
	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/utils"
)

func init() {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("Warning: Failed to prepare storage directory: %v", err)
	}

	// 移动端没有配置文件，使用默认配置
	cfg, err := config.Load("")
	if err != nil {
		log.Printf("Warning: Failed to load config: %v (using defaults)", err)
	}
	cfg.Verbose = true

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
