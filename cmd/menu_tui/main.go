// menu_tui 在终端中驱动菜单流程（无图形窗口）
//
// 用于在没有显示环境的机器上验证启动引导、焦点导航、暂停与过渡令牌。
// 终端不上报按键松开，按键在下一帧自动松开。
//
// 用法：
//
//	go run ./cmd/menu_tui [-config path] [-verbose]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/decker502/spacejump/pkg/app"
	"github.com/decker502/spacejump/pkg/config"
)

var (
	// 命令行参数
	configPath = flag.String("config", "", "配置文件路径")
	verbose    = flag.Bool("verbose", false, "将日志写入 menu_tui.log")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	// 日志不能写到终端，否则会破坏界面
	log.SetOutput(io.Discard)
	if *verbose || cfg.Verbose {
		f, err := tea.LogToFile("menu_tui.log", "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "日志文件创建失败: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	core := app.NewCore(app.CoreDeps{
		Config: cfg,
		Cursor: noCursor{},
		Seed:   1,
	})
	core.Flow.Start()

	if _, err := tea.NewProgram(newModel(core), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}

// noCursor 终端没有指针
type noCursor struct{}

func (noCursor) Enable()  {}
func (noCursor) Disable() {}
