package scenes

import (
	"math/rand/v2"

	"github.com/decker502/spacejump/pkg/background"
	"github.com/decker502/spacejump/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene 菜单背后的动画场景
// 背景以固定速度缓慢滚动，中央站着玩家
type MenuScene struct {
	background background.Renderer
	offset     float64
}

// NewMenuScene 创建菜单背景场景
//
// 参数：
//   - bg: 背景渲染器（与游戏会话共享，变体计数由流程控制器推进）
//   - seed: 随机种子，决定滚动的起始位置
func NewMenuScene(bg background.Renderer, seed uint64) *MenuScene {
	rng := rand.New(rand.NewPCG(seed, seed>>1))
	return &MenuScene{
		background: bg,
		offset:     rng.Float64() * bg.Height(),
	}
}

// Offset 返回当前滚动偏移
func (s *MenuScene) Offset() float64 {
	return s.offset
}

// Update 推进背景滚动
func (s *MenuScene) Update(deltaTime float64) {
	s.offset += deltaTime * config.MenuScrollSpeed
	if h := s.background.Height(); h > 0 && s.offset >= h {
		s.offset -= h
	}
}

// Draw 绘制背景与玩家
func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.background.Draw(screen, s.offset)

	x := (float64(config.GameWindowWidth) - config.PlayerSize) / 2
	y := float64(config.GameWindowHeight) - config.PlayerSize - 96
	drawPlayer(screen, x, y, false)
}
