package systems

import (
	"image/color"

	"github.com/decker502/spacejump/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cursorShape 箭头光标轮廓（100x100 单位坐标）
var cursorShape = [][2]float32{
	{0, 0},
	{0, 100},
	{28, 72},
	{48, 100},
	{64, 90},
	{44, 62},
	{80, 62},
}

var (
	cursorFill = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cursorEdge = color.RGBA{R: 10, G: 6, B: 30, A: 255}
)

// CursorRenderSystem 绘制自绘光标
// 系统光标始终隐藏；菜单和暂停时启用，游戏进行中禁用
type CursorRenderSystem struct {
	enabled bool
}

// NewCursorRenderSystem 创建光标渲染系统（初始禁用）
func NewCursorRenderSystem() *CursorRenderSystem {
	return &CursorRenderSystem{}
}

// Enable 启用自绘光标
func (s *CursorRenderSystem) Enable() {
	s.enabled = true
}

// Disable 禁用自绘光标
func (s *CursorRenderSystem) Disable() {
	s.enabled = false
}

// Enabled 是否启用
func (s *CursorRenderSystem) Enabled() bool {
	return s.enabled
}

// Draw 在指针位置绘制光标
func (s *CursorRenderSystem) Draw(screen *ebiten.Image) {
	if !s.enabled {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := float32(mx), float32(my)
	scale := float32(config.CursorSize) / 100

	var path vector.Path
	for i, p := range cursorShape {
		px, py := x+p[0]*scale, y+p[1]*scale
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	fillOp := &vector.FillOptions{}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(cursorFill)
	vector.FillPath(screen, &path, fillOp, drawOp)

	strokeOp := &vector.StrokeOptions{Width: 1.5}
	edgeOp := &vector.DrawPathOptions{AntiAlias: true}
	edgeOp.ColorScale.ScaleWithColor(cursorEdge)
	vector.StrokePath(screen, &path, strokeOp, edgeOp)
}
