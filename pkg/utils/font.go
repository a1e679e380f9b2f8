package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var defaultFace text.Face

// DefaultFace 返回界面使用的位图字体
// 应用不携带字体资源，使用 x/image 内置的 7x13 点阵字体
func DefaultFace() text.Face {
	if defaultFace == nil {
		defaultFace = text.NewGoXFace(basicfont.Face7x13)
	}
	return defaultFace
}

// DrawCenteredText 以 (cx, y) 为顶部中点绘制文字
//
// 参数：
//   - screen: 目标图像
//   - str: 文字
//   - cx: 水平中心
//   - y: 顶部 Y 坐标
//   - scale: 缩放倍数（点阵字体较小，标题使用 2~3 倍）
//   - clr: 颜色
func DrawCenteredText(screen *ebiten.Image, str string, cx, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, DefaultFace(), op)
}
