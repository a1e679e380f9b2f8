package scenes

import (
	"image/color"

	"github.com/decker502/spacejump/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	playerBodyColor  = color.RGBA{R: 240, G: 240, B: 255, A: 255}
	playerVisorColor = color.RGBA{R: 70, G: 200, B: 255, A: 255}
	playerFlameColor = color.RGBA{R: 255, G: 150, B: 40, A: 255}
)

// drawPlayer 在 (x, y) 绘制玩家（左上角坐标）
// thrusting 为 true 时在脚下绘制火焰
func drawPlayer(screen *ebiten.Image, x, y float64, thrusting bool) {
	size := float32(config.PlayerSize)
	fx, fy := float32(x), float32(y)

	if thrusting {
		vector.FillRect(screen, fx+size*0.3, fy+size, size*0.4, size*0.5, playerFlameColor, false)
	}
	vector.FillRect(screen, fx, fy, size, size, playerBodyColor, false)
	vector.FillCircle(screen, fx+size*0.5, fy+size*0.35, size*0.22, playerVisorColor, true)
}
