// Package background 绘制菜单与游戏共用的程序化星空背景
package background

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/decker502/spacejump/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer 背景渲染协作方
type Renderer interface {
	// Increment 切换到下一个背景变体
	Increment()
	// Draw 以纵向偏移 offset 绘制背景
	Draw(screen *ebiten.Image, offset float64)
	// Height 背景的循环高度（像素）
	Height() float64
}

// palette 一个背景变体的配色
type palette struct {
	sky  color.RGBA
	star color.RGBA
	glow color.RGBA
}

var palettes = []palette{
	{sky: color.RGBA{R: 8, G: 6, B: 24, A: 255}, star: color.RGBA{R: 230, G: 230, B: 255, A: 255}, glow: color.RGBA{R: 60, G: 40, B: 120, A: 255}},
	{sky: color.RGBA{R: 20, G: 4, B: 20, A: 255}, star: color.RGBA{R: 255, G: 220, B: 240, A: 255}, glow: color.RGBA{R: 120, G: 30, B: 90, A: 255}},
	{sky: color.RGBA{R: 2, G: 16, B: 22, A: 255}, star: color.RGBA{R: 210, G: 255, B: 250, A: 255}, glow: color.RGBA{R: 20, G: 90, B: 110, A: 255}},
	{sky: color.RGBA{R: 18, G: 12, B: 4, A: 255}, star: color.RGBA{R: 255, G: 240, B: 200, A: 255}, glow: color.RGBA{R: 130, G: 80, B: 20, A: 255}},
}

// star 一颗星
type star struct {
	x, y   float64
	radius float64
	depth  float64 // 视差系数 (0, 1]
}

const (
	starCount    = 160
	heightFactor = 4 // 循环高度 = 屏幕高度 * heightFactor
)

// Starfield 星空背景
type Starfield struct {
	seed    uint64
	variant int
	stars   []star
	height  float64
}

// NewStarfield 创建星空背景
//
// 参数：
//   - seed: 随机种子，相同种子与变体生成相同的星空
func NewStarfield(seed uint64) *Starfield {
	s := &Starfield{
		seed:   seed,
		height: float64(config.GameWindowHeight * heightFactor),
	}
	s.generate()
	return s
}

// Increment 切换到下一个背景变体
func (s *Starfield) Increment() {
	s.variant = (s.variant + 1) % len(palettes)
	s.generate()
	log.Printf("[Background] Switched to variant %d", s.variant)
}

// Variant 返回当前变体编号
func (s *Starfield) Variant() int {
	return s.variant
}

// Height 背景的循环高度
func (s *Starfield) Height() float64 {
	return s.height
}

// Draw 以纵向偏移绘制背景，偏移越大星空越向下滚动
func (s *Starfield) Draw(screen *ebiten.Image, offset float64) {
	p := palettes[s.variant]
	screen.Fill(p.sky)

	w := float32(config.GameWindowWidth)
	h := float64(config.GameWindowHeight)

	// 底部辉光
	vector.FillRect(screen, 0, float32(h*0.75), w, float32(h*0.25), withAlpha(p.glow, 70), false)

	for _, st := range s.stars {
		y := wrap(st.y+offset*st.depth, s.height)
		if y > h {
			continue
		}
		vector.FillCircle(screen, float32(st.x), float32(y), float32(st.radius), withAlpha(p.star, uint8(120+135*st.depth)), true)
	}
}

// StarPositions 返回偏移 offset 下各星的屏幕 Y 坐标（用于测试滚动）
func (s *Starfield) StarPositions(offset float64) []float64 {
	ys := make([]float64, len(s.stars))
	for i, st := range s.stars {
		ys[i] = wrap(st.y+offset*st.depth, s.height)
	}
	return ys
}

// generate 按种子和变体生成星星
func (s *Starfield) generate() {
	rng := rand.New(rand.NewPCG(s.seed, uint64(s.variant)))
	s.stars = make([]star, starCount)
	for i := range s.stars {
		s.stars[i] = star{
			x:      rng.Float64() * float64(config.GameWindowWidth),
			y:      rng.Float64() * s.height,
			radius: 0.6 + rng.Float64()*1.6,
			depth:  0.2 + rng.Float64()*0.8,
		}
	}
}

// wrap 把 v 折回 [0, period)
func wrap(v, period float64) float64 {
	v = math.Mod(v, period)
	if v < 0 {
		v += period
	}
	return v
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	// 预乘 alpha
	return color.RGBA{
		R: uint8(uint16(c.R) * uint16(a) / 255),
		G: uint8(uint16(c.G) * uint16(a) / 255),
		B: uint8(uint16(c.B) * uint16(a) / 255),
		A: a,
	}
}
