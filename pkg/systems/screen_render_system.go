package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/ecs"
	"github.com/decker502/spacejump/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	panelColor        = color.RGBA{R: 0, G: 0, B: 0, A: 150}
	titleColor        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	controlColor      = color.RGBA{R: 40, G: 30, B: 80, A: 220}
	controlEdgeColor  = color.RGBA{R: 150, G: 120, B: 255, A: 255}
	activeColor       = color.RGBA{R: 150, G: 120, B: 255, A: 255}
	labelColor        = color.RGBA{R: 230, G: 230, B: 255, A: 255}
	activeLabelColor  = color.RGBA{R: 10, G: 6, B: 30, A: 255}
	touchKeyColor     = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	touchPressedColor = color.RGBA{R: 255, G: 255, B: 255, A: 140}
)

// ScreenRenderSystem 绘制屏幕、控件、过渡遮罩和触摸按键
type ScreenRenderSystem struct {
	entityManager *ecs.EntityManager
	showTouchPad  bool
}

// NewScreenRenderSystem 创建屏幕渲染系统
//
// 参数：
//   - em: 实体管理器
//   - showTouchPad: 是否绘制触摸按键（移动平台）
func NewScreenRenderSystem(em *ecs.EntityManager, showTouchPad bool) *ScreenRenderSystem {
	return &ScreenRenderSystem{
		entityManager: em,
		showTouchPad:  showTouchPad,
	}
}

// VisibleScreens 返回可见屏幕，按层级从下到上排列
func VisibleScreens(em *ecs.EntityManager) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0)
	for _, id := range ecs.GetEntitiesWith1[*components.ScreenComponent](em) {
		if sc, _ := ecs.GetComponent[*components.ScreenComponent](em, id); sc.Displayed {
			ids = append(ids, id)
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.ScreenComponent](em, ids[i])
		b, _ := ecs.GetComponent[*components.ScreenComponent](em, ids[j])
		return a.Layer < b.Layer
	})
	return ids
}

// DrawScreensBelow 绘制层级低于 layer 的可见屏幕（位于过渡遮罩之下）
func (s *ScreenRenderSystem) DrawScreensBelow(screen *ebiten.Image, layer int) {
	s.drawScreens(screen, func(l int) bool { return l < layer })
}

// DrawScreensFrom 绘制层级不低于 layer 的可见屏幕（位于过渡遮罩之上）
func (s *ScreenRenderSystem) DrawScreensFrom(screen *ebiten.Image, layer int) {
	s.drawScreens(screen, func(l int) bool { return l >= layer })
}

// drawScreens 绘制满足层级条件的可见屏幕
// 询问屏幕互相叠放，只有最上层完整可见
func (s *ScreenRenderSystem) drawScreens(screen *ebiten.Image, inRange func(layer int) bool) {
	w := float32(config.GameWindowWidth)
	h := float32(config.GameWindowHeight)

	for _, id := range VisibleScreens(s.entityManager) {
		sc, _ := ecs.GetComponent[*components.ScreenComponent](s.entityManager, id)
		if !inRange(sc.Layer) {
			continue
		}

		vector.FillRect(screen, 0, 0, w, h, panelColor, false)
		if sc.Title != "" {
			utils.DrawCenteredText(screen, sc.Title, float64(w)/2, config.ScreenTitleY, 3, titleColor)
		}

		for _, control := range sc.Controls {
			s.drawControl(screen, control)
		}
	}
}

func (s *ScreenRenderSystem) drawControl(screen *ebiten.Image, id ecs.EntityID) {
	cc, ok := ecs.GetComponent[*components.ControlComponent](s.entityManager, id)
	if !ok || cc.Hidden {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	x, y := float32(pos.X), float32(pos.Y)
	cw, ch := float32(cc.Width), float32(cc.Height)

	fill, label := controlColor, labelColor
	if cc.Active {
		fill, label = activeColor, activeLabelColor
	}
	vector.FillRect(screen, x, y, cw, ch, fill, false)
	vector.StrokeRect(screen, x, y, cw, ch, 2, controlEdgeColor, false)
	utils.DrawCenteredText(screen, cc.Label, pos.X+cc.Width/2, pos.Y+cc.Height/2-13, 2, label)
}

// DrawOverlay 绘制过渡遮罩
func (s *ScreenRenderSystem) DrawOverlay(screen *ebiten.Image, opacity float64) {
	if opacity <= 0 {
		return
	}
	a := uint8(utils.Clamp01(opacity) * 255)
	vector.FillRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, color.RGBA{A: a}, false)
}

// DrawTouchPad 绘制触摸按键
func (s *ScreenRenderSystem) DrawTouchPad(screen *ebiten.Image) {
	if !s.showTouchPad {
		return
	}
	for _, id := range ecs.GetEntitiesWith2[*components.TouchTargetComponent, *components.PositionComponent](s.entityManager) {
		tc, _ := ecs.GetComponent[*components.TouchTargetComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		clr := touchKeyColor
		if tc.Pressed {
			clr = touchPressedColor
		}
		vector.FillRect(screen, float32(pos.X), float32(pos.Y), float32(tc.Width), float32(tc.Height), clr, false)
		utils.DrawCenteredText(screen, tc.Label, pos.X+tc.Width/2, pos.Y+tc.Height/2-20, 3, titleColor)
	}
}
