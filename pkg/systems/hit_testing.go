package systems

import (
	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/ecs"
	"github.com/decker502/spacejump/pkg/entities"
)

// pointInRect 点是否在矩形内（含边界）
func pointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// TopScreen 返回位于交互层的最上层可见屏幕
func TopScreen(em *ecs.EntityManager) (ecs.EntityID, bool) {
	var top ecs.EntityID
	topLayer := 0
	found := false
	for _, id := range ecs.GetEntitiesWith1[*components.ScreenComponent](em) {
		sc, _ := ecs.GetComponent[*components.ScreenComponent](em, id)
		if !sc.Displayed || !sc.Raised {
			continue
		}
		if !found || sc.Layer > topLayer {
			top, topLayer, found = id, sc.Layer, true
		}
	}
	return top, found
}

// HitControl 指针命中的控件
// 只有最上层屏幕的可见控件可被命中，下层屏幕被遮挡
func HitControl(em *ecs.EntityManager, px, py float64) (ecs.EntityID, bool) {
	screen, ok := TopScreen(em)
	if !ok {
		return 0, false
	}
	for _, id := range entities.ScreenControls(em, screen) {
		if !entities.IsPresent(em, id) {
			continue
		}
		cc, _ := ecs.GetComponent[*components.ControlComponent](em, id)
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		if pointInRect(px, py, pos.X, pos.Y, cc.Width, cc.Height) {
			return id, true
		}
	}
	return 0, false
}

// HitTouchTarget 触摸点命中的虚拟按键
func HitTouchTarget(em *ecs.EntityManager, px, py float64) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.TouchTargetComponent, *components.PositionComponent](em) {
		tc, _ := ecs.GetComponent[*components.TouchTargetComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pointInRect(px, py, pos.X, pos.Y, tc.Width, tc.Height) {
			return id, true
		}
	}
	return 0, false
}
