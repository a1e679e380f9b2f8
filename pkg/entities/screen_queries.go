package entities

import (
	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/ecs"
)

// IsPresent 控件的存在性测试
// 控件实体存在、未隐藏、且所属屏幕可见时返回 true
func IsPresent(em *ecs.EntityManager, control ecs.EntityID) bool {
	cc, ok := ecs.GetComponent[*components.ControlComponent](em, control)
	if !ok || cc.Hidden {
		return false
	}
	sc, ok := ecs.GetComponent[*components.ScreenComponent](em, cc.Screen)
	return ok && sc.Displayed
}

// FindControl 按名称查找控件
func FindControl(em *ecs.EntityManager, name string) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.ControlComponent](em) {
		cc, _ := ecs.GetComponent[*components.ControlComponent](em, id)
		if cc.Name == name {
			return id, true
		}
	}
	return 0, false
}

// FindScreen 按名称查找屏幕
func FindScreen(em *ecs.EntityManager, name string) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.ScreenComponent](em) {
		sc, _ := ecs.GetComponent[*components.ScreenComponent](em, id)
		if sc.Name == name {
			return id, true
		}
	}
	return 0, false
}

// ScreenControls 返回屏幕的控件（声明顺序），屏幕不存在时返回 nil
func ScreenControls(em *ecs.EntityManager, screen ecs.EntityID) []ecs.EntityID {
	sc, ok := ecs.GetComponent[*components.ScreenComponent](em, screen)
	if !ok {
		return nil
	}
	return sc.Controls
}

// FirstControl 返回屏幕中第一个可见控件
func FirstControl(em *ecs.EntityManager, screen ecs.EntityID) (ecs.EntityID, bool) {
	for _, id := range ScreenControls(em, screen) {
		if cc, ok := ecs.GetComponent[*components.ControlComponent](em, id); ok && !cc.Hidden {
			return id, true
		}
	}
	return 0, false
}

// SetLabel 修改控件文字，控件不存在时忽略
func SetLabel(em *ecs.EntityManager, name, label string) {
	id, ok := FindControl(em, name)
	if !ok {
		return
	}
	cc, _ := ecs.GetComponent[*components.ControlComponent](em, id)
	cc.Label = label
}

// RevealSubscriberOnly 显示所有订阅用户专属控件
func RevealSubscriberOnly(em *ecs.EntityManager) int {
	revealed := 0
	for _, id := range ecs.GetEntitiesWith1[*components.ControlComponent](em) {
		cc, _ := ecs.GetComponent[*components.ControlComponent](em, id)
		if cc.SubscriberOnly && cc.Hidden {
			cc.Hidden = false
			revealed++
		}
	}
	return revealed
}

// RemoveScreen 从应用中永久移除屏幕及其控件
// 屏幕不存在时忽略
func RemoveScreen(em *ecs.EntityManager, screen ecs.EntityID) {
	sc, ok := ecs.GetComponent[*components.ScreenComponent](em, screen)
	if !ok {
		return
	}
	for _, control := range sc.Controls {
		em.DestroyEntity(control)
	}
	em.DestroyEntity(screen)
	em.RemoveMarkedEntities()
}

// RemoveControl 永久移除控件，并从所属屏幕的控件列表中删除
// 控件不存在时忽略
func RemoveControl(em *ecs.EntityManager, control ecs.EntityID) {
	cc, ok := ecs.GetComponent[*components.ControlComponent](em, control)
	if !ok {
		return
	}
	if sc, ok := ecs.GetComponent[*components.ScreenComponent](em, cc.Screen); ok {
		kept := sc.Controls[:0]
		for _, id := range sc.Controls {
			if id != control {
				kept = append(kept, id)
			}
		}
		sc.Controls = kept
	}
	em.DestroyEntity(control)
	em.RemoveMarkedEntities()
}
