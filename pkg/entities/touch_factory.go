package entities

import (
	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/ecs"
)

// BuildTouchPad 创建屏幕触摸按键
// 左下角：左、右；右下角：跳（上）和暂停（确认）
//
// 返回：
//   - []ecs.EntityID: 触摸按键实体（创建顺序）
func BuildTouchPad(em *ecs.EntityManager) []ecs.EntityID {
	size := config.TouchKeySize
	bottom := float64(config.GameWindowHeight) - config.TouchPadMargin - size
	right := float64(config.GameWindowWidth) - config.TouchPadMargin - size

	keys := []struct {
		key   string
		label string
		x, y  float64
	}{
		{"arrowLeft", "<", config.TouchPadMargin, bottom},
		{"arrowRight", ">", config.TouchPadMargin + size + config.TouchPadGap, bottom},
		{"arrowUp", "^", right, bottom},
		{"enter", "II", right, config.TouchPadMargin},
	}

	ids := make([]ecs.EntityID, 0, len(keys))
	for _, k := range keys {
		entity := em.CreateEntity()
		ecs.AddComponent(em, entity, &components.PositionComponent{X: k.x, Y: k.y})
		ecs.AddComponent(em, entity, &components.TouchTargetComponent{
			Key:     k.key,
			Label:   k.label,
			Width:   size,
			Height:  size,
			TouchID: -1,
		})
		ids = append(ids, entity)
	}
	return ids
}
