package entities

import (
	"log"

	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/ecs"
)

// 屏幕名称
const (
	ScreenFullscreenQuestion = "fullscreen-question"
	ScreenAudioQuestion      = "audio-question"
	ScreenMenu               = "menu"
	ScreenPause              = "pause"
)

// 控件名称
const (
	ControlFullscreenYes = "fullscreen--yes"
	ControlFullscreenNo  = "fullscreen--no"
	ControlAudioYes      = "audio--yes"
	ControlAudioNo       = "audio--no"
	ControlStart         = "start"
	ControlRockets       = "rockets"
	ControlAudio         = "audio"
	ControlFullscreen    = "fullscreen"
	ControlPauseContinue = "pause--continue"
	ControlPauseAbort    = "pause--abort"
)

// Screens 启动时创建的屏幕实体
type Screens struct {
	FullscreenQuestion ecs.EntityID
	AudioQuestion      ecs.EntityID
	Menu               ecs.EntityID
	Pause              ecs.EntityID
}

// controlDecl 控件声明
type controlDecl struct {
	name           string
	label          string
	subscriberOnly bool
}

// BuildScreens 创建应用的全部屏幕和控件
//
// 两个询问屏幕初始可见（由淡入遮罩覆盖），菜单和暂停遮罩初始隐藏。
// 控件按声明顺序加入屏幕，焦点导航按此顺序循环。
//
// 参数：
//   - em: 实体管理器
//
// 返回：
//   - Screens: 各屏幕的实体ID
func BuildScreens(em *ecs.EntityManager) Screens {
	s := Screens{
		FullscreenQuestion: newScreen(em, ScreenFullscreenQuestion, "GO FULLSCREEN?", config.FullscreenQuestionLayer, true, []controlDecl{
			{name: ControlFullscreenYes, label: "YES"},
			{name: ControlFullscreenNo, label: "NO"},
		}),
		AudioQuestion: newScreen(em, ScreenAudioQuestion, "ENABLE AUDIO?", config.AudioQuestionLayer, true, []controlDecl{
			{name: ControlAudioYes, label: "YES"},
			{name: ControlAudioNo, label: "NO"},
		}),
		Menu: newScreen(em, ScreenMenu, "SPACE JUMP", config.MenuLayer, false, []controlDecl{
			{name: ControlStart, label: "START"},
			{name: ControlRockets, label: "ROCKETS", subscriberOnly: true},
			{name: ControlAudio, label: "AUDIO YES"},
			{name: ControlFullscreen, label: "FULLSCREEN"},
		}),
		Pause: newScreen(em, ScreenPause, "PAUSED", config.PauseLayer, false, []controlDecl{
			{name: ControlPauseContinue, label: "CONTINUE"},
			{name: ControlPauseAbort, label: "ABORT"},
		}),
	}

	log.Printf("[ScreenFactory] Built screens: %+v", s)
	return s
}

// newScreen 创建屏幕实体及其控件
func newScreen(em *ecs.EntityManager, name, title string, layer int, displayed bool, decls []controlDecl) ecs.EntityID {
	screen := em.CreateEntity()
	sc := &components.ScreenComponent{
		Name:      name,
		Title:     title,
		Controls:  make([]ecs.EntityID, 0, len(decls)),
		Displayed: displayed,
		Raised:    displayed,
		Layer:     layer,
	}
	ecs.AddComponent(em, screen, sc)

	for i, decl := range decls {
		sc.Controls = append(sc.Controls, newControl(em, screen, i, decl))
	}
	return screen
}

// newControl 创建控件实体
// 控件纵向排列，隐藏的控件仍占据自己的位置
func newControl(em *ecs.EntityManager, screen ecs.EntityID, index int, decl controlDecl) ecs.EntityID {
	x, y := config.ControlPosition(index)

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})
	ecs.AddComponent(em, entity, &components.ControlComponent{
		Name:           decl.name,
		Label:          decl.label,
		Screen:         screen,
		Hidden:         decl.subscriberOnly,
		SubscriberOnly: decl.subscriberOnly,
		Width:          config.ControlWidth,
		Height:         config.ControlHeight,
	})
	return entity
}
