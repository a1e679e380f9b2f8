package systems

import (
	"log"

	"github.com/decker502/spacejump/pkg/components"
	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/ecs"
	"github.com/decker502/spacejump/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Blocker 遮挡指针输入的图层（过渡遮罩）
type Blocker interface {
	Raised() bool
}

// InputSystem 把 ebiten 的键盘、鼠标和触摸事件翻译给输入路由
//
// 职责：
//   - 键盘：映射表中的按键按下/松开转发为物理按键事件
//   - 鼠标：悬停移动焦点，按下触发控件
//   - 触摸：虚拟按键按下/松开，点在控件上视为点击
//
// 过渡遮罩位于交互层时，指针和触摸对控件无效（键盘不受影响）。
type InputSystem struct {
	entityManager *ecs.EntityManager
	router        *input.Router
	blocker       Blocker

	keys    []ebiten.Key // 映射表中出现的物理按键
	hovered ecs.EntityID // 上一帧指针下的控件

	touchIDs []ebiten.TouchID
}

// NewInputSystem 创建输入系统
//
// 参数：
//   - em: 实体管理器
//   - router: 输入路由
//   - blocker: 过渡遮罩，可为 nil
func NewInputSystem(em *ecs.EntityManager, router *input.Router, blocker Blocker) *InputSystem {
	s := &InputSystem{
		entityManager: em,
		router:        router,
		blocker:       blocker,
	}

	// 物理按键名使用 ebiten.Key.String()（如 "ArrowLeft"、"A"、"Space"）
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if _, ok := router.KeyMap().Lookup(k.String()); ok {
			s.keys = append(s.keys, k)
		}
	}
	log.Printf("[InputSystem] Watching %d physical keys", len(s.keys))
	return s
}

// Update 轮询本帧的输入事件
func (s *InputSystem) Update(deltaTime float64) {
	for _, k := range s.keys {
		if inpututil.IsKeyJustPressed(k) {
			s.router.OnPhysicalKeyDown(k.String())
		}
		if inpututil.IsKeyJustReleased(k) {
			s.router.OnPhysicalKeyUp(k.String())
		}
	}

	// 失去焦点时收不到松开事件
	if !ebiten.IsFocused() {
		s.router.State().ReleaseAll()
	}

	mx, my := ebiten.CursorPosition()
	s.HandlePointer(float64(mx), float64(my), inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))

	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		s.HandleTouchStart(int(id), float64(tx), float64(ty))
	}
	s.touchIDs = inpututil.AppendJustReleasedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		s.HandleTouchEnd(int(id))
	}
}

// blocked 过渡遮罩是否挡住指针
// 最上层屏幕位于遮罩之上（暂停屏幕）时不受阻挡
func (s *InputSystem) blocked() bool {
	if s.blocker == nil || !s.blocker.Raised() {
		return false
	}
	if top, ok := TopScreen(s.entityManager); ok {
		if sc, _ := ecs.GetComponent[*components.ScreenComponent](s.entityManager, top); sc.Layer >= config.OverlayLayer {
			return false
		}
	}
	return true
}

// HandlePointer 处理指针位置与按下
// 指针移到新的控件上时移动焦点；按下时触发指针下的控件
func (s *InputSystem) HandlePointer(x, y float64, pressed bool) {
	if s.blocked() {
		s.hovered = 0
		return
	}

	control, ok := HitControl(s.entityManager, x, y)
	if !ok {
		s.hovered = 0
		return
	}
	if control != s.hovered {
		s.hovered = control
		s.router.OnPointerOver(control)
	}
	if pressed {
		s.router.OnPointerDown(control)
	}
}

// HandleTouchStart 处理触摸按下
// 虚拟按键优先；否则点在控件上视为点击
func (s *InputSystem) HandleTouchStart(id int, x, y float64) {
	if target, ok := HitTouchTarget(s.entityManager, x, y); ok {
		s.router.OnTouchStart(target)
		if tc, ok := ecs.GetComponent[*components.TouchTargetComponent](s.entityManager, target); ok && tc.Pressed {
			tc.TouchID = id
		}
		return
	}

	if s.blocked() {
		return
	}
	if control, ok := HitControl(s.entityManager, x, y); ok {
		s.router.OnPointerOver(control)
		s.router.OnPointerDown(control)
	}
}

// HandleTouchEnd 处理触摸松开，松开按住该触摸点的虚拟按键
func (s *InputSystem) HandleTouchEnd(id int) {
	for _, target := range ecs.GetEntitiesWith1[*components.TouchTargetComponent](s.entityManager) {
		tc, _ := ecs.GetComponent[*components.TouchTargetComponent](s.entityManager, target)
		if tc.Pressed && tc.TouchID == id {
			s.router.OnTouchEnd(target)
		}
	}
}
