package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand/v2"

	"github.com/decker502/spacejump/pkg/background"
	"github.com/decker502/spacejump/pkg/config"
	"github.com/decker502/spacejump/pkg/game"
	"github.com/decker502/spacejump/pkg/input"
	"github.com/decker502/spacejump/pkg/utils"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sounds 会话播放音效的接口（*game.AudioManager 满足）
type Sounds interface {
	PlaySound(soundID string) bool
}

// platform 一块平台（世界坐标，左上角）
type platform struct {
	x, y float64
}

// JumpSession 一局跳跃游戏
//
// 玩家在平台间向上跳跃，镜头随之上移；掉出视野底部即坠毁，
// 播放结束动画后通知流程控制器返回菜单。
// 同时实现 game.Session 和 game.Scene。
type JumpSession struct {
	id      string
	params  game.StartParams
	keys    *input.KeyboardState
	sounds  Sounds
	bg      background.Renderer
	rng     *rand.Rand
	onEnded func()

	running bool
	paused  bool
	ending  bool
	ended   bool

	endingTimer float64 // 结束动画剩余时间（秒）

	// 玩家（世界坐标，左上角）
	x, y     float64
	vx, vy   float64
	grounded bool
	fuel     float64 // 火箭燃料（秒）
	thrust   bool    // 本帧是否在推进

	cameraY   float64 // 视野顶部的世界 Y 坐标
	startY    float64
	score     int
	platforms []platform
	topY      float64 // 已生成的最高平台的 Y 坐标
}

// NewJumpSession 创建游戏会话（尚未开始）
//
// 参数：
//   - params: 开始参数
//   - keys: 逻辑按键状态（由输入路由写入）
//   - sounds: 音效播放，可为 nil
//   - bg: 背景渲染器
//   - seed: 平台生成的随机种子
//   - onEnded: 坠毁动画结束后调用
func NewJumpSession(params game.StartParams, keys *input.KeyboardState, sounds Sounds, bg background.Renderer, seed uint64, onEnded func()) *JumpSession {
	s := &JumpSession{
		id:      uuid.NewString(),
		params:  params,
		keys:    keys,
		sounds:  sounds,
		bg:      bg,
		rng:     rand.New(rand.NewPCG(seed, seed^0x5eed)),
		onEnded: onEnded,
	}
	s.reset()
	return s
}

// NewSessionFactory 返回创建 JumpSession 的会话工厂
func NewSessionFactory(keys *input.KeyboardState, sounds Sounds, bg background.Renderer) game.SessionFactory {
	return func(params game.StartParams, onEnded func()) game.Session {
		return NewJumpSession(params, keys, sounds, bg, rand.Uint64(), onEnded)
	}
}

// ID 返回会话ID
func (s *JumpSession) ID() string {
	return s.id
}

// Score 返回当前得分
func (s *JumpSession) Score() int {
	return s.score
}

// Fuel 返回火箭燃料（秒）
func (s *JumpSession) Fuel() float64 {
	return s.fuel
}

// Position 返回玩家位置（世界坐标）
func (s *JumpSession) Position() (float64, float64) {
	return s.x, s.y
}

// Grounded 玩家是否站在平台上
func (s *JumpSession) Grounded() bool {
	return s.grounded
}

// Running 游戏循环是否在运行
func (s *JumpSession) Running() bool {
	return s.running
}

// reset 初始化玩家、镜头和底部平台
func (s *JumpSession) reset() {
	w := float64(config.GameWindowWidth)
	h := float64(config.GameWindowHeight)

	// 底部整行地面
	ground := h - config.PlatformHeight*3
	s.platforms = s.platforms[:0]
	for x := 0.0; x < w; x += config.PlatformWidth {
		s.platforms = append(s.platforms, platform{x: x, y: ground})
	}
	s.topY = ground

	s.x = (w - config.PlayerSize) / 2
	s.y = ground - config.PlayerSize
	s.startY = s.y
	s.vx, s.vy = 0, 0
	s.grounded = true
	s.cameraY = 0
	s.score = 0
	s.fuel = 0
	if s.params.Rockets {
		s.fuel = config.RocketFuelSeconds
	}

	s.generatePlatforms()
}

// Start 开始游戏循环
func (s *JumpSession) Start() {
	s.running = true
	log.Printf("[JumpSession] %s started (rockets=%v)", s.id, s.params.Rockets)
}

// End 中止会话，不触发结束回调
func (s *JumpSession) End() {
	s.running = false
	s.ended = true
	log.Printf("[JumpSession] %s aborted at score %d", s.id, s.score)
}

// Pause 暂停游戏循环
func (s *JumpSession) Pause() {
	s.paused = true
}

// ResumeLoop 恢复游戏循环
func (s *JumpSession) ResumeLoop() {
	s.paused = false
}

// State 返回会话状态
func (s *JumpSession) State() game.SessionState {
	return game.SessionState{
		Paused: s.paused,
		Ending: s.ending,
	}
}

// Update 推进一帧游戏逻辑
func (s *JumpSession) Update(deltaTime float64) {
	if !s.running || s.paused || s.ended {
		return
	}
	dt := math.Min(deltaTime, config.MaxFrameDelta)

	if s.ending {
		s.updateEnding(dt)
		return
	}

	s.updatePlayer(dt)
	s.updateCamera()
	s.generatePlatforms()
	s.prunePlatforms()

	if s.y > s.cameraY+float64(config.GameWindowHeight) {
		s.crash()
	}
}

// updatePlayer 处理输入、物理和平台碰撞
func (s *JumpSession) updatePlayer(dt float64) {
	s.vx = 0
	if s.keys.IsHeld(input.KeyArrowLeft) {
		s.vx -= config.PlayerMoveSpeed
	}
	if s.keys.IsHeld(input.KeyArrowRight) {
		s.vx += config.PlayerMoveSpeed
	}

	up := s.keys.IsHeld(input.KeyArrowUp)
	s.thrust = false
	switch {
	case up && s.grounded:
		s.vy = config.PlayerJumpVelocity
		s.grounded = false
		s.play(game.SoundJump)
	case up && s.params.Rockets && s.fuel > 0:
		s.vy -= config.RocketThrust * dt
		s.fuel = math.Max(0, s.fuel-dt)
		s.thrust = true
	}

	if !s.grounded {
		s.vy = math.Min(s.vy+config.Gravity*dt, config.MaxFallSpeed)
	} else if s.params.Rockets {
		s.fuel = math.Min(config.RocketFuelSeconds, s.fuel+config.RocketRefuelRate*dt)
	}

	// 水平方向循环穿越屏幕边缘
	w := float64(config.GameWindowWidth)
	s.x += s.vx * dt
	if s.x < -config.PlayerSize {
		s.x += w + config.PlayerSize
	} else if s.x > w {
		s.x -= w + config.PlayerSize
	}

	prevFeet := s.y + config.PlayerSize
	s.y += s.vy * dt
	feet := s.y + config.PlayerSize

	if height := int((s.startY - s.y) / 10); height > s.score {
		s.score = height
	}

	if s.grounded {
		if !s.standingOnPlatform() {
			s.grounded = false
		}
		return
	}

	// 只在下落时检测落地：脚从平台上方穿过平台顶面
	if s.vy < 0 {
		return
	}
	for _, p := range s.platforms {
		if prevFeet <= p.y && feet >= p.y && s.overlapsX(p) {
			s.y = p.y - config.PlayerSize
			s.vy = 0
			s.grounded = true
			s.play(game.SoundLand)
			break
		}
	}
}

// standingOnPlatform 玩家脚下是否仍有平台
func (s *JumpSession) standingOnPlatform() bool {
	feet := s.y + config.PlayerSize
	for _, p := range s.platforms {
		if math.Abs(feet-p.y) < 0.5 && s.overlapsX(p) {
			return true
		}
	}
	return false
}

func (s *JumpSession) overlapsX(p platform) bool {
	return s.x+config.PlayerSize > p.x && s.x < p.x+config.PlatformWidth
}

// updateCamera 玩家高于跟随线时镜头上移（镜头从不下移）
func (s *JumpSession) updateCamera() {
	follow := s.cameraY + float64(config.GameWindowHeight)*config.CameraFollowRatio
	if s.y < follow {
		s.cameraY -= follow - s.y
	}
}

// generatePlatforms 在视野上方补充平台
func (s *JumpSession) generatePlatforms() {
	limit := s.cameraY - config.PlatformLookahead
	maxX := float64(config.GameWindowWidth) - config.PlatformWidth
	for s.topY-config.PlatformSpacing > limit {
		s.topY -= config.PlatformSpacing
		s.platforms = append(s.platforms, platform{
			x: s.rng.Float64() * maxX,
			y: s.topY,
		})
	}
}

// prunePlatforms 移除已落出视野底部的平台
func (s *JumpSession) prunePlatforms() {
	bottom := s.cameraY + float64(config.GameWindowHeight)
	kept := s.platforms[:0]
	for _, p := range s.platforms {
		if p.y <= bottom {
			kept = append(kept, p)
		}
	}
	s.platforms = kept
}

// crash 坠毁，进入结束动画
func (s *JumpSession) crash() {
	s.ending = true
	s.endingTimer = config.EndingDuration
	s.play(game.SoundCrash)
	log.Printf("[JumpSession] %s crashed at score %d", s.id, s.score)
}

// updateEnding 推进结束动画，结束后通知一次
func (s *JumpSession) updateEnding(dt float64) {
	s.endingTimer -= dt
	if s.endingTimer > 0 {
		return
	}

	s.running = false
	s.ended = true
	log.Printf("[JumpSession] %s ended with score %d", s.id, s.score)
	if s.onEnded != nil {
		s.onEnded()
	}
}

func (s *JumpSession) play(soundID string) {
	if s.sounds != nil {
		s.sounds.PlaySound(soundID)
	}
}

var (
	platformColor = color.RGBA{R: 150, G: 120, B: 255, A: 255}
	hudColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	fuelColor     = color.RGBA{R: 255, G: 150, B: 40, A: 255}
	crashColor    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
)

// Draw 绘制背景、平台、玩家和得分
func (s *JumpSession) Draw(screen *ebiten.Image) {
	// 背景以较慢的视差跟随镜头
	s.bg.Draw(screen, -s.cameraY*0.25)

	for _, p := range s.platforms {
		vector.FillRect(screen, float32(p.x), float32(p.y-s.cameraY), config.PlatformWidth, config.PlatformHeight, platformColor, false)
	}

	if !s.ending {
		drawPlayer(screen, s.x, s.y-s.cameraY, s.thrust)
	}

	w := float64(config.GameWindowWidth)
	utils.DrawCenteredText(screen, fmt.Sprintf("SCORE %d", s.score), w/2, 16, 2, hudColor)

	if s.params.Rockets {
		ratio := float32(s.fuel / config.RocketFuelSeconds)
		vector.StrokeRect(screen, 16, 16, 120, 12, 1, hudColor, false)
		vector.FillRect(screen, 16, 16, 120*ratio, 12, fuelColor, false)
	}

	if s.ending {
		utils.DrawCenteredText(screen, "CRASHED", w/2, float64(config.GameWindowHeight)/2-20, 3, crashColor)
	}
}
