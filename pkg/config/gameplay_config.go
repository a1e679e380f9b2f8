package config

// 游戏玩法配置常量
// 速度单位为像素/秒，加速度为像素/秒²，Y 轴向下为正

// Player (玩家)
const (
	// PlayerSize 玩家边长
	PlayerSize = 28.0

	// PlayerMoveSpeed 水平移动速度
	PlayerMoveSpeed = 320.0

	// PlayerJumpVelocity 起跳初速度（向上为负）
	PlayerJumpVelocity = -620.0

	// Gravity 重力加速度
	Gravity = 1400.0

	// MaxFallSpeed 最大下落速度
	MaxFallSpeed = 900.0
)

// Rockets (火箭模式)
const (
	// RocketThrust 按住上键时的推力加速度
	RocketThrust = 2200.0

	// RocketFuelSeconds 满燃料可持续推进的秒数
	RocketFuelSeconds = 1.2

	// RocketRefuelRate 落地时每秒恢复的燃料（秒）
	RocketRefuelRate = 0.8
)

// Platforms (平台)
const (
	// PlatformWidth 平台宽度
	PlatformWidth = 140.0

	// PlatformHeight 平台厚度
	PlatformHeight = 12.0

	// PlatformSpacing 相邻平台的垂直间距
	PlatformSpacing = 110.0

	// PlatformLookahead 在视野上方预生成的高度
	PlatformLookahead = GameWindowHeight
)

// Camera & Session (镜头与会话)
const (
	// CameraFollowRatio 玩家高于视野该比例时镜头跟随上移
	CameraFollowRatio = 0.4

	// EndingDuration 坠毁后结束动画的时长（秒）
	EndingDuration = 1.5

	// MaxFrameDelta 单帧最大步长（秒），从后台恢复时避免穿透平台
	MaxFrameDelta = 0.05

	// MenuScrollSpeed 菜单背景滚动速度（像素/秒）
	MenuScrollSpeed = 10.0
)
