package transition

import (
	"time"

	"github.com/decker502/spacejump/pkg/utils"
)

// Overlay 全屏淡入淡出遮罩
//
// 不透明度从上一次的当前值插值到目标值；Raised 为 true 时遮罩位于交互层，
// 挡住其下所有控件的指针输入。初始状态为不透明且位于交互层。
type Overlay struct {
	from     float64
	target   float64
	start    time.Duration
	duration time.Duration
	raised   bool
}

// NewOverlay 创建不透明遮罩
func NewOverlay() *Overlay {
	return &Overlay{
		from:   1,
		target: 1,
		raised: true,
	}
}

// Opacity 返回 now 时刻的不透明度 ∈ [0, 1]
func (o *Overlay) Opacity(now time.Duration) float64 {
	if o.duration <= 0 || now >= o.start+o.duration {
		return o.target
	}
	if now <= o.start {
		return o.from
	}
	progress := float64(now-o.start) / float64(o.duration)
	return utils.Lerp(o.from, o.target, utils.EaseInOutCubic(progress))
}

// Target 返回目标不透明度
func (o *Overlay) Target() float64 {
	return o.target
}

// Raised 遮罩是否位于交互层
func (o *Overlay) Raised() bool {
	return o.raised
}

// retarget 从当前不透明度开始向 target 过渡
func (o *Overlay) retarget(target float64, now, d time.Duration) {
	o.from = o.Opacity(now)
	o.target = target
	o.start = now
	o.duration = d
}
