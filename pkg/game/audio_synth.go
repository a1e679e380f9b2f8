package game

import (
	"encoding/binary"
	"math"
	"time"
)

const defaultSampleRate = 48000

// cue 一个合成音效的参数
// 频率在持续时间内从 From 线性滑到 To，振幅按指数衰减
type cue struct {
	From     float64       // 起始频率（Hz）
	To       float64       // 结束频率（Hz）
	Duration time.Duration // 持续时间
	Decay    float64       // 衰减系数，越大衰减越快
	Noise    float64       // 噪声比例 0~1
}

var uiCues = map[string]cue{
	SoundFocus:   {From: 880, To: 990, Duration: 40 * time.Millisecond, Decay: 6},
	SoundConfirm: {From: 660, To: 1320, Duration: 90 * time.Millisecond, Decay: 4},
}

var gameplayCues = map[string]cue{
	SoundJump:  {From: 220, To: 660, Duration: 180 * time.Millisecond, Decay: 3},
	SoundLand:  {From: 160, To: 90, Duration: 120 * time.Millisecond, Decay: 8, Noise: 0.3},
	SoundCrash: {From: 120, To: 40, Duration: 600 * time.Millisecond, Decay: 4, Noise: 0.8},
}

// synthesize 生成 16 位小端立体声 PCM（ebiten audio 的原生格式）
func synthesize(sampleRate int, c cue) []byte {
	n := int(float64(sampleRate) * c.Duration.Seconds())
	buf := make([]byte, n*4)

	phase := 0.0
	seed := uint32(0x9e3779b9)
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := c.From + (c.To-c.From)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase)
		if c.Noise > 0 {
			// xorshift 伪随机噪声，结果可复现
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			noise := float64(seed)/float64(math.MaxUint32)*2 - 1
			v = v*(1-c.Noise) + noise*c.Noise
		}
		v *= math.Exp(-c.Decay * progress)

		s := int16(v * 0.8 * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
