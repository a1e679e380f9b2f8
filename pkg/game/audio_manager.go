package game

import (
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效ID
const (
	SoundFocus   = "focus"   // 焦点切换
	SoundConfirm = "confirm" // 确认/点击
	SoundJump    = "jump"    // 起跳
	SoundLand    = "land"    // 落地
	SoundCrash   = "crash"   // 坠毁
)

// AudioManager 音频管理器
// 职责：
//   - 合成并缓存界面提示音与游戏音效（无外部音频资源）
//   - 维护音频开关（与偏好设置中的 Audio 同步由调用方负责）
//   - 提供便捷的播放接口
//
// audioContext 为 nil 时进入降级模式：所有播放调用直接返回 false
type AudioManager struct {
	audioContext *audio.Context
	enabled      bool
	samples      map[string][]byte        // 音效ID -> PCM 数据
	players      map[string]*audio.Player // 音效ID -> 播放器缓存
	volume       float64
}

// NewAudioManager 创建新的音频管理器，并合成界面提示音
//
// 参数：
//   - ctx: ebiten 音频上下文，可为 nil（降级模式）
//   - enabled: 初始音频开关（通常来自偏好设置）
//
// 返回：
//   - *AudioManager: 音频管理器实例
func NewAudioManager(ctx *audio.Context, enabled bool) *AudioManager {
	am := &AudioManager{
		audioContext: ctx,
		enabled:      enabled,
		samples:      make(map[string][]byte),
		players:      make(map[string]*audio.Player),
		volume:       0.6,
	}

	sampleRate := am.sampleRate()
	am.samples[SoundFocus] = synthesize(sampleRate, uiCues[SoundFocus])
	am.samples[SoundConfirm] = synthesize(sampleRate, uiCues[SoundConfirm])

	if ctx == nil {
		log.Printf("[AudioManager] No audio context, running in degraded mode")
	}
	return am
}

// Enabled 音频是否启用
func (am *AudioManager) Enabled() bool {
	return am.enabled
}

// SetEnabled 设置音频开关
// 关闭时停止所有正在播放的音效
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
	if !enabled {
		for _, player := range am.players {
			player.Pause()
		}
	}
	log.Printf("[AudioManager] Audio enabled: %v", enabled)
}

// BuildSamples 合成游戏音效
// 开始游戏前调用；已合成的音效不会重复合成
func (am *AudioManager) BuildSamples() {
	sampleRate := am.sampleRate()
	built := 0
	for id, cue := range gameplayCues {
		if _, exists := am.samples[id]; exists {
			continue
		}
		am.samples[id] = synthesize(sampleRate, cue)
		built++
	}
	log.Printf("[AudioManager] Built %d gameplay samples", built)
}

// HasSample 音效是否已合成
func (am *AudioManager) HasSample(soundID string) bool {
	_, exists := am.samples[soundID]
	return exists
}

// SampleIDs 返回已合成的音效ID（排序后）
func (am *AudioManager) SampleIDs() []string {
	ids := make([]string, 0, len(am.samples))
	for id := range am.samples {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PlayFocusCue 播放焦点切换提示音
func (am *AudioManager) PlayFocusCue() bool {
	return am.PlaySound(SoundFocus)
}

// PlayConfirmCue 播放确认提示音
func (am *AudioManager) PlayConfirmCue() bool {
	return am.PlaySound(SoundConfirm)
}

// PlaySound 播放音效
//
// 参数：
//   - soundID: 音效ID（如 SoundJump）
//
// 返回：
//   - bool: 是否成功播放（音频关闭、降级模式或音效未合成时返回 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.enabled || am.audioContext == nil {
		return false
	}

	player := am.getPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// getPlayer 获取或创建音效播放器
func (am *AudioManager) getPlayer(soundID string) *audio.Player {
	if player, exists := am.players[soundID]; exists {
		return player
	}

	pcm, exists := am.samples[soundID]
	if !exists {
		log.Printf("[AudioManager] Warning: Sound not built: %s", soundID)
		return nil
	}

	player := am.audioContext.NewPlayerFromBytes(pcm)
	am.players[soundID] = player
	return player
}

// sampleRate 返回合成使用的采样率
func (am *AudioManager) sampleRate() int {
	if am.audioContext == nil {
		return defaultSampleRate
	}
	return am.audioContext.SampleRate()
}
