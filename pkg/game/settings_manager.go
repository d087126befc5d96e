package game

import (
	"log"
	"math"
	"strconv"
	"strings"
)

// GameSettings 音频设置
// 只保存在内存中，重启后恢复为配置文件中的默认值
type GameSettings struct {
	Volume       float64 // 主音量 0.0 ~ 1.0
	MusicEnabled bool    // 音乐开关
}

// SettingsManager 设置管理器
// 负责解析设置界面的输入并同步到 AudioManager
type SettingsManager struct {
	settings GameSettings
	audio    *AudioManager // 可为 nil（仅保存设置）
}

// NewSettingsManager 创建设置管理器
//
// 参数：
//   - audio: 音频管理器，可为 nil
//   - defaults: 初始设置
func NewSettingsManager(audio *AudioManager, defaults GameSettings) *SettingsManager {
	defaults.Volume = clampVolume(defaults.Volume)
	return &SettingsManager{
		settings: defaults,
		audio:    audio,
	}
}

// GetSettings 返回当前设置的副本
func (sm *SettingsManager) GetSettings() GameSettings {
	return sm.settings
}

// SetVolume 设置主音量（会被限制在 0.0 ~ 1.0）
func (sm *SettingsManager) SetVolume(volume float64) {
	sm.settings.Volume = clampVolume(volume)
	if sm.audio != nil {
		sm.audio.SetMasterVolume(sm.settings.Volume)
	}
}

// ApplyVolumeText 解析设置界面输入的音量百分比
//
// "75" → 0.75；"150" → 1.0；"-10" → 0.0；无法解析的输入（如 "abc"、空串）
// 保持原音量不变并返回 false。
func (sm *SettingsManager) ApplyVolumeText(input string) bool {
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err == nil && math.IsNaN(value) {
		err = strconv.ErrSyntax
	}
	if err != nil {
		log.Printf("[SettingsManager] Ignoring volume input %q: %v", input, err)
		return false
	}
	sm.SetVolume(value / 100)
	return true
}

// VolumePercentText 当前音量的百分比文本（用于回填输入框）
func (sm *SettingsManager) VolumePercentText() string {
	return strconv.Itoa(int(sm.settings.Volume*100 + 0.5))
}

// SetMusicEnabled 设置音乐开关
func (sm *SettingsManager) SetMusicEnabled(enabled bool) {
	sm.settings.MusicEnabled = enabled
	if sm.audio != nil {
		sm.audio.SetMusicEnabled(enabled)
	}
}

// ToggleMusic 切换音乐开关，返回新状态
func (sm *SettingsManager) ToggleMusic() bool {
	sm.SetMusicEnabled(!sm.settings.MusicEnabled)
	return sm.settings.MusicEnabled
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
