package game

import (
	"log"
)

// soundEntry 已加载的音效
type soundEntry struct {
	player Player
	gain   float64 // 音量倍率，最终音量 = min(master * gain, 1)
}

// AudioManager 音频管理器
// 职责：
//   - 按名称加载音效和一首循环背景音乐
//   - 主音量同时作用于全部音效（乘以各自的倍率）和背景音乐
//   - 背景音乐额外受音乐开关控制
//
// 加载失败的音频记为“缺失”，对缺失音频的所有播放操作都是空操作。
type AudioManager struct {
	loader PlayerLoader

	sounds map[string]*soundEntry

	music        Player
	musicName    string
	musicEnabled bool

	masterVolume float64
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - loader: 播放器加载器（通常是 ResourceManager，可为 nil，此时所有音频缺失）
//   - masterVolume: 初始主音量 (0.0 ~ 1.0)
//   - musicEnabled: 初始音乐开关
func NewAudioManager(loader PlayerLoader, masterVolume float64, musicEnabled bool) *AudioManager {
	return &AudioManager{
		loader:       loader,
		sounds:       make(map[string]*soundEntry),
		musicEnabled: musicEnabled,
		masterVolume: clampVolume(masterVolume),
	}
}

// Load 加载音效
//
// 参数：
//   - name: 音效名（如 "hit", "kill"）
//   - path: 音频文件路径
//   - gain: 音量倍率，<= 0 视为 1.0
//
// 返回：
//   - Player: 播放器；加载失败返回 nil（该音效缺失）
func (am *AudioManager) Load(name, path string, gain float64) Player {
	if gain <= 0 {
		gain = 1.0
	}
	player := am.load(name, path, false)
	if player == nil {
		delete(am.sounds, name)
		return nil
	}

	entry := &soundEntry{player: player, gain: gain}
	am.sounds[name] = entry
	player.SetVolume(am.soundVolume(entry))
	return player
}

// LoadMusic 加载循环背景音乐，替换之前的音乐
func (am *AudioManager) LoadMusic(name, path string) Player {
	if am.music != nil {
		am.music.Pause()
	}
	am.music = am.load(name, path, true)
	am.musicName = name
	if am.music != nil {
		am.music.SetVolume(am.musicVolume())
	}
	return am.music
}

func (am *AudioManager) load(name, path string, loop bool) Player {
	if am.loader == nil {
		log.Printf("[AudioManager] Audio not loaded: %s -> %s (no loader)", name, path)
		return nil
	}
	player, err := am.loader.LoadPlayer(path, loop)
	if err != nil || player == nil {
		log.Printf("[AudioManager] Audio not loaded: %s -> %s (%v)", name, path, err)
		return nil
	}
	log.Printf("[AudioManager] Audio loaded: %s -> %s", name, path)
	return player
}

// Has 音效是否已加载
func (am *AudioManager) Has(name string) bool {
	_, ok := am.sounds[name]
	return ok
}

// Play 从头播放音效
// 返回是否真正播放（缺失的音效返回 false）
func (am *AudioManager) Play(name string) bool {
	entry, ok := am.sounds[name]
	if !ok {
		return false
	}
	if err := entry.player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", name, err)
	}
	entry.player.Play()
	return true
}

// Stop 停止音效
func (am *AudioManager) Stop(name string) {
	if entry, ok := am.sounds[name]; ok {
		entry.player.Pause()
	}
}

// PlayMusic 播放背景音乐（音乐开关关闭时不播放）
func (am *AudioManager) PlayMusic() bool {
	if am.music == nil || !am.musicEnabled {
		return false
	}
	am.music.SetVolume(am.musicVolume())
	if !am.music.IsPlaying() {
		am.music.Play()
		log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", am.musicName, am.musicVolume())
	}
	return true
}

// StopMusic 暂停背景音乐
func (am *AudioManager) StopMusic() {
	if am.music != nil {
		am.music.Pause()
	}
}

// SetMusicEnabled 音乐开关
// 关闭时音乐音量置 0 并暂停；打开时恢复为主音量并继续播放
func (am *AudioManager) SetMusicEnabled(enabled bool) {
	am.musicEnabled = enabled
	if am.music == nil {
		return
	}
	am.music.SetVolume(am.musicVolume())
	if enabled {
		am.PlayMusic()
	} else {
		am.music.Pause()
	}
}

// MusicEnabled 音乐开关状态
func (am *AudioManager) MusicEnabled() bool {
	return am.musicEnabled
}

// SetMasterVolume 设置主音量并立即应用到所有已加载的音频
//
// 参数：
//   - volume: 音量值，会被限制在 0.0 ~ 1.0
func (am *AudioManager) SetMasterVolume(volume float64) {
	am.masterVolume = clampVolume(volume)

	for _, entry := range am.sounds {
		entry.player.SetVolume(am.soundVolume(entry))
	}
	if am.music != nil {
		am.music.SetVolume(am.musicVolume())
	}
}

// MasterVolume 当前主音量
func (am *AudioManager) MasterVolume() float64 {
	return am.masterVolume
}

// MusicVolume 背景音乐的实际音量
func (am *AudioManager) MusicVolume() float64 {
	return am.musicVolume()
}

// SoundVolume 指定音效的实际音量，缺失返回 0
func (am *AudioManager) SoundVolume(name string) float64 {
	entry, ok := am.sounds[name]
	if !ok {
		return 0
	}
	return am.soundVolume(entry)
}

func (am *AudioManager) soundVolume(entry *soundEntry) float64 {
	return clampVolume(am.masterVolume * entry.gain)
}

func (am *AudioManager) musicVolume() float64 {
	if !am.musicEnabled {
		return 0
	}
	return am.masterVolume
}
