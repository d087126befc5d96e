package game

//go:generate go tool mockgen -source=audio_player.go -destination=mocks/mock_audio_player.go -package=mocks

// Player 可播放的音频句柄
// *audio.Player 满足此接口；测试中使用 mocks.MockPlayer
type Player interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
}

// PlayerLoader 从文件路径创建播放器
// loop 为 true 时返回无限循环的播放器（背景音乐）
type PlayerLoader interface {
	LoadPlayer(path string, loop bool) (Player, error)
}
