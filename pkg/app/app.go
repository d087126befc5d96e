// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/game"
	"github.com/gonewx/fishtap/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SampleRate 音频采样率
const SampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的游戏配置文件，为空则使用嵌入的 data/game.yaml
	ConfigPath string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	gameConfig   *config.GameConfig
	sceneManager *game.SceneManager
	audioManager *game.AudioManager
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := loadGameConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded game config v%s: %d enemies, %d weapons", gameConfig.Version, len(gameConfig.Enemies), len(gameConfig.Weapons))

	// 初始化音频上下文（整个进程只能创建一次）
	audioContext := audio.CurrentContext()
	if audioContext == nil {
		audioContext = audio.NewContext(SampleRate)
	}

	resourceManager := game.NewResourceManager(audioContext)
	audioManager := newAudioManager(resourceManager, gameConfig)
	log.Printf("[App] AudioManager initialized")

	settingsManager := game.NewSettingsManager(audioManager, game.GameSettings{
		Volume:       gameConfig.Audio.MasterVolume,
		MusicEnabled: gameConfig.Audio.MusicEnabled,
	})

	width, height := gameConfig.Window.Width, gameConfig.Window.Height
	sceneManager := game.NewSceneManager(width, height)

	deps := &scenes.Deps{
		Config:    gameConfig,
		Resources: resourceManager,
		Audio:     audioManager,
		Settings:  settingsManager,
		Scenes:    sceneManager,
		Classic:   game.NewGameState(),
		Arena:     game.NewGameState(),
		Width:     float64(width),
		Height:    float64(height),
	}
	registerScenes(deps)
	sceneManager.Navigate(game.SceneMenu, game.DirectionNone)

	audioManager.PlayMusic()

	return &App{
		gameConfig:   gameConfig,
		sceneManager: sceneManager,
		audioManager: audioManager,
		verbose:      cfg.Verbose,
	}, nil
}

// loadGameConfig 优先读取磁盘上的配置，否则使用嵌入的默认配置
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfigFile(path)
	}
	return config.LoadGameConfig(config.DefaultGameConfigPath)
}

// newAudioManager 按配置加载音效和背景音乐，缺失的文件只记录警告
func newAudioManager(loader game.PlayerLoader, cfg *config.GameConfig) *game.AudioManager {
	am := game.NewAudioManager(loader, cfg.Audio.MasterVolume, cfg.Audio.MusicEnabled)
	for _, s := range cfg.Sounds {
		am.Load(s.Name, s.Path, s.Gain)
	}
	if cfg.Music.Path != "" {
		am.LoadMusic(cfg.Music.Name, cfg.Music.Path)
	}
	return am
}

// registerScenes 创建并注册全部界面
func registerScenes(deps *scenes.Deps) {
	gameScene := scenes.NewGameScene(deps)
	deps.Scenes.Register(game.SceneMenu, scenes.NewMenuScene(deps, gameScene))
	deps.Scenes.Register(game.SceneGame, gameScene)
	deps.Scenes.Register(game.SceneSettings, scenes.NewSettingsScene(deps))
	deps.Scenes.Register(game.SceneShop, scenes.NewShopScene(deps))
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.sceneManager.QuitRequested() {
		log.Printf("[App] Quit")
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.gameConfig.Window.Width, a.gameConfig.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}

// WindowTitle 窗口标题
func (a *App) WindowTitle() string {
	return a.gameConfig.Window.Title
}

// WindowSize 配置中的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.gameConfig.Window.Width, a.gameConfig.Window.Height
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
