package scenes

import (
	"log"

	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/game"
	"github.com/gonewx/fishtap/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// menuTop 菜单按钮列的顶部位置（相对屏幕高度的比例）
const menuTop = 0.35

// MenuScene 主菜单
// 经典模式直接进入游戏，竞技场模式先进入商店
type MenuScene struct {
	uiLayer
	gameScene *GameScene
}

// NewMenuScene 创建主菜单
//
// 参数：
//   - deps: 共享依赖
//   - gameScene: 游戏界面，选择玩法时在切换前配置它
func NewMenuScene(deps *Deps, gameScene *GameScene) *MenuScene {
	scene := &MenuScene{
		uiLayer:   newUILayer(deps),
		gameScene: gameScene,
	}

	title := deps.Config.Window.Title
	if title == "" {
		title = "Fish Tap"
	}
	scene.addLabel(title, config.TitleFontSize, deps.Width/2, deps.Height*0.18, config.AccentColor, true)

	top := deps.Height * menuTop
	scene.addColumnButton("Classic", top, 0, scene.PlayClassic)
	scene.addColumnButton("Arena", top, 1, scene.PlayArena)
	scene.addColumnButton("Settings", top, 2, scene.OpenSettings)
	scene.addColumnButton("Exit", top, 3, scene.Exit)

	log.Printf("[MenuScene] Initialized")
	return scene
}

// PlayClassic 进入经典模式
func (s *MenuScene) PlayClassic() {
	s.gameScene.SetVariant(config.VariantClassic)
	s.deps.Scenes.Navigate(game.SceneGame, game.DirectionLeft)
}

// PlayArena 进入竞技场模式：上一局已结束时开始新的一局，然后进入商店
func (s *MenuScene) PlayArena() {
	if s.deps.Arena.Finished {
		s.deps.Arena.Reset()
	}
	s.gameScene.SetVariant(config.VariantArena)
	s.deps.Scenes.Navigate(game.SceneShop, game.DirectionLeft)
}

// OpenSettings 进入设置界面
func (s *MenuScene) OpenSettings() {
	s.deps.Scenes.Navigate(game.SceneSettings, game.DirectionUp)
}

// Exit 请求退出程序
func (s *MenuScene) Exit() {
	log.Printf("[MenuScene] Exit requested")
	s.deps.Scenes.RequestQuit()
}

// Update 更新菜单
func (s *MenuScene) Update(deltaTime float64) {
	s.update(deltaTime, utils.ReadPointer())
}

func (s *MenuScene) update(deltaTime float64, pointer utils.PointerState) {
	s.updateUI(deltaTime, pointer)
}

// Draw 绘制菜单
func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.drawUI(screen)
}
