package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/game"
	"github.com/gonewx/fishtap/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// weaponButton 武器按钮和对应的武器
type weaponButton struct {
	weapon config.Weapon
	button *components.ButtonComponent
}

// ShopScene 武器商店（竞技场模式）
// 购买即装备；只有装备了武器才能进入游戏
type ShopScene struct {
	uiLayer
	shop *game.Shop

	coinsLabel  *components.LabelComponent
	roundLabel  *components.LabelComponent
	weapons     []weaponButton
	fightButton *components.ButtonComponent
}

// NewShopScene 创建商店界面，使用竞技场模式的进度
func NewShopScene(deps *Deps) *ShopScene {
	scene := &ShopScene{
		uiLayer: newUILayer(deps),
		shop:    game.NewShop(deps.Config.Weapons, deps.Arena),
	}
	w, h := deps.Width, deps.Height

	scene.addLabel("Shop", config.TitleFontSize, w/2, h*0.08, config.AccentColor, true)
	scene.coinsLabel = scene.addLabel("", config.HUDFontSize, w/2, h*0.15, config.TextColor, true)
	scene.roundLabel = scene.addLabel("", config.ButtonFontSize, w/2, h*0.15+config.HUDFontSize*1.5, config.TextColor, true)

	top := h * 0.25
	for i, weapon := range scene.shop.Weapons() {
		weaponID := weapon.ID
		button := scene.addColumnButton(weaponButtonText(weapon), top, i, func() { scene.Buy(weaponID) })
		scene.weapons = append(scene.weapons, weaponButton{weapon: weapon, button: button})
	}

	bottom := h - config.ButtonHeight - config.ButtonSpacing*2
	left := (w - config.ButtonWidth) / 2
	half := (config.ButtonWidth - config.ButtonSpacing) / 2
	scene.addButton("Back", left, bottom, half, config.ButtonHeight, scene.Back)
	scene.fightButton = scene.addButton("Fight", left+half+config.ButtonSpacing, bottom, half, config.ButtonHeight, scene.Fight)

	scene.refresh()
	log.Printf("[ShopScene] Initialized with %d weapons", len(scene.weapons))
	return scene
}

// weaponButtonText 武器按钮文字："Net  30c  x2"
func weaponButtonText(w config.Weapon) string {
	return fmt.Sprintf("%s  %dc  x%d", w.Name, w.Price, w.Damage)
}

// OnEnter 进入时刷新金币和按钮状态
func (s *ShopScene) OnEnter() {
	s.refresh()
}

// Buy 购买武器，成功后刷新界面
func (s *ShopScene) Buy(weaponID string) bool {
	ok := s.shop.Buy(weaponID)
	if ok {
		log.Printf("[ShopScene] Equipped %s, coins left %d", weaponID, s.deps.Arena.Coins)
	}
	s.refresh()
	return ok
}

// Fight 进入游戏（未装备武器时无效）
func (s *ShopScene) Fight() {
	if !s.shop.CanEnterGame() {
		log.Printf("[ShopScene] Select a weapon first")
		return
	}
	s.deps.Scenes.Navigate(game.SceneGame, game.DirectionLeft)
}

// Back 返回主菜单
func (s *ShopScene) Back() {
	s.deps.Scenes.Navigate(game.SceneMenu, game.DirectionRight)
}

// refresh 更新金币、轮次、武器按钮和开始按钮的状态
func (s *ShopScene) refresh() {
	state := s.deps.Arena
	s.coinsLabel.Text = fmt.Sprintf("Coins: %d", state.Coins)
	s.roundLabel.Text = fmt.Sprintf("Round %d / %d", state.Round+1, len(s.deps.Config.Arena.Rounds))

	for _, wb := range s.weapons {
		selected := s.shop.IsSelected(wb.weapon)
		wb.button.Selected = selected
		wb.button.Enabled = selected || s.shop.CanAfford(wb.weapon)
	}
	s.fightButton.Enabled = s.shop.CanEnterGame()
}

// Update 更新商店界面
func (s *ShopScene) Update(deltaTime float64) {
	s.update(deltaTime, utils.ReadPointer())
}

func (s *ShopScene) update(deltaTime float64, pointer utils.PointerState) {
	s.updateUI(deltaTime, pointer)
}

// Draw 绘制商店界面
func (s *ShopScene) Draw(screen *ebiten.Image) {
	s.drawUI(screen)
}
