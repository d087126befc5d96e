package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/game"
	"github.com/gonewx/fishtap/pkg/systems"
	"github.com/gonewx/fishtap/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameScene 游戏界面
//
// 进入时根据当前玩法创建目标系统；离开时清除目标和所有待触发的定时回调，
// 进度保存在 GameState 中，不随界面销毁。
type GameScene struct {
	uiLayer

	variant config.Variant
	rules   config.VariantRules
	state   *game.GameState

	scheduler    *game.Scheduler
	tweenSystem  *systems.TweenSystem
	targetSystem *systems.TargetSystem

	hudLabel    *components.LabelComponent
	stageLabel  *components.LabelComponent
	bannerTimer float64 // 过关提示剩余显示时间（秒）
}

// NewGameScene 创建游戏界面，默认经典模式
func NewGameScene(deps *Deps) *GameScene {
	scene := &GameScene{
		uiLayer:   newUILayer(deps),
		scheduler: game.NewScheduler(),
	}
	scene.tweenSystem = systems.NewTweenSystem(scene.entityManager)
	scene.SetVariant(config.VariantClassic)
	return scene
}

// SetVariant 设置下一次进入时使用的玩法
func (s *GameScene) SetVariant(v config.Variant) {
	s.variant = v
	s.rules = s.deps.Config.RulesFor(v)
	s.state = s.deps.StateFor(v)
}

// Variant 当前玩法
func (s *GameScene) Variant() config.Variant {
	return s.variant
}

// TargetSystem 当前的目标系统（进入界面后才有）
func (s *GameScene) TargetSystem() *systems.TargetSystem {
	return s.targetSystem
}

// OnEnter 重建界面并生成目标
func (s *GameScene) OnEnter() {
	s.entityManager.Clear()
	s.scheduler.Clear()
	s.bannerTimer = 0

	if s.rules.ResetOnEnter {
		s.state.ResetProgress()
	}

	w, h := s.deps.Width, s.deps.Height
	s.hudLabel = s.addLabel("", config.HUDFontSize, config.ButtonSpacing, config.ButtonSpacing, config.TextColor, false)
	s.stageLabel = s.addLabel("", config.ButtonFontSize, config.ButtonSpacing, config.ButtonSpacing+config.HUDFontSize*1.4, config.TextColor, false)
	homeWidth := config.ButtonWidth / 2
	s.addButton("Home", w-homeWidth-config.ButtonSpacing, config.ButtonSpacing, homeWidth, config.ButtonHeight, s.Home)

	var spriteImage systems.SpriteImageFunc
	if s.deps.Resources != nil {
		spriteImage = s.deps.Resources.SpriteImage
	}
	var sounds systems.SoundPlayer
	if s.deps.Audio != nil {
		sounds = s.deps.Audio
	}

	cfg := systems.TargetSystemConfig{
		EntityManager: s.entityManager,
		Scheduler:     s.scheduler,
		Sounds:        sounds,
		State:         s.state,
		Rules:         s.rules,
		Course:        game.NewCourse(s.deps.Config, s.variant),
		Sprites:       s.deps.Config.Sprites,
		SpriteImage:   spriteImage,
		CenterX:       w / 2,
		CenterY:       h/2 + config.TargetCenterYOffset,
		OnFinished: func() {
			log.Printf("[GameScene] Run %s finished (%s), coins=%d", s.state.RunID, s.variant, s.state.Coins)
		},
	}
	if s.rules.UseShop {
		// 轮与轮之间回到商店
		cfg.OnRoundComplete = func() {
			s.deps.Scenes.Navigate(game.SceneShop, game.DirectionRight)
		}
	} else {
		cfg.OnRoundComplete = s.nextLevel
	}
	s.targetSystem = systems.NewTargetSystem(cfg)
	s.targetSystem.Start()
	s.refreshHUD()

	log.Printf("[GameScene] Entered %s: round=%d stage=%d coins=%d", s.variant, s.state.Round, s.state.Stage, s.state.Coins)
}

// OnExit 移除目标并取消所有待触发的回调
func (s *GameScene) OnExit() {
	if s.targetSystem != nil {
		s.targetSystem.Stop()
	}
	s.scheduler.Clear()
	s.entityManager.RemoveMarkedEntities()
}

// nextLevel 经典模式过关：显示提示后生成下一关的第一个敌人
func (s *GameScene) nextLevel() {
	s.bannerTimer = s.rules.CompletionDelay
	s.scheduler.Schedule(s.rules.CompletionDelay, func() {
		s.targetSystem.SpawnCurrent()
	})
}

// Home 返回主菜单
func (s *GameScene) Home() {
	s.deps.Scenes.Navigate(game.SceneMenu, game.DirectionRight)
}

// Update 更新游戏界面
func (s *GameScene) Update(deltaTime float64) {
	s.update(deltaTime, utils.ReadPointer())
}

func (s *GameScene) update(deltaTime float64, pointer utils.PointerState) {
	// 按钮优先；落在按钮上的点击不再传给目标
	consumed := s.buttonSystem.Update(pointer)
	if !consumed && pointer.JustPressed && s.targetSystem != nil {
		s.targetSystem.HandleTap(float64(pointer.X), float64(pointer.Y))
	}

	s.tweenSystem.Update(deltaTime)
	s.scheduler.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()

	if s.bannerTimer > 0 {
		s.bannerTimer -= deltaTime
	}
	s.refreshHUD()
}

// refreshHUD 更新金币和进度文字
func (s *GameScene) refreshHUD() {
	if s.hudLabel == nil {
		return
	}
	if s.variant == config.VariantClassic {
		s.hudLabel.Text = fmt.Sprintf("Score: %d", s.state.Coins)
		s.stageLabel.Text = fmt.Sprintf("Level %d", s.state.Round+1)
		return
	}
	s.hudLabel.Text = fmt.Sprintf("Coins: %d", s.state.Coins)
	weapon := "none"
	if s.state.Weapon != nil {
		weapon = s.state.Weapon.Name
	}
	s.stageLabel.Text = fmt.Sprintf("Round %d  Stage %d  [%s]", s.state.Round+1, s.state.Stage+1, weapon)
}

// BannerVisible 是否正在显示过关提示
func (s *GameScene) BannerVisible() bool {
	return s.bannerTimer > 0
}

// Draw 绘制游戏界面
func (s *GameScene) Draw(screen *ebiten.Image) {
	s.drawUI(screen)

	var overlay string
	switch {
	case s.targetSystem != nil && s.targetSystem.FinishedShown():
		overlay = s.rules.FinishedText
	case s.BannerVisible():
		overlay = "LEVEL COMPLETE"
	}
	if overlay == "" {
		return
	}
	if font := s.font(config.TitleFontSize); font != nil {
		utils.DrawWrappedText(screen, overlay, font, s.deps.Width/2, s.deps.Height/2, s.deps.Width*0.8, config.AccentColor)
	}
}
