package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/entities"
	"github.com/gonewx/fishtap/pkg/game"
	"github.com/gonewx/fishtap/pkg/systems"
	"github.com/gonewx/fishtap/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// volumeStep 加减按钮每次调整的音量
const volumeStep = 0.1

// SettingsScene 设置界面
// 音乐开关、音量输入框（百分比）和 -/+ 微调按钮
type SettingsScene struct {
	uiLayer

	musicButton *components.ButtonComponent
	volumeInput *components.TextInputComponent
	volumeLabel *components.LabelComponent
}

// NewSettingsScene 创建设置界面
func NewSettingsScene(deps *Deps) *SettingsScene {
	scene := &SettingsScene{uiLayer: newUILayer(deps)}
	w, h := deps.Width, deps.Height

	scene.addLabel("Settings", config.TitleFontSize, w/2, h*0.12, config.AccentColor, true)

	top := h * 0.25
	scene.musicButton = scene.addColumnButton("", top, 0, scene.ToggleMusic)

	// 音量行：[-] [输入框] [+]
	rowY := top + config.ButtonHeight + config.ButtonSpacing*2
	scene.volumeLabel = scene.addLabel("", config.HUDFontSize, w/2, rowY, config.TextColor, true)
	rowY += config.HUDFontSize + config.ButtonSpacing

	const small = config.ButtonHeight
	inputWidth := config.ButtonWidth - 2*(small+config.ButtonSpacing/2)
	left := (w - config.ButtonWidth) / 2
	scene.addButton("-", left, rowY, small, small, func() { scene.StepVolume(-volumeStep) })
	scene.volumeInput = scene.addVolumeInput(left+small+config.ButtonSpacing/2, rowY, inputWidth, small)
	scene.addButton("+", left+config.ButtonWidth-small, rowY, small, small, func() { scene.StepVolume(volumeStep) })

	rowY += small + config.ButtonSpacing
	scene.addButton("Apply", left, rowY, config.ButtonWidth, config.ButtonHeight, scene.ApplyVolume)
	scene.addButton("Back", left, h-config.ButtonHeight-config.ButtonSpacing*2, config.ButtonWidth, config.ButtonHeight, scene.Back)

	scene.refresh()
	log.Printf("[SettingsScene] Initialized")
	return scene
}

func (s *SettingsScene) addVolumeInput(x, y, w, h float64) *components.TextInputComponent {
	_, input := entities.NewTextInputEntity(s.entityManager, x, y, w, h, s.font(config.ButtonFontSize),
		systems.NumericChars, 6, func(string) { s.ApplyVolume() })
	input.Placeholder = "0-100"
	return input
}

// OnEnter 进入时用当前设置回填
func (s *SettingsScene) OnEnter() {
	s.refresh()
}

// OnExit 离开时取消输入框焦点
func (s *SettingsScene) OnExit() {
	s.volumeInput.IsFocused = false
}

// ToggleMusic 切换背景音乐
func (s *SettingsScene) ToggleMusic() {
	enabled := s.deps.Settings.ToggleMusic()
	log.Printf("[SettingsScene] Music enabled: %v", enabled)
	s.refresh()
}

// ApplyVolume 应用输入框中的音量
// 无法解析时音量不变，输入框恢复为当前值
func (s *SettingsScene) ApplyVolume() {
	s.deps.Settings.ApplyVolumeText(s.volumeInput.Text)
	s.refresh()
}

// StepVolume 按步长调整音量
func (s *SettingsScene) StepVolume(delta float64) {
	s.deps.Settings.SetVolume(s.deps.Settings.GetSettings().Volume + delta)
	s.refresh()
}

// Back 返回主菜单
func (s *SettingsScene) Back() {
	s.deps.Scenes.Navigate(game.SceneMenu, game.DirectionDown)
}

// refresh 根据当前设置更新按钮文字、标签和输入框
func (s *SettingsScene) refresh() {
	settings := s.deps.Settings.GetSettings()
	if settings.MusicEnabled {
		s.musicButton.Text = "Music: On"
	} else {
		s.musicButton.Text = "Music: Off"
	}
	s.volumeLabel.Text = fmt.Sprintf("Volume: %s%%", s.deps.Settings.VolumePercentText())
	s.volumeInput.Text = s.deps.Settings.VolumePercentText()
}

// Update 更新设置界面
func (s *SettingsScene) Update(deltaTime float64) {
	s.update(deltaTime, utils.ReadPointer())
}

func (s *SettingsScene) update(deltaTime float64, pointer utils.PointerState) {
	s.updateUI(deltaTime, pointer)
}

// Draw 绘制设置界面
func (s *SettingsScene) Draw(screen *ebiten.Image) {
	s.drawUI(screen)
}
