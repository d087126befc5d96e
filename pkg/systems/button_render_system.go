package systems

import (
	"image/color"

	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/ecs"
	"github.com/gonewx/fishtap/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体：纯色圆角背景 + 居中文字
//
// 职责：
//   - 根据按钮状态选择背景色（normal/hover/pressed/disabled）
//   - 已选中的按钮（商店中已装备的武器）绘制强调色边框
//   - 渲染按钮文字（自动居中）
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(button.Width), float32(button.Height)

	vector.FillRect(screen, x, y, w, h, buttonColor(button), true)
	if button.Selected {
		vector.StrokeRect(screen, x, y, w, h, 4, config.AccentColor, true)
	}

	if button.Font == nil || button.Text == "" {
		return
	}
	textColor := button.TextColor
	if textColor == nil {
		textColor = config.TextColor
	}
	utils.DrawText(screen, button.Text, button.Font, pos.X+button.Width/2, pos.Y+button.Height/2, textColor, utils.AlignCenter)
}

// buttonColor 根据状态返回背景色
func buttonColor(button *components.ButtonComponent) color.Color {
	if !button.Enabled {
		return config.ButtonDisableColor
	}
	switch button.State {
	case components.UIHovered:
		return config.ButtonHoverColor
	case components.UIClicked:
		return config.ButtonPressColor
	default:
		return config.ButtonColor
	}
}
