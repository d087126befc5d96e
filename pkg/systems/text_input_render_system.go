package systems

import (
	"image/color"

	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var placeholderColor = color.RGBA{R: 150, G: 150, B: 150, A: 255}

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制输入框边框、背景、文本和光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有文本输入框
func (s *TextInputRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		s.DrawInputBox(screen, input, pos)
	}
}

// DrawInputBox 绘制单个输入框
func (s *TextInputRenderSystem) DrawInputBox(screen *ebiten.Image, input *components.TextInputComponent, pos *components.PositionComponent) {
	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(input.Width), float32(input.Height)

	// 1. 背景和边框，获得焦点时边框高亮
	vector.FillRect(screen, x, y, w, h, config.InputColor, false)
	border := color.Color(config.ButtonColor)
	if input.IsFocused {
		border = config.AccentColor
	}
	vector.StrokeRect(screen, x, y, w, h, 3, border, true)

	if input.Font == nil {
		return
	}

	// 2. 文本或占位符，垂直居中
	textX := pos.X + input.PaddingLeft
	textY := pos.Y + input.Height/2
	if input.Text == "" && input.Placeholder != "" && !input.IsFocused {
		drawInputText(screen, input.Placeholder, input.Font, textX, textY, placeholderColor)
	} else if input.Text != "" {
		drawInputText(screen, input.Text, input.Font, textX, textY, config.InputTextColor)
	}

	// 3. 光标，位于文本末尾
	if input.IsFocused && input.CursorVisible {
		width, _ := text.Measure(input.Text, input.Font, 0)
		cx := float32(textX + width + 2)
		lineHeight := float32(input.Font.Size)
		vector.StrokeLine(screen, cx, float32(textY)-lineHeight/2, cx, float32(textY)+lineHeight/2, 2, config.InputTextColor, true)
	}
}

// drawInputText 左对齐、垂直居中绘制文本
func drawInputText(screen *ebiten.Image, str string, font *text.GoTextFace, x, centerY float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, centerY)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, font, op)
}
