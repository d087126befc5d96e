package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LabelComponent 文本标签
// PositionComponent 为文字中心（Centered）或左上角
type LabelComponent struct {
	Text     string
	Font     *text.GoTextFace
	Color    color.Color
	Centered bool
	Visible  bool
}
