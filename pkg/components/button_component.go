package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：尺寸、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件
//   - 按钮用纯色矩形绘制，颜色随状态变化
//   - 文字自动居中显示
//   - 释放时触发点击回调
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色
	TextColor color.Color

	// Width 按钮宽度（像素）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Selected 高亮显示（如商店中已装备的武器）
	Selected bool

	// OnClick 点击回调函数
	OnClick func()
}
