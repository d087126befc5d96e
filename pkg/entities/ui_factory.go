package entities

import (
	"image/color"

	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// NewButtonEntity 创建纯色按钮实体
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮左上角（屏幕坐标）
//   - w, h: 按钮尺寸
//   - label: 按钮文字
//   - font: 文字字体，可为 nil（只绘制背景）
//   - textColor: 文字颜色
//   - onClick: 点击回调函数
//
// 返回：
//   - ecs.EntityID: 按钮实体ID
//   - *components.ButtonComponent: 按钮组件，调用方可随时修改文字和启用状态
func NewButtonEntity(
	em *ecs.EntityManager,
	x, y, w, h float64,
	label string,
	font *text.GoTextFace,
	textColor color.Color,
	onClick func(),
) (ecs.EntityID, *components.ButtonComponent) {
	entity := em.CreateEntity()

	em.AddComponent(entity, &components.PositionComponent{X: x, Y: y})

	button := &components.ButtonComponent{
		Text:      label,
		Font:      font,
		TextColor: textColor,
		Width:     w,
		Height:    h,
		State:     components.UINormal,
		Enabled:   true,
		OnClick:   onClick,
	}
	em.AddComponent(entity, button)

	// 添加 UI 组件标记（方便过滤）
	em.AddComponent(entity, &components.UIComponent{State: components.UINormal})

	return entity, button
}

// NewLabelEntity 创建文本标签实体，centered 为 true 时 (x, y) 为文字中心
func NewLabelEntity(
	em *ecs.EntityManager,
	x, y float64,
	str string,
	font *text.GoTextFace,
	clr color.Color,
	centered bool,
) (ecs.EntityID, *components.LabelComponent) {
	entity := em.CreateEntity()
	label := &components.LabelComponent{
		Text:     str,
		Font:     font,
		Color:    clr,
		Centered: centered,
		Visible:  true,
	}
	em.AddComponent(entity, label)
	em.AddComponent(entity, &components.PositionComponent{X: x, Y: y})
	return entity, label
}

// NewTextInputEntity 创建文本输入框实体
//
// 参数：
//   - em: 实体管理器
//   - x, y, w, h: 输入框位置和尺寸
//   - font: 文字字体
//   - allowedChars: 允许输入的字符，空串表示不限制
//   - maxLength: 最大字符数，0 表示不限制
//   - onSubmit: 回车时的回调，可为 nil
func NewTextInputEntity(
	em *ecs.EntityManager,
	x, y, w, h float64,
	font *text.GoTextFace,
	allowedChars string,
	maxLength int,
	onSubmit func(string),
) (ecs.EntityID, *components.TextInputComponent) {
	entity := em.CreateEntity()
	input := &components.TextInputComponent{
		Font:         font,
		Width:        w,
		Height:       h,
		MaxLength:    maxLength,
		AllowedChars: allowedChars,
		PaddingLeft:  12,
		OnSubmit:     onSubmit,
	}
	em.AddComponent(entity, input)
	em.AddComponent(entity, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entity, &components.UIComponent{})
	return entity, input
}
