package systems

import (
	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/ecs"
	"github.com/gonewx/fishtap/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测释放（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 更新按钮交互状态
//
// 返回：
//   - bool: 本帧的点击是否落在某个按钮上（被按钮消费，不再传给游戏目标）
func (s *ButtonSystem) Update(pointer utils.PointerState) bool {
	px, py := float64(pointer.X), float64(pointer.Y)
	consumed := false
	clicked := false // 同一帧只触发一个按钮

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		// 前一个按钮的回调可能已经移除了这个按钮
		button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		isHovered := utils.PointInRect(px, py, pos.X, pos.Y, button.Width, button.Height)
		if isHovered && (pointer.JustPressed || pointer.JustReleased) {
			consumed = true
		}

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		switch {
		case !isHovered:
			button.State = components.UINormal
		case pointer.JustReleased:
			// 释放瞬间触发回调，之后恢复悬停状态
			button.State = components.UIHovered
			if button.OnClick != nil && !clicked {
				clicked = true
				button.OnClick()
			}
		case pointer.Pressed:
			button.State = components.UIClicked
		default:
			button.State = components.UIHovered
		}
	}

	return consumed
}
