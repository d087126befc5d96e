package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现
// 图像以 PositionComponent 为中心绘制，先缩放再旋转
type SpriteComponent struct {
	SpriteID string        // 配置中的精灵图ID
	Image    *ebiten.Image // 当前绘制的图像

	// Width/Height 未缩放时的显示尺寸（像素），图像会被拉伸到该尺寸
	Width  float64
	Height float64

	Scale   float64 // 缩放倍数，1.0 为原始大小
	Angle   float64 // 旋转角度（度，顺时针）
	Opacity float64 // 不透明度 0.0 ~ 1.0
	Visible bool
}

// Bounds 返回当前缩放后的轴对齐包围盒（左上角和尺寸）
// 旋转不影响点击判定
func (s *SpriteComponent) Bounds(pos *PositionComponent) (x, y, w, h float64) {
	w = s.Width * s.Scale
	h = s.Height * s.Scale
	return pos.X - w/2, pos.Y - h/2, w, h
}
