package components

// PositionComponent 实体位置（屏幕坐标，像素）
//
// 对带 SpriteComponent 的实体表示图像中心；
// 对按钮、输入框等 UI 实体表示左上角。
type PositionComponent struct {
	X float64
	Y float64
}
