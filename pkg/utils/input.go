// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 当前帧的指针状态
// 统一鼠标左键和第一个触点：触摸优先，其次鼠标
type PointerState struct {
	X, Y         int
	Pressed      bool // 当前是否按下
	JustPressed  bool // 本帧刚按下
	JustReleased bool // 本帧刚释放
	IsTouch      bool // 事件来自触摸
}

// 触摸释放时已经拿不到坐标，保存最后一次触摸位置
var lastTouchX, lastTouchY int

// ReadPointer 读取当前帧的指针状态
// 每帧只应调用一次（由场景在 Update 开头调用），结果传给各个系统
func ReadPointer() PointerState {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		lastTouchX, lastTouchY = x, y
		return PointerState{X: x, Y: y, Pressed: true, JustPressed: true, IsTouch: true}
	}

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		lastTouchX, lastTouchY = x, y
		return PointerState{X: x, Y: y, Pressed: true, IsTouch: true}
	}

	if ids := inpututil.AppendJustReleasedTouchIDs(nil); len(ids) > 0 {
		return PointerState{X: lastTouchX, Y: lastTouchY, JustReleased: true, IsTouch: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:            x,
		Y:            y,
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// PointInRect 点是否在轴对齐矩形内（含边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
