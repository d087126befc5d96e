package components

import "github.com/hajimehoshi/ebiten/v2/text/v2"

// TextInputComponent 文本输入框组件
// 用于设置界面输入音量百分比
type TextInputComponent struct {
	// 输入框文本
	Text string // 当前输入的文本
	Font *text.GoTextFace

	// 输入框样式
	Width  float64 // 输入框宽度（像素）
	Height float64 // 输入框高度（像素）

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）

	// 输入限制
	MaxLength    int    // 最大字符数（0 = 无限制）
	AllowedChars string // 允许输入的字符（空串 = 不限制）
	Placeholder  string // 占位符文本（输入框为空时显示）

	// 焦点状态
	IsFocused bool // 是否获得焦点（接收键盘输入）

	// 内边距
	PaddingLeft float64 // 左内边距（像素）

	// OnSubmit 按下回车时调用
	OnSubmit func(text string)
}
