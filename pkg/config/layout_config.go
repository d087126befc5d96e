package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// 布局配置常量
// 坐标均为逻辑坐标（Layout 返回的尺寸），原点在左上角

const (
	// DefaultWindowWidth 非 POSIX 平台的初始窗口宽度
	DefaultWindowWidth = 450
	// DefaultWindowHeight 非 POSIX 平台的初始窗口高度
	DefaultWindowHeight = 900

	// ButtonWidth 菜单按钮宽度
	ButtonWidth = 260.0
	// ButtonHeight 菜单按钮高度
	ButtonHeight = 64.0
	// ButtonSpacing 菜单按钮之间的纵向间距
	ButtonSpacing = 24.0

	// HUDFontSize 分数/金币文字大小
	HUDFontSize = 28.0
	// ButtonFontSize 按钮文字大小
	ButtonFontSize = 24.0
	// TitleFontSize 标题文字大小
	TitleFontSize = 44.0

	// TargetCenterYOffset 目标中心相对屏幕中线的纵向偏移
	// 与原版一致：鱼游到屏幕中部略偏上的位置
	TargetCenterYOffset = -100.0

	// HitPulseScale 受击缩放倍率
	HitPulseScale = 1.5
	// HitPulseHalfDuration 受击放大/还原各自的时长（秒）
	HitPulseHalfDuration = 0.05
	// DefeatScale 旋转死亡动画的最大缩放倍率（HitPulseScale * 3）
	DefeatScale = HitPulseScale * 3

	// TransitionDuration 界面切换滑动时长（秒）
	TransitionDuration = 0.25
)

// 界面配色
var (
	BackgroundColor    = color.RGBA{R: 18, G: 62, B: 96, A: 255}
	ButtonColor        = color.RGBA{R: 42, G: 157, B: 143, A: 255}
	ButtonHoverColor   = color.RGBA{R: 62, G: 180, B: 165, A: 255}
	ButtonPressColor   = color.RGBA{R: 30, G: 120, B: 110, A: 255}
	ButtonDisableColor = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	TextColor          = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	AccentColor        = color.RGBA{R: 255, G: 209, B: 102, A: 255}
	InputColor         = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	InputTextColor     = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

// ParseHexColor 解析 "#rrggbb" 或 "#rrggbbaa" 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
