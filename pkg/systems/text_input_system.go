package systems

import (
	"log"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/ecs"
	"github.com/gonewx/fishtap/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// NumericChars 数字输入框允许的字符
const NumericChars = "0123456789.-"

// TextInputSystem 文本输入系统
// 处理输入框的焦点、键盘输入、粘贴和光标闪烁
type TextInputSystem struct {
	entityManager *ecs.EntityManager

	// readClipboard 读取剪贴板，测试中可替换
	readClipboard func() (string, error)
	// readKeyboard 处理获得焦点的输入框的键盘输入，测试中可替换
	readKeyboard func(input *components.TextInputComponent)
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	s := &TextInputSystem{
		entityManager: em,
		readClipboard: clipboard.ReadAll,
	}
	s.readKeyboard = s.handleKeyboardInput
	return s
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64, pointer utils.PointerState) {
	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 点击输入框获得焦点，点击其它位置失去焦点
		if pointer.JustPressed {
			input.IsFocused = utils.PointInRect(float64(pointer.X), float64(pointer.Y), pos.X, pos.Y, input.Width, input.Height)
		}

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)
		s.readKeyboard(input)
	}
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	const blinkInterval = 0.5 // 光标闪烁间隔（秒）

	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= blinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	// 1. 文本字符输入
	if runes := ebiten.AppendInputChars(nil); len(runes) > 0 {
		s.InsertText(input, string(runes))
	}

	// 2. 退格键，按住时连续删除
	backspaceDuration := inpututil.KeyPressDuration(ebiten.KeyBackspace)
	if backspaceDuration == 1 || (backspaceDuration >= 30 && backspaceDuration%3 == 0) {
		s.DeleteLast(input)
	}

	// 3. Ctrl+V / Cmd+V 粘贴（移动端没有系统剪贴板）
	if !utils.IsMobile() && inpututil.IsKeyJustPressed(ebiten.KeyV) &&
		(ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)) {
		s.Paste(input)
	}

	// 4. 回车提交
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		s.Submit(input)
	}
}

// InsertText 在末尾追加文本，按 AllowedChars 和 MaxLength 过滤
func (s *TextInputSystem) InsertText(input *components.TextInputComponent, text string) {
	filtered := filterChars(text, input.AllowedChars)
	if filtered == "" {
		return
	}

	runes := []rune(input.Text)
	newRunes := []rune(filtered)
	if input.MaxLength > 0 && len(runes)+len(newRunes) > input.MaxLength {
		newRunes = newRunes[:max(0, input.MaxLength-len(runes))]
		if len(newRunes) == 0 {
			log.Printf("[TextInputSystem] Max length reached (%d chars)", input.MaxLength)
			return
		}
	}

	input.Text = string(append(runes, newRunes...))
	// 输入时光标应该可见
	input.CursorBlinkTimer = 0
	input.CursorVisible = true
}

// DeleteLast 删除最后一个字符
func (s *TextInputSystem) DeleteLast(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	if len(runes) == 0 {
		return
	}
	input.Text = string(runes[:len(runes)-1])
	input.CursorBlinkTimer = 0
	input.CursorVisible = true
}

// Paste 粘贴剪贴板内容，读取失败时忽略
func (s *TextInputSystem) Paste(input *components.TextInputComponent) {
	if s.readClipboard == nil {
		return
	}
	content, err := s.readClipboard()
	if err != nil {
		log.Printf("[TextInputSystem] Clipboard unavailable: %v", err)
		return
	}
	s.InsertText(input, strings.TrimSpace(content))
}

// Submit 触发提交回调
func (s *TextInputSystem) Submit(input *components.TextInputComponent) {
	if input.OnSubmit != nil {
		input.OnSubmit(input.Text)
	}
}

// filterChars 只保留 allowed 中的字符，allowed 为空时不过滤
func filterChars(text, allowed string) string {
	if allowed == "" {
		return text
	}
	var b strings.Builder
	for _, r := range text {
		if strings.ContainsRune(allowed, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
