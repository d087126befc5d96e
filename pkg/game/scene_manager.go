package game

import (
	"log"

	"github.com/gonewx/fishtap/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// 场景名称
const (
	SceneMenu     = "menu"
	SceneGame     = "game"
	SceneSettings = "settings"
	SceneShop     = "shop"
)

// Direction 切换动画方向（仅影响画面）
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// transition 进行中的滑动切换
type transition struct {
	from      Scene
	direction Direction
	elapsed   float64
	duration  float64
}

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update is called at any given time; during a slide
// transition the outgoing scene is still drawn but no longer updated.
type SceneManager struct {
	scenes      map[string]Scene
	current     Scene
	currentName string

	transition *transition

	width, height int

	quit bool

	// 离屏缓冲，切换动画期间使用
	fromBuffer *ebiten.Image
	toBuffer   *ebiten.Image
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use Navigate to set the initial scene.
func NewSceneManager(width, height int) *SceneManager {
	return &SceneManager{
		scenes: make(map[string]Scene),
		width:  width,
		height: height,
	}
}

// Register 注册场景，同名场景会被替换
func (sm *SceneManager) Register(name string, scene Scene) {
	sm.scenes[name] = scene
}

// Navigate 切换到指定场景
//
// 参数：
//   - name: 场景名称（SceneMenu 等）
//   - direction: 滑动方向，DirectionNone 表示直接切换
//
// 返回：
//   - bool: 场景未注册时返回 false，当前场景不变
func (sm *SceneManager) Navigate(name string, direction Direction) bool {
	next, ok := sm.scenes[name]
	if !ok {
		log.Printf("[SceneManager] Unknown scene: %s", name)
		return false
	}

	prev := sm.current
	if lc, ok := prev.(Lifecycle); ok {
		lc.OnExit()
	}

	log.Printf("[SceneManager] %s -> %s (%s)", sm.currentName, name, direction)
	sm.current = next
	sm.currentName = name

	if prev != nil && direction != DirectionNone {
		sm.transition = &transition{
			from:      prev,
			direction: direction,
			duration:  config.TransitionDuration,
		}
	} else {
		sm.transition = nil
	}

	if lc, ok := next.(Lifecycle); ok {
		lc.OnEnter()
	}
	return true
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.current
}

// CurrentName 返回当前场景名称
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
}

// InTransition 是否正在播放切换动画
func (sm *SceneManager) InTransition() bool {
	return sm.transition != nil
}

// RequestQuit 请求退出程序（菜单的退出按钮）
func (sm *SceneManager) RequestQuit() {
	log.Printf("[SceneManager] Quit requested")
	sm.quit = true
}

// QuitRequested 是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quit
}

// SetScreenSize 更新切换动画使用的屏幕尺寸
func (sm *SceneManager) SetScreenSize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	sm.fromBuffer = nil
	sm.toBuffer = nil
}

// Update updates the currently active scene and advances the slide transition.
func (sm *SceneManager) Update(deltaTime float64) {
	if t := sm.transition; t != nil {
		t.elapsed += deltaTime
		if t.elapsed >= t.duration {
			sm.transition = nil
		}
	}
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// TransitionOffsets 返回切换动画中旧场景和新场景的偏移
// 没有切换动画时两者均为 (0, 0)
func (sm *SceneManager) TransitionOffsets() (fromX, fromY, toX, toY float64) {
	t := sm.transition
	if t == nil {
		return 0, 0, 0, 0
	}
	p := 1.0
	if t.duration > 0 {
		p = t.elapsed / t.duration
	}
	if p > 1 {
		p = 1
	}
	w, h := float64(sm.width), float64(sm.height)
	switch t.direction {
	case DirectionLeft:
		return -w * p, 0, w * (1 - p), 0
	case DirectionRight:
		return w * p, 0, -w * (1 - p), 0
	case DirectionUp:
		return 0, -h * p, 0, h * (1 - p)
	case DirectionDown:
		return 0, h * p, 0, -h * (1 - p)
	}
	return 0, 0, 0, 0
}

// Draw renders the currently active scene to the provided screen.
// During a transition both scenes are rendered off-screen and composed with their offsets.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current == nil {
		return
	}
	t := sm.transition
	if t == nil {
		sm.current.Draw(screen)
		return
	}

	if sm.fromBuffer == nil {
		sm.fromBuffer = ebiten.NewImage(sm.width, sm.height)
		sm.toBuffer = ebiten.NewImage(sm.width, sm.height)
	}
	sm.fromBuffer.Clear()
	sm.toBuffer.Clear()
	t.from.Draw(sm.fromBuffer)
	sm.current.Draw(sm.toBuffer)

	fromX, fromY, toX, toY := sm.TransitionOffsets()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(fromX, fromY)
	screen.DrawImage(sm.fromBuffer, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(toX, toY)
	screen.DrawImage(sm.toBuffer, op)
}
