package scenes

import (
	"image/color"

	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/ecs"
	"github.com/gonewx/fishtap/pkg/entities"
	"github.com/gonewx/fishtap/pkg/game"
	"github.com/gonewx/fishtap/pkg/systems"
	"github.com/gonewx/fishtap/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Deps 场景共享的依赖，由 App 创建后注入
type Deps struct {
	Config    *config.GameConfig
	Resources *game.ResourceManager // 可为 nil（测试中不加载字体和图片）
	Audio     *game.AudioManager    // 可为 nil
	Settings  *game.SettingsManager
	Scenes    *game.SceneManager

	// 每种玩法各自的进度
	Classic *game.GameState
	Arena   *game.GameState

	Width, Height float64
}

// StateFor 返回指定玩法的进度
func (d *Deps) StateFor(v config.Variant) *game.GameState {
	if v == config.VariantArena {
		return d.Arena
	}
	return d.Classic
}

// playSound 播放音效（Audio 为 nil 时忽略）
func (d *Deps) playSound(name string) {
	if d.Audio != nil {
		d.Audio.Play(name)
	}
}

// uiLayer 菜单类界面共用的实体管理器和 UI 系统
type uiLayer struct {
	deps          *Deps
	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem
	inputSystem   *systems.TextInputSystem
	renderSystem  *systems.RenderSystem
	buttonRender  *systems.ButtonRenderSystem
	inputRender   *systems.TextInputRenderSystem
}

func newUILayer(deps *Deps) uiLayer {
	em := ecs.NewEntityManager()
	return uiLayer{
		deps:          deps,
		entityManager: em,
		buttonSystem:  systems.NewButtonSystem(em),
		inputSystem:   systems.NewTextInputSystem(em),
		renderSystem:  systems.NewRenderSystem(em),
		buttonRender:  systems.NewButtonRenderSystem(em),
		inputRender:   systems.NewTextInputRenderSystem(em),
	}
}

// updateUI 更新按钮和输入框，返回指针事件是否被按钮消费
func (l *uiLayer) updateUI(deltaTime float64, pointer utils.PointerState) bool {
	consumed := l.buttonSystem.Update(pointer)
	l.inputSystem.Update(deltaTime, pointer)
	l.entityManager.RemoveMarkedEntities()
	return consumed
}

// drawUI 绘制背景、精灵、标签、按钮和输入框
func (l *uiLayer) drawUI(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	l.renderSystem.Draw(screen)
	l.buttonRender.Draw(screen)
	l.inputRender.Draw(screen)
}

// font 返回指定字号的字体，没有资源管理器时返回 nil
func (l *uiLayer) font(size float64) *text.GoTextFace {
	if l.deps.Resources == nil {
		return nil
	}
	return l.deps.Resources.Font(size)
}

// addButton 创建按钮实体，(x, y) 为左上角
func (l *uiLayer) addButton(label string, x, y, w, h float64, onClick func()) *components.ButtonComponent {
	_, button := entities.NewButtonEntity(l.entityManager, x, y, w, h, label, l.font(config.ButtonFontSize), config.TextColor, onClick)
	return button
}

// addColumnButton 在屏幕水平居中的按钮列中创建第 index 个按钮
func (l *uiLayer) addColumnButton(label string, top float64, index int, onClick func()) *components.ButtonComponent {
	x := (l.deps.Width - config.ButtonWidth) / 2
	y := top + float64(index)*(config.ButtonHeight+config.ButtonSpacing)
	return l.addButton(label, x, y, config.ButtonWidth, config.ButtonHeight, onClick)
}

// addLabel 创建文本标签，centered 为 true 时 (x, y) 为文字中心
func (l *uiLayer) addLabel(str string, size, x, y float64, clr color.Color, centered bool) *components.LabelComponent {
	_, label := entities.NewLabelEntity(l.entityManager, x, y, str, l.font(size), clr, centered)
	return label
}
