package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game screen (menu, settings, shop, gameplay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Lifecycle 是一个可选接口，场景切换时由 SceneManager 调用
//
// 游戏界面在 OnEnter 中生成第一个目标，在 OnExit 中丢弃未触发的定时回调
type Lifecycle interface {
	// OnEnter 场景成为当前场景时调用
	OnEnter()
	// OnExit 场景即将离开时调用
	OnExit()
}
