package scenes

import (
	"testing"

	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/game"
	"github.com/gonewx/fishtap/pkg/utils"
)

// testApp 不加载字体、图片和音频的场景组合
type testApp struct {
	deps     *Deps
	menu     *MenuScene
	game     *GameScene
	settings *SettingsScene
	shop     *ShopScene
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	cfg, err := config.LoadGameConfigFile("../../data/game.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	w, h := cfg.Window.Width, cfg.Window.Height
	deps := &Deps{
		Config:   cfg,
		Settings: game.NewSettingsManager(nil, game.GameSettings{Volume: cfg.Audio.MasterVolume, MusicEnabled: cfg.Audio.MusicEnabled}),
		Scenes:   game.NewSceneManager(w, h),
		Classic:  game.NewGameState(),
		Arena:    game.NewGameState(),
		Width:    float64(w),
		Height:   float64(h),
	}
	a := &testApp{deps: deps}
	a.game = NewGameScene(deps)
	a.menu = NewMenuScene(deps, a.game)
	a.settings = NewSettingsScene(deps)
	a.shop = NewShopScene(deps)
	deps.Scenes.Register(game.SceneMenu, a.menu)
	deps.Scenes.Register(game.SceneGame, a.game)
	deps.Scenes.Register(game.SceneSettings, a.settings)
	deps.Scenes.Register(game.SceneShop, a.shop)
	deps.Scenes.Navigate(game.SceneMenu, game.DirectionNone)
	return a
}

func (a *testApp) current(t *testing.T, want string) {
	t.Helper()
	if got := a.deps.Scenes.CurrentName(); got != want {
		t.Fatalf("current scene = %q, want %q", got, want)
	}
}

// targetCenter 目标停留的位置
func (a *testApp) targetCenter() utils.PointerState {
	return utils.PointerState{
		X:           int(a.deps.Width / 2),
		Y:           int(a.deps.Height/2 + config.TargetCenterYOffset),
		Pressed:     true,
		JustPressed: true,
	}
}

// runGame 以 60 FPS 推进游戏界面，无输入
func (a *testApp) runGame(seconds float64) {
	const dt = 1.0 / 60
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		a.game.update(dt, utils.PointerState{})
	}
}

// killCurrent 持续点击直到当前目标被击败
func (a *testApp) killCurrent(t *testing.T) {
	t.Helper()
	id := a.game.TargetSystem().Current()
	if id == 0 {
		t.Fatal("no target to kill")
	}
	for i := 0; i < 200; i++ {
		a.game.update(1.0/60, a.targetCenter())
		a.runGame(0.15)
		if a.game.TargetSystem().Current() != id {
			return
		}
	}
	t.Fatal("target was not defeated")
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name    string
		action  func(a *testApp)
		want    string
		variant config.Variant
	}{
		{"经典模式进入游戏", func(a *testApp) { a.menu.PlayClassic() }, game.SceneGame, config.VariantClassic},
		{"竞技场先进商店", func(a *testApp) { a.menu.PlayArena() }, game.SceneShop, config.VariantArena},
		{"设置", func(a *testApp) { a.menu.OpenSettings() }, game.SceneSettings, config.VariantClassic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t)
			tt.action(a)
			a.current(t, tt.want)
			if a.game.Variant() != tt.variant {
				t.Errorf("variant = %v, want %v", a.game.Variant(), tt.variant)
			}
		})
	}
}

func TestMenuExitRequestsQuit(t *testing.T) {
	a := newTestApp(t)
	a.menu.Exit()
	if !a.deps.Scenes.QuitRequested() {
		t.Error("exit should request quit")
	}
}

func TestMenuArenaResetsFinishedRun(t *testing.T) {
	a := newTestApp(t)
	a.deps.Arena.Coins = 99
	a.deps.Arena.Round = 2
	a.deps.Arena.Finished = true

	a.menu.PlayArena()
	if a.deps.Arena.Finished || a.deps.Arena.Coins != 0 || a.deps.Arena.Round != 0 {
		t.Errorf("finished arena run should be reset, got %+v", *a.deps.Arena)
	}

	// 未结束的进度保留
	a.deps.Arena.Coins = 40
	a.menu.PlayArena()
	if a.deps.Arena.Coins != 40 {
		t.Errorf("unfinished arena run should keep coins, got %d", a.deps.Arena.Coins)
	}
}

func TestMenuClickThroughButton(t *testing.T) {
	a := newTestApp(t)
	// 第一个按钮（Classic）的中心
	x := int(a.deps.Width / 2)
	y := int(a.deps.Height*menuTop + config.ButtonHeight/2)

	a.menu.update(1.0/60, utils.PointerState{X: x, Y: y, Pressed: true, JustPressed: true})
	a.current(t, game.SceneMenu)
	a.menu.update(1.0/60, utils.PointerState{X: x, Y: y, JustReleased: true})
	a.current(t, game.SceneGame)
}
