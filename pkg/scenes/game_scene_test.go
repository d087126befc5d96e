package scenes

import (
	"testing"

	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/ecs"
	"github.com/gonewx/fishtap/pkg/game"
)

func TestGameSceneClassicRun(t *testing.T) {
	a := newTestApp(t)
	a.menu.PlayClassic()
	a.current(t, game.SceneGame)

	// 入场动画结束前点击无效
	a.game.update(1.0/60, a.targetCenter())
	if a.deps.Classic.Coins != 0 {
		t.Fatalf("tap during swim-in scored %d", a.deps.Classic.Coins)
	}
	a.runGame(1.1)

	// 关卡：fish1(10) fish1(10) fish2(20)，每次点击 +1
	a.killCurrent(t)
	if a.deps.Classic.Coins != 10 || a.deps.Classic.Stage != 1 {
		t.Fatalf("after first kill: coins=%d stage=%d", a.deps.Classic.Coins, a.deps.Classic.Stage)
	}
	a.runGame(1.2 + 1.1)
	a.killCurrent(t)
	a.runGame(1.2 + 1.1)
	a.killCurrent(t)

	if !a.deps.Classic.Finished {
		t.Fatal("classic run should be finished after the last enemy")
	}
	if a.deps.Classic.Coins != 40 {
		t.Errorf("score = %d, want 40", a.deps.Classic.Coins)
	}
	a.runGame(1.3)
	if !a.game.TargetSystem().FinishedShown() {
		t.Error("finished overlay should be shown after the completion delay")
	}
	if a.game.TargetSystem().Current() != 0 {
		t.Error("no target should remain after the run is finished")
	}
}

func TestGameSceneClassicResetsOnEnter(t *testing.T) {
	a := newTestApp(t)
	a.deps.Classic.Coins = 25
	a.deps.Classic.Stage = 2
	a.deps.Classic.Finished = true

	a.menu.PlayClassic()
	if a.deps.Classic.Coins != 0 || a.deps.Classic.Stage != 0 || a.deps.Classic.Finished {
		t.Errorf("classic progress should reset on enter, got %+v", *a.deps.Classic)
	}
	if a.game.TargetSystem().Current() == 0 {
		t.Error("a target should be spawned on enter")
	}
}

func TestGameSceneHomeClearsTarget(t *testing.T) {
	a := newTestApp(t)
	a.menu.PlayClassic()
	a.runGame(1.1)
	a.game.update(1.0/60, a.targetCenter())

	a.game.Home()
	a.current(t, game.SceneMenu)
	if a.game.TargetSystem().Current() != 0 {
		t.Error("target should be removed on exit")
	}
	if a.game.scheduler.Pending() != 0 {
		t.Errorf("pending callbacks = %d, want 0", a.game.scheduler.Pending())
	}
	if n := len(ecs.GetEntitiesWith1[*components.TargetComponent](a.game.entityManager)); n != 0 {
		t.Errorf("target entities = %d, want 0", n)
	}
}

func TestGameSceneTapOnHomeDoesNotHitTarget(t *testing.T) {
	a := newTestApp(t)
	a.deps.Arena.Coins = 0
	a.menu.PlayArena()
	a.shop.Buy(a.deps.Config.Weapons[0].ID)
	a.shop.Fight()

	target, ok := ecs.GetComponent[*components.TargetComponent](a.game.entityManager, a.game.TargetSystem().Current())
	if !ok {
		t.Fatal("no target")
	}
	hp := target.HP

	// Home 按钮区域的按下事件被按钮消费
	home := a.targetCenter()
	home.X = int(a.deps.Width) - 40
	home.Y = 40
	a.game.update(1.0/60, home)
	if target.HP != hp {
		t.Errorf("HP changed from %d to %d by a tap on a button", hp, target.HP)
	}
}

func TestGameSceneArenaRoundReturnsToShop(t *testing.T) {
	a := newTestApp(t)
	a.menu.PlayArena()
	a.shop.Buy(a.deps.Config.Weapons[0].ID)
	a.shop.Fight()
	a.current(t, game.SceneGame)

	// 第一轮三个阶段，每次击杀 +15
	stages := a.deps.Config.Arena.Rounds[0].Stages
	for i := 0; i < stages; i++ {
		a.killCurrent(t)
		a.runGame(0.9)
	}

	a.current(t, game.SceneShop)
	if a.deps.Arena.Round != 1 || a.deps.Arena.Stage != 0 {
		t.Errorf("progress = round %d stage %d, want round 1 stage 0", a.deps.Arena.Round, a.deps.Arena.Stage)
	}
	if want := 15 * stages; a.deps.Arena.Coins != want {
		t.Errorf("coins = %d, want %d", a.deps.Arena.Coins, want)
	}
	if a.shop.coinsLabel.Text == "Coins: 0" {
		t.Error("shop should refresh coins on enter")
	}

	// 回到游戏继续下一轮
	a.shop.Fight()
	a.current(t, game.SceneGame)
	id := a.game.TargetSystem().Current()
	target, ok := ecs.GetComponent[*components.TargetComponent](a.game.entityManager, id)
	if !ok {
		t.Fatal("next round should spawn a target")
	}
	if target.TemplateID != a.deps.Config.Arena.Rounds[1].Pool[0] {
		t.Errorf("template = %s, want %s", target.TemplateID, a.deps.Config.Arena.Rounds[1].Pool[0])
	}
}
