package systems

import (
	"testing"

	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/ecs"
	"github.com/gonewx/fishtap/pkg/game"
)

// recordingSounds 记录播放过的音效
type recordingSounds struct {
	played []string
}

func (r *recordingSounds) Play(name string) bool {
	r.played = append(r.played, name)
	return true
}

func (r *recordingSounds) count(name string) int {
	n := 0
	for _, p := range r.played {
		if p == name {
			n++
		}
	}
	return n
}

var (
	classicRules = config.VariantRules{
		BaseDamage:      1,
		TapReward:       1,
		SpawnAnimation:  config.SpawnAnimationSwim,
		SpawnDuration:   1.0,
		DefeatAnimation: config.DefeatAnimationSpin,
		DefeatDuration:  1.0,
		RespawnDelay:    1.2,
		CompletionDelay: 1.2,
		ResetOnEnter:    true,
	}
	arenaRules = config.VariantRules{
		BaseDamage:      1,
		UseWeaponDamage: true,
		KillReward:      15,
		SpawnAnimation:  config.SpawnAnimationNone,
		DefeatAnimation: config.DefeatAnimationFade,
		DefeatDuration:  0.5,
		RespawnDelay:    0.8,
		CompletionDelay: 0.8,
		UseShop:         true,
	}
)

func testGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Sprites: map[string]config.SpriteEntry{
			"fish_01": {Width: 200, Height: 100, Color: "#ff8800"},
			"crab":    {Width: 100, Height: 100, Color: "#bc4b51"},
		},
		Enemies: map[string]config.EnemyTemplate{
			"fish1": {ID: "fish1", Sprite: "fish_01", HP: 3},
			"crab":  {ID: "crab", Sprite: "crab", HP: 8},
		},
		Classic: config.ClassicConfig{
			Rules:  classicRules,
			Levels: []config.Level{{Enemies: []string{"fish1", "fish1"}}},
		},
		Arena: config.ArenaConfig{
			Rules: arenaRules,
			Rounds: []config.ArenaRound{
				{Stages: 2, Pool: []string{"crab"}},
				{Stages: 1, Pool: []string{"crab"}},
			},
		},
	}
}

// targetFixture 把目标系统、补间和定时器组合在一起，模拟游戏界面的一帧
type targetFixture struct {
	em        *ecs.EntityManager
	scheduler *game.Scheduler
	tweens    *TweenSystem
	targets   *TargetSystem
	state     *game.GameState
	sounds    *recordingSounds

	roundsCompleted int
	finished        int
}

const (
	testCenterX = 225.0
	testCenterY = 350.0
)

func newTargetFixture(t *testing.T, variant config.Variant) *targetFixture {
	t.Helper()
	cfg := testGameConfig()
	f := &targetFixture{
		em:        ecs.NewEntityManager(),
		scheduler: game.NewScheduler(),
		state:     game.NewGameState(),
		sounds:    &recordingSounds{},
	}
	f.tweens = NewTweenSystem(f.em)
	f.targets = NewTargetSystem(TargetSystemConfig{
		EntityManager:   f.em,
		Scheduler:       f.scheduler,
		Sounds:          f.sounds,
		State:           f.state,
		Rules:           cfg.RulesFor(variant),
		Course:          game.NewCourse(cfg, variant),
		Sprites:         cfg.Sprites,
		CenterX:         testCenterX,
		CenterY:         testCenterY,
		OnRoundComplete: func() { f.roundsCompleted++ },
		OnFinished:      func() { f.finished++ },
	})
	return f
}

// run 以 60 FPS 推进指定秒数
func (f *targetFixture) run(seconds float64) {
	const dt = 1.0 / 60
	for elapsed := 0.0; elapsed < seconds; elapsed += dt {
		f.tweens.Update(dt)
		f.scheduler.Update(dt)
		f.em.RemoveMarkedEntities()
	}
}

func (f *targetFixture) target(t *testing.T) *components.TargetComponent {
	t.Helper()
	target, ok := ecs.GetComponent[*components.TargetComponent](f.em, f.targets.Current())
	if !ok {
		t.Fatal("no current target")
	}
	return target
}

func (f *targetFixture) tapCenter() bool {
	return f.targets.HandleTap(testCenterX, testCenterY)
}

func (f *targetFixture) equip(w config.Weapon) {
	f.state.Coins += w.Price
	f.state.SpendAndSelect(w)
}

func TestTargetSpawnSwimBlocksUntilArrival(t *testing.T) {
	f := newTargetFixture(t, config.VariantClassic)
	f.targets.Start()

	target := f.target(t)
	if target.State != components.TargetSpawning || !target.InteractionBlocked {
		t.Fatalf("state=%v blocked=%v, want Spawning/blocked", target.State, target.InteractionBlocked)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, f.targets.Current())
	if pos.X != -100 {
		t.Errorf("swim should start off-screen, X=%v", pos.X)
	}

	// 入场期间点击无效（在目标当前位置点击）
	if f.targets.HandleTap(pos.X, pos.Y) {
		t.Error("tap during spawn should be ignored")
	}
	if target.HP != 3 {
		t.Errorf("HP changed during spawn: %d", target.HP)
	}

	f.run(1.1)
	if target.State != components.TargetInteractable || target.InteractionBlocked {
		t.Fatalf("after swim: state=%v blocked=%v", target.State, target.InteractionBlocked)
	}
	if pos.X != testCenterX {
		t.Errorf("X = %v, want %v", pos.X, testCenterX)
	}
}

func TestTargetSpawnImmediateInArena(t *testing.T) {
	f := newTargetFixture(t, config.VariantArena)
	f.targets.Start()
	target := f.target(t)
	if target.State != components.TargetInteractable || target.InteractionBlocked {
		t.Errorf("arena spawn: state=%v blocked=%v", target.State, target.InteractionBlocked)
	}
}

func TestTargetTapOutsideBounds(t *testing.T) {
	f := newTargetFixture(t, config.VariantArena)
	f.targets.Start()

	tests := []struct {
		name string
		x, y float64
	}{
		{"左侧", testCenterX - 51, testCenterY},
		{"上方", testCenterX, testCenterY - 51},
		{"远处", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if f.targets.HandleTap(tt.x, tt.y) {
				t.Error("tap outside should be unhandled")
			}
		})
	}
	if hp := f.target(t).HP; hp != 8 {
		t.Errorf("HP = %d, want 8", hp)
	}
	// 边界上算命中
	if !f.targets.HandleTap(testCenterX+50, testCenterY+50) {
		t.Error("tap on the edge should hit")
	}
}

// 8 HP、伤害 2：恰好 4 次有效点击击败；下一个目标重新计数
func TestTargetEightHPDamageTwo(t *testing.T) {
	f := newTargetFixture(t, config.VariantArena)
	f.equip(config.Weapon{ID: "net", Price: 30, Damage: 2})
	f.targets.Start()
	first := f.targets.Current()
	target := f.target(t)

	for i := 1; i <= 4; i++ {
		if !f.tapCenter() {
			t.Fatalf("tap %d was not handled", i)
		}
		if want := 8 - 2*i; i < 4 && target.HP != want {
			t.Errorf("after tap %d HP = %d, want %d", i, target.HP, want)
		}
		if i < 4 {
			if target.State == components.TargetDefeating {
				t.Fatalf("defeated too early at tap %d", i)
			}
			f.run(0.15)
		}
	}
	if target.State != components.TargetDefeating {
		t.Fatalf("state = %v, want Defeating", target.State)
	}
	if f.tapCenter() {
		t.Error("tap on a defeating target should be ignored")
	}

	f.run(1.0)
	next := f.targets.Current()
	if next == 0 || next == first {
		t.Fatalf("expected a new target, got %d (first %d)", next, first)
	}
	if !f.tapCenter() {
		t.Fatal("5th tap on the new target should be handled")
	}
	if hp := f.target(t).HP; hp != 6 {
		t.Errorf("new target HP = %d, want 6", hp)
	}
}

func TestTargetTapDuringHitPulseIgnored(t *testing.T) {
	f := newTargetFixture(t, config.VariantArena)
	f.targets.Start()
	target := f.target(t)

	if !f.tapCenter() {
		t.Fatal("first tap should hit")
	}
	if !target.AnimPlaying || target.State != components.TargetHitReacting {
		t.Fatalf("AnimPlaying=%v state=%v", target.AnimPlaying, target.State)
	}
	if f.tapCenter() {
		t.Error("tap during hit pulse should be ignored")
	}
	if target.HP != 7 {
		t.Errorf("HP = %d, want 7", target.HP)
	}

	f.run(0.15)
	if target.AnimPlaying || target.State != components.TargetInteractable {
		t.Errorf("after pulse: AnimPlaying=%v state=%v", target.AnimPlaying, target.State)
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](f.em, f.targets.Current())
	if sprite.Scale != 1 {
		t.Errorf("Scale = %v, want 1", sprite.Scale)
	}
	if !f.tapCenter() {
		t.Error("tap after pulse should hit")
	}
}

func TestTargetDefeatExactlyOnce(t *testing.T) {
	f := newTargetFixture(t, config.VariantArena)
	f.equip(config.Weapon{ID: "trident", Price: 0, Damage: 100})
	f.targets.Start()
	target := f.target(t)

	f.tapCenter()
	for i := 0; i < 5; i++ {
		f.tapCenter()
	}
	if target.HP != -92 {
		t.Errorf("HP = %d, want -92", target.HP)
	}
	if n := f.sounds.count(SoundKill); n != 1 {
		t.Errorf("kill played %d times, want 1", n)
	}
	if f.state.Coins != 15 {
		t.Errorf("Coins = %d, want 15", f.state.Coins)
	}
	if f.state.Stage != 1 {
		t.Errorf("Stage = %d, want 1", f.state.Stage)
	}
}

// 竞技场：击败 K 个敌人获得 K×15 金币，最后一轮结束后游戏结束
func TestTargetArenaProgression(t *testing.T) {
	f := newTargetFixture(t, config.VariantArena)
	f.equip(config.Weapon{ID: "harpoon", Price: 0, Damage: 8})
	f.targets.Start()

	// 第一轮 2 个阶段
	f.tapCenter()
	f.run(1.0)
	f.tapCenter()
	if f.state.Round != 1 || f.state.Stage != 0 {
		t.Fatalf("round=%d stage=%d, want 1/0", f.state.Round, f.state.Stage)
	}
	f.run(1.0)
	if f.roundsCompleted != 1 {
		t.Fatalf("roundsCompleted = %d, want 1", f.roundsCompleted)
	}
	if f.targets.Current() != 0 {
		t.Error("no target should spawn when the round completes")
	}

	// 回到游戏界面开始第二轮
	f.targets.Start()
	f.tapCenter()
	if !f.state.Finished {
		t.Fatal("game should be finished after the last round")
	}
	if f.targets.FinishedShown() {
		t.Error("overlay should wait for the completion delay")
	}
	f.run(1.0)
	if !f.targets.FinishedShown() || f.finished != 1 {
		t.Errorf("FinishedShown=%v finished=%d", f.targets.FinishedShown(), f.finished)
	}
	if f.state.Coins != 3*15 {
		t.Errorf("Coins = %d, want 45", f.state.Coins)
	}
	if f.targets.Current() != 0 {
		t.Error("no target should exist after the game finished")
	}

	// 结束后再次进入只显示结束画面
	f.targets.Start()
	if f.targets.Current() != 0 || !f.targets.FinishedShown() {
		t.Error("finished game should not spawn")
	}
}

func TestTargetClassicLevelComplete(t *testing.T) {
	f := newTargetFixture(t, config.VariantClassic)
	f.targets.Start()

	killCurrent := func() {
		f.run(1.1) // 入场
		for i := 0; i < 3; i++ {
			if !f.tapCenter() {
				t.Fatalf("tap %d not handled", i)
			}
			f.run(0.15)
		}
	}

	killCurrent()
	if f.state.Stage != 1 {
		t.Fatalf("Stage = %d, want 1", f.state.Stage)
	}
	f.run(1.2)
	killCurrent()

	if !f.state.Finished {
		t.Fatal("level list exhausted, game should be finished")
	}
	f.run(1.2)
	if f.sounds.count(SoundLevelComplete) != 1 {
		t.Errorf("lvl_completed played %d times, want 1", f.sounds.count(SoundLevelComplete))
	}
	// 经典模式每次有效点击 +1
	if f.state.Coins != 6 {
		t.Errorf("Coins = %d, want 6", f.state.Coins)
	}
	if f.sounds.count(SoundHit) != 6 {
		t.Errorf("hit played %d times, want 6", f.sounds.count(SoundHit))
	}
}

func TestTargetClassicSpinDefeat(t *testing.T) {
	f := newTargetFixture(t, config.VariantClassic)
	f.targets.Start()
	f.run(1.1)
	id := f.targets.Current()

	for i := 0; i < 3; i++ {
		f.tapCenter()
		f.run(0.15)
	}
	// 击败后 0.15 秒，动画进行中
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](f.em, id)
	if !ok {
		t.Fatal("target removed before the defeat animation finished")
	}
	if sprite.Angle <= 0 || sprite.Opacity >= 1 {
		t.Errorf("angle=%v opacity=%v, expected spin and fade in progress", sprite.Angle, sprite.Opacity)
	}

	f.run(1.0)
	if f.em.Exists(id) {
		t.Error("target should be removed after the defeat animation")
	}
}

func TestTargetStopRemovesEntity(t *testing.T) {
	f := newTargetFixture(t, config.VariantArena)
	f.targets.Start()
	id := f.targets.Current()
	f.targets.Stop()
	f.em.RemoveMarkedEntities()
	if f.em.Exists(id) || f.targets.Current() != 0 {
		t.Error("Stop should remove the current target")
	}
	if f.tapCenter() {
		t.Error("tap without a target should be unhandled")
	}
}
