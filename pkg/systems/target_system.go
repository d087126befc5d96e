package systems

import (
	"log"

	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/ecs"
	"github.com/gonewx/fishtap/pkg/entities"
	"github.com/gonewx/fishtap/pkg/game"
	"github.com/gonewx/fishtap/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 目标使用的音效名
const (
	SoundHit           = "hit"
	SoundKill          = "kill"
	SoundLevelComplete = "lvl_completed"
)

// SoundPlayer 按名称播放音效，缺失的音效返回 false
// *game.AudioManager 满足此接口
type SoundPlayer interface {
	Play(name string) bool
}

// SpriteImageFunc 按精灵ID返回图像，可返回 nil（只参与点击判定，不绘制）
type SpriteImageFunc func(id string, entry config.SpriteEntry) *ebiten.Image

// TargetSystemConfig 目标系统的依赖
// 全部由游戏场景在构造时注入
type TargetSystemConfig struct {
	EntityManager *ecs.EntityManager
	Scheduler     *game.Scheduler
	Sounds        SoundPlayer // 可为 nil
	State         *game.GameState
	Rules         config.VariantRules
	Course        game.Course
	Sprites       map[string]config.SpriteEntry
	SpriteImage   SpriteImageFunc // 可为 nil

	// 目标中心位置
	CenterX, CenterY float64

	// OnRoundComplete 一轮（非最后一轮）结束、完成延迟之后调用；
	// 为 nil 时直接生成下一轮的第一个敌人
	OnRoundComplete func()
	// OnFinished 整局结束、完成延迟之后调用
	OnFinished func()
}

// TargetSystem 管理唯一的可点击目标
//
// 状态流转：Spawning → Interactable → (HitReacting → Interactable)* → Defeating → Despawned
//
// 职责：
//   - 按当前轮次/阶段生成目标（可带入场动画）
//   - 处理点击：命中判定、扣血、受击缩放、击败
//   - 击败后发放奖励、推进进度，并通过 Scheduler 安排下一个目标或完成处理
type TargetSystem struct {
	cfg TargetSystemConfig

	current       ecs.EntityID // 当前目标，0 表示没有
	finishedShown bool         // 是否显示结束画面
}

// NewTargetSystem 创建目标系统
func NewTargetSystem(cfg TargetSystemConfig) *TargetSystem {
	return &TargetSystem{cfg: cfg}
}

// Start 进入游戏界面时调用
// 游戏已结束时只显示结束画面，否则生成当前阶段的目标
func (s *TargetSystem) Start() {
	s.finishedShown = s.cfg.State.Finished
	if s.cfg.State.Finished {
		return
	}
	if s.current != 0 {
		return
	}
	s.SpawnCurrent()
}

// Stop 离开游戏界面时调用，移除当前目标
// 待触发的定时回调由场景统一清除
func (s *TargetSystem) Stop() {
	if s.current != 0 {
		s.cfg.EntityManager.DestroyEntity(s.current)
		s.current = 0
	}
}

// Current 当前目标实体，没有时返回 0
func (s *TargetSystem) Current() ecs.EntityID {
	return s.current
}

// FinishedShown 是否应显示结束画面
func (s *TargetSystem) FinishedShown() bool {
	return s.finishedShown
}

// SpawnCurrent 按当前进度生成目标
// 游戏已结束或没有对应敌人时不生成，返回 0
func (s *TargetSystem) SpawnCurrent() ecs.EntityID {
	if s.cfg.State.Finished {
		return 0
	}
	tpl, ok := s.cfg.Course.Current(s.cfg.State)
	if !ok {
		log.Printf("[TargetSystem] No enemy for round=%d stage=%d", s.cfg.State.Round, s.cfg.State.Stage)
		return 0
	}
	return s.Spawn(tpl)
}

// Spawn 生成指定模板的目标，替换现有目标
func (s *TargetSystem) Spawn(tpl config.EnemyTemplate) ecs.EntityID {
	em := s.cfg.EntityManager
	if s.current != 0 {
		em.DestroyEntity(s.current)
	}

	entry := s.cfg.Sprites[tpl.Sprite]
	var img *ebiten.Image
	if s.cfg.SpriteImage != nil {
		img = s.cfg.SpriteImage(tpl.Sprite, entry)
	}

	id := entities.NewTargetEntity(em, tpl, entry, img, s.cfg.CenterX, s.cfg.CenterY)
	target, _ := ecs.GetComponent[*components.TargetComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	s.current = id

	log.Printf("[TargetSystem] Spawn %s (hp=%d) round=%d stage=%d", tpl.ID, tpl.HP, s.cfg.State.Round, s.cfg.State.Stage)

	rules := s.cfg.Rules
	if rules.SpawnAnimation == config.SpawnAnimationSwim {
		// 从屏幕左侧外游入
		pos.X = -entry.Width / 2
		em.AddComponent(id, components.NewTween(func() {
			s.becomeInteractable(target)
		}, []components.TweenSegment{
			{Property: components.TweenX, To: s.cfg.CenterX, Duration: rules.SpawnDuration},
		}))
	} else {
		s.becomeInteractable(target)
	}
	return id
}

func (s *TargetSystem) becomeInteractable(target *components.TargetComponent) {
	if target.State != components.TargetSpawning {
		return
	}
	target.InteractionBlocked = false
	target.State = components.TargetInteractable
}

// HandleTap 处理一次点击
//
// 返回：
//   - bool: 点击是否被目标处理（命中且可交互）
func (s *TargetSystem) HandleTap(x, y float64) bool {
	if s.current == 0 {
		return false
	}
	em := s.cfg.EntityManager
	target, ok := ecs.GetComponent[*components.TargetComponent](em, s.current)
	if !ok {
		return false
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, s.current)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, s.current)
	if pos == nil || sprite == nil {
		return false
	}

	bx, by, bw, bh := sprite.Bounds(pos)
	if !utils.PointInRect(x, y, bx, by, bw, bh) {
		return false
	}
	if target.InteractionBlocked || target.AnimPlaying {
		return false
	}

	damage := s.cfg.State.Damage(s.cfg.Rules)
	target.HP -= damage
	s.play(SoundHit)
	s.cfg.State.Award(s.cfg.Rules.TapReward)

	if target.HP <= 0 {
		s.defeat(s.current, target)
		return true
	}

	// 受击缩放：放大再还原，期间忽略点击
	target.AnimPlaying = true
	target.State = components.TargetHitReacting
	em.AddComponent(s.current, components.NewTween(func() {
		target.AnimPlaying = false
		if target.State == components.TargetHitReacting {
			target.State = components.TargetInteractable
		}
	}, []components.TweenSegment{
		{Property: components.TweenScale, To: config.HitPulseScale, Duration: config.HitPulseHalfDuration},
		{Property: components.TweenScale, To: 1, Duration: config.HitPulseHalfDuration},
	}))
	return true
}

// defeat 进入击败状态，整个实例生命周期内只会执行一次
func (s *TargetSystem) defeat(id ecs.EntityID, target *components.TargetComponent) {
	if target.State == components.TargetDefeating || target.State == components.TargetDespawned {
		return
	}
	target.InteractionBlocked = true
	target.State = components.TargetDefeating
	s.play(SoundKill)

	gs := s.cfg.State
	rules := s.cfg.Rules
	gs.Award(rules.KillReward)
	log.Printf("[TargetSystem] Defeated %s, coins=%d", target.TemplateID, gs.Coins)

	em := s.cfg.EntityManager
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	angle := 0.0
	if sprite != nil {
		angle = sprite.Angle
	}

	d := rules.DefeatDuration
	tracks := [][]components.TweenSegment{
		{{Property: components.TweenOpacity, To: 0, Duration: d}},
	}
	if rules.DefeatAnimation == config.DefeatAnimationSpin {
		tracks = append(tracks,
			[]components.TweenSegment{{Property: components.TweenAngle, To: angle + 360, Duration: d, Easing: "in_cubic"}},
			[]components.TweenSegment{{Property: components.TweenScale, To: config.DefeatScale, Duration: d, Easing: "in_out_bounce"}},
		)
	}
	em.AddComponent(id, components.NewTween(func() {
		target.State = components.TargetDespawned
		em.DestroyEntity(id)
		if s.current == id {
			s.current = 0
		}
	}, tracks...))

	// 进度在击败时立即推进，延迟回调只负责生成和界面切换
	switch {
	case s.cfg.Course.HasNextStage(gs):
		gs.AdvanceStage()
		s.cfg.Scheduler.Schedule(rules.RespawnDelay, func() {
			s.SpawnCurrent()
		})
	case s.cfg.Course.HasNextRound(gs):
		gs.AdvanceRound()
		s.cfg.Scheduler.Schedule(rules.CompletionDelay, func() {
			s.play(SoundLevelComplete)
			if s.cfg.OnRoundComplete != nil {
				s.cfg.OnRoundComplete()
				return
			}
			s.SpawnCurrent()
		})
	default:
		gs.FinishGame()
		s.cfg.Scheduler.Schedule(rules.CompletionDelay, func() {
			s.play(SoundLevelComplete)
			s.finishedShown = true
			if s.cfg.OnFinished != nil {
				s.cfg.OnFinished()
			}
		})
	}
}

func (s *TargetSystem) play(name string) {
	if s.cfg.Sounds != nil {
		s.cfg.Sounds.Play(name)
	}
}
