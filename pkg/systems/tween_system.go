package systems

import (
	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/ecs"
	"github.com/gonewx/fishtap/pkg/utils"
)

// TweenSystem 属性补间系统
//
// 职责：
//   - 推进所有 TweenComponent 的轨道（轨道间并行，轨道内顺序）
//   - 写回 PositionComponent / SpriteComponent 的对应属性
//   - 全部轨道完成后移除组件并调用 OnComplete
//
// OnComplete 在组件移除之后调用，因此回调中可以为同一实体添加新的补间。
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建补间系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Update 推进所有补间
func (s *TweenSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.TweenComponent](s.entityManager)

	for _, entityID := range entities {
		// 前一个实体的回调可能已经销毁了该实体
		tween, ok := ecs.GetComponent[*components.TweenComponent](s.entityManager, entityID)
		if !ok {
			continue
		}

		done := true
		for i := range tween.Tracks {
			if !s.advanceTrack(entityID, &tween.Tracks[i], deltaTime) {
				done = false
			}
		}
		if !done {
			continue
		}

		ecs.RemoveComponent[*components.TweenComponent](s.entityManager, entityID)
		if tween.OnComplete != nil {
			tween.OnComplete()
		}
	}
}

// advanceTrack 推进一条轨道，返回轨道是否已完成
// 一段结束后，零时长的后续段在同一帧内立即应用
func (s *TweenSystem) advanceTrack(entityID ecs.EntityID, track *components.TweenTrack, dt float64) bool {
	for {
		seg := track.Current()
		if seg == nil {
			return true
		}
		if !seg.Started() {
			seg.Start(s.get(entityID, seg.Property))
		}

		progress, from := seg.Advance(dt)
		value := utils.Lerp(from, seg.To, utils.Easing(seg.Easing)(progress))
		s.set(entityID, seg.Property, value)

		if progress < 1 {
			return false
		}
		// 确保结束值精确
		s.set(entityID, seg.Property, seg.To)
		track.Next()
		dt = 0
	}
}

func (s *TweenSystem) get(entityID ecs.EntityID, prop components.TweenProperty) float64 {
	switch prop {
	case components.TweenX, components.TweenY:
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if !ok {
			return 0
		}
		if prop == components.TweenX {
			return pos.X
		}
		return pos.Y
	default:
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, entityID)
		if !ok {
			return 0
		}
		switch prop {
		case components.TweenScale:
			return sprite.Scale
		case components.TweenAngle:
			return sprite.Angle
		default:
			return sprite.Opacity
		}
	}
}

func (s *TweenSystem) set(entityID ecs.EntityID, prop components.TweenProperty, value float64) {
	switch prop {
	case components.TweenX, components.TweenY:
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		if !ok {
			return
		}
		if prop == components.TweenX {
			pos.X = value
		} else {
			pos.Y = value
		}
	default:
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, entityID)
		if !ok {
			return
		}
		switch prop {
		case components.TweenScale:
			sprite.Scale = value
		case components.TweenAngle:
			sprite.Angle = value
		default:
			sprite.Opacity = value
		}
	}
}
