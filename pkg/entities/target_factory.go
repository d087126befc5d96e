package entities

import (
	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/config"
	"github.com/gonewx/fishtap/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewTargetEntity 创建目标实体
//
// 参数：
//   - em: 实体管理器
//   - tpl: 敌人模板（提供 HP 和精灵图ID）
//   - entry: 精灵图定义（显示尺寸）
//   - img: 精灵图像，可为 nil（只参与点击判定，不绘制）
//   - x, y: 目标中心位置
//
// 返回：
//   - ecs.EntityID: 目标实体ID
//
// 新目标处于 Spawning 状态且不可交互，由调用方决定何时进入 Interactable。
func NewTargetEntity(
	em *ecs.EntityManager,
	tpl config.EnemyTemplate,
	entry config.SpriteEntry,
	img *ebiten.Image,
	x, y float64,
) ecs.EntityID {
	entity := em.CreateEntity()

	em.AddComponent(entity, &components.TargetComponent{
		TemplateID:         tpl.ID,
		HP:                 tpl.HP,
		MaxHP:              tpl.HP,
		InteractionBlocked: true,
		State:              components.TargetSpawning,
	})
	em.AddComponent(entity, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(entity, &components.SpriteComponent{
		SpriteID: tpl.Sprite,
		Image:    img,
		Width:    entry.Width,
		Height:   entry.Height,
		Scale:    1,
		Opacity:  1,
		Visible:  true,
	})

	return entity
}
