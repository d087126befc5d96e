package systems

import (
	"math"

	"github.com/gonewx/fishtap/pkg/components"
	"github.com/gonewx/fishtap/pkg/ecs"
	"github.com/gonewx/fishtap/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// RenderSystem 管理游戏世界实体和文本标签的渲染
//
// 职责范围：
//   - 精灵实体（目标鱼等）：以位置为中心，缩放、旋转、透明度
//   - 文本标签（HUD、标题）
//
// 不包括：
//   - 按钮由 ButtonRenderSystem 绘制
//   - 输入框由 TextInputRenderSystem 绘制
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有精灵，再绘制标签
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager) {
		s.DrawEntity(screen, id)
	}
	s.DrawLabels(screen)
}

// DrawEntity 绘制单个精灵实体
// 参数:
//   - screen: 目标图像
//   - id: 实体ID，缺少组件或不可见时不绘制
func (s *RenderSystem) DrawEntity(screen *ebiten.Image, id ecs.EntityID) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || !sprite.Visible || sprite.Image == nil || sprite.Opacity <= 0 {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	bounds := sprite.Image.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	// 先以图像中心为原点，拉伸到显示尺寸，再缩放、旋转，最后平移到位置
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(sprite.Width/float64(bounds.Dx())*sprite.Scale, sprite.Height/float64(bounds.Dy())*sprite.Scale)
	op.GeoM.Rotate(sprite.Angle * math.Pi / 180)
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleAlpha(float32(math.Min(sprite.Opacity, 1)))
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(sprite.Image, op)
}

// DrawLabels 绘制所有可见标签
func (s *RenderSystem) DrawLabels(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.LabelComponent, *components.PositionComponent](s.entityManager) {
		label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !label.Visible || label.Font == nil || label.Text == "" {
			continue
		}

		align := utils.AlignLeft
		if label.Centered {
			align = utils.AlignCenter
		}
		utils.DrawText(screen, label.Text, label.Font, pos.X, pos.Y, label.Color, align)
	}
}
