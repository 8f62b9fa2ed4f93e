package entities

import (
	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// newDrawable 创建参与排序绘制的实体（位置 + 图层 + 贴图 + 种类）
func newDrawable(em *ecs.EntityManager, kind components.EntityKind, img *ebiten.Image, rect utils.Rect, layer config.Layer) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.KindComponent{Kind: kind})
	em.AddComponent(id, &components.PositionComponent{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height})
	em.AddComponent(id, &components.DepthComponent{Layer: layer})
	em.AddComponent(id, &components.SpriteComponent{Image: img})
	return id
}

// imageSize 返回贴图尺寸；贴图为 nil 时使用给定的默认尺寸
func imageSize(img *ebiten.Image, defW, defH float64) (w, h float64) {
	if img == nil {
		return defW, defH
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// AddToCollision 将实体加入碰撞集合
func AddToCollision(em *ecs.EntityManager, id ecs.EntityID, hitbox utils.Rect) {
	em.AddComponent(id, &components.CollisionComponent{Hitbox: hitbox})
}
