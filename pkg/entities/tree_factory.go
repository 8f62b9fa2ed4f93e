package entities

import (
	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewTree 创建一棵可砍伐的树
//
// 参数:
//   - rect: 树贴图矩形（来自地图对象）
//   - size: "Small" 或 "Large"
//   - health: 初始生命值
//   - hitCooldown: 受击后的无敌时间（秒）
func NewTree(em *ecs.EntityManager, img *ebiten.Image, rect utils.Rect, size string, health int, hitCooldown float64) ecs.EntityID {
	id := newDrawable(em, components.KindTree, img, rect, config.LayerMain)
	em.AddComponent(id, &components.TreeComponent{
		Size:     size,
		Health:   health,
		Alive:    true,
		HitTimer: components.Timer{Duration: hitCooldown},
	})
	AddToCollision(em, id, rect.Inflate(-rect.Width*0.2, -rect.Height*0.75))
	return id
}

// NewFruit 创建挂在树上的苹果
// (x, y) 为相对树贴图左上角的偏移
func NewFruit(em *ecs.EntityManager, img *ebiten.Image, tree ecs.EntityID, treeRect utils.Rect, x, y float64) ecs.EntityID {
	w, h := imageSize(img, 16, 16)
	rect := utils.Rect{X: treeRect.X + x, Y: treeRect.Y + y, Width: w, Height: h}
	id := newDrawable(em, components.KindFruit, img, rect, config.LayerFruit)
	em.AddComponent(id, &components.FruitComponent{Tree: tree})
	return id
}
