package entities

import (
	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewGround 创建地面贴图（整张地图底图）
func NewGround(em *ecs.EntityManager, img *ebiten.Image, rect utils.Rect) ecs.EntityID {
	return newDrawable(em, components.KindGround, img, rect, config.LayerGround)
}

// NewGenericSprite 创建普通贴图（房屋地板、家具、墙、栅栏）
func NewGenericSprite(em *ecs.EntityManager, img *ebiten.Image, rect utils.Rect, layer config.Layer) ecs.EntityID {
	return newDrawable(em, components.KindGeneric, img, rect, layer)
}

// NewCollider 创建不可见的碰撞块
// 只有位置和碰撞盒，不参与绘制
func NewCollider(em *ecs.EntityManager, rect utils.Rect) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.KindComponent{Kind: components.KindCollider})
	em.AddComponent(id, &components.PositionComponent{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height})
	AddToCollision(em, id, rect)
	return id
}

// NewMapWater 创建地图上的动画水面
func NewMapWater(em *ecs.EntityManager, frames []*ebiten.Image, rect utils.Rect, fps float64) ecs.EntityID {
	var first *ebiten.Image
	if len(frames) > 0 {
		first = frames[0]
	}
	id := newDrawable(em, components.KindMapWater, first, rect, config.LayerWater)
	em.AddComponent(id, &components.AnimationComponent{Frames: frames, FPS: fps})
	return id
}

// NewWildFlower 创建装饰花草
// 碰撞盒只保留底部一条窄带，玩家可以走到花的上半部分后面
func NewWildFlower(em *ecs.EntityManager, img *ebiten.Image, x, y float64) ecs.EntityID {
	w, h := imageSize(img, 32, 32)
	rect := utils.Rect{X: x, Y: y, Width: w, Height: h}
	id := newDrawable(em, components.KindWildFlower, img, rect, config.LayerMain)
	AddToCollision(em, id, rect.Inflate(-20, -h*0.9))
	return id
}

// NewInteraction 创建交互区域（床、商人）
// 不参与绘制
func NewInteraction(em *ecs.EntityManager, name string, rect utils.Rect) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.KindComponent{Kind: components.KindInteraction})
	em.AddComponent(id, &components.PositionComponent{X: rect.X, Y: rect.Y, Width: rect.Width, Height: rect.Height})
	em.AddComponent(id, &components.InteractionComponent{Name: name})
	return id
}
