package entities

import (
	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewFlashParticle 创建白色剪影闪光特效
// 特效在 duration 秒内淡出，之后由 LifetimeSystem 删除
func NewFlashParticle(em *ecs.EntityManager, img *ebiten.Image, rect utils.Rect, layer config.Layer, duration float64) ecs.EntityID {
	id := newDrawable(em, components.KindParticle, img, rect, layer)
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		sprite.Flash = true
	}
	em.AddComponent(id, &components.LifetimeComponent{Duration: duration, FadeOut: true})
	return id
}

// NewRainFloor 创建落地的雨滴（静止）
func NewRainFloor(em *ecs.EntityManager, img *ebiten.Image, x, y, lifetime float64) ecs.EntityID {
	w, h := imageSize(img, 8, 8)
	id := newDrawable(em, components.KindRainDrop, img, utils.Rect{X: x, Y: y, Width: w, Height: h}, config.LayerRainFloor)
	em.AddComponent(id, &components.LifetimeComponent{Duration: lifetime})
	return id
}

// NewRainDrop 创建下落中的雨滴
// dirX/dirY 为未归一化的方向，speed 为像素/秒
func NewRainDrop(em *ecs.EntityManager, img *ebiten.Image, x, y, lifetime, dirX, dirY, speed float64) ecs.EntityID {
	w, h := imageSize(img, 4, 12)
	id := newDrawable(em, components.KindRainDrop, img, utils.Rect{X: x, Y: y, Width: w, Height: h}, config.LayerRainDrops)
	em.AddComponent(id, &components.LifetimeComponent{Duration: lifetime})
	em.AddComponent(id, &components.MovementComponent{PosX: x, PosY: y, DirX: dirX, DirY: dirY, Speed: speed})
	return id
}
