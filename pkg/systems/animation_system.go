package systems

import (
	"math"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/ecs"
)

// AnimationSystem 播放循环帧动画（地图水面）
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{entityManager: em}
}

// Update 推进所有动画并更新贴图
func (s *AnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.AnimationComponent, *components.SpriteComponent](s.entityManager)

	for _, id := range entities {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		if len(anim.Frames) == 0 {
			continue
		}

		anim.FrameIndex = math.Mod(anim.FrameIndex+anim.FPS*deltaTime, float64(len(anim.Frames)))

		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		sprite.Image = anim.Frames[int(anim.FrameIndex)]
	}
}
