package systems

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/ecs"
)

// LifetimeSystem 推进限时实体的计时
// 闪光特效按剩余时间淡出，雨滴到时直接消失
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	logger        *log.Logger
}

// NewLifetimeSystem 创建生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
		logger:        log.WithPrefix("LifetimeSystem"),
	}
}

// Update 累加已存在时间，更新淡出程度，到时的实体标记待删除
// 返回本帧到时的实体数量
func (s *LifetimeSystem) Update(deltaTime float64) int {
	expired := 0
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		lifetime.Elapsed += deltaTime

		if lifetime.FadeOut {
			if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
				sprite.Fade = lifetime.Progress()
			}
		}

		if lifetime.Expired() {
			s.entityManager.DestroyEntity(id)
			expired++
		}
	}
	if expired > 0 {
		s.logger.Debug("expired", "count", expired)
	}
	return expired
}
