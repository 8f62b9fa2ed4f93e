package systems

import (
	"testing"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/entities"
	"github.com/decker502/farmsim/pkg/utils"
)

// TestLifetimeUpdate 未到时的实体保留
func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := entities.NewRainFloor(em, nil, 10, 10, 0.5)

	if got := system.Update(0.2); got != 0 {
		t.Errorf("expired count: got %d, want 0", got)
	}

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.Elapsed != 0.2 {
		t.Errorf("Elapsed: got %v, want 0.2", lifetime.Elapsed)
	}
	if !em.IsAlive(id) {
		t.Error("rain should still be alive after 0.2s of 0.5s")
	}
}

// TestLifetimeExpiration 到时的实体在清理后消失
func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := entities.NewRainDrop(em, nil, 0, 0, 0.5, -2, 4, 200)

	system.Update(0.3)
	if got := system.Update(0.3); got != 1 {
		t.Errorf("expired count: got %d, want 1", got)
	}
	if em.IsAlive(id) {
		t.Error("expired entity should be marked for deletion")
	}

	em.RemoveMarkedEntities()
	if em.Count() != 0 {
		t.Errorf("entity count after cleanup: got %d, want 0", em.Count())
	}
}

// TestFlashFadesOverItsDuration 闪光按时长淡出，雨滴不淡出
func TestFlashFadesOverItsDuration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	flash := entities.NewFlashParticle(em, nil, utils.Rect{Width: 10, Height: 10}, config.LayerMain, 0.4)
	rain := entities.NewRainFloor(em, nil, 0, 0, 0.4)

	system.Update(0.1)

	flashSprite, _ := ecs.GetComponent[*components.SpriteComponent](em, flash)
	if flashSprite.Fade != 0.25 {
		t.Errorf("flash fade: got %v, want 0.25", flashSprite.Fade)
	}
	rainSprite, _ := ecs.GetComponent[*components.SpriteComponent](em, rain)
	if rainSprite.Fade != 0 {
		t.Errorf("rain fade: got %v, want 0", rainSprite.Fade)
	}

	system.Update(0.35)
	if em.IsAlive(flash) || em.IsAlive(rain) {
		t.Error("both effects should expire at their duration")
	}
}
