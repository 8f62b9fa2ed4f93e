package entities

import (
	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewPlayer 在 (x, y)（贴图中心）创建玩家
func NewPlayer(em *ecs.EntityManager, img *ebiten.Image, x, y float64, cfg *config.PlayerConfig) ecs.EntityID {
	w, h := imageSize(img, cfg.Width, cfg.Height)
	rect := utils.Rect{X: x - w/2, Y: y - h/2, Width: w, Height: h}
	id := newDrawable(em, components.KindPlayer, img, rect, config.LayerMain)

	em.AddComponent(id, &components.PlayerComponent{
		PosX:       x,
		PosY:       y,
		Hitbox:     rect.Inflate(-cfg.HitboxShrinkW, -cfg.HitboxShrinkH),
		Facing:     components.FacingDown,
		Speed:      cfg.Speed,
		ToolUse:    components.Timer{Duration: cfg.ToolCooldown},
		ToolSwitch: components.Timer{Duration: cfg.SwitchDelay},
		SeedUse:    components.Timer{Duration: cfg.ToolCooldown},
		SeedSwitch: components.Timer{Duration: cfg.SwitchDelay},
	})
	return id
}
