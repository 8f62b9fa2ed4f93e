package entities

import (
	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/grid"
	"github.com/decker502/farmsim/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewPlant 在土壤格子上创建年龄为 0 的作物
// 作物贴图底边对齐格子底边，再按品种的 YOffset 偏移
func NewPlant(em *ecs.EntityManager, img *ebiten.Image, species *config.SpeciesConfig, c grid.Cell, tileSize float64) ecs.EntityID {
	plant := &components.PlantComponent{
		Species:   species.Name,
		MaxAge:    species.MaxAge(),
		GrowSpeed: species.GrowSpeed,
		Anchor:    c,
		YOffset:   species.YOffset,
	}
	rect := PlantRect(img, species, c, tileSize)
	id := newDrawable(em, components.KindPlant, img, rect, config.LayerGroundPlant)
	em.AddComponent(id, plant)
	return id
}

// PlantRect 计算作物贴图矩形
func PlantRect(img *ebiten.Image, species *config.SpeciesConfig, c grid.Cell, tileSize float64) utils.Rect {
	w, h := imageSize(img, species.FrameWidth, species.FrameHeight)
	soil := grid.CellRect(c, tileSize)
	midX, bottom := soil.MidBottom()
	return utils.NewRectMidBottom(midX, bottom+species.YOffset, w, h)
}

// PlantHitbox 发芽作物的碰撞盒
func PlantHitbox(rect utils.Rect) utils.Rect {
	return rect.Inflate(-26, -rect.Height*0.4)
}
