package entities

import (
	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/grid"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewSoilTile 创建翻土地块的视觉实体
func NewSoilTile(em *ecs.EntityManager, img *ebiten.Image, c grid.Cell, v grid.Variant, tileSize float64) ecs.EntityID {
	id := newDrawable(em, components.KindSoilTile, img, grid.CellRect(c, tileSize), config.LayerSoil)
	em.AddComponent(id, &components.SoilTileComponent{Cell: c, Variant: v})
	return id
}

// NewWaterTile 创建湿润土壤的视觉实体
func NewWaterTile(em *ecs.EntityManager, img *ebiten.Image, c grid.Cell, style int, tileSize float64) ecs.EntityID {
	id := newDrawable(em, components.KindWaterTile, img, grid.CellRect(c, tileSize), config.LayerSoilWater)
	em.AddComponent(id, &components.WaterTileComponent{Cell: c, Style: style})
	return id
}
