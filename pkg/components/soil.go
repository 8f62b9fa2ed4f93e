package components

import "github.com/decker502/farmsim/pkg/grid"

// SoilTileComponent 翻土地块的视觉实体，与网格格子一一对应
type SoilTileComponent struct {
	Cell    grid.Cell
	Variant grid.Variant
}

// WaterTileComponent 湿润土壤的视觉实体，与网格格子一一对应
type WaterTileComponent struct {
	Cell grid.Cell
	// Style 随机选中的水渍贴图序号
	Style int
}
