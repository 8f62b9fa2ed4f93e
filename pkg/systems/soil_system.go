package systems

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/entities"
	"github.com/decker502/farmsim/pkg/grid"
)

// SoilSystem 协调翻土、浇水、排水和雨天批量浇水
//
// 网格标签是唯一的状态来源。每次修改标签后调用 SyncVisuals，
// 让土壤和水渍实体与标签保持一致：
//   - 土壤实体整体重建（邻居变化会改变自动拼接变体）
//   - 水渍实体增量增删
type SoilSystem struct {
	entityManager *ecs.EntityManager
	grid          *grid.Grid
	plants        *PlantSystem
	images        entities.ImageSource
	tileSize      float64
	rng           *rand.Rand
	raining       bool
	logger        *log.Logger
}

// NewSoilSystem 创建土壤系统
func NewSoilSystem(em *ecs.EntityManager, g *grid.Grid, plants *PlantSystem, images entities.ImageSource, tileSize float64, rng *rand.Rand) *SoilSystem {
	if images == nil {
		images = entities.NoImages{}
	}
	return &SoilSystem{
		entityManager: em,
		grid:          g,
		plants:        plants,
		images:        images,
		tileSize:      tileSize,
		rng:           rng,
		logger:        log.WithPrefix("SoilSystem"),
	}
}

// cellAt 世界坐标所在的格子；网格外返回 false
func (s *SoilSystem) cellAt(x, y float64) (grid.Cell, bool) {
	return s.grid.CellAt(x, y, s.tileSize)
}

// Till 翻耕世界坐标所在的可耕种格子
// 雨天新翻的土立即被浇湿
func (s *SoilSystem) Till(x, y float64) bool {
	c, ok := s.cellAt(x, y)
	if !ok || !s.grid.HasTag(c, grid.Farmable) || s.grid.HasTag(c, grid.Tilled) {
		s.logger.Debug("till ignored", "x", x, "y", y)
		return false
	}

	s.grid.AddTag(c, grid.Tilled)
	if s.raining {
		s.grid.AddTag(c, grid.Watered)
	}
	s.SyncVisuals()
	s.logger.Debug("tilled", "cell", c)
	return true
}

// Water 给世界坐标所在的已翻土格子浇水
func (s *SoilSystem) Water(x, y float64) bool {
	c, ok := s.cellAt(x, y)
	if !ok || !s.grid.HasTag(c, grid.Tilled) || s.grid.HasTag(c, grid.Watered) {
		s.logger.Debug("water ignored", "x", x, "y", y)
		return false
	}

	s.grid.AddTag(c, grid.Watered)
	s.SyncVisuals()
	s.logger.Debug("watered", "cell", c)
	return true
}

// WaterAll 给所有已翻土但未浇水的格子浇水
func (s *SoilSystem) WaterAll() {
	for _, c := range s.grid.Cells(grid.Tilled) {
		s.grid.AddTag(c, grid.Watered)
	}
	s.SyncVisuals()
}

// RemoveWater 清除所有格子的 Watered 标签（新的一天开始时）
func (s *SoilSystem) RemoveWater() {
	for _, c := range s.grid.Cells(grid.Watered) {
		s.grid.RemoveTag(c, grid.Watered)
	}
	s.SyncVisuals()
}

// PlantAt 在世界坐标所在的格子上种植
func (s *SoilSystem) PlantAt(x, y float64, species string) (ecs.EntityID, bool) {
	c, ok := s.cellAt(x, y)
	if !ok {
		return 0, false
	}
	return s.plants.Plant(species, c)
}

// SetRaining 设置当天是否下雨
func (s *SoilSystem) SetRaining(raining bool) {
	s.raining = raining
}

// Raining 当天是否下雨
func (s *SoilSystem) Raining() bool {
	return s.raining
}

// SyncVisuals 让土壤/水渍实体与网格标签保持一致
func (s *SoilSystem) SyncVisuals() {
	// 土壤：整体重建
	for _, id := range ecs.GetEntitiesWith1[*components.SoilTileComponent](s.entityManager) {
		s.entityManager.DestroyEntity(id)
	}
	for _, c := range s.grid.Cells(grid.Tilled) {
		v := s.grid.VariantAt(c)
		entities.NewSoilTile(s.entityManager, s.images.Image(entities.SoilImageKey(v)), c, v, s.tileSize)
	}

	// 水渍：只删除失效的、补上缺失的
	existing := make(map[grid.Cell]bool)
	for _, id := range ecs.GetEntitiesWith1[*components.WaterTileComponent](s.entityManager) {
		water, _ := ecs.GetComponent[*components.WaterTileComponent](s.entityManager, id)
		if !s.grid.HasTag(water.Cell, grid.Watered) || existing[water.Cell] {
			s.entityManager.DestroyEntity(id)
			continue
		}
		existing[water.Cell] = true
	}
	for _, c := range s.grid.Cells(grid.Watered) {
		if existing[c] {
			continue
		}
		style := s.rng.Intn(entities.SoilWaterStyles)
		entities.NewWaterTile(s.entityManager, s.images.Image(entities.SoilWaterImageKey(style)), c, style, s.tileSize)
	}
}

// SoilTiles 返回当前的土壤实体
func (s *SoilSystem) SoilTiles() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.SoilTileComponent](s.entityManager)
}

// WaterTiles 返回当前的水渍实体
func (s *SoilSystem) WaterTiles() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.WaterTileComponent](s.entityManager)
}
