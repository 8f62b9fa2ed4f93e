package systems

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/entities"
	"github.com/decker502/farmsim/pkg/grid"
	"github.com/decker502/farmsim/pkg/utils"
)

// PlantSystem 管理作物的种植、生长和收获
//
// 作物只在所在格子带有 Watered 标签时生长，每次 AdvanceAll 增加
// 一次 GrowSpeed，直到达到 MaxAge。显示帧由年龄推导。
type PlantSystem struct {
	entityManager *ecs.EntityManager
	grid          *grid.Grid
	species       config.SpeciesTable
	images        entities.ImageSource
	tileSize      float64
	logger        *log.Logger
}

// NewPlantSystem 创建作物系统
func NewPlantSystem(em *ecs.EntityManager, g *grid.Grid, species config.SpeciesTable, images entities.ImageSource, tileSize float64) *PlantSystem {
	if images == nil {
		images = entities.NoImages{}
	}
	return &PlantSystem{
		entityManager: em,
		grid:          g,
		species:       species,
		images:        images,
		tileSize:      tileSize,
		logger:        log.WithPrefix("PlantSystem"),
	}
}

// Plant 在格子上种下一株作物
// 格子未翻土或已有作物时返回 false，不做任何修改
func (s *PlantSystem) Plant(species string, c grid.Cell) (ecs.EntityID, bool) {
	cfg, err := s.species.Lookup(species)
	if err != nil {
		s.logger.Warn("cannot plant", "err", err)
		return 0, false
	}
	if !s.grid.HasTag(c, grid.Tilled) || s.grid.HasTag(c, grid.Planted) {
		s.logger.Debug("plant ignored", "cell", c, "tags", s.grid.TileAt(c))
		return 0, false
	}

	s.grid.AddTag(c, grid.Planted)
	id := entities.NewPlant(s.entityManager, s.images.Image(entities.PlantImageKey(cfg.Name, 0)), cfg, c, s.tileSize)
	s.logger.Debug("planted", "species", cfg.Name, "cell", c, "entity", id)
	return id, true
}

// AdvanceAll 让所有浇过水的作物生长一次（每天调用一次）
// 必须在清除 Watered 标签之前调用，读取的是前一天的浇水状态
func (s *PlantSystem) AdvanceAll() {
	for _, id := range s.Plants() {
		plant, _ := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
		if !s.grid.HasTag(plant.Anchor, grid.Watered) {
			continue
		}

		plant.Age += plant.GrowSpeed
		if plant.Age >= float64(plant.MaxAge) {
			plant.Age = float64(plant.MaxAge)
			plant.Harvestable = true
		}
		s.refresh(id, plant)
	}
}

// refresh 按当前年龄更新作物的贴图、矩形、图层和碰撞盒
func (s *PlantSystem) refresh(id ecs.EntityID, plant *components.PlantComponent) {
	cfg, err := s.species.Lookup(plant.Species)
	if err != nil {
		return
	}

	img := s.images.Image(entities.PlantImageKey(plant.Species, plant.Frame()))
	rect := entities.PlantRect(img, cfg, plant.Anchor, s.tileSize)

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Image = img
	}
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		pos.SetRect(rect)
	}

	if plant.Sprouted() {
		if depth, ok := ecs.GetComponent[*components.DepthComponent](s.entityManager, id); ok {
			depth.Layer = config.LayerMain
		}
		entities.AddToCollision(s.entityManager, id, entities.PlantHitbox(rect))
	}
}

// Harvest 收获作物：移除格子的 Planted 标签并删除作物实体
// 返回品种和最终显示帧，调用方据此发放物品和生成特效
func (s *PlantSystem) Harvest(id ecs.EntityID) (species string, frame int, ok bool) {
	plant, found := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
	if !found || !s.entityManager.IsAlive(id) {
		return "", 0, false
	}

	s.grid.RemoveTag(plant.Anchor, grid.Planted)
	s.entityManager.DestroyEntity(id)
	s.logger.Debug("harvested", "species", plant.Species, "cell", plant.Anchor)
	return plant.Species, plant.Frame(), true
}

// HarvestableNear 返回与碰撞盒相交的成熟作物
func (s *PlantSystem) HarvestableNear(hitbox utils.Rect) []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range s.Plants() {
		plant, _ := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
		if !plant.Harvestable {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if ok && pos.Rect().Intersects(hitbox) {
			result = append(result, id)
		}
	}
	return result
}

// PlantAt 返回格子上的作物
func (s *PlantSystem) PlantAt(c grid.Cell) (ecs.EntityID, bool) {
	for _, id := range s.Plants() {
		plant, _ := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
		if plant.Anchor == c {
			return id, true
		}
	}
	return 0, false
}

// Plants 返回所有存活作物（按ID升序）
func (s *PlantSystem) Plants() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.PlantComponent](s.entityManager)
}

// Clear 删除所有作物并移除对应的 Planted 标签
func (s *PlantSystem) Clear() {
	for _, id := range s.Plants() {
		plant, _ := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
		s.grid.RemoveTag(plant.Anchor, grid.Planted)
		s.entityManager.DestroyEntity(id)
	}
}
