// Package level 把地图、网格和各个系统组装成一局可运行的农场
package level

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/entities"
	"github.com/decker502/farmsim/pkg/game"
	"github.com/decker502/farmsim/pkg/grid"
	"github.com/decker502/farmsim/pkg/mapdata"
	"github.com/decker502/farmsim/pkg/systems"
)

// 工具名
const (
	ToolHoe   = "hoe"
	ToolAxe   = "axe"
	ToolWater = "water"
)

// 砍树获得的物品
const (
	ItemApple = "apple"
	ItemWood  = "wood"
)

// Resources 关卡需要的贴图来源
type Resources = entities.ImageSource

// Level 一局游戏的全部状态
//
// Level 拥有网格和实体管理器，按固定顺序驱动各个系统，
// 并实现 systems.PlayerActions 接收玩家的工具、种子和交互动作。
type Level struct {
	m      *mapdata.Map
	cfg    *config.Config
	images Resources
	rng    *rand.Rand
	logger *log.Logger

	entityManager *ecs.EntityManager
	grid          *grid.Grid
	inventory     *game.Inventory

	plants     *systems.PlantSystem
	soil       *systems.SoilSystem
	render     *systems.RenderSystem
	lifetime   *systems.LifetimeSystem
	animation  *systems.AnimationSystem
	rain       *systems.RainSystem
	sky        *systems.SkySystem
	transition *systems.TransitionSystem
	trees      *systems.TreeSystem
	player     *systems.PlayerSystem

	shopActive bool
	day        int
}

// New 根据地图和配置创建关卡
// res 为 nil 时不加载任何贴图（无界面运行）
func New(m *mapdata.Map, cfg *config.Config, res Resources, rng *rand.Rand) *Level {
	if res == nil {
		res = entities.NoImages{}
	}
	em := ecs.NewEntityManager()
	g := m.NewGrid()
	// 网格坐标一律以地图的格子尺寸为准
	ts := m.TileSize

	l := &Level{
		m:             m,
		cfg:           cfg,
		images:        res,
		rng:           rng,
		logger:        log.WithPrefix("Level"),
		entityManager: em,
		grid:          g,
		inventory:     game.NewInventory(cfg.Inventory, cfg.Prices),
		day:           1,
	}

	l.plants = systems.NewPlantSystem(em, g, cfg.Species, res, ts)
	l.soil = systems.NewSoilSystem(em, g, l.plants, res, ts, rng)
	l.render = systems.NewRenderSystem(em, cfg.Layers, float64(cfg.Screen.Width), float64(cfg.Screen.Height))
	l.lifetime = systems.NewLifetimeSystem(em)
	l.animation = systems.NewAnimationSystem(em)
	l.rain = systems.NewRainSystem(em, res, cfg.Weather, m.Bounds(), rng)
	l.sky = systems.NewSkySystem(cfg.Weather.SkyNightColor, cfg.Weather.SkyFadeSpeed)
	l.transition = systems.NewTransitionSystem(cfg.Weather.TransitionSpeed, l.ResetDay, l.wake)
	l.trees = systems.NewTreeSystem(em, res, cfg.Trees, cfg.Effects.HitFlash, rng)
	l.player = systems.NewPlayerSystem(em, res, cfg.Player, l)

	l.setup()
	l.soil.SetRaining(l.drawWeather())
	l.trees.ResetFruit()

	if cfg.TileSize != ts {
		l.logger.Warn("map tile size differs from config, using the map's", "map", ts, "config", cfg.TileSize)
	}
	l.logger.Info("level created", "map", m.Name, "entities", em.Count(), "farmable", len(g.Cells(grid.Farmable)), "raining", l.soil.Raining())
	return l
}

// setup 按地图创建地形、装饰、树、交互点和玩家
func (l *Level) setup() {
	em := l.entityManager
	ts := l.m.TileSize

	entities.NewGround(em, l.images.Image("world/ground"), l.m.Bounds())

	tile := func(layerName string, layer config.Layer, collide bool) {
		for _, p := range l.m.Tiles(layerName) {
			rect := grid.CellRect(p.Cell, ts)
			id := entities.NewGenericSprite(em, l.images.Image("tiles/"+p.Tile), rect, layer)
			if collide {
				entities.AddToCollision(em, id, rect)
			}
		}
	}
	tile(mapdata.LayerHouseFloor, config.LayerHouseBottom, false)
	tile(mapdata.LayerHouseFurnitureBottom, config.LayerHouseBottom, false)
	tile(mapdata.LayerHouseWalls, config.LayerMain, false)
	tile(mapdata.LayerHouseFurnitureTop, config.LayerMain, false)
	tile(mapdata.LayerFence, config.LayerMain, true)

	frames := make([]*ebiten.Image, entities.MapWaterFrames)
	for i := range frames {
		frames[i] = l.images.Image(entities.MapWaterImageKey(i))
	}
	for _, p := range l.m.Tiles(mapdata.LayerWater) {
		entities.NewMapWater(em, frames, grid.CellRect(p.Cell, ts), l.cfg.Effects.WaterFPS)
	}

	for _, p := range l.m.Tiles(mapdata.LayerCollision) {
		entities.NewCollider(em, grid.CellRect(p.Cell, ts))
	}

	for _, obj := range l.m.Group(mapdata.GroupDecoration) {
		entities.NewWildFlower(em, l.images.Image("objects/"+obj.Image), obj.X, obj.Y)
	}

	for _, obj := range l.m.Group(mapdata.GroupTrees) {
		img := l.images.Image(entities.TreeImageKey(obj.Name))
		rect := obj.Rect()
		if img != nil {
			b := img.Bounds()
			rect.Width, rect.Height = float64(b.Dx()), float64(b.Dy())
		}
		entities.NewTree(em, img, rect, obj.Name, l.cfg.Trees.Health, l.cfg.Trees.HitCooldown)
	}

	for _, obj := range l.m.Group(mapdata.GroupPlayer) {
		switch obj.Name {
		case mapdata.ObjectStart:
			img := l.images.Image(entities.PlayerImageKey(components.FacingDown))
			entities.NewPlayer(em, img, obj.X, obj.Y, &l.cfg.Player)
		case mapdata.ObjectBed, mapdata.ObjectTrader:
			entities.NewInteraction(em, obj.Name, obj.Rect())
		}
	}
}

// drawWeather 抽取新一天的天气
func (l *Level) drawWeather() bool {
	return l.rng.Float64() < l.cfg.Weather.RainChance
}

// Update 推进一帧
// 商店打开时世界暂停，只有天空继续变暗
func (l *Level) Update(deltaTime float64, in systems.PlayerInput) {
	if l.shopActive {
		l.sky.Update(deltaTime)
		return
	}

	l.player.Update(deltaTime, in)
	l.trees.Update(deltaTime)
	l.animation.Update(deltaTime)
	l.lifetime.Update(deltaTime)
	l.harvestCollisions()
	l.rain.Update(deltaTime, l.soil.Raining())
	l.sky.Update(deltaTime)
	l.transition.Update(deltaTime)

	l.entityManager.RemoveMarkedEntities()
}

// harvestCollisions 玩家碰到成熟的作物时收获
func (l *Level) harvestCollisions() {
	for _, id := range l.plants.HarvestableNear(l.player.Hitbox()) {
		l.harvest(id)
	}
}

// HarvestAt 收获格子上成熟的作物
func (l *Level) HarvestAt(c grid.Cell) bool {
	id, ok := l.plants.PlantAt(c)
	if !ok {
		return false
	}
	plant, _ := ecs.GetComponent[*components.PlantComponent](l.entityManager, id)
	if !plant.Harvestable {
		return false
	}
	return l.harvest(id)
}

// harvest 收获作物：记入背包并在原处留下闪光
func (l *Level) harvest(id ecs.EntityID) bool {
	var img *ebiten.Image
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](l.entityManager, id); ok {
		img = sprite.Image
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](l.entityManager, id)
	rect := pos.Rect()

	species, _, ok := l.plants.Harvest(id)
	if !ok {
		return false
	}
	l.Credit(species)
	entities.NewFlashParticle(l.entityManager, img, rect, config.LayerMain, l.cfg.Effects.HarvestFlash)
	l.logger.Debug("harvested", "species", species, "entity", id)
	return true
}

// ResetDay 开始新的一天
// 顺序：作物生长 -> 清除浇水 -> 抽取天气 -> 下雨时全部浇水 -> 天空复位 -> 重新结果
func (l *Level) ResetDay() {
	l.plants.AdvanceAll()
	l.soil.RemoveWater()

	raining := l.drawWeather()
	l.soil.SetRaining(raining)
	if raining {
		l.soil.WaterAll()
	}

	l.sky.Reset()
	l.trees.ResetFruit()
	l.day++
	l.entityManager.RemoveMarkedEntities()
	l.logger.Info("new day", "day", l.day, "raining", raining, "plants", len(l.plants.Plants()))
}

func (l *Level) wake() {
	l.player.Wake()
}

// ToggleShop 打开或关闭商店
func (l *Level) ToggleShop() {
	l.shopActive = !l.shopActive
	l.logger.Debug("shop toggled", "active", l.shopActive)
}

// ShopActive 商店是否打开
func (l *Level) ShopActive() bool { return l.shopActive }

// Credit 向背包加入一个物品
func (l *Level) Credit(item string) {
	l.inventory.Credit(item)
}

// UseTool 在世界坐标 (x, y) 使用工具
func (l *Level) UseTool(tool string, x, y float64) {
	switch tool {
	case ToolHoe:
		if !l.soil.Till(x, y) {
			l.logger.Debug("nothing to till", "x", x, "y", y)
		}
	case ToolAxe:
		id, ok := l.trees.TreeAt(x, y)
		if !ok {
			l.logger.Debug("no tree at target", "x", x, "y", y)
			return
		}
		result := l.trees.Hit(id)
		if result.Apple {
			l.Credit(ItemApple)
		}
		if result.Felled {
			l.Credit(ItemWood)
		}
	case ToolWater:
		if !l.soil.Water(x, y) {
			l.logger.Debug("nothing to water", "x", x, "y", y)
		}
	default:
		l.logger.Debug("unknown tool", "tool", tool)
	}
}

// UseSeed 在世界坐标 (x, y) 播下当前选中的种子
func (l *Level) UseSeed(x, y float64) {
	l.PlantSeed(l.player.CurrentSeed(), x, y)
}

// PlantSeed 在世界坐标 (x, y) 播下指定的种子
// 只有种下成功才消耗种子
func (l *Level) PlantSeed(seed string, x, y float64) bool {
	if l.inventory.Seed(seed) <= 0 {
		l.logger.Debug("out of seeds", "seed", seed)
		return false
	}
	if _, ok := l.soil.PlantAt(x, y, seed); !ok {
		return false
	}
	l.inventory.UseSeed(seed)
	return true
}

// Interact 与玩家碰撞盒重叠的交互点交互
func (l *Level) Interact() {
	hitbox := l.player.Hitbox()
	for _, id := range ecs.GetEntitiesWith2[*components.InteractionComponent, *components.PositionComponent](l.entityManager) {
		inter, _ := ecs.GetComponent[*components.InteractionComponent](l.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](l.entityManager, id)
		if !pos.Rect().Intersects(hitbox) {
			continue
		}
		switch inter.Name {
		case mapdata.ObjectTrader:
			l.ToggleShop()
		case mapdata.ObjectBed:
			if !l.transition.Active() {
				l.player.Sleep()
				l.transition.Start()
			}
		}
		return
	}
}

// Draw 绘制世界、天空和睡眠过渡
func (l *Level) Draw(screen *ebiten.Image, showGrid bool) {
	anchor, _ := l.player.Player()
	l.render.Draw(screen, anchor)
	if showGrid {
		l.render.DrawGridOverlay(screen, anchor, l.grid, l.m.TileSize)
	}
	l.sky.Draw(screen)
	l.transition.Draw(screen)
}

// Grid 返回网格
func (l *Level) Grid() *grid.Grid { return l.grid }

// Soil 返回土壤系统
func (l *Level) Soil() *systems.SoilSystem { return l.soil }

// Plants 返回作物系统
func (l *Level) Plants() *systems.PlantSystem { return l.plants }

// Trees 返回树木系统
func (l *Level) Trees() *systems.TreeSystem { return l.trees }

// Player 返回玩家系统
func (l *Level) Player() *systems.PlayerSystem { return l.player }

// Render 返回渲染系统
func (l *Level) Render() *systems.RenderSystem { return l.render }

// Sky 返回天空系统
func (l *Level) Sky() *systems.SkySystem { return l.sky }

// Transition 返回睡眠过渡系统
func (l *Level) Transition() *systems.TransitionSystem { return l.transition }

// Inventory 返回背包
func (l *Level) Inventory() *game.Inventory { return l.inventory }

// EntityManager 返回实体管理器
func (l *Level) EntityManager() *ecs.EntityManager { return l.entityManager }

// Config 返回游戏配置
func (l *Level) Config() *config.Config { return l.cfg }

// Map 返回地图
func (l *Level) Map() *mapdata.Map { return l.m }

// Raining 今天是否下雨
func (l *Level) Raining() bool { return l.soil.Raining() }

// Day 当前是第几天（从 1 开始）
func (l *Level) Day() int { return l.day }
