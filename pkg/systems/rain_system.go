package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/entities"
	"github.com/decker502/farmsim/pkg/utils"
)

// RainSystem 下雨时每帧生成一个落地水花和一个下落雨滴，并移动下落中的雨滴
// 雨滴的删除由 LifetimeSystem 负责
type RainSystem struct {
	entityManager *ecs.EntityManager
	images        entities.ImageSource
	cfg           config.WeatherConfig
	world         utils.Rect
	rng           *rand.Rand
}

// NewRainSystem 创建雨系统，world 为雨滴随机出现的范围
func NewRainSystem(em *ecs.EntityManager, images entities.ImageSource, cfg config.WeatherConfig, world utils.Rect, rng *rand.Rand) *RainSystem {
	if images == nil {
		images = entities.NoImages{}
	}
	return &RainSystem{
		entityManager: em,
		images:        images,
		cfg:           cfg,
		world:         world,
		rng:           rng,
	}
}

// Update 移动雨滴；raining 为 true 时生成新雨滴
func (s *RainSystem) Update(deltaTime float64, raining bool) {
	for _, id := range ecs.GetEntitiesWith2[*components.MovementComponent, *components.PositionComponent](s.entityManager) {
		move, _ := ecs.GetComponent[*components.MovementComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		move.PosX += move.DirX * move.Speed * deltaTime
		move.PosY += move.DirY * move.Speed * deltaTime
		pos.X = math.Round(move.PosX)
		pos.Y = math.Round(move.PosY)
	}

	if raining {
		s.spawnFloor()
		s.spawnDrop()
	}
}

func (s *RainSystem) randomPoint() (x, y float64) {
	x = s.world.X + float64(s.rng.Intn(int(s.world.Width)+1))
	y = s.world.Y + float64(s.rng.Intn(int(s.world.Height)+1))
	return x, y
}

func (s *RainSystem) lifetime() float64 {
	return s.cfg.DropLifetimeMin + s.rng.Float64()*(s.cfg.DropLifetimeMax-s.cfg.DropLifetimeMin)
}

func (s *RainSystem) spawnFloor() {
	x, y := s.randomPoint()
	img := s.images.Image(entities.RainFloorImageKey(s.rng.Intn(entities.RainFloorStyles)))
	entities.NewRainFloor(s.entityManager, img, x, y, s.lifetime())
}

func (s *RainSystem) spawnDrop() {
	x, y := s.randomPoint()
	img := s.images.Image(entities.RainDropImageKey(s.rng.Intn(entities.RainDropStyles)))
	speed := s.cfg.DropSpeedMin + s.rng.Float64()*(s.cfg.DropSpeedMax-s.cfg.DropSpeedMin)
	entities.NewRainDrop(s.entityManager, img, x, y, s.lifetime(), s.cfg.DropDirection.X, s.cfg.DropDirection.Y, speed)
}
