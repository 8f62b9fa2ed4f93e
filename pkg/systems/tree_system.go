package systems

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/entities"
	"github.com/decker502/farmsim/pkg/utils"
)

// HitResult 砍树的结果
type HitResult struct {
	Hit    bool // 是否造成伤害（无敌时间内或已是树桩时为 false）
	Apple  bool // 掉落了一个苹果
	Felled bool // 本次砍倒了树
}

// TreeSystem 管理树的受击、果实和倒下
type TreeSystem struct {
	entityManager *ecs.EntityManager
	images        entities.ImageSource
	cfg           config.TreeConfig
	flash         float64
	rng           *rand.Rand
	logger        *log.Logger
}

// NewTreeSystem 创建树木系统
// flash 为苹果/倒树闪光特效的时长（秒）
func NewTreeSystem(em *ecs.EntityManager, images entities.ImageSource, cfg config.TreeConfig, flash float64, rng *rand.Rand) *TreeSystem {
	if images == nil {
		images = entities.NoImages{}
	}
	return &TreeSystem{
		entityManager: em,
		images:        images,
		cfg:           cfg,
		flash:         flash,
		rng:           rng,
		logger:        log.WithPrefix("TreeSystem"),
	}
}

// Update 推进受击无敌计时
func (s *TreeSystem) Update(deltaTime float64) {
	for _, id := range s.Trees() {
		tree, _ := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
		tree.HitTimer.Update(deltaTime)
	}
}

// Trees 返回所有树（包括树桩）
func (s *TreeSystem) Trees() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.TreeComponent](s.entityManager)
}

// TreeAt 返回贴图矩形包含该点的树
func (s *TreeSystem) TreeAt(x, y float64) (ecs.EntityID, bool) {
	for _, id := range s.Trees() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if ok && pos.Rect().Contains(x, y) {
			return id, true
		}
	}
	return 0, false
}

// Hit 用斧头砍树
// 每次生命值减一；树上有苹果时随机掉落一个；生命值归零时变成树桩
func (s *TreeSystem) Hit(id ecs.EntityID) HitResult {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok || !tree.Alive || tree.HitTimer.Active {
		return HitResult{}
	}

	result := HitResult{Hit: true}
	tree.Health--
	tree.HitTimer.Activate()

	if len(tree.Fruits) > 0 {
		i := s.rng.Intn(len(tree.Fruits))
		apple := tree.Fruits[i]
		tree.Fruits = append(tree.Fruits[:i], tree.Fruits[i+1:]...)
		s.flashEntity(apple, config.LayerFruit)
		s.entityManager.DestroyEntity(apple)
		result.Apple = true
	}

	if tree.Health <= 0 {
		s.fell(id, tree)
		result.Felled = true
	}
	s.logger.Debug("tree hit", "entity", id, "health", tree.Health, "apple", result.Apple, "felled", result.Felled)
	return result
}

// fell 树倒下：闪光，换成树桩贴图，缩小碰撞盒
func (s *TreeSystem) fell(id ecs.EntityID, tree *components.TreeComponent) {
	s.flashEntity(id, config.LayerMain)
	tree.Alive = false

	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	stump := s.images.Image(entities.StumpImageKey(tree.Size))
	w, h := pos.Width, pos.Height*0.4
	if stump != nil {
		w, h = float64(stump.Bounds().Dx()), float64(stump.Bounds().Dy())
	}
	midX, bottom := pos.Rect().MidBottom()
	rect := utils.NewRectMidBottom(midX, bottom, w, h)
	pos.SetRect(rect)

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Image = stump
	}
	entities.AddToCollision(s.entityManager, id, rect.Inflate(-10, -rect.Height*0.6))
}

// flashEntity 在实体当前位置生成一个白色闪光
func (s *TreeSystem) flashEntity(id ecs.EntityID, layer config.Layer) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if sprite == nil {
		return
	}
	entities.NewFlashParticle(s.entityManager, sprite.Image, pos.Rect(), layer, s.flash)
}

// ResetFruit 新的一天：清除所有苹果，存活的树按概率在每个果位重新结果
func (s *TreeSystem) ResetFruit() {
	for _, id := range s.Trees() {
		tree, _ := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
		for _, apple := range tree.Fruits {
			s.entityManager.DestroyEntity(apple)
		}
		tree.Fruits = tree.Fruits[:0]
		if tree.Alive {
			s.growFruit(id, tree)
		}
	}
}

func (s *TreeSystem) growFruit(id ecs.EntityID, tree *components.TreeComponent) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	img := s.images.Image(entities.AppleImageKey)
	for _, p := range s.cfg.ApplePositions[tree.Size] {
		if s.rng.Intn(11) < s.cfg.FruitChance {
			apple := entities.NewFruit(s.entityManager, img, id, pos.Rect(), p.X, p.Y)
			tree.Fruits = append(tree.Fruits, apple)
		}
	}
}
