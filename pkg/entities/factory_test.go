package entities

import (
	"testing"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/grid"
	"github.com/decker502/farmsim/pkg/utils"
)

// TestNewPlant 测试作物实体创建
func TestNewPlant(t *testing.T) {
	em := ecs.NewEntityManager()
	corn := &config.SpeciesConfig{Name: "corn", GrowSpeed: 1, Frames: 8, YOffset: -16, FrameWidth: 48, FrameHeight: 80}

	id := NewPlant(em, nil, corn, grid.Cell{Row: 2, Col: 3}, 64)

	plant, ok := ecs.GetComponent[*components.PlantComponent](em, id)
	if !ok {
		t.Fatal("plant entity should have PlantComponent")
	}
	if plant.Age != 0 || plant.MaxAge != 7 || plant.Harvestable {
		t.Errorf("new plant: got age=%v maxAge=%d harvestable=%v, want 0/7/false", plant.Age, plant.MaxAge, plant.Harvestable)
	}
	if plant.Anchor != (grid.Cell{Row: 2, Col: 3}) {
		t.Errorf("anchor: got %v, want (2,3)", plant.Anchor)
	}

	depth, _ := ecs.GetComponent[*components.DepthComponent](em, id)
	if depth.Layer != config.LayerGroundPlant {
		t.Errorf("layer: got %v, want %v", depth.Layer, config.LayerGroundPlant)
	}

	// 底边 = 格子底边(192) + YOffset(-16)，水平居中于格子(224)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.Y+pos.Height != 176 || pos.X+pos.Width/2 != 224 {
		t.Errorf("plant rect: got %+v, want midbottom (224,176)", *pos)
	}

	if ecs.HasComponent[*components.CollisionComponent](em, id) {
		t.Error("seedling should not block movement")
	}
}

// TestGroupMarkers 测试集合成员关系由标记组件表示
func TestGroupMarkers(t *testing.T) {
	em := ecs.NewEntityManager()
	rect := utils.Rect{X: 100, Y: 100, Width: 100, Height: 160}

	tree := NewTree(em, nil, rect, "Large", 5, 0.2)
	flower := NewWildFlower(em, nil, 10, 10)
	collider := NewCollider(em, utils.Rect{X: 0, Y: 0, Width: 64, Height: 64})
	bed := NewInteraction(em, "Bed", rect)

	collision := ecs.GetEntitiesWith1[*components.CollisionComponent](em)
	if len(collision) != 3 {
		t.Errorf("collision set: got %v, want [tree flower collider]", collision)
	}
	trees := ecs.GetEntitiesWith1[*components.TreeComponent](em)
	if len(trees) != 1 || trees[0] != tree {
		t.Errorf("tree set: got %v, want [%d]", trees, tree)
	}
	interactions := ecs.GetEntitiesWith1[*components.InteractionComponent](em)
	if len(interactions) != 1 || interactions[0] != bed {
		t.Errorf("interaction set: got %v, want [%d]", interactions, bed)
	}

	// 不可见实体不参与绘制排序
	drawables := ecs.GetEntitiesWith2[*components.PositionComponent, *components.DepthComponent](em)
	for _, id := range drawables {
		if id == collider || id == bed {
			t.Errorf("entity %d should not be drawable", id)
		}
	}
	_ = flower
}

// TestTreeHitbox 测试树的碰撞盒只覆盖树干
func TestTreeHitbox(t *testing.T) {
	em := ecs.NewEntityManager()
	rect := utils.Rect{X: 0, Y: 0, Width: 100, Height: 200}
	id := NewTree(em, nil, rect, "Small", 5, 0.2)

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
	want := utils.Rect{X: 10, Y: 75, Width: 80, Height: 50}
	if col.Hitbox != want {
		t.Errorf("tree hitbox: got %+v, want %+v", col.Hitbox, want)
	}
	tc, _ := ecs.GetComponent[*components.TreeComponent](em, id)
	if !tc.Alive || tc.Health != 5 || tc.HitTimer.Duration != 0.2 {
		t.Errorf("tree state: got %+v", *tc)
	}
}

// TestFlashParticle 测试闪光特效带生命周期
func TestFlashParticle(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewFlashParticle(em, nil, utils.Rect{Width: 10, Height: 10}, config.LayerMain, 0.5)

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !sprite.Flash {
		t.Error("particle sprite should flash")
	}
	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok || lifetime.Duration != 0.5 || !lifetime.FadeOut {
		t.Errorf("particle lifetime: got %+v, want 0.5s", lifetime)
	}
}

// TestEntityKinds 测试每个工厂都记录实体种类
func TestEntityKinds(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := &config.PlayerConfig{Speed: 200, Width: 64, Height: 96}
	cases := []struct {
		id   ecs.EntityID
		want components.EntityKind
	}{
		{NewGround(em, nil, utils.Rect{Width: 10, Height: 10}), components.KindGround},
		{NewSoilTile(em, nil, grid.Cell{}, grid.Isolated, 64), components.KindSoilTile},
		{NewWaterTile(em, nil, grid.Cell{}, 0, 64), components.KindWaterTile},
		{NewRainDrop(em, nil, 0, 0, 0.4, -2, 4, 200), components.KindRainDrop},
		{NewPlayer(em, nil, 100, 100, cfg), components.KindPlayer},
		{NewMapWater(em, nil, utils.Rect{Width: 64, Height: 64}, 5), components.KindMapWater},
	}
	for _, c := range cases {
		kind, ok := ecs.GetComponent[*components.KindComponent](em, c.id)
		if !ok || kind.Kind != c.want {
			t.Errorf("entity %d kind: got %v, want %v", c.id, kind, c.want)
		}
	}
	if components.KindPlayer.String() != "player" {
		t.Errorf("kind name: got %q, want %q", components.KindPlayer.String(), "player")
	}
}
