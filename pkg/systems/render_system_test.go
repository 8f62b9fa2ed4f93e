package systems

import (
	"testing"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
)

func addDrawable(em *ecs.EntityManager, x, y, w, h float64, layer config.Layer) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y, Width: w, Height: h})
	em.AddComponent(id, &components.DepthComponent{Layer: layer})
	return id
}

// TestDrawOrderLayerDominates 测试图层优先于Y坐标
func TestDrawOrderLayerDominates(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewRenderSystem(em, config.DefaultLayerOrder(), 1280, 720)

	drop := addDrawable(em, 0, 0, 4, 4, config.LayerRainDrops)
	tree := addDrawable(em, 0, 300, 100, 100, config.LayerMain)
	ground := addDrawable(em, 0, 0, 2000, 2000, config.LayerGround)
	player := addDrawable(em, 0, 100, 64, 96, config.LayerMain)
	soil := addDrawable(em, 0, 900, 64, 64, config.LayerSoil)

	got := rs.DrawOrder()
	want := []ecs.EntityID{ground, soil, player, tree, drop}
	if len(got) != len(want) {
		t.Fatalf("DrawOrder: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DrawOrder: got %v, want %v", got, want)
			break
		}
	}
}

// TestDrawOrderStableWithinLayer 测试同图层同Y时按ID排序
func TestDrawOrderStableWithinLayer(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewRenderSystem(em, nil, 1280, 720)

	a := addDrawable(em, 0, 0, 64, 64, config.LayerSoil)
	b := addDrawable(em, 64, 0, 64, 64, config.LayerSoil)
	c := addDrawable(em, 128, 0, 64, 64, config.LayerSoil)

	for i := 0; i < 5; i++ {
		got := rs.DrawOrder()
		if got[0] != a || got[1] != b || got[2] != c {
			t.Fatalf("DrawOrder: got %v, want [%d %d %d]", got, a, b, c)
		}
	}
}

// TestDrawOrderCustomLayers 测试图层顺序来自配置
func TestDrawOrderCustomLayers(t *testing.T) {
	layers := make([]config.Layer, 0, len(config.AllLayers))
	layers = append(layers, config.LayerMain)
	for _, l := range config.AllLayers {
		if l != config.LayerMain {
			layers = append(layers, l)
		}
	}
	order, err := config.NewLayerOrder(layers)
	if err != nil {
		t.Fatal(err)
	}

	em := ecs.NewEntityManager()
	rs := NewRenderSystem(em, order, 1280, 720)
	ground := addDrawable(em, 0, 0, 10, 10, config.LayerGround)
	player := addDrawable(em, 0, 0, 10, 10, config.LayerMain)

	got := rs.DrawOrder()
	if got[0] != player || got[1] != ground {
		t.Errorf("DrawOrder with main first: got %v, want [%d %d]", got, player, ground)
	}
}

// TestDrawOrderSkipsDestroyed 测试已删除实体不参与绘制
func TestDrawOrderSkipsDestroyed(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewRenderSystem(em, nil, 1280, 720)
	keep := addDrawable(em, 0, 0, 10, 10, config.LayerMain)
	gone := addDrawable(em, 0, 0, 10, 10, config.LayerMain)
	em.DestroyEntity(gone)

	got := rs.DrawOrder()
	if len(got) != 1 || got[0] != keep {
		t.Errorf("DrawOrder: got %v, want [%d]", got, keep)
	}
}

// TestOffset 测试摄像机偏移
func TestOffset(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewRenderSystem(em, nil, 1280, 720)
	player := addDrawable(em, 968, 512, 64, 96, config.LayerMain)

	x, y := rs.Offset(player)
	if x != 1000-640 || y != 560-360 {
		t.Errorf("Offset: got (%v, %v), want (360, 200)", x, y)
	}

	if x, y := rs.Offset(9999); x != 0 || y != 0 {
		t.Errorf("Offset without anchor: got (%v, %v), want (0, 0)", x, y)
	}
}
