package systems

import (
	"testing"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/grid"
	"github.com/decker502/farmsim/pkg/utils"
)

func (f *testFarm) tilledCell(row, col int) grid.Cell {
	x, y := worldPoint(row, col)
	f.soil.Till(x, y)
	return grid.Cell{Row: row, Col: col}
}

// TestPlantRequiresTilledSoil 测试只能在翻过的土上种植
func TestPlantRequiresTilledSoil(t *testing.T) {
	f := newTestFarm(4, 4)
	c := grid.Cell{Row: 1, Col: 1}

	if _, ok := f.plants.Plant("corn", c); ok {
		t.Error("planting on untilled soil should fail")
	}
	if f.grid.HasTag(c, grid.Planted) {
		t.Error("failed planting should not tag the cell")
	}

	f.tilledCell(1, 1)
	if _, ok := f.plants.Plant("corn", c); !ok {
		t.Fatal("planting on tilled soil should succeed")
	}
	if _, ok := f.plants.Plant("tomato", c); ok {
		t.Error("planting on an occupied cell should fail")
	}
	if n := len(f.plants.Plants()); n != 1 {
		t.Errorf("plant count: got %d, want 1", n)
	}
}

// TestPlantUnknownSpecies 测试未知品种
func TestPlantUnknownSpecies(t *testing.T) {
	f := newTestFarm(2, 2)
	c := f.tilledCell(0, 0)
	if _, ok := f.plants.Plant("cron", c); ok {
		t.Error("unknown species should not be planted")
	}
	if f.grid.HasTag(c, grid.Planted) {
		t.Error("unknown species should not tag the cell")
	}
}

// TestUnwateredPlantNeverAges 测试未浇水的作物不生长
func TestUnwateredPlantNeverAges(t *testing.T) {
	f := newTestFarm(3, 3)
	c := f.tilledCell(1, 1)
	id, _ := f.plants.Plant("corn", c)

	for i := 0; i < 20; i++ {
		f.plants.AdvanceAll()
	}

	plant, _ := ecs.GetComponent[*components.PlantComponent](f.em, id)
	if plant.Age != 0 {
		t.Errorf("unwatered plant age: got %v, want 0", plant.Age)
	}
}

// TestWateredPlantGrowsUntilClamped 测试浇水作物每次增长 GrowSpeed 直到成熟
func TestWateredPlantGrowsUntilClamped(t *testing.T) {
	f := newTestFarm(3, 3)
	c := f.tilledCell(1, 1)
	x, y := worldPoint(1, 1)
	f.soil.Water(x, y)
	id, _ := f.plants.Plant("corn", c)
	plant, _ := ecs.GetComponent[*components.PlantComponent](f.em, id)

	prev := plant.Age
	for i := 0; i < 7; i++ {
		f.plants.AdvanceAll()
		if plant.Age != prev+1 {
			t.Fatalf("step %d: age got %v, want %v", i, plant.Age, prev+1)
		}
		prev = plant.Age
	}
	if !plant.Harvestable {
		t.Error("plant at max age should be harvestable")
	}

	for i := 0; i < 3; i++ {
		f.plants.AdvanceAll()
	}
	if plant.Age != 7 || !plant.Harvestable {
		t.Errorf("clamped plant: got age=%v harvestable=%v, want 7/true", plant.Age, plant.Harvestable)
	}
	if plant.Frame() != 7 {
		t.Errorf("frame: got %d, want 7", plant.Frame())
	}
}

// TestFractionalGrowth 测试小数生长速度下的显示帧
func TestFractionalGrowth(t *testing.T) {
	f := newTestFarm(3, 3)
	c := f.tilledCell(0, 0)
	f.grid.AddTag(c, grid.Watered)
	id, _ := f.plants.Plant("tomato", c)
	plant, _ := ecs.GetComponent[*components.PlantComponent](f.em, id)

	f.plants.AdvanceAll() // 0.7
	if plant.Frame() != 0 {
		t.Errorf("age %v frame: got %d, want 0", plant.Age, plant.Frame())
	}
	if plant.Sprouted() {
		t.Error("plant with age < 1 should not be sprouted")
	}
	depth, _ := ecs.GetComponent[*components.DepthComponent](f.em, id)
	if depth.Layer != config.LayerGroundPlant {
		t.Errorf("seedling layer: got %v, want %v", depth.Layer, config.LayerGroundPlant)
	}

	f.plants.AdvanceAll() // 1.4
	if !plant.Sprouted() {
		t.Error("plant with age >= 1 should be sprouted")
	}
	if depth.Layer != config.LayerMain {
		t.Errorf("sprouted layer: got %v, want %v", depth.Layer, config.LayerMain)
	}
	if !ecs.HasComponent[*components.CollisionComponent](f.em, id) {
		t.Error("sprouted plant should have a hitbox")
	}

	for i := 0; i < 5; i++ {
		f.plants.AdvanceAll()
	}
	if plant.Age != 3 || !plant.Harvestable {
		t.Errorf("tomato: got age=%v harvestable=%v, want 3/true", plant.Age, plant.Harvestable)
	}
}

// TestHarvestAllowsReplanting 测试收获后可以立即重新种植
func TestHarvestAllowsReplanting(t *testing.T) {
	f := newTestFarm(3, 3)
	c := f.tilledCell(2, 2)
	id, _ := f.plants.Plant("corn", c)

	species, frame, ok := f.plants.Harvest(id)
	if !ok || species != "corn" || frame != 0 {
		t.Errorf("harvest: got (%q, %d, %v), want (corn, 0, true)", species, frame, ok)
	}
	if f.grid.HasTag(c, grid.Planted) {
		t.Error("harvest should remove Planted")
	}
	if _, _, ok := f.plants.Harvest(id); ok {
		t.Error("harvesting twice should fail")
	}
	if _, ok := f.plants.Plant("corn", c); !ok {
		t.Error("replanting after harvest should succeed")
	}
}

// TestHarvestableNear 测试按碰撞盒查询成熟作物
func TestHarvestableNear(t *testing.T) {
	f := newTestFarm(3, 6)
	ripe := f.tilledCell(1, 1)
	young := f.tilledCell(1, 2)
	f.grid.AddTag(ripe, grid.Watered)
	ripeID, _ := f.plants.Plant("tomato", ripe)
	f.plants.Plant("tomato", young)
	for i := 0; i < 5; i++ {
		f.plants.AdvanceAll()
	}

	everywhere := utils.Rect{X: 0, Y: 0, Width: 6 * testTileSize, Height: 3 * testTileSize}
	got := f.plants.HarvestableNear(everywhere)
	if len(got) != 1 || got[0] != ripeID {
		t.Errorf("HarvestableNear: got %v, want [%d]", got, ripeID)
	}

	far := utils.Rect{X: 5 * testTileSize, Y: 0, Width: 10, Height: 10}
	if got := f.plants.HarvestableNear(far); len(got) != 0 {
		t.Errorf("HarvestableNear far away: got %v, want none", got)
	}
}

// TestClearPlants 测试清除全部作物
func TestClearPlants(t *testing.T) {
	f := newTestFarm(3, 3)
	for col := 0; col < 3; col++ {
		f.plants.Plant("corn", f.tilledCell(0, col))
	}
	f.plants.Clear()

	if n := len(f.plants.Plants()); n != 0 {
		t.Errorf("plants after Clear: got %d, want 0", n)
	}
	if cells := f.grid.Cells(grid.Planted); len(cells) != 0 {
		t.Errorf("Planted cells after Clear: got %v, want none", cells)
	}
}
