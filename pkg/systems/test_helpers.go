package systems

import (
	"math/rand"

	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/grid"
)

const testTileSize = 64

// testSpecies 测试用品种表：corn 每天长 1，共 8 帧（MaxAge = 7）
func testSpecies() config.SpeciesTable {
	return config.SpeciesTable{
		"corn":   {Name: "corn", GrowSpeed: 1, Frames: 8, YOffset: -16, FrameWidth: 48, FrameHeight: 80},
		"tomato": {Name: "tomato", GrowSpeed: 0.7, Frames: 4, YOffset: -8, FrameWidth: 48, FrameHeight: 64},
	}
}

// testFarm 测试用农场：所有格子可耕种
type testFarm struct {
	em     *ecs.EntityManager
	grid   *grid.Grid
	plants *PlantSystem
	soil   *SoilSystem
}

func newTestFarm(rows, cols int) *testFarm {
	em := ecs.NewEntityManager()
	g := grid.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.AddTag(grid.Cell{Row: r, Col: c}, grid.Farmable)
		}
	}
	plants := NewPlantSystem(em, g, testSpecies(), nil, testTileSize)
	soil := NewSoilSystem(em, g, plants, nil, testTileSize, rand.New(rand.NewSource(1)))
	return &testFarm{em: em, grid: g, plants: plants, soil: soil}
}

// worldPoint 返回格子中心的世界坐标
func worldPoint(row, col int) (x, y float64) {
	return grid.CellCenter(grid.Cell{Row: row, Col: col}, testTileSize)
}
