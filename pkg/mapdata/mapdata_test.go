package mapdata

import (
	"os"
	"strings"
	"testing"

	"github.com/decker502/farmsim/pkg/grid"
)

const smallMap = `
name: tiny
tileSize: 32
width: 4
height: 3
layers:
  Fence:
    - {col: 0, row: 0, w: 3, h: 1, tile: fence}
  Collision:
    - {col: 3, row: 0, w: 1, h: 3}
farmable:
  - {col: 1, row: 1, w: 2, h: 2}
objects:
  Player:
    - {name: Start, x: 16, y: 48}
    - {name: Bed, x: 64, y: 0, width: 32, height: 64}
`

// TestParseSmallMap 测试解析与区域展开
func TestParseSmallMap(t *testing.T) {
	m, err := Parse([]byte(smallMap))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	fence := m.Tiles(LayerFence)
	if len(fence) != 3 || fence[2].Cell != (grid.Cell{Row: 0, Col: 2}) || fence[0].Tile != "fence" {
		t.Errorf("fence tiles: got %v", fence)
	}

	cells := m.FarmableCells()
	want := []grid.Cell{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}
	if len(cells) != len(want) {
		t.Fatalf("farmable: got %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("farmable[%d]: got %v, want %v", i, cells[i], want[i])
		}
	}

	bed, ok := m.Object(GroupPlayer, ObjectBed)
	if !ok || bed.Rect().Width != 32 {
		t.Errorf("bed: got %+v, %v", bed, ok)
	}
	if b := m.Bounds(); b.Width != 128 || b.Height != 96 {
		t.Errorf("bounds: got %+v, want 128x96", b)
	}

	g := m.NewGrid()
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Errorf("grid size: got %dx%d, want 3x4", g.Rows(), g.Cols())
	}
	if !g.HasTag(grid.Cell{Row: 2, Col: 2}, grid.Farmable) || g.HasTag(grid.Cell{Row: 0, Col: 0}, grid.Farmable) {
		t.Error("grid farmable tags do not match the map")
	}
}

// TestParseRejectsBadMaps 测试非法地图
func TestParseRejectsBadMaps(t *testing.T) {
	cases := map[string]string{
		"area outside": strings.Replace(smallMap, "{col: 3, row: 0, w: 1, h: 3}", "{col: 3, row: 0, w: 2, h: 3}", 1),
		"no start":     strings.Replace(smallMap, "name: Start", "name: Somewhere", 1),
		"zero tile":    strings.Replace(smallMap, "tileSize: 32", "tileSize: 0", 1),
		"bad yaml":     "layers: [",
	}
	for name, data := range cases {
		if _, err := Parse([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

// TestShippedMap 测试随游戏发布的地图
func TestShippedMap(t *testing.T) {
	m, err := Load(os.DirFS("../.."), "data/map.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.FarmableCells()) != 14*9 {
		t.Errorf("farmable cells: got %d, want %d", len(m.FarmableCells()), 14*9)
	}
	for _, name := range []string{ObjectStart, ObjectBed, ObjectTrader} {
		if _, ok := m.Object(GroupPlayer, name); !ok {
			t.Errorf("missing player object %q", name)
		}
	}
	if n := len(m.Group(GroupTrees)); n != 4 {
		t.Errorf("trees: got %d, want 4", n)
	}
}
