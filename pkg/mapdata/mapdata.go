// Package mapdata 读取农场地图
//
// 地图文件是 YAML：按图层列出矩形区域（逐格展开为放置列表），
// 一组可耕种区域，以及按分组列出的命名对象（树、装饰、出生点、交互点）。
package mapdata

import (
	"fmt"
	"io/fs"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/decker502/farmsim/pkg/grid"
	"github.com/decker502/farmsim/pkg/utils"
)

// 图层名
const (
	LayerHouseFloor           = "HouseFloor"
	LayerHouseFurnitureBottom = "HouseFurnitureBottom"
	LayerHouseWalls           = "HouseWalls"
	LayerHouseFurnitureTop    = "HouseFurnitureTop"
	LayerFence                = "Fence"
	LayerWater                = "Water"
	LayerCollision            = "Collision"
)

// 对象分组名
const (
	GroupDecoration = "Decoration"
	GroupTrees      = "Trees"
	GroupPlayer     = "Player"
)

// 出生点和交互点
const (
	ObjectStart  = "Start"
	ObjectBed    = "Bed"
	ObjectTrader = "Trader"
)

// Area 以格子为单位的矩形区域
type Area struct {
	Col  int    `yaml:"col"`
	Row  int    `yaml:"row"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`
	Tile string `yaml:"tile"`
}

// Object 以像素为单位的命名对象
type Object struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Image  string  `yaml:"image"`
}

// Rect 对象矩形
func (o Object) Rect() utils.Rect {
	return utils.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// Placement 单个格子上的贴图放置
type Placement struct {
	Cell grid.Cell
	Tile string
}

// Map 解析后的地图
type Map struct {
	Name     string              `yaml:"name"`
	TileSize float64             `yaml:"tileSize"`
	Width    int                 `yaml:"width"`  // 列数
	Height   int                 `yaml:"height"` // 行数
	Layers   map[string][]Area   `yaml:"layers"`
	Farmable []Area              `yaml:"farmable"`
	Objects  map[string][]Object `yaml:"objects"`
}

// Parse 解析并校验地图数据
func Parse(data []byte) (*Map, error) {
	var m Map
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse map YAML: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid map %q: %w", m.Name, err)
	}
	return &m, nil
}

// Load 从文件系统读取地图
func Load(fsys fs.FS, path string) (*Map, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", path, err)
	}
	return Parse(data)
}

func (m *Map) validate() error {
	if m.TileSize <= 0 {
		return fmt.Errorf("tileSize must be > 0, got %v", m.TileSize)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("size must be positive, got %dx%d", m.Width, m.Height)
	}
	check := func(where string, a Area) error {
		if a.W <= 0 || a.H <= 0 || a.Col < 0 || a.Row < 0 || a.Col+a.W > m.Width || a.Row+a.H > m.Height {
			return fmt.Errorf("%s: area {col:%d row:%d w:%d h:%d} outside %dx%d map", where, a.Col, a.Row, a.W, a.H, m.Width, m.Height)
		}
		return nil
	}
	for name, areas := range m.Layers {
		for _, a := range areas {
			if err := check("layer "+name, a); err != nil {
				return err
			}
		}
	}
	for _, a := range m.Farmable {
		if err := check("farmable", a); err != nil {
			return err
		}
	}
	if _, ok := m.Object(GroupPlayer, ObjectStart); !ok {
		return fmt.Errorf("missing %s/%s object", GroupPlayer, ObjectStart)
	}
	return nil
}

// expand 将区域展开为逐格放置（行优先）
func expand(areas []Area) []Placement {
	var out []Placement
	for _, a := range areas {
		for r := a.Row; r < a.Row+a.H; r++ {
			for c := a.Col; c < a.Col+a.W; c++ {
				out = append(out, Placement{Cell: grid.Cell{Row: r, Col: c}, Tile: a.Tile})
			}
		}
	}
	return out
}

// Tiles 返回图层的逐格放置
func (m *Map) Tiles(layer string) []Placement {
	return expand(m.Layers[layer])
}

// FarmableCells 返回可耕种的格子
func (m *Map) FarmableCells() []grid.Cell {
	placements := expand(m.Farmable)
	cells := make([]grid.Cell, len(placements))
	for i, p := range placements {
		cells[i] = p.Cell
	}
	return cells
}

// Object 按分组和名称查找对象
func (m *Map) Object(group, name string) (Object, bool) {
	for _, o := range m.Objects[group] {
		if o.Name == name {
			return o, true
		}
	}
	return Object{}, false
}

// Group 返回分组中的所有对象
func (m *Map) Group(group string) []Object {
	return m.Objects[group]
}

// LayerNames 按字母顺序返回图层名
func (m *Map) LayerNames() []string {
	names := make([]string, 0, len(m.Layers))
	for name := range m.Layers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bounds 地图的像素范围
func (m *Map) Bounds() utils.Rect {
	return utils.Rect{Width: float64(m.Width) * m.TileSize, Height: float64(m.Height) * m.TileSize}
}

// NewGrid 按地图尺寸创建网格并标记可耕种格子
func (m *Map) NewGrid() *grid.Grid {
	g := grid.New(m.Height, m.Width)
	for _, c := range m.FarmableCells() {
		g.AddTag(c, grid.Farmable)
	}
	return g
}
