// Package grid 实现农场地块的网格状态存储和自动拼接（autotile）算法
//
// 网格以 (row, col) 寻址，每个格子持有一组标记（Tag）。
// 行为只由标记是否存在决定，与格子本身无关。
package grid

import (
	"fmt"
	"slices"
)

// Tag 是格子上的布尔标记
type Tag string

const (
	// Farmable 可耕种（来自地图的 Farmable 图层）
	Farmable Tag = "F"
	// Tilled 已翻土
	Tilled Tag = "X"
	// Watered 已浇水
	Watered Tag = "W"
	// Planted 已播种
	Planted Tag = "P"
)

// Cell 网格坐标
type Cell struct {
	Row int
	Col int
}

// Neighbor 返回偏移后的坐标（不做边界检查）
func (c Cell) Neighbor(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// TagSet 小集合语义的标记集合（通常不超过 4 个成员）
type TagSet struct {
	tags []Tag
}

// Has 检查标记是否存在
func (s *TagSet) Has(t Tag) bool {
	return slices.Contains(s.tags, t)
}

// Add 添加标记，已存在时为空操作
func (s *TagSet) Add(t Tag) bool {
	if s.Has(t) {
		return false
	}
	s.tags = append(s.tags, t)
	return true
}

// Remove 移除标记，不存在时为空操作
func (s *TagSet) Remove(t Tag) bool {
	idx := slices.Index(s.tags, t)
	if idx < 0 {
		return false
	}
	s.tags = slices.Delete(s.tags, idx, idx+1)
	return true
}

// Len 返回标记数量
func (s *TagSet) Len() int {
	return len(s.tags)
}

// Tags 返回标记副本（插入顺序）
func (s *TagSet) Tags() []Tag {
	return slices.Clone(s.tags)
}

// String 以字母形式输出，如 "FXW"
func (s *TagSet) String() string {
	out := make([]byte, 0, len(s.tags))
	for _, t := range s.tags {
		out = append(out, string(t)...)
	}
	return string(out)
}

// prerequisite 返回添加某标记前必须存在的标记
func prerequisite(t Tag) (Tag, bool) {
	switch t {
	case Tilled:
		return Farmable, true
	case Watered, Planted:
		return Tilled, true
	}
	return "", false
}

// Grid 农场网格状态存储
// 由 Level 创建并以指针传递给各个系统，不存在全局实例
type Grid struct {
	rows  int
	cols  int
	cells [][]TagSet
}

// New 创建 rows x cols 的空网格
func New(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", rows, cols))
	}
	cells := make([][]TagSet, rows)
	for r := range cells {
		cells[r] = make([]TagSet, cols)
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// Rows 返回行数
func (g *Grid) Rows() int { return g.rows }

// Cols 返回列数
func (g *Grid) Cols() int { return g.cols }

// InBounds 检查坐标是否在网格范围内
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// TileAt 返回格子标记集合的引用
// 越界属于调用方的编程错误，直接 panic
func (g *Grid) TileAt(c Cell) *TagSet {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: cell %v out of bounds %dx%d", c, g.rows, g.cols))
	}
	return &g.cells[c.Row][c.Col]
}

// AddTag 为格子添加标记
// 前置标记缺失（如未翻土就浇水）或标记已存在时返回 false，格子保持不变
func (g *Grid) AddTag(c Cell, t Tag) bool {
	tile := g.TileAt(c)
	if pre, ok := prerequisite(t); ok && !tile.Has(pre) {
		return false
	}
	return tile.Add(t)
}

// RemoveTag 移除格子标记，不存在时为空操作
func (g *Grid) RemoveTag(c Cell, t Tag) {
	g.TileAt(c).Remove(t)
}

// HasTag 检查格子是否拥有标记
func (g *Grid) HasTag(c Cell, t Tag) bool {
	return g.TileAt(c).Has(t)
}

// Cells 按行优先顺序返回所有带有指定标记的格子
func (g *Grid) Cells(t Tag) []Cell {
	var out []Cell
	for r := 0; r < g.rows; r++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[r][col].Has(t) {
				out = append(out, Cell{Row: r, Col: col})
			}
		}
	}
	return out
}

// tilledAt 越界的邻居视为未翻土
func (g *Grid) tilledAt(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col].Has(Tilled)
}

// VariantAt 根据当前四邻居的翻土状态解析格子的拼接样式
func (g *Grid) VariantAt(c Cell) Variant {
	return Resolve(
		g.tilledAt(c.Neighbor(-1, 0)),
		g.tilledAt(c.Neighbor(0, 1)),
		g.tilledAt(c.Neighbor(0, -1)),
		g.tilledAt(c.Neighbor(1, 0)),
	)
}
