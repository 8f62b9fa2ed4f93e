package grid

import (
	"math"

	"github.com/decker502/farmsim/pkg/utils"
)

// WorldToCell 将世界坐标转换为网格坐标（不做边界检查）
func WorldToCell(x, y, tileSize float64) Cell {
	return Cell{
		Row: int(math.Floor(y / tileSize)),
		Col: int(math.Floor(x / tileSize)),
	}
}

// CellOrigin 返回格子左上角的世界坐标
func CellOrigin(c Cell, tileSize float64) (x, y float64) {
	return float64(c.Col) * tileSize, float64(c.Row) * tileSize
}

// CellRect 返回格子覆盖的世界矩形
func CellRect(c Cell, tileSize float64) utils.Rect {
	x, y := CellOrigin(c, tileSize)
	return utils.Rect{X: x, Y: y, Width: tileSize, Height: tileSize}
}

// CellCenter 返回格子中心的世界坐标
func CellCenter(c Cell, tileSize float64) (x, y float64) {
	x, y = CellOrigin(c, tileSize)
	return x + tileSize/2, y + tileSize/2
}

// CellAt 返回世界坐标所在的格子；坐标落在网格之外时 ok 为 false
func (g *Grid) CellAt(x, y, tileSize float64) (c Cell, ok bool) {
	c = WorldToCell(x, y, tileSize)
	return c, g.InBounds(c)
}
