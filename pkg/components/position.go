package components

import "github.com/decker502/farmsim/pkg/utils"

// PositionComponent 实体在世界坐标中的矩形（左上角 + 尺寸）
// 渲染排序使用矩形中心的Y坐标
type PositionComponent struct {
	X, Y          float64
	Width, Height float64
}

// Rect 返回实体矩形
func (p *PositionComponent) Rect() utils.Rect {
	return utils.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// SetRect 用矩形更新位置和尺寸
func (p *PositionComponent) SetRect(r utils.Rect) {
	p.X, p.Y, p.Width, p.Height = r.X, r.Y, r.Width, r.Height
}

// Center 返回矩形中心
func (p *PositionComponent) Center() (x, y float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}
