package utils

// Rect 世界坐标系中的轴对齐矩形（左上角 + 尺寸）
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRectMidBottom 以底边中点定位矩形
func NewRectMidBottom(midX, bottom, w, h float64) Rect {
	return Rect{X: midX - w/2, Y: bottom - h, Width: w, Height: h}
}

// Center 返回矩形中心
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// CenterY 返回中心Y坐标（渲染排序用）
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// MidBottom 返回底边中点
func (r Rect) MidBottom() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height
}

// Right 右边界
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Inflate 以中心为基准扩展（负值收缩）矩形
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{
		X:      r.X - dw/2,
		Y:      r.Y - dh/2,
		Width:  r.Width + dw,
		Height: r.Height + dh,
	}
}

// Translate 平移矩形
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Contains 检查点是否在矩形内（左闭右开）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects 检查两个矩形是否相交
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}
