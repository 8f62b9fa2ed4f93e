package components

// MovementComponent 匀速直线运动（雨滴）
// PosX/PosY 保存浮点位置，PositionComponent 取整后用于绘制
type MovementComponent struct {
	PosX, PosY float64
	DirX, DirY float64
	Speed      float64 // 像素/秒
}
