package components

import "github.com/decker502/farmsim/pkg/utils"

// Direction 玩家朝向
type Direction string

const (
	FacingUp    Direction = "up"
	FacingDown  Direction = "down"
	FacingLeft  Direction = "left"
	FacingRight Direction = "right"
)

// PlayerComponent 玩家状态
//
// 位置由 PositionComponent 表示（贴图矩形）。玩家不属于碰撞集合，
// 碰撞盒单独保存在 Hitbox 中。
type PlayerComponent struct {
	PosX, PosY float64 // 贴图中心的浮点位置
	Hitbox     utils.Rect
	DirX, DirY float64 // 当前输入方向（未归一化）
	Facing     Direction
	Speed      float64

	ToolIndex int
	SeedIndex int

	// 各类冷却计时器
	ToolUse    Timer
	ToolSwitch Timer
	SeedUse    Timer
	SeedSwitch Timer

	// 正在使用的工具/种子，ToolUse/SeedUse 计时结束时生效
	PendingTool string
	PendingSeed string

	Sleeping bool
}

// Busy 工具使用动作进行中时不能移动
func (p *PlayerComponent) Busy() bool {
	return p.ToolUse.Active
}
