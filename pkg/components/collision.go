package components

import "github.com/decker502/farmsim/pkg/utils"

// CollisionComponent 碰撞盒（世界坐标）
// 拥有此组件的实体属于碰撞集合，玩家移动时会被阻挡
type CollisionComponent struct {
	Hitbox utils.Rect
}
