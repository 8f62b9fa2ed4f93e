package components

import "github.com/decker502/farmsim/pkg/ecs"

// TreeComponent 可砍伐的树
// 拥有此组件的实体属于树木集合
type TreeComponent struct {
	Size     string // "Small" 或 "Large"，决定果实位置表和树桩贴图
	Health   int
	Alive    bool
	Fruits   []ecs.EntityID // 当前挂在树上的苹果
	HitTimer Timer          // 受击后的无敌时间
}

// FruitComponent 挂在树上的苹果
type FruitComponent struct {
	Tree ecs.EntityID
}
