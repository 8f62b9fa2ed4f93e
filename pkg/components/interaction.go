package components

// InteractionComponent 可交互区域（床、商人）
// 拥有此组件的实体属于交互集合
type InteractionComponent struct {
	Name string
}
