package components

import "github.com/decker502/farmsim/pkg/config"

// DepthComponent 渲染图层
// 拥有 PositionComponent + DepthComponent 的实体参与场景排序绘制
type DepthComponent struct {
	Layer config.Layer
}
