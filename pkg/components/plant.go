package components

import (
	"math"

	"github.com/decker502/farmsim/pkg/grid"
)

// PlantComponent 一株作物
//
// Age 是唯一的生长状态，显示帧由 Frame() 从 Age 推导
type PlantComponent struct {
	Species     string
	Age         float64   // 连续年龄（>= 0）
	MaxAge      int       // 帧数 - 1
	GrowSpeed   float64   // 每次生长增加的年龄
	Harvestable bool      // Age 达到 MaxAge 后为 true
	Anchor      grid.Cell // 所在的土壤格子，用于查询浇水状态
	YOffset     float64   // 贴图底边相对土壤底边的偏移
}

// Frame 返回当前显示帧（年龄向下取整，限制在 [0, MaxAge]）
func (p *PlantComponent) Frame() int {
	frame := int(math.Floor(p.Age))
	if frame > p.MaxAge {
		frame = p.MaxAge
	}
	if frame < 0 {
		frame = 0
	}
	return frame
}

// Sprouted 发芽后（整数年龄 > 0）作物会挡路并参与主图层排序
func (p *PlantComponent) Sprouted() bool {
	return int(p.Age) > 0
}
