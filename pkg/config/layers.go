package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Layer 渲染深度图层
// 图层之间的先后顺序不写死在代码中，由 layers.yaml 的列表顺序决定
type Layer string

const (
	LayerWater       Layer = "water"
	LayerGround      Layer = "ground"
	LayerSoil        Layer = "soil"
	LayerSoilWater   Layer = "soil_water"
	LayerRainFloor   Layer = "rain_floor"
	LayerHouseBottom Layer = "house_bottom"
	LayerGroundPlant Layer = "ground_plant"
	LayerMain        Layer = "main"
	LayerHouseTop    Layer = "house_top"
	LayerFruit       Layer = "fruit"
	LayerRainDrops   Layer = "rain_drops"
)

// AllLayers 全部已知图层
var AllLayers = []Layer{
	LayerWater, LayerGround, LayerSoil, LayerSoilWater, LayerRainFloor,
	LayerHouseBottom, LayerGroundPlant, LayerMain, LayerHouseTop,
	LayerFruit, LayerRainDrops,
}

// LayerOrder 图层到排序序号的映射（序号越小越先绘制）
type LayerOrder struct {
	ranks map[Layer]int
}

// NewLayerOrder 按列表顺序创建图层顺序
// 列表必须恰好包含每个已知图层一次
func NewLayerOrder(layers []Layer) (*LayerOrder, error) {
	known := make(map[Layer]bool, len(AllLayers))
	for _, l := range AllLayers {
		known[l] = true
	}

	ranks := make(map[Layer]int, len(layers))
	for i, l := range layers {
		if !known[l] {
			return nil, fmt.Errorf("unknown layer %q", l)
		}
		if _, dup := ranks[l]; dup {
			return nil, fmt.Errorf("layer %q listed twice", l)
		}
		ranks[l] = i
	}
	if len(ranks) != len(AllLayers) {
		return nil, fmt.Errorf("layer order lists %d layers, want %d", len(ranks), len(AllLayers))
	}
	return &LayerOrder{ranks: ranks}, nil
}

// DefaultLayerOrder 返回内置的默认图层顺序
func DefaultLayerOrder() *LayerOrder {
	order, err := NewLayerOrder(AllLayers)
	if err != nil {
		panic(err)
	}
	return order
}

// Rank 返回图层序号
// 未知图层属于编程错误
func (o *LayerOrder) Rank(l Layer) int {
	rank, ok := o.ranks[l]
	if !ok {
		panic(fmt.Sprintf("config: layer %q has no rank", l))
	}
	return rank
}

// Layers 按序号返回图层列表
func (o *LayerOrder) Layers() []Layer {
	out := make([]Layer, len(o.ranks))
	for l, rank := range o.ranks {
		out[rank] = l
	}
	return out
}

type layersFile struct {
	Layers []Layer `yaml:"layers"`
}

// ParseLayerOrder 从 YAML 数据解析图层顺序
func ParseLayerOrder(data []byte) (*LayerOrder, error) {
	var f layersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse layers YAML: %w", err)
	}
	return NewLayerOrder(f.Layers)
}
