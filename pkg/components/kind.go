package components

// EntityKind 实体种类（封闭枚举）
// 每种实体由 entities 包中对应的工厂函数创建
type EntityKind int

const (
	KindGround EntityKind = iota
	KindGeneric
	KindCollider
	KindMapWater
	KindWildFlower
	KindTree
	KindFruit
	KindInteraction
	KindSoilTile
	KindWaterTile
	KindPlant
	KindParticle
	KindRainDrop
	KindPlayer
)

var kindNames = [...]string{
	KindGround:      "ground",
	KindGeneric:     "generic",
	KindCollider:    "collider",
	KindMapWater:    "map-water",
	KindWildFlower:  "wild-flower",
	KindTree:        "tree",
	KindFruit:       "fruit",
	KindInteraction: "interaction",
	KindSoilTile:    "soil-tile",
	KindWaterTile:   "water-tile",
	KindPlant:       "plant",
	KindParticle:    "particle",
	KindRainDrop:    "rain-drop",
	KindPlayer:      "player",
}

func (k EntityKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// KindComponent 记录实体种类，便于调试和按种类统计
type KindComponent struct {
	Kind EntityKind
}
