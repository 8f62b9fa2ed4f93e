package config

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// 配置文件在数据目录中的路径
const (
	GameConfigPath = "data/config.yaml"
	SpeciesPath    = "data/species.yaml"
	LayersPath     = "data/layers.yaml"
	MapPath        = "data/map.yaml"
)

// ScreenConfig 视口尺寸
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Point 二维坐标/偏移
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Speed         float64          `yaml:"speed"` // 像素/秒
	Width         float64          `yaml:"width"` // 无贴图时使用的尺寸
	Height        float64          `yaml:"height"`
	HitboxShrinkW float64          `yaml:"hitboxShrinkW"` // 碰撞盒相对贴图的收缩量
	HitboxShrinkH float64          `yaml:"hitboxShrinkH"`
	ToolOffsets   map[string]Point `yaml:"toolOffsets"`  // 按朝向的工具作用点偏移
	ToolCooldown  float64          `yaml:"toolCooldown"` // 使用工具冷却（秒）
	SwitchDelay   float64          `yaml:"switchDelay"`  // 切换工具/种子冷却（秒）
	Tools         []string         `yaml:"tools"`
	Seeds         []string         `yaml:"seeds"`
}

// InventoryConfig 初始背包
type InventoryConfig struct {
	Money int            `yaml:"money"`
	Items map[string]int `yaml:"items"`
	Seeds map[string]int `yaml:"seeds"`
}

// PriceConfig 商店价格
type PriceConfig struct {
	Sale     map[string]int `yaml:"sale"`
	Purchase map[string]int `yaml:"purchase"`
}

// TreeConfig 树木参数
type TreeConfig struct {
	Health         int                `yaml:"health"`
	HitCooldown    float64            `yaml:"hitCooldown"`    // 受击无敌时间（秒）
	FruitChance    int                `yaml:"fruitChance"`    // randint(0,10) < FruitChance 时生成果实
	ApplePositions map[string][]Point `yaml:"applePositions"` // 按树的尺寸（Small/Large）
}

// WeatherConfig 天气与天空
type WeatherConfig struct {
	RainChance      float64    `yaml:"rainChance"`      // 新一天下雨的概率
	DropLifetimeMin float64    `yaml:"dropLifetimeMin"` // 雨滴存活时间下限（秒）
	DropLifetimeMax float64    `yaml:"dropLifetimeMax"` // 雨滴存活时间上限（秒）
	DropSpeedMin    float64    `yaml:"dropSpeedMin"`    // 像素/秒
	DropSpeedMax    float64    `yaml:"dropSpeedMax"`    // 像素/秒
	DropDirection   Point      `yaml:"dropDirection"`   // 下落方向（未归一化）
	SkyNightColor   [3]float64 `yaml:"skyNightColor"`   // 夜晚色调
	SkyFadeSpeed    float64    `yaml:"skyFadeSpeed"`    // 每秒每通道递减量
	TransitionSpeed float64    `yaml:"transitionSpeed"` // 睡眠过渡每秒亮度变化
}

// EffectConfig 特效时长
type EffectConfig struct {
	HarvestFlash float64 `yaml:"harvestFlash"` // 收获闪光（秒）
	HitFlash     float64 `yaml:"hitFlash"`     // 砍树闪光（秒）
	WaterFPS     float64 `yaml:"waterFPS"`     // 水面动画帧率
}

// Config 游戏主配置
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	TileSize  float64         `yaml:"tileSize"` // 美术素材的格子尺寸，关卡坐标以地图为准
	Player    PlayerConfig    `yaml:"player"`
	Inventory InventoryConfig `yaml:"inventory"`
	Prices    PriceConfig     `yaml:"prices"`
	Trees     TreeConfig      `yaml:"trees"`
	Weather   WeatherConfig   `yaml:"weather"`
	Effects   EffectConfig    `yaml:"effects"`

	// 以下字段来自独立的配置文件
	Species SpeciesTable `yaml:"-"`
	Layers  *LayerOrder  `yaml:"-"`
}

// ParseGameConfig 解析主配置
func ParseGameConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("invalid tile size %v", c.TileSize)
	}
	if c.Weather.RainChance < 0 || c.Weather.RainChance > 1 {
		return fmt.Errorf("rainChance must be within [0,1], got %v", c.Weather.RainChance)
	}
	if c.Weather.DropLifetimeMax < c.Weather.DropLifetimeMin {
		return fmt.Errorf("dropLifetimeMax %v < dropLifetimeMin %v", c.Weather.DropLifetimeMax, c.Weather.DropLifetimeMin)
	}
	return nil
}

// Load 从文件系统加载主配置、品种表和图层顺序
//
// 查找顺序：override（可为 nil）-> base
// override 中缺失的文件回落到 base，便于只覆盖单个配置文件
func Load(base, override fs.FS) (*Config, error) {
	read := func(path string) ([]byte, error) {
		if override != nil {
			data, err := fs.ReadFile(override, path)
			if err == nil {
				return data, nil
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read %s: %w", path, err)
			}
		}
		data, err := fs.ReadFile(base, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return data, nil
	}

	data, err := read(GameConfigPath)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, err
	}

	if data, err = read(SpeciesPath); err != nil {
		return nil, err
	}
	if cfg.Species, err = ParseSpecies(data); err != nil {
		return nil, err
	}

	if data, err = read(LayersPath); err != nil {
		return nil, err
	}
	if cfg.Layers, err = ParseLayerOrder(data); err != nil {
		return nil, err
	}

	return cfg, nil
}
