package entities

import (
	"fmt"
	"strings"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/grid"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageSource 按键名提供贴图
// 找不到贴图时返回 nil，实体仍会创建，只是不绘制
type ImageSource interface {
	Image(key string) *ebiten.Image
}

// NoImages 不提供任何贴图（无界面模拟和测试使用）
type NoImages struct{}

// Image 总是返回 nil
func (NoImages) Image(string) *ebiten.Image { return nil }

// 贴图键名
// 键名与 assets/graphics 下的相对路径一致（不含扩展名）

// SoilImageKey 土壤变体贴图
func SoilImageKey(v grid.Variant) string {
	return "soil/" + v.AssetKey()
}

// SoilWaterImageKey 湿润土壤贴图
func SoilWaterImageKey(style int) string {
	return fmt.Sprintf("soil_water/%d", style)
}

// PlantImageKey 作物生长帧贴图
func PlantImageKey(species string, frame int) string {
	return fmt.Sprintf("fruit/%s/%d", species, frame)
}

// TreeImageKey 树贴图（size 为 Small/Large）
func TreeImageKey(size string) string {
	return "objects/tree_" + strings.ToLower(size)
}

// StumpImageKey 树桩贴图
func StumpImageKey(size string) string {
	return "stumps/" + strings.ToLower(size)
}

// AppleImageKey 苹果贴图
const AppleImageKey = "fruit/apple"

// MapWaterImageKey 地图水面动画帧
func MapWaterImageKey(frame int) string {
	return fmt.Sprintf("water/%d", frame)
}

// RainDropImageKey 雨滴贴图
func RainDropImageKey(style int) string {
	return fmt.Sprintf("rain/drops/%d", style)
}

// RainFloorImageKey 雨滴落地贴图
func RainFloorImageKey(style int) string {
	return fmt.Sprintf("rain/floor/%d", style)
}

// PlayerImageKey 玩家贴图
func PlayerImageKey(facing components.Direction) string {
	return "character/" + string(facing) + "_idle/0"
}

// 水渍和雨滴贴图的样式数量
const (
	SoilWaterStyles = 3
	RainDropStyles  = 3
	RainFloorStyles = 3
	MapWaterFrames  = 4
)
