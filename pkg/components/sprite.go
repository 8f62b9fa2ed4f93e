package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// Image 为 nil 时实体仍参与排序，但不绘制任何内容
type SpriteComponent struct {
	Image *ebiten.Image
	// Flash 以纯白剪影绘制（收获、砍树特效）
	Flash bool
	// Fade 淡出程度，0 为不透明，1 为完全透明
	Fade float64
}
