package components

import "github.com/hajimehoshi/ebiten/v2"

// AnimationComponent 循环帧动画（地图上的水面）
type AnimationComponent struct {
	Frames     []*ebiten.Image // 动画的所有帧图片
	FPS        float64         // 每秒播放帧数
	FrameIndex float64         // 连续帧索引，取整后用于显示
}
