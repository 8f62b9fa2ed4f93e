package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// multiplyBlend 正片叠底：目标色 × 源色
var multiplyBlend = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
	BlendFactorDestinationRGB:   ebiten.BlendFactorZero,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// drawMultiply 用纯色以正片叠底方式覆盖整个屏幕
func drawMultiply(screen *ebiten.Image, overlay **ebiten.Image, c color.Color) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if *overlay == nil || (*overlay).Bounds().Dx() != w || (*overlay).Bounds().Dy() != h {
		*overlay = ebiten.NewImage(w, h)
	}
	(*overlay).Fill(c)
	screen.DrawImage(*overlay, &ebiten.DrawImageOptions{Blend: multiplyBlend})
}

// SkySystem 一天中的天色变化
// 色调从白色逐渐变暗到夜晚色，新的一天重置为白色
type SkySystem struct {
	current [3]float64
	night   [3]float64
	speed   float64
	overlay *ebiten.Image
}

// NewSkySystem 创建天空系统
// speed 为每秒每个通道递减的量
func NewSkySystem(night [3]float64, speed float64) *SkySystem {
	s := &SkySystem{night: night, speed: speed}
	s.Reset()
	return s
}

// Reset 恢复白天
func (s *SkySystem) Reset() {
	s.current = [3]float64{255, 255, 255}
}

// Update 每个通道向夜晚色靠近
func (s *SkySystem) Update(deltaTime float64) {
	for i := range s.current {
		if s.current[i] > s.night[i] {
			s.current[i] -= s.speed * deltaTime
			if s.current[i] < s.night[i] {
				s.current[i] = s.night[i]
			}
		}
	}
}

// Color 当前色调
func (s *SkySystem) Color() color.RGBA {
	return color.RGBA{uint8(s.current[0]), uint8(s.current[1]), uint8(s.current[2]), 255}
}

// Draw 以正片叠底方式绘制色调
func (s *SkySystem) Draw(screen *ebiten.Image) {
	drawMultiply(screen, &s.overlay, s.Color())
}
