package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TransitionSystem 睡觉时的黑屏过渡
//
// 亮度从 255 降到 0 时调用 onDark（开始新的一天），
// 再升回 255 时调用 onDone（玩家醒来）并结束过渡。
type TransitionSystem struct {
	brightness float64
	direction  float64
	speed      float64
	active     bool
	onDark     func()
	onDone     func()
	overlay    *ebiten.Image
}

// NewTransitionSystem 创建过渡系统
// speed 为每秒亮度变化量
func NewTransitionSystem(speed float64, onDark, onDone func()) *TransitionSystem {
	return &TransitionSystem{
		brightness: 255,
		speed:      speed,
		onDark:     onDark,
		onDone:     onDone,
	}
}

// Start 开始过渡（进行中时忽略）
func (s *TransitionSystem) Start() {
	if s.active {
		return
	}
	s.active = true
	s.brightness = 255
	s.direction = -1
}

// Active 过渡是否进行中
func (s *TransitionSystem) Active() bool {
	return s.active
}

// Brightness 当前亮度（0-255）
func (s *TransitionSystem) Brightness() float64 {
	return s.brightness
}

// Update 推进过渡
func (s *TransitionSystem) Update(deltaTime float64) {
	if !s.active {
		return
	}

	s.brightness += s.direction * s.speed * deltaTime
	if s.direction < 0 && s.brightness <= 0 {
		s.brightness = 0
		s.direction = 1
		if s.onDark != nil {
			s.onDark()
		}
		return
	}
	if s.direction > 0 && s.brightness >= 255 {
		s.brightness = 255
		s.active = false
		if s.onDone != nil {
			s.onDone()
		}
	}
}

// Draw 绘制过渡遮罩
func (s *TransitionSystem) Draw(screen *ebiten.Image) {
	if !s.active {
		return
	}
	b := uint8(s.brightness)
	drawMultiply(screen, &s.overlay, color.RGBA{b, b, b, 255})
}
