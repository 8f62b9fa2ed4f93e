package components

// LifetimeComponent 限时存在的实体（收获/砍树闪光、雨滴）
// Elapsed 达到 Duration 后实体被删除
type LifetimeComponent struct {
	Duration float64 // 总时长(秒)
	Elapsed  float64 // 已存在时间(秒)
	FadeOut  bool    // 随时间淡出（闪光特效）
}

// Progress 返回已经过的比例，范围 [0, 1]
func (l *LifetimeComponent) Progress() float64 {
	if l.Duration <= 0 {
		return 1
	}
	p := l.Elapsed / l.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Expired 时长是否已用完
func (l *LifetimeComponent) Expired() bool {
	return l.Elapsed >= l.Duration
}
