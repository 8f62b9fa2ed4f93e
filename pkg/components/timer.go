package components

// Timer 通用冷却计时器
// 用于处理需要时间延迟的行为（如工具冷却、树木受击无敌）
type Timer struct {
	Duration float64 // 目标时间（秒）
	Elapsed  float64 // 当前已过时间（秒）
	Active   bool
}

// Activate 开始计时
func (t *Timer) Activate() {
	t.Active = true
	t.Elapsed = 0
}

// Update 推进计时，到期时自动停止并返回 true
func (t *Timer) Update(dt float64) bool {
	if !t.Active {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Active = false
		t.Elapsed = 0
		return true
	}
	return false
}
