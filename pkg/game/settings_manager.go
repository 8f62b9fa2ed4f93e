package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 显示设置
// 只保存显示相关的偏好，不保存任何游戏进度
type GameSettings struct {
	Fullscreen  bool    `yaml:"fullscreen"`  // 启动时是否全屏
	WindowScale float64 `yaml:"windowScale"` // 窗口缩放 0.5 ~ 2.0
	ShowGrid    bool    `yaml:"showGrid"`    // 是否显示可耕种格子轮廓
	ShowOverlay bool    `yaml:"showOverlay"` // 是否显示工具/种子提示
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		Fullscreen:  false,
		WindowScale: 1.0,
		ShowGrid:    false,
		ShowOverlay: true,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings
	logger       *log.Logger
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "display"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，使用默认设置并记录警告。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		logger:       log.WithPrefix("SettingsManager"),
	}

	if err := sm.Load(); err != nil {
		sm.logger.Warn("failed to load settings, using defaults", "err", err)
	}
	return sm
}

// Load 从 gdata 加载设置
// gdataManager 为 nil 或没有保存过设置时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.WindowScale = clampScale(loaded.WindowScale)

	sm.settings = loaded
	sm.logger.Debug("settings loaded")
	return nil
}

// Save 保存设置到 gdata
// gdataManager 为 nil 时不做任何事（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.logger.Debug("settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetWindowScale 设置窗口缩放，超出范围的值会被限制
func (sm *SettingsManager) SetWindowScale(scale float64) {
	sm.settings.WindowScale = clampScale(scale)
}

// ToggleGrid 切换格子轮廓显示
func (sm *SettingsManager) ToggleGrid() bool {
	sm.settings.ShowGrid = !sm.settings.ShowGrid
	return sm.settings.ShowGrid
}

// ToggleOverlay 切换工具提示显示
func (sm *SettingsManager) ToggleOverlay() bool {
	sm.settings.ShowOverlay = !sm.settings.ShowOverlay
	return sm.settings.ShowOverlay
}

func clampScale(scale float64) float64 {
	if scale < 0.5 {
		return 0.5
	}
	if scale > 2.0 {
		return 2.0
	}
	return scale
}
