// Package scenes 实现 ebiten 窗口中的游戏场景
package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/farmsim/pkg/game"
	"github.com/decker502/farmsim/pkg/level"
)

// FarmScene 农场场景：驱动关卡，绘制世界、商店菜单和提示信息
type FarmScene struct {
	level    *level.Level
	settings *game.SettingsManager
	menu     *ShopMenu
	logger   *log.Logger
}

// NewFarmScene 创建农场场景
// settings 可以为 nil，此时使用默认显示设置且不保存
func NewFarmScene(l *level.Level, settings *game.SettingsManager) *FarmScene {
	s := &FarmScene{
		level:    l,
		settings: settings,
		logger:   log.WithPrefix("FarmScene"),
	}
	s.menu = NewShopMenu(l.Inventory(), l.ToggleShop)
	return s
}

// Level 返回场景驱动的关卡
func (s *FarmScene) Level() *level.Level { return s.level }

func (s *FarmScene) displaySettings() *game.GameSettings {
	if s.settings == nil {
		return game.DefaultSettings()
	}
	return s.settings.GetSettings()
}

// Update 读取输入并推进关卡
func (s *FarmScene) Update(deltaTime float64) {
	if s.level.ShopActive() {
		s.menu.Update(inpututil.IsKeyJustPressed)
	}
	s.handleDisplayKeys(inpututil.IsKeyJustPressed)
	s.level.Update(deltaTime, pollInput())
}

// handleDisplayKeys 切换网格和提示的显示，并保存设置
func (s *FarmScene) handleDisplayKeys(justPressed keyState) {
	if s.settings == nil {
		return
	}
	changed := false
	if justPressed(keyToggleGrid) {
		s.settings.ToggleGrid()
		changed = true
	}
	if justPressed(keyToggleHints) {
		s.settings.ToggleOverlay()
		changed = true
	}
	if changed {
		if err := s.settings.Save(); err != nil {
			s.logger.Warn("failed to save settings", "err", err)
		}
	}
}

// Draw 绘制世界、天空、过渡、提示和商店菜单
func (s *FarmScene) Draw(screen *ebiten.Image) {
	settings := s.displaySettings()
	s.level.Draw(screen, settings.ShowGrid)
	if settings.ShowOverlay {
		ebitenutil.DebugPrintAt(screen, s.StatusLine(), 8, 8)
	}
	if s.level.ShopActive() {
		s.menu.Draw(screen)
	}
}

// StatusLine 状态栏文字
func (s *FarmScene) StatusLine() string {
	l := s.level
	inv := l.Inventory()
	seed := l.Player().CurrentSeed()

	var b strings.Builder
	fmt.Fprintf(&b, "day %d", l.Day())
	if l.Raining() {
		b.WriteString(" (rain)")
	}
	fmt.Fprintf(&b, "  tool: %s  seed: %s x%d  money: $%d", l.Player().CurrentTool(), seed, inv.Seed(seed), inv.Money())
	return b.String()
}
