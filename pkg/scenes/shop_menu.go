package scenes

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/farmsim/pkg/game"
)

// 商店菜单布局
const (
	menuWidth      = 400
	menuRowHeight  = 24
	menuPadding    = 12
	menuTextIndent = 20
)

var (
	menuBackground = color.RGBA{R: 40, G: 30, B: 20, A: 220}
	menuHighlight  = color.RGBA{R: 200, G: 160, B: 90, A: 160}
)

// ShopMenu 商店菜单：上下选择条目，空格买卖，Esc 关闭
type ShopMenu struct {
	inventory *game.Inventory
	index     int
	lastErr   error
	onClose   func()
	logger    *log.Logger
}

// NewShopMenu 创建商店菜单
// onClose 在玩家关闭菜单时调用
func NewShopMenu(inv *game.Inventory, onClose func()) *ShopMenu {
	return &ShopMenu{
		inventory: inv,
		onClose:   onClose,
		logger:    log.WithPrefix("ShopMenu"),
	}
}

// Index 当前选中的条目
func (m *ShopMenu) Index() int { return m.index }

// Selected 当前选中的条目
func (m *ShopMenu) Selected() game.ShopEntry {
	return m.inventory.ShopEntries()[m.index]
}

// Move 移动选择，到头后回绕
func (m *ShopMenu) Move(delta int) {
	n := len(m.inventory.ShopEntries())
	if n == 0 {
		return
	}
	m.index = ((m.index+delta)%n + n) % n
	m.lastErr = nil
}

// Confirm 买卖当前选中的条目
func (m *ShopMenu) Confirm() error {
	entries := m.inventory.ShopEntries()
	if len(entries) == 0 {
		return nil
	}
	entry := entries[m.index]
	m.lastErr = m.inventory.Trade(entry)
	if m.lastErr != nil {
		if !errors.Is(m.lastErr, game.ErrNothingToSell) && !errors.Is(m.lastErr, game.ErrNotEnoughMoney) {
			m.logger.Warn("trade failed", "entry", entry.Name, "err", m.lastErr)
		}
		return m.lastErr
	}
	m.logger.Debug("trade", "entry", entry.Name, "money", m.inventory.Money())
	return nil
}

// Close 关闭菜单
func (m *ShopMenu) Close() {
	m.lastErr = nil
	if m.onClose != nil {
		m.onClose()
	}
}

// Update 处理菜单按键
func (m *ShopMenu) Update(justPressed keyState) {
	switch {
	case anyOf(justPressed, keysUp):
		m.Move(-1)
	case anyOf(justPressed, keysDown):
		m.Move(1)
	case justPressed(keyUseTool):
		_ = m.Confirm()
	case justPressed(keyCloseMenu), justPressed(keyInteract):
		m.Close()
	}
}

// Lines 菜单每一行的文字
func (m *ShopMenu) Lines() []string {
	entries := m.inventory.ShopEntries()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		verb := "sell"
		if e.Kind == game.TradeBuy {
			verb = "buy "
		}
		lines = append(lines, fmt.Sprintf("%s %-8s x%-3d $%d", verb, e.Name, e.Amount, e.Price))
	}
	return lines
}

// Draw 在屏幕中央绘制菜单
func (m *ShopMenu) Draw(screen *ebiten.Image) {
	lines := m.Lines()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	height := len(lines)*menuRowHeight + 2*menuRowHeight + 2*menuPadding
	x := float32(sw-menuWidth) / 2
	y := float32(sh-height) / 2

	vector.DrawFilledRect(screen, x, y, menuWidth, float32(height), menuBackground, false)

	top := int(y) + menuPadding
	for i, line := range lines {
		rowY := top + i*menuRowHeight
		if i == m.index {
			vector.DrawFilledRect(screen, x+4, float32(rowY-4), menuWidth-8, menuRowHeight, menuHighlight, false)
		}
		ebitenutil.DebugPrintAt(screen, line, int(x)+menuTextIndent, rowY)
	}

	footer := fmt.Sprintf("money: $%d", m.inventory.Money())
	if m.lastErr != nil {
		footer += "  (" + m.lastErr.Error() + ")"
	}
	ebitenutil.DebugPrintAt(screen, footer, int(x)+menuTextIndent, top+len(lines)*menuRowHeight+menuRowHeight/2)
}
