// Package tui 提供农场的终端界面
//
// 终端版没有移动的角色：光标选中格子，按键直接对该格子使用工具。
// 世界仍按固定频率推进，树的受击冷却和雨滴等计时照常运行。
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/farmsim/pkg/game"
	"github.com/decker502/farmsim/pkg/grid"
	"github.com/decker502/farmsim/pkg/level"
	"github.com/decker502/farmsim/pkg/systems"
)

// TickRate 每秒推进世界的次数
const TickRate = 10

// TickMsg is sent to trigger a world tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	shopStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginLeft(2)
	selectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
)

// Model is the Bubble Tea model for the farm.
type Model struct {
	level     *level.Level
	keys      KeyMap
	help      help.Model
	cursor    grid.Cell
	seeds     []string
	seedIndex int
	shopIndex int
	message   string
	quitting  bool
}

// NewModel 创建终端界面模型，光标从玩家所在格子开始
func NewModel(l *level.Level) Model {
	m := Model{
		level: l,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		seeds: l.Config().Player.Seeds,
	}
	if hb := l.Player().Hitbox(); hb.Width > 0 {
		x, y := hb.Center()
		m.cursor = m.clamp(grid.WorldToCell(x, y, l.Map().TileSize))
	}
	return m
}

// Cursor 当前光标所在格子
func (m Model) Cursor() grid.Cell { return m.cursor }

// Seed 当前选中的种子
func (m Model) Seed() string {
	if len(m.seeds) == 0 {
		return ""
	}
	return m.seeds[m.seedIndex]
}

// Message 最近一次操作的提示
func (m Model) Message() string { return m.message }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.level.Update(1.0/TickRate, systems.PlayerInput{})
		return m, tickCmd(TickRate)
	}
	return m, nil
}

func (m Model) clamp(c grid.Cell) grid.Cell {
	g := m.level.Grid()
	c.Row = max(0, min(c.Row, g.Rows()-1))
	c.Col = max(0, min(c.Col, g.Cols()-1))
	return c
}

// target 光标格子中心的世界坐标
func (m Model) target() (x, y float64) {
	return grid.CellCenter(m.cursor, m.level.Map().TileSize)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if m.level.ShopActive() {
		return m.handleShopKey(msg), nil
	}

	l := m.level
	x, y := m.target()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = m.clamp(m.cursor.Neighbor(-1, 0))
	case key.Matches(msg, m.keys.Down):
		m.cursor = m.clamp(m.cursor.Neighbor(1, 0))
	case key.Matches(msg, m.keys.Left):
		m.cursor = m.clamp(m.cursor.Neighbor(0, -1))
	case key.Matches(msg, m.keys.Right):
		m.cursor = m.clamp(m.cursor.Neighbor(0, 1))

	case key.Matches(msg, m.keys.Till):
		if l.Soil().Till(x, y) {
			m.message = fmt.Sprintf("tilled %v", m.cursor)
		} else {
			m.message = "can't till here"
		}
	case key.Matches(msg, m.keys.Water):
		if l.Soil().Water(x, y) {
			m.message = fmt.Sprintf("watered %v", m.cursor)
		} else {
			m.message = "nothing to water"
		}
	case key.Matches(msg, m.keys.Plant):
		if l.PlantSeed(m.Seed(), x, y) {
			m.message = fmt.Sprintf("planted %s", m.Seed())
		} else {
			m.message = fmt.Sprintf("can't plant %s here", m.Seed())
		}
	case key.Matches(msg, m.keys.NextSeed):
		if len(m.seeds) > 0 {
			m.seedIndex = (m.seedIndex + 1) % len(m.seeds)
			m.message = "seed: " + m.Seed()
		}
	case key.Matches(msg, m.keys.Harvest):
		if l.HarvestAt(m.cursor) {
			m.message = "harvested"
		} else {
			m.message = "nothing ripe here"
		}
	case key.Matches(msg, m.keys.Chop):
		wood, apples := l.Inventory().Item(level.ItemWood), l.Inventory().Item(level.ItemApple)
		l.UseTool(level.ToolAxe, x, y)
		m.message = fmt.Sprintf("chop: +%d wood, +%d apple", l.Inventory().Item(level.ItemWood)-wood, l.Inventory().Item(level.ItemApple)-apples)
	case key.Matches(msg, m.keys.Sleep):
		l.ResetDay()
		m.message = fmt.Sprintf("good morning, day %d", l.Day())
	case key.Matches(msg, m.keys.Shop):
		l.ToggleShop()
		m.shopIndex = 0
		m.message = ""
	}
	return m, nil
}

func (m Model) handleShopKey(msg tea.KeyMsg) Model {
	inv := m.level.Inventory()
	entries := inv.ShopEntries()
	n := len(entries)

	switch {
	case key.Matches(msg, m.keys.Up) && n > 0:
		m.shopIndex = (m.shopIndex - 1 + n) % n
	case key.Matches(msg, m.keys.Down) && n > 0:
		m.shopIndex = (m.shopIndex + 1) % n
	case key.Matches(msg, m.keys.Confirm) && n > 0:
		entry := entries[m.shopIndex]
		switch err := inv.Trade(entry); {
		case err == nil && entry.Kind == game.TradeSell:
			m.message = fmt.Sprintf("sold %s for $%d", entry.Name, entry.Price)
		case err == nil:
			m.message = fmt.Sprintf("bought %s seed for $%d", entry.Name, entry.Price)
		case errors.Is(err, game.ErrNothingToSell), errors.Is(err, game.ErrNotEnoughMoney):
			m.message = err.Error()
		default:
			m.message = "trade failed: " + err.Error()
		}
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Shop):
		m.level.ToggleShop()
	}
	return m
}

// View renders the farm.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	l := m.level
	inv := l.Inventory()

	weather := "sunny"
	if l.Raining() {
		weather = "rain"
	}
	header := titleStyle.Render(fmt.Sprintf("Day %d (%s)  $%d  seed: %s x%d", l.Day(), weather, inv.Money(), m.Seed(), inv.Seed(m.Seed())))
	cell := fmt.Sprintf("cell %v [%s]", m.cursor, l.Grid().TileAt(m.cursor).String())

	body := RenderGrid(l, &m.cursor)
	if l.ShopActive() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, shopStyle.Render(m.shopView()))
	}

	var sb strings.Builder
	sb.WriteString(header + "  " + messageStyle.Render(cell) + "\n\n")
	sb.WriteString(body + "\n\n")
	if m.message != "" {
		sb.WriteString(messageStyle.Render(m.message) + "\n")
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

func (m Model) shopView() string {
	lines := []string{titleStyle.Render("Shop")}
	for i, e := range m.level.Inventory().ShopEntries() {
		verb := "sell"
		if e.Kind == game.TradeBuy {
			verb = "buy "
		}
		line := fmt.Sprintf("%s %-7s x%-3d $%d", verb, e.Name, e.Amount, e.Price)
		if i == m.shopIndex {
			line = selectStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
