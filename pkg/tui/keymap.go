package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap 终端版的按键绑定
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Till     key.Binding
	Water    key.Binding
	Plant    key.Binding
	NextSeed key.Binding
	Harvest  key.Binding
	Chop     key.Binding
	Sleep    key.Binding
	Shop     key.Binding
	Confirm  key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Till, k.Water, k.Plant, k.Harvest, k.Sleep, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Till, k.Water, k.Plant, k.NextSeed},
		{k.Harvest, k.Chop, k.Sleep, k.Shop},
		{k.Confirm, k.Back, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Till: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "till"),
		),
		Water: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "water"),
		),
		Plant: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "plant"),
		),
		NextSeed: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "next seed"),
		),
		Harvest: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "harvest"),
		),
		Chop: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "chop"),
		),
		Sleep: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "sleep"),
		),
		Shop: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "shop"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "trade"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close shop"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
