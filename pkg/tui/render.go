package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/grid"
	"github.com/decker502/farmsim/pkg/level"
)

// 格子字符
const (
	GlyphBlocked  = '.' // 不可耕种
	GlyphFarmable = ',' // 可耕种，未翻土
	GlyphTilled   = '=' // 翻过的干土
	GlyphWatered  = '~' // 浇过水的土
	GlyphRipe     = '*' // 成熟的作物
	GlyphTree     = 'T'
	GlyphStump    = 't'
	GlyphPlayer   = '@'
)

// glyphStyles 按字符着色；作物的帧数字统一用 plantStyle
var glyphStyles = map[rune]lipgloss.Style{
	GlyphBlocked:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	GlyphFarmable: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	GlyphTilled:   lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
	GlyphWatered:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	GlyphRipe:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	GlyphTree:     lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Bold(true),
	GlyphStump:    lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	GlyphPlayer:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
}

var (
	plantStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
)

// frameGlyph 作物帧号对应的字符（0-9，超过 9 显示 9）
func frameGlyph(frame int) rune {
	if frame > 9 {
		frame = 9
	}
	return rune('0' + frame)
}

// CellGlyph 返回格子本身（不含树和玩家）的字符
func CellGlyph(l *level.Level, c grid.Cell) rune {
	g := l.Grid()
	if id, ok := l.Plants().PlantAt(c); ok {
		plant, _ := ecs.GetComponent[*components.PlantComponent](l.EntityManager(), id)
		if plant.Harvestable {
			return GlyphRipe
		}
		return frameGlyph(plant.Frame())
	}
	switch {
	case g.HasTag(c, grid.Watered):
		return GlyphWatered
	case g.HasTag(c, grid.Tilled):
		return GlyphTilled
	case g.HasTag(c, grid.Farmable):
		return GlyphFarmable
	}
	return GlyphBlocked
}

// overlays 树（按贴图底边所在格子）和玩家的位置
func overlays(l *level.Level) map[grid.Cell]rune {
	em := l.EntityManager()
	ts := l.Map().TileSize
	out := make(map[grid.Cell]rune)

	for _, id := range l.Trees().Trees() {
		tree, _ := ecs.GetComponent[*components.TreeComponent](em, id)
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		x, bottom := pos.Rect().MidBottom()
		c := grid.WorldToCell(x, bottom-1, ts)
		if tree.Alive {
			out[c] = GlyphTree
		} else {
			out[c] = GlyphStump
		}
	}

	if hitbox := l.Player().Hitbox(); hitbox.Width > 0 {
		x, y := hitbox.Center()
		out[grid.WorldToCell(x, y, ts)] = GlyphPlayer
	}
	return out
}

// Glyphs 返回整张地图的字符矩阵（行优先）
func Glyphs(l *level.Level) [][]rune {
	g := l.Grid()
	over := overlays(l)
	rows := make([][]rune, g.Rows())
	for r := range rows {
		rows[r] = make([]rune, g.Cols())
		for col := range rows[r] {
			c := grid.Cell{Row: r, Col: col}
			if ch, ok := over[c]; ok {
				rows[r][col] = ch
				continue
			}
			rows[r][col] = CellGlyph(l, c)
		}
	}
	return rows
}

// styleKey 样式分组键：所有作物帧数字共用一个样式
func styleKey(ch rune) rune {
	if _, ok := glyphStyles[ch]; ok {
		return ch
	}
	return '0'
}

func styleFor(ch rune) lipgloss.Style {
	if s, ok := glyphStyles[ch]; ok {
		return s
	}
	return plantStyle
}

// RenderGrid 把地图渲染为带颜色的文本
// cursor 为 nil 时不高亮任何格子
func RenderGrid(l *level.Level, cursor *grid.Cell) string {
	var sb strings.Builder
	for r, row := range Glyphs(l) {
		if r > 0 {
			sb.WriteRune('\n')
		}
		// 相同样式的连续字符合并渲染，减少转义序列；光标格单独渲染
		col := 0
		for col < len(row) {
			if isCursor(cursor, r, col) {
				sb.WriteString(cursorStyle.Render(string(row[col])))
				col++
				continue
			}
			start := col
			key := styleKey(row[start])
			for col < len(row) && styleKey(row[col]) == key && !isCursor(cursor, r, col) {
				col++
			}
			sb.WriteString(styleFor(row[start]).Render(string(row[start:col])))
		}
	}
	return sb.String()
}

func isCursor(cursor *grid.Cell, row, col int) bool {
	return cursor != nil && cursor.Row == row && cursor.Col == col
}
