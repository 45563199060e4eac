package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mousetrap/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:  lipgloss.NewStyle(),
	core.ColorHidden:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	core.ColorRevealed: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorEdge:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMouse:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	core.ColorCursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
	core.ColorHint:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorWin:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorLose:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorWarning:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
