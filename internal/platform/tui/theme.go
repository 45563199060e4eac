package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// MenuTheme contains the visual styles of the menu screens.
type MenuTheme struct {
	Title       lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	ItemDone    lipgloss.Style
	Description lipgloss.Style
	Controls    lipgloss.Style
	Warning     lipgloss.Style
}

// DefaultMenuTheme returns the default visual theme.
func DefaultMenuTheme() MenuTheme {
	return MenuTheme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ItemDone:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

// MonochromeMenuTheme returns a theme without colors, for terminals that
// render 256-color codes poorly.
func MonochromeMenuTheme() MenuTheme {
	plain := lipgloss.NewStyle()
	return MenuTheme{
		Title:       plain.Bold(true),
		ItemNormal:  plain,
		ItemActive:  plain.Bold(true).Reverse(true),
		ItemDone:    plain,
		Description: plain.Faint(true),
		Controls:    plain.Faint(true),
		Warning:     plain.Underline(true),
	}
}
