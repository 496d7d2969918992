package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the menus and score screens.
type Theme struct {
	// Title screen
	MenuTitle       lipgloss.Style
	MenuSubtitle    lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuValue       lipgloss.Style
	MenuDescription lipgloss.Style

	// Score and save tables
	TableTitle  lipgloss.Style
	PanelBorder lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	EmptyText   lipgloss.Style
	HelpText    lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // Star yellow
		MenuSubtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),             // Bright cyan
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true), // Cosmo green
		MenuValue:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")),           // Hot pink
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		TableTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		PanelBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
		EmptyText:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
		HelpText:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a theme without colors, for NO_COLOR terminals.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	plain := lipgloss.NewStyle()
	theme.MenuTitle = plain.Bold(true)
	theme.MenuSubtitle = plain
	theme.MenuItemNormal = plain
	theme.MenuItemActive = plain.Bold(true).Underline(true)
	theme.MenuValue = plain
	theme.MenuDescription = plain.Faint(true)
	theme.TableTitle = plain.Bold(true)
	theme.TabActive = plain.Bold(true).Reverse(true).Padding(0, 1)
	theme.TabInactive = plain.Padding(0, 1)
	return theme
}

// Global theme variable (can be changed at startup)
var theme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return theme
}
