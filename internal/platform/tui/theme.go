package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/toddATavail/tumblesolve/internal/board"
)

// Theme contains all configurable visual styles for the hint view.
type Theme struct {
	// Cell styles
	EmptyCell    lipgloss.Style
	Survivor     lipgloss.Style
	ToggleOpen   lipgloss.Style
	ToggleClosed lipgloss.Style
	Highlight    lipgloss.Style // Applied on top of the cell's own style

	// Stone palette; a color rune picks a stable entry
	Palette []lipgloss.Style

	// Chrome styles
	Title      lipgloss.Style
	Status     lipgloss.Style
	StatusDim  lipgloss.Style
	Banner     lipgloss.Style
	Coordinate lipgloss.Style
	Help       lipgloss.Style
	Notice     lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		EmptyCell:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray
		Survivor:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // Medium gray
		ToggleOpen:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ToggleClosed: lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Dimmed while impassable
		Highlight:    lipgloss.NewStyle().Bold(true).Reverse(true),

		Palette: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("205")), // Hot pink
			lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // Bright cyan
			lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Lime green
			lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // Bright yellow
			lipgloss.NewStyle().Foreground(lipgloss.Color("135")), // Medium purple
			lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // Orange
			lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // Sky blue
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // Red
		},

		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		StatusDim:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Banner:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Coordinate: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}

// StoneStyle returns the palette style for a stone color. The mapping
// depends only on the rune, so a color keeps its look across frames.
func (t Theme) StoneStyle(c board.Color) lipgloss.Style {
	if len(t.Palette) == 0 {
		return lipgloss.NewStyle()
	}
	return t.Palette[int(c)%len(t.Palette)]
}
