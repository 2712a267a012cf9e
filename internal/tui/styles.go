package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f0944a"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d05050"))

	activeBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4ade80")).
				Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f0944a")).
				Bold(true)

	adminTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c084e0")).
			Bold(true)
)

// hpStyle colors a current/max HP readout by how hurt the character is.
func hpStyle(current, max int32) lipgloss.Style {
	if max <= 0 {
		return dimStyle
	}
	ratio := float64(current) / float64(max)
	switch {
	case current <= 0:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#b45555")).Bold(true)
	case ratio <= 0.25:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#e06060"))
	case ratio <= 0.5:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#f0944a"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
	}
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// truncateToHeight trims body to at most h lines.
func truncateToHeight(body string, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(body, "\n")
	if len(lines) <= h {
		return body
	}
	return strings.Join(lines[:h], "\n")
}
