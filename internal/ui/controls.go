package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderControls draws the navigation chrome: arrows, pagination dots, and
// the play/pause indicator, aligned per the navigation position setting.
// Returns "" when navigation is disabled or auto-hidden.
func (m Model) renderControls(count, current int) string {
	nav := m.store.Settings().Navigation
	if !nav.Enabled || !m.controlsShown {
		return ""
	}

	var parts []string
	if nav.Arrows {
		parts = append(parts, m.styles.Control.Render("‹"))
	}
	if nav.Pagination {
		parts = append(parts, m.renderDots(count, current))
	}
	if nav.Arrows {
		parts = append(parts, m.styles.Control.Render("›"))
	}
	if nav.PlayPause {
		symbol := "▶"
		if m.car.Playing() {
			symbol = "⏸"
		}
		parts = append(parts, m.styles.Control.Render(symbol))
	}
	if len(parts) == 0 {
		return ""
	}

	row := strings.Join(parts, "  ")
	return lipgloss.PlaceHorizontal(m.width, positionAlign(nav.Position), row)
}

func (m Model) renderDots(count, current int) string {
	active := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.DotActive))
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.DotInactive))
	dots := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if i == current {
			dots = append(dots, active.Render("●"))
		} else {
			dots = append(dots, inactive.Render("○"))
		}
	}
	return strings.Join(dots, " ")
}

func positionAlign(position string) lipgloss.Position {
	switch {
	case strings.HasSuffix(position, "left"):
		return lipgloss.Left
	case strings.HasSuffix(position, "right"):
		return lipgloss.Right
	}
	return lipgloss.Center
}
