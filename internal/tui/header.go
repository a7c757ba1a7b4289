package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:  "Safety alerts"
//	right: "<n> alerts  Motion: on|reduced"
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	left := StyleBold.Render("Safety alerts")

	motion := "on"
	if app.reducedMotion {
		motion = "reduced"
	}
	noun := "alerts"
	if len(app.cards) == 1 {
		noun = "alert"
	}
	right := fmt.Sprintf("%d %s  Motion: %s", len(app.cards), noun, motion)

	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	spacing := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}
	return StyleHeader.Width(width).Render(left + strings.Repeat(" ", spacing) + right)
}
