package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/alertcard/internal/engine"
	"github.com/dm/alertcard/internal/format"
)

const (
	defaultCardWidth = 64
	minCardWidth     = 24
	previewMaxLines  = 3

	// Animation periods in frames of frameInterval.
	glowPeriod  = 12 // 3s
	pulsePeriod = 8  // 2s
)

// CardOptions controls how RenderCard lays out and animates a card.
type CardOptions struct {
	Width       int // total width including the border; defaultCardWidth when <= 0
	Frame       int // animation frame, ignored for animations that are off
	Interactive bool
	Focused     bool
}

// RenderCard paints one alert card: a severity-colored accent bar whose
// thickness follows the border width, a header with the clipped title and
// the severity chip, and up to three lines of preview text.
func RenderCard(view engine.CardView, title string, opts CardOptions) string {
	width := opts.Width
	if width <= 0 {
		width = defaultCardWidth
	}
	if width < minCardWidth {
		width = minCardWidth
	}
	p := view.Presentation

	// border (2) + accent bar (1)
	bodyWidth := width - 3
	innerWidth := bodyWidth - StyleCardBody.GetHorizontalPadding()

	chip := renderChip(view, opts.Frame)
	titleWidth := innerWidth - lipgloss.Width(chip) - 1
	if titleWidth < 1 {
		titleWidth = 1
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		StyleCardTitle.Width(titleWidth).Render(format.ClipWidth(title, titleWidth)),
		StyleCardTitle.Render(" "),
		chip,
	)
	preview := StyleCardPreview.Width(innerWidth).Render(view.Preview)
	body := StyleCardBody.Width(bodyWidth).Render(lipgloss.JoinVertical(lipgloss.Left, header, preview))

	accent := p.Color
	if view.Animation.Glow {
		accent = blend(p.Color, string(colorCard), glowDim*wave(opts.Frame, glowPeriod))
	}
	rows := make([]string, lipgloss.Height(body))
	for i := range rows {
		rows[i] = accentGlyph(p.BorderWidth)
	}
	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color(accent)).
		Render(strings.Join(rows, "\n"))

	frame := StyleCardFrame
	if opts.Interactive && opts.Focused {
		frame = StyleCardFocused
	}
	return frame.Render(lipgloss.JoinHorizontal(lipgloss.Top, bar, body))
}

// renderChip draws the icon and label on a tint of the severity color.
// While pulsing the tint swells and fades.
func renderChip(view engine.CardView, frame int) string {
	p := view.Presentation
	tint := chipTint
	if view.Animation.Pulse {
		tint += (chipPulseTint - chipTint) * wave(frame, pulsePeriod)
	}
	return StyleChip.
		Foreground(lipgloss.Color(p.Color)).
		Background(lipgloss.Color(blend(p.Color, string(colorCard), 1-tint))).
		Render(iconGlyph(p.Icon) + " " + strings.ToUpper(p.Label))
}
