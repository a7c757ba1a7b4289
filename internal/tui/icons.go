package tui

import "github.com/dm/alertcard/internal/model"

// iconGlyph returns the terminal glyph for an icon key. Unknown keys draw
// the info icon.
func iconGlyph(k model.IconKey) string {
	switch k {
	case model.IconInfo:
		return "ⓘ"
	case model.IconAlertTriangle:
		return "⚠"
	case model.IconWarningOctagon:
		return "⛔"
	case model.IconSiren:
		return "🚨"
	default:
		return "ⓘ"
	}
}

// accentGlyph returns the accent bar glyph for a border width in px.
// Thicker borders draw wider block characters.
func accentGlyph(px int) string {
	switch {
	case px >= 6:
		return "▋"
	case px == 5:
		return "▌"
	case px == 4:
		return "▍"
	default:
		return "▎"
	}
}
