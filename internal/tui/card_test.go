package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/dm/alertcard/internal/engine"
	"github.com/dm/alertcard/internal/model"
)

func cardView(sev model.Severity, summary string, o model.Overrides) engine.CardView {
	return engine.Present(model.Alert{Severity: sev, RiskSummary: summary, Overrides: o}, false)
}

func TestRenderCard_Content(t *testing.T) {
	view := cardView(model.SeverityCritical, "Avoid the area until further notice.", model.Overrides{})
	out := RenderCard(view, "Contaminated supply", CardOptions{Width: 64})

	assert.Contains(t, out, "Contaminated supply")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "🚨")
	assert.Contains(t, out, "Avoid the area until further notice.")
	assert.Contains(t, out, "▋")
}

func TestRenderCard_FixedWidth(t *testing.T) {
	for _, width := range []int{30, 64, 96} {
		view := cardView(model.SeverityMedium, strings.Repeat("review guidance ", 12), model.Overrides{})
		out := RenderCard(view, "A very long title that keeps going and going past the edge", CardOptions{Width: width})
		for i, line := range strings.Split(out, "\n") {
			assert.Equal(t, width, lipgloss.Width(line), "width %d line %d", width, i)
		}
	}
}

func TestRenderCard_MinimumWidth(t *testing.T) {
	view := cardView(model.SeverityLow, "ok", model.Overrides{})
	out := RenderCard(view, "t", CardOptions{Width: 5})
	assert.Equal(t, minCardWidth, lipgloss.Width(out))
}

func TestRenderCard_AccentFollowsBorderWidth(t *testing.T) {
	cases := []struct {
		severity model.Severity
		glyph    string
	}{
		{model.SeverityLow, "▎"},
		{model.SeverityMedium, "▍"},
		{model.SeverityHigh, "▌"},
		{model.SeverityCritical, "▋"},
	}
	for _, tc := range cases {
		t.Run(string(tc.severity), func(t *testing.T) {
			out := RenderCard(cardView(tc.severity, "x", model.Overrides{}), "t", CardOptions{})
			assert.Contains(t, out, tc.glyph)
		})
	}
}

func TestRenderCard_ClipsTitle(t *testing.T) {
	view := cardView(model.SeverityLow, "x", model.Overrides{})
	out := RenderCard(view, strings.Repeat("T", 200), CardOptions{Width: 40})
	assert.Contains(t, out, "T…")
	assert.NotContains(t, out, strings.Repeat("T", 40))
}

func TestRenderCard_PreviewClampedToThreeLines(t *testing.T) {
	view := cardView(model.SeverityLow, strings.Repeat("word ", 40), model.Overrides{})
	out := RenderCard(view, "t", CardOptions{Width: 30})
	// border top + header + 3 preview lines + border bottom
	assert.Equal(t, 6, lipgloss.Height(out))
}

func TestRenderCard_Overrides(t *testing.T) {
	view := cardView(model.SeverityHigh, "x", model.Overrides{Label: "recall", Icon: "bell"})
	out := RenderCard(view, "t", CardOptions{})
	assert.Contains(t, out, "RECALL")
	assert.Contains(t, out, "ⓘ")
	assert.NotContains(t, out, "⛔")
}

func TestRenderCard_FocusBorder(t *testing.T) {
	view := cardView(model.SeverityLow, "x", model.Overrides{})

	focused := RenderCard(view, "t", CardOptions{Interactive: true, Focused: true})
	assert.True(t, strings.HasPrefix(focused, "┏"))

	static := RenderCard(view, "t", CardOptions{Interactive: false, Focused: true})
	assert.True(t, strings.HasPrefix(static, "╭"))
}

func TestIconGlyph(t *testing.T) {
	cases := []struct {
		key  model.IconKey
		want string
	}{
		{model.IconInfo, "ⓘ"},
		{model.IconAlertTriangle, "⚠"},
		{model.IconWarningOctagon, "⛔"},
		{model.IconSiren, "🚨"},
		{"", "ⓘ"},
		{"unknown", "ⓘ"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, iconGlyph(tc.key), "icon %q", tc.key)
	}
}

func TestBlend(t *testing.T) {
	assert.Equal(t, "#e74c3c", blend("#E74C3C", "#FFFFFF", 0))
	assert.Equal(t, "#ffffff", blend("#E74C3C", "#FFFFFF", 1))
	assert.Equal(t, "red", blend("red", "#FFFFFF", 0.5))
}

func TestWave(t *testing.T) {
	assert.InDelta(t, 0, wave(0, glowPeriod), 1e-9)
	assert.InDelta(t, 1, wave(glowPeriod/2, glowPeriod), 1e-9)
	assert.InDelta(t, 0, wave(glowPeriod, glowPeriod), 1e-9)
	assert.Equal(t, 0.0, wave(3, 0))
}
