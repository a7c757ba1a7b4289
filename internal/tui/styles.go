package tui

import "github.com/charmbracelet/lipgloss"

// Color constants: alert card palette.
var (
	colorCard    = lipgloss.Color("#FFFFFF")
	colorTitle   = lipgloss.Color("#1A1A1A")
	colorPreview = lipgloss.Color("#4A4A4A")
	colorBorder  = lipgloss.Color("#D1D5DB")
	colorFocus   = lipgloss.Color("#3B82F6")
	colorGray    = lipgloss.Color("#6B7280")
	colorWhite   = lipgloss.Color("#F8FAFC")
	colorDark    = lipgloss.Color("#1E293B")
)

// StyleHeader is the full-width dark header bar.
var StyleHeader = lipgloss.NewStyle().
	Background(colorDark).
	Foreground(colorWhite).
	Padding(0, 1)

// Card styles.
var (
	StyleCardFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	StyleCardFocused = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorFocus)

	StyleCardBody = lipgloss.NewStyle().
			Background(colorCard).
			Padding(0, 1)

	StyleCardTitle = lipgloss.NewStyle().
			Bold(true).
			Background(colorCard).
			Foreground(colorTitle)

	StyleCardPreview = lipgloss.NewStyle().
				Background(colorCard).
				Foreground(colorPreview).
				MaxHeight(previewMaxLines)

	StyleChip = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)
)

// Utility styles.
var (
	StyleDim  = lipgloss.NewStyle().Foreground(colorGray)
	StyleBold = lipgloss.NewStyle().Bold(true)
)
