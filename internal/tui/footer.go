package tui

// renderFooter renders the help footer at full terminal width.
// When app.showHelp is true, shows all key bindings; otherwise a brief hint
// and the last activated alert.
func renderFooter(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	text := "? for help"
	if app.showHelp {
		text = helpText
	} else if app.lastActivated != "" {
		text = "Opened: " + app.lastActivated + "  " + text
	}
	return StyleDim.Width(width).Render(text)
}
