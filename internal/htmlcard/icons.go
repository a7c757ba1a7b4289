package htmlcard

import (
	"fmt"
	"html/template"

	"github.com/dm/alertcard/internal/model"
)

const svgOpen = `<svg width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="%s" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`

// Icon returns the inline SVG for an icon key drawn in color at size px.
// Unknown keys draw the info icon.
func Icon(k model.IconKey, color string, size int) template.HTML {
	var body string
	switch k {
	case model.IconInfo:
		body = iconInfo
	case model.IconAlertTriangle:
		body = `<path d="M10.29 3.86L1.82 18a2 2 0 0 0 1.71 3h16.94a2 2 0 0 0 1.71-3L13.71 3.86a2 2 0 0 0-3.42 0z"/><line x1="12" y1="9" x2="12" y2="13"/><line x1="12" y1="17" x2="12.01" y2="17"/>`
	case model.IconWarningOctagon:
		body = `<polygon points="7.86 2 16.14 2 22 7.86 22 16.14 16.14 22 7.86 22 2 16.14 2 7.86 7.86 2"/><line x1="12" y1="8" x2="12" y2="12"/><line x1="12" y1="16" x2="12.01" y2="16"/>`
	case model.IconSiren:
		body = `<path d="M7 18v-6a5 5 0 0 1 10 0v6"/><path d="M5 21h14"/><path d="M12 3v2"/><path d="M19 6l-1.5 1.5"/><path d="M5 6l1.5 1.5"/><rect x="6" y="18" width="12" height="3" rx="1"/>`
	default:
		body = iconInfo
	}
	stroke := template.HTMLEscapeString(color)
	return template.HTML(fmt.Sprintf(svgOpen, size, size, stroke) + body + `</svg>`)
}

const iconInfo = `<circle cx="12" cy="12" r="10"/><line x1="12" y1="16" x2="12" y2="12"/><line x1="12" y1="8" x2="12.01" y2="8"/>`
