// Package htmlcard renders alert cards as HTML fragments with inline SVG
// icons, for hosts that display markup rather than terminal text.
package htmlcard

import (
	"html/template"
	"io"

	"github.com/m-mizutani/goerr/v2"

	"github.com/dm/alertcard/internal/engine"
)

// Fixed styling of the card. Only the accent bar, chip and animation vary
// with the resolved presentation.
const (
	containerStyle = "display:flex;flex-direction:row;background-color:#FFFFFF;border-radius:12px;overflow:hidden;box-shadow:0 2px 8px rgba(0,0,0,0.08)"
	contentStyle   = "flex:1;padding:16px;display:flex;flex-direction:column;gap:8px;min-width:0"
	headerStyle    = "display:flex;flex-direction:row;align-items:center;gap:8px"
	titleStyle     = "flex:1;margin:0;font-size:16px;font-weight:600;color:#1A1A1A;line-height:1.3;overflow:hidden;text-overflow:ellipsis;white-space:nowrap"
	previewStyle   = "margin:0;font-size:14px;color:#4A4A4A;line-height:1.5;display:-webkit-box;-webkit-line-clamp:3;-webkit-box-orient:vertical;overflow:hidden"

	chipIconSize = 14
)

var cardTemplate = template.Must(template.New("card").Parse(`
{{- if .Glow}}<style>@keyframes alertGlow { 0%, 100% { opacity: 1; } 50% { opacity: 0.7; } }</style>{{end -}}
<div class="alert-card" style="{{.ContainerStyle}}"{{if .Interactive}} role="button" tabindex="0"{{end}}>
<div class="alert-card-accent" aria-hidden="true" style="{{.AccentStyle}}"></div>
<div style="{{.ContentStyle}}">
<div style="{{.HeaderStyle}}">
<h3 style="{{.TitleStyle}}">{{.Title}}</h3>
<div class="alert-card-chip{{if .Pulse}} alert-card-pulse{{end}}" style="{{.ChipStyle}}">{{.Icon}}<span>{{.Label}}</span></div>
</div>
<p style="{{.PreviewStyle}}">{{.Preview}}</p>
</div>
</div>
`))

type cardData struct {
	Title       string
	Label       string
	Preview     string
	Icon        template.HTML
	Interactive bool
	Glow        bool
	Pulse       bool

	ContainerStyle template.CSS
	AccentStyle    template.CSS
	ContentStyle   template.CSS
	HeaderStyle    template.CSS
	TitleStyle     template.CSS
	ChipStyle      template.CSS
	PreviewStyle   template.CSS
}

// Render writes the markup of one card to w. Interactive cards are exposed
// as buttons; the glow keyframes are emitted only while glow animates.
func Render(w io.Writer, view engine.CardView, title string, interactive bool) error {
	p := view.Presentation

	cursor := "default"
	if interactive {
		cursor = "pointer"
	}
	data := cardData{
		Title:       title,
		Label:       p.Label,
		Preview:     view.Preview,
		Icon:        Icon(p.Icon, p.Color, chipIconSize),
		Interactive: interactive,
		Glow:        view.Animation.Glow,
		Pulse:       view.Animation.Pulse,

		ContainerStyle: template.CSS(containerStyle + ";cursor:" + cursor),
		AccentStyle:    accentStyle(view),
		ContentStyle:   template.CSS(contentStyle),
		HeaderStyle:    template.CSS(headerStyle),
		TitleStyle:     template.CSS(titleStyle),
		ChipStyle:      chipStyle(p.Color),
		PreviewStyle:   template.CSS(previewStyle),
	}
	if err := cardTemplate.Execute(w, data); err != nil {
		return goerr.Wrap(err, "failed to render card", goerr.V("title", title))
	}
	return nil
}

func accentStyle(view engine.CardView) template.CSS {
	p := view.Presentation
	animation := "none"
	if view.Animation.Glow {
		animation = "alertGlow 3s ease-in-out infinite"
	}
	return template.CSS(
		"width:" + px(p.BorderWidth) +
			";min-width:" + px(p.BorderWidth) +
			";background-color:" + cssValue(p.Color) +
			";flex-shrink:0;animation:" + animation)
}

func chipStyle(color string) template.CSS {
	c := cssValue(color)
	return template.CSS(
		"display:inline-flex;align-items:center;gap:4px;padding:4px 8px;border-radius:6px" +
			";background-color:" + c + "20;color:" + c +
			";font-size:11px;font-weight:700;letter-spacing:0.5px;text-transform:uppercase;flex-shrink:0")
}
