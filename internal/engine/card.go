package engine

import (
	"github.com/dm/alertcard/internal/format"
	"github.com/dm/alertcard/internal/model"
)

// CardView is everything a renderer needs to paint one alert card.
type CardView struct {
	Presentation Presentation
	Preview      string // risk summary bounded to format.PreviewMaxChars
	Animation    Animation
}

// Present runs the card pipeline: resolve the presentation, bound the preview
// text, then gate motion by the reduced-motion preference. It is recomputed
// on every render and holds no state.
func Present(a model.Alert, reducedMotion bool) CardView {
	return CardView{
		Presentation: Resolve(a.Severity, a.Overrides),
		Preview:      format.Truncate(a.RiskSummary, format.PreviewMaxChars),
		Animation:    ShouldAnimate(a.Severity.Motion(), reducedMotion),
	}
}
