package engine

import "github.com/dm/alertcard/internal/model"

// Presentation is the fully resolved display of one alert card.
type Presentation struct {
	Label        string
	Color        string
	Icon         model.IconKey
	BorderWidth  int // accent border thickness in px
	GlowEnabled  bool
	PulseEnabled bool
}

// Resolve maps a severity plus optional overrides to its presentation.
// Unknown severities resolve as low. A non-empty override is used verbatim;
// an empty one falls back to the canonical value. Glow and pulse reflect the
// motion rules only; gate them with ShouldAnimate before animating.
func Resolve(severity model.Severity, o model.Overrides) Presentation {
	profile := severity.Profile()
	motion := severity.Motion()

	p := Presentation{
		Label:        profile.Label,
		Color:        profile.Color,
		Icon:         profile.Icon,
		BorderWidth:  BorderWidth(motion.BorderEmphasis),
		GlowEnabled:  motion.Glow != model.GlowNone,
		PulseEnabled: motion.Pulse != model.PulseNone,
	}
	if o.Label != "" {
		p.Label = o.Label
	}
	if o.Color != "" {
		p.Color = o.Color
	}
	if o.Icon != "" {
		p.Icon = o.Icon
	}
	return p
}

// BorderWidth maps a border emphasis tier to a thickness in px:
// subtle 3, moderate 4, pronounced 5, strong 6. Unknown tiers get 3.
func BorderWidth(e model.BorderEmphasis) int {
	switch e {
	case model.EmphasisModerate:
		return 4
	case model.EmphasisPronounced:
		return 5
	case model.EmphasisStrong:
		return 6
	default:
		return 3
	}
}
