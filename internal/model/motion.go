package model

// Glow is the glow animation intent of a card.
type Glow string

const (
	GlowNone   Glow = "none"
	GlowSubtle Glow = "subtle"
)

// Pulse is the pulse animation intent of a card.
type Pulse string

const (
	PulseNone Pulse = "none"
	PulseSlow Pulse = "slow"
)

// BorderEmphasis is the visual weight tier of a card's accent border.
// Four tiers are used: subtle < moderate < pronounced < strong.
type BorderEmphasis string

const (
	EmphasisSubtle     BorderEmphasis = "subtle"
	EmphasisModerate   BorderEmphasis = "moderate"
	EmphasisPronounced BorderEmphasis = "pronounced"
	EmphasisStrong     BorderEmphasis = "strong"
)

// MotionProfile holds the motion rules of a severity tier.
type MotionProfile struct {
	Glow           Glow
	Pulse          Pulse
	BorderEmphasis BorderEmphasis
}

var motionProfiles = map[Severity]MotionProfile{
	SeverityLow:      {Glow: GlowNone, Pulse: PulseNone, BorderEmphasis: EmphasisSubtle},
	SeverityMedium:   {Glow: GlowNone, Pulse: PulseNone, BorderEmphasis: EmphasisModerate},
	SeverityHigh:     {Glow: GlowSubtle, Pulse: PulseNone, BorderEmphasis: EmphasisPronounced},
	SeverityCritical: {Glow: GlowSubtle, Pulse: PulseSlow, BorderEmphasis: EmphasisStrong},
}

// Motion returns the motion rules for s, falling back to the low rules.
func (s Severity) Motion() MotionProfile {
	return motionProfiles[s.Normalize()]
}
