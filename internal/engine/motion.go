package engine

import "github.com/dm/alertcard/internal/model"

// Animation says which card animations may run right now.
type Animation struct {
	Glow  bool
	Pulse bool
}

// Any reports whether at least one animation runs.
func (a Animation) Any() bool {
	return a.Glow || a.Pulse
}

// ShouldAnimate gates a motion profile by the reduced-motion preference.
// When reduced motion is preferred nothing animates, whatever the profile says.
func ShouldAnimate(p model.MotionProfile, reducedMotion bool) Animation {
	if reducedMotion {
		return Animation{}
	}
	return Animation{
		Glow:  p.Glow != model.GlowNone,
		Pulse: p.Pulse != model.PulseNone,
	}
}
