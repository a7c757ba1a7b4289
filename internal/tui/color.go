package tui

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// chipTint matches a "${color}20" background: 0x20/0xff ≈ 12.5% of the color.
	chipTint = 0.125
	// chipPulseTint is the strongest chip tint reached while pulsing.
	chipPulseTint = 0.3
	// glowDim is how far the accent bar fades at the bottom of a glow cycle.
	glowDim = 0.3
)

// blend mixes fg toward bg by t (0 keeps fg, 1 gives bg). Colors that are not
// hex strings are returned unchanged.
func blend(fg, bg string, t float64) string {
	c, err := colorful.Hex(fg)
	if err != nil {
		return fg
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return fg
	}
	return c.BlendRgb(b, t).Clamped().Hex()
}

// wave returns the phase of a smooth 0→1→0 cycle of period frames at frame.
func wave(frame, period int) float64 {
	if period <= 0 {
		return 0
	}
	pos := float64(frame%period) / float64(period)
	return 0.5 - 0.5*math.Cos(2*math.Pi*pos)
}
