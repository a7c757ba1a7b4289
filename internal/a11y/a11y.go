// Package a11y provides the reduced-motion preference as a push-based signal.
// Consumers read Current once and then re-run their motion policy on every
// value received from Changes.
package a11y

// Source is a reduced-motion preference that may change over time.
type Source interface {
	// Current returns the latest known preference.
	Current() bool
	// Changes delivers each new preference value. A nil channel means the
	// source never changes.
	Changes() <-chan bool
}

type static bool

// Static returns a Source pinned to reduced.
func Static(reduced bool) Source {
	return static(reduced)
}

func (s static) Current() bool        { return bool(s) }
func (s static) Changes() <-chan bool { return nil }
