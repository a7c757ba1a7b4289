package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/alertcard/internal/a11y"
	"github.com/dm/alertcard/internal/model"
)

// chanSource is a reduced-motion source driven by the test.
type chanSource struct {
	current bool
	ch      chan bool
}

func (s *chanSource) Current() bool        { return s.current }
func (s *chanSource) Changes() <-chan bool { return s.ch }

func makeFixtureCards(taps *[]string) []Card {
	tap := func(id string) func() {
		return func() { *taps = append(*taps, id) }
	}
	return []Card{
		{Alert: model.Alert{ID: "a1", Severity: model.SeverityCritical, Title: "Contaminated supply", RiskSummary: "Stop use."}, OnTap: tap("a1")},
		{Alert: model.Alert{ID: "a2", Severity: model.SeverityLow, Title: "Routine notice", RiskSummary: "Nothing to do."}},
		{Alert: model.Alert{ID: "a3", Severity: model.SeverityHigh, Title: "Heat risk", RiskSummary: "Stay hydrated."}, OnTap: tap("a3")},
	}
}

func TestApp_InitStartsFramesWhenAnimating(t *testing.T) {
	app := NewApp(makeFixtureCards(new([]string)), a11y.Static(false))
	defer app.Close()

	require.NotNil(t, app.Init())
	assert.True(t, app.ticking)
	assert.False(t, app.reducedMotion)
}

func TestApp_NoFramesForStillCards(t *testing.T) {
	cards := []Card{{Alert: model.Alert{Severity: model.SeverityLow}}, {Alert: model.Alert{Severity: model.SeverityMedium}}}
	app := NewApp(cards, a11y.Static(false))
	defer app.Close()

	app.Init()
	assert.False(t, app.ticking)

	_, cmd := app.Update(FrameMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, app.frame)
}

func TestApp_NoFramesWhenReducedAtStart(t *testing.T) {
	app := NewApp(makeFixtureCards(new([]string)), a11y.Static(true))
	defer app.Close()

	app.Init()
	assert.True(t, app.reducedMotion)
	assert.False(t, app.ticking)
}

func TestApp_FrameMsgAdvances(t *testing.T) {
	app := NewApp(makeFixtureCards(new([]string)), a11y.Static(false))
	defer app.Close()
	app.Init()

	newModel, cmd := app.Update(FrameMsg{})
	updated := newModel.(*App)

	assert.Equal(t, 1, updated.frame)
	assert.True(t, updated.ticking)
	require.NotNil(t, cmd)
}

func TestApp_ReducedMotionStopsAndRestartsFrames(t *testing.T) {
	src := &chanSource{ch: make(chan bool, 1)}
	app := NewApp(makeFixtureCards(new([]string)), src)
	defer app.Close()
	app.Init()

	newModel, cmd := app.Update(ReducedMotionMsg{Reduced: true})
	app = newModel.(*App)
	assert.True(t, app.reducedMotion)
	require.NotNil(t, cmd, "must keep listening for preference changes")

	// The in-flight frame lands and is not rescheduled.
	_, cmd = app.Update(FrameMsg{})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, app.frame)
	assert.False(t, app.ticking)

	newModel, cmd = app.Update(ReducedMotionMsg{Reduced: false})
	app = newModel.(*App)
	assert.False(t, app.reducedMotion)
	assert.True(t, app.ticking)
	require.NotNil(t, cmd)
}

func TestWaitForMotion(t *testing.T) {
	assert.Nil(t, waitForMotion(a11y.Static(true)))

	src := &chanSource{ch: make(chan bool, 1)}
	cmd := waitForMotion(src)
	require.NotNil(t, cmd)

	src.ch <- true
	assert.Equal(t, ReducedMotionMsg{Reduced: true}, cmd())

	close(src.ch)
	assert.Nil(t, waitForMotion(src)())
}

func TestApp_FocusWraps(t *testing.T) {
	app := NewApp(makeFixtureCards(new([]string)), a11y.Static(true))
	defer app.Close()

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, app.focus)
	app.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 2, app.focus)
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, app.focus)
	app.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, app.focus)
	app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, app.focus)
}

func TestApp_ActivateInvokesOnTap(t *testing.T) {
	var taps []string
	app := NewApp(makeFixtureCards(&taps), a11y.Static(true))
	defer app.Close()

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"a1"}, taps)
	assert.Equal(t, "Contaminated supply", app.lastActivated)

	// Second card has no OnTap: activation is a no-op.
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, []string{"a1"}, taps)

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, []string{"a1", "a3"}, taps)
	assert.Equal(t, "Heat risk", app.lastActivated)
}

func TestApp_EmptyFeed(t *testing.T) {
	app := NewApp(nil, nil)
	defer app.Close()

	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, app.focus)
	assert.Contains(t, app.View(), "No alerts")
}

func TestApp_QuitKey(t *testing.T) {
	app := NewApp(nil, nil)
	defer app.Close()

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestApp_HelpToggle(t *testing.T) {
	app := NewApp(nil, nil)
	defer app.Close()

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, app.showHelp)
	assert.Contains(t, app.View(), "enter/space: open")

	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.False(t, app.showHelp)
}

func TestApp_View(t *testing.T) {
	app := NewApp(makeFixtureCards(new([]string)), a11y.Static(true))
	defer app.Close()
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 40})

	out := app.View()
	assert.Contains(t, out, "Safety alerts")
	assert.Contains(t, out, "3 alerts  Motion: reduced")
	assert.Contains(t, out, "Contaminated supply")
	assert.Contains(t, out, "Routine notice")
	assert.Contains(t, out, "Heat risk")
	assert.Contains(t, out, "CRITICAL")
	assert.Contains(t, out, "? for help")
}
