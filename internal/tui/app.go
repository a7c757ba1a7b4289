package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/dm/alertcard/internal/a11y"
	"github.com/dm/alertcard/internal/engine"
	"github.com/dm/alertcard/internal/model"
)

// frameInterval is the animation frame rate of glowing and pulsing cards.
const frameInterval = 250 * time.Millisecond

// maxCardWidth keeps cards readable on wide terminals.
const maxCardWidth = 96

// Card is one entry of the feed. A card with OnTap is interactive: it can be
// focused and activated with enter, space or a mouse click.
type Card struct {
	Alert model.Alert
	OnTap func()
}

// Interactive reports whether the card reacts to activation.
func (c Card) Interactive() bool {
	return c.OnTap != nil
}

// App is the root Bubble Tea model of the alert feed.
type App struct {
	cards  []Card
	motion a11y.Source
	zones  *zone.Manager

	reducedMotion bool
	focus         int
	frame         int
	ticking       bool // true while a frameCmd is in-flight

	lastActivated string

	// Layout
	width, height int

	// UI state
	showHelp bool
}

// NewApp creates a feed over cards. The reduced-motion preference is read
// from motion now and followed through its change notifications.
func NewApp(cards []Card, motion a11y.Source) *App {
	if motion == nil {
		motion = a11y.Static(false)
	}
	return &App{
		cards:         cards,
		motion:        motion,
		zones:         zone.New(),
		reducedMotion: motion.Current(),
	}
}

// Close releases the mouse zone tracker.
func (app *App) Close() {
	app.zones.Close()
}

// Init implements tea.Model. Subscribes to the reduced-motion source and
// starts animating when any card is allowed to move.
func (app *App) Init() tea.Cmd {
	return tea.Batch(waitForMotion(app.motion), app.startFrames())
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height

	case ReducedMotionMsg:
		app.reducedMotion = msg.Reduced
		return app, tea.Batch(waitForMotion(app.motion), app.startFrames())

	case FrameMsg:
		app.ticking = false
		if !app.animating() {
			return app, nil
		}
		app.frame++
		return app, app.startFrames()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Up), key.Matches(msg, keys.ShiftTab):
			app.moveFocus(-1)
		case key.Matches(msg, keys.Down), key.Matches(msg, keys.Tab):
			app.moveFocus(1)
		case key.Matches(msg, keys.Activate):
			app.activate(app.focus)
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return app, nil
		}
		for i := range app.cards {
			if app.zones.Get(cardZoneID(i)).InBounds(msg) {
				app.focus = i
				app.activate(i)
				break
			}
		}
	}

	return app, nil
}

// View implements tea.Model. Renders the full feed.
func (app *App) View() string {
	parts := []string{renderHeader(app)}

	width := app.width
	if width <= 0 || width > maxCardWidth {
		width = maxCardWidth
	}
	for i, c := range app.cards {
		view := engine.Present(c.Alert, app.reducedMotion)
		card := RenderCard(view, c.Alert.Title, CardOptions{
			Width:       width,
			Frame:       app.frame,
			Interactive: c.Interactive(),
			Focused:     i == app.focus,
		})
		parts = append(parts, app.zones.Mark(cardZoneID(i), card))
	}
	if len(app.cards) == 0 {
		parts = append(parts, StyleDim.Render("No alerts"))
	}

	parts = append(parts, renderFooter(app))
	return app.zones.Scan(strings.Join(parts, "\n"))
}

// animating reports whether any card currently has an animation running.
func (app *App) animating() bool {
	if app.reducedMotion {
		return false
	}
	for _, c := range app.cards {
		if engine.ShouldAnimate(c.Alert.Severity.Motion(), false).Any() {
			return true
		}
	}
	return false
}

// startFrames schedules the next frame unless one is already pending or
// nothing animates.
func (app *App) startFrames() tea.Cmd {
	if app.ticking || !app.animating() {
		return nil
	}
	app.ticking = true
	return frameCmd(frameInterval)
}

func (app *App) moveFocus(delta int) {
	n := len(app.cards)
	if n == 0 {
		return
	}
	app.focus = (app.focus + delta + n) % n
}

// activate invokes the tap handler of card i when it is interactive.
func (app *App) activate(i int) {
	if i < 0 || i >= len(app.cards) {
		return
	}
	c := app.cards[i]
	if !c.Interactive() {
		return
	}
	c.OnTap()
	app.lastActivated = c.Alert.Title
}

func cardZoneID(i int) string {
	return "card-" + strconv.Itoa(i)
}

// frameCmd schedules the next animation frame after duration d.
func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// waitForMotion blocks on the next reduced-motion change. Sources that never
// change yield no command.
func waitForMotion(src a11y.Source) tea.Cmd {
	ch := src.Changes()
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		reduced, ok := <-ch
		if !ok {
			return nil
		}
		return ReducedMotionMsg{Reduced: reduced}
	}
}
