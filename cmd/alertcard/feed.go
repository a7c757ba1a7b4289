package main

import (
	"context"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/dm/alertcard/internal/a11y"
	"github.com/dm/alertcard/internal/model"
	"github.com/dm/alertcard/internal/tui"
)

func cmdFeed(logCfg *loggerConfig) *cli.Command {
	var card cardConfig
	var prefsPath string

	flags := card.Flags()
	flags = append(flags,
		&cli.StringFlag{
			Name:        "prefs",
			Usage:       "preferences file to follow for the reduced-motion setting",
			Sources:     cli.EnvVars("ALERTCARD_PREFS"),
			Destination: &prefsPath,
		},
		reducedMotionFlag(),
	)

	return &cli.Command{
		Name:  "feed",
		Usage: "Browse alert cards interactively",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// The feed owns the terminal, so logs only go to --log-file.
			logger, closeLog, err := logCfg.New(io.Discard)
			if err != nil {
				return err
			}
			defer closeLog()

			alerts := sampleAlerts()
			if cmd.IsSet("title") {
				alerts = append([]model.Alert{card.Alert("cli")}, alerts...)
			}

			var src a11y.Source
			var watcher *a11y.FileWatcher
			switch {
			case cmd.IsSet("reduced-motion"):
				src = a11y.Static(cmd.Bool("reduced-motion"))
			case prefsPath != "":
				watcher = a11y.NewFileWatcher(prefsPath, a11y.WithLogger(logger))
				src = watcher
			default:
				src = a11y.Static(false)
			}

			return runFeed(ctx, feedCards(alerts, logger), src, watcher, logger)
		},
	}
}

// feedCards makes every alert interactive; activation is logged.
func feedCards(alerts []model.Alert, logger *slog.Logger) []tui.Card {
	cards := make([]tui.Card, 0, len(alerts))
	for _, a := range alerts {
		cards = append(cards, tui.Card{
			Alert: a,
			OnTap: func() {
				logger.Info("alert activated", "id", a.ID, "severity", a.Severity, "title", a.Title)
			},
		})
	}
	return cards
}

// runFeed runs the preferences watcher, when there is one, alongside the
// Bubble Tea program. Quitting the program stops the watcher; a watcher
// failure stops the program.
func runFeed(ctx context.Context, cards []tui.Card, src a11y.Source, watcher *a11y.FileWatcher, logger *slog.Logger) error {
	app := tui.NewApp(cards, src)
	defer app.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	g.Go(func() error {
		defer cancel()
		logger.Info("starting feed", "alerts", len(cards), "reduced_motion", src.Current())
		p := tea.NewProgram(app,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(gctx),
		)
		_, err := p.Run()
		return err
	})

	return g.Wait()
}
