package main

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/dm/alertcard/internal/engine"
	"github.com/dm/alertcard/internal/htmlcard"
	"github.com/dm/alertcard/internal/tui"
)

func cmdRender(logCfg *loggerConfig) *cli.Command {
	var card cardConfig
	var outFormat string

	flags := card.Flags()
	flags = append(flags,
		&cli.StringFlag{
			Name:        "format",
			Usage:       "output format (text, html)",
			Value:       "text",
			Destination: &outFormat,
		},
		&cli.IntFlag{
			Name:  "width",
			Usage: "card width in columns (text format)",
			Value: 64,
		},
		&cli.BoolFlag{
			Name:  "interactive",
			Usage: "render the card as an activatable button (html format)",
		},
		reducedMotionFlag(),
	)

	return &cli.Command{
		Name:  "render",
		Usage: "Print one alert card",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w, errW := writers(cmd)
			logger, closeLog, err := logCfg.New(errW)
			if err != nil {
				return err
			}
			defer closeLog()

			alert := card.Alert("cli")
			if !alert.Severity.Valid() {
				logger.Warn("unknown severity, rendering as low", "severity", alert.Severity)
			}
			if icon := alert.Overrides.Icon; icon != "" && !icon.Valid() {
				logger.Warn("unknown icon, drawing info", "icon", icon)
			}
			view := engine.Present(alert, cmd.Bool("reduced-motion"))
			logger.Debug("resolved card",
				"severity", alert.Severity,
				"label", view.Presentation.Label,
				"color", view.Presentation.Color,
				"icon", view.Presentation.Icon,
				"border_width", view.Presentation.BorderWidth,
			)

			switch outFormat {
			case "text":
				out := tui.RenderCard(view, alert.Title, tui.CardOptions{Width: int(cmd.Int("width"))})
				if _, err := fmt.Fprintln(w, out); err != nil {
					return goerr.Wrap(err, "failed to write card")
				}
				return nil
			case "html":
				return htmlcard.Render(w, view, alert.Title, cmd.Bool("interactive"))
			default:
				return goerr.New("unsupported format", goerr.V("format", outFormat))
			}
		},
	}
}
