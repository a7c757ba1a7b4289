package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/dm/alertcard/internal/model"
)

const (
	defaultTitle   = "ALERT: Safety advisory"
	defaultSummary = "Risk advisory in effect. Please review guidance and take appropriate precautions."
)

func newCommand() *cli.Command {
	var logCfg loggerConfig

	return &cli.Command{
		Name:  "alertcard",
		Usage: "Render safety alert cards",
		Flags: logCfg.Flags(),
		Commands: []*cli.Command{
			cmdRender(&logCfg),
			cmdFeed(&logCfg),
		},
	}
}

// loggerConfig builds the slog logger from the global flags.
type loggerConfig struct {
	level string
	file  string
}

func (c *loggerConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("ALERTCARD_LOG_LEVEL"),
			Destination: &c.level,
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "append logs to this file",
			Sources:     cli.EnvVars("ALERTCARD_LOG_FILE"),
			Destination: &c.file,
		},
	}
}

// New returns a logger writing to the log file when one is set and to
// fallback otherwise. The returned func closes the log file.
func (c *loggerConfig) New(fallback io.Writer) (*slog.Logger, func(), error) {
	level, err := parseLevel(c.level)
	if err != nil {
		return nil, nil, err
	}

	w := fallback
	closer := func() {}
	if c.file != "" {
		f, err := os.OpenFile(c.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", c.file))
		}
		w = f
		closer = func() { _ = f.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closer, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, goerr.Wrap(err, "invalid log level", goerr.V("level", s))
	}
	return level, nil
}

// cardConfig holds the card input flags shared by render and feed.
type cardConfig struct {
	severity string
	title    string
	summary  string
	label    string
	color    string
	icon     string
}

func (c *cardConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "severity",
			Usage:       "alert severity (low, medium, high, critical); anything else renders as low",
			Value:       string(model.SeverityMedium),
			Destination: &c.severity,
		},
		&cli.StringFlag{
			Name:        "title",
			Usage:       "alert title",
			Value:       defaultTitle,
			Destination: &c.title,
		},
		&cli.StringFlag{
			Name:        "summary",
			Usage:       "risk summary, truncated for the preview",
			Value:       defaultSummary,
			Destination: &c.summary,
		},
		&cli.StringFlag{
			Name:        "label",
			Usage:       "severity label override; empty uses the canonical label",
			Destination: &c.label,
		},
		&cli.StringFlag{
			Name:        "color",
			Usage:       "severity color override (hex); empty uses the canonical color",
			Destination: &c.color,
		},
		&cli.StringFlag{
			Name:        "icon",
			Usage:       "severity icon override (info, alert_triangle, warning_octagon, siren)",
			Destination: &c.icon,
		},
	}
}

// Alert builds the card input from the flags.
func (c *cardConfig) Alert(id string) model.Alert {
	return model.Alert{
		ID:          id,
		Severity:    model.Severity(c.severity),
		Title:       c.title,
		RiskSummary: c.summary,
		Overrides: model.Overrides{
			Label: c.label,
			Color: c.color,
			Icon:  model.IconKey(c.icon),
		},
	}
}

func reducedMotionFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "reduced-motion",
		Usage:   "suppress glow and pulse animations",
		Sources: cli.EnvVars("ALERTCARD_REDUCED_MOTION"),
	}
}

// writers returns the root command's output streams, defaulting to stdout
// and stderr.
func writers(cmd *cli.Command) (out, errOut io.Writer) {
	out, errOut = cmd.Root().Writer, cmd.Root().ErrWriter
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return out, errOut
}
