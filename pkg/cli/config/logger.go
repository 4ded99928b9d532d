package config

import (
	"io"
	"log/slog"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("OVERSEERR_BULK_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("OVERSEERR_BULK_LOG_FORMAT"),
			Destination: &l.Format,
		},
	}
}

// Configure builds the logger writing to w (stderr when nil)
func (l *Logger) Configure(w io.Writer) (*slog.Logger, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	level, _ := logging.ParseLogLevel(l.Level)
	format, _ := logging.ParseFormat(l.Format)

	return logging.NewLogger(level, w, format), nil
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
	)
}

// Validate validates the logger configuration
func (l *Logger) Validate() error {
	if _, err := logging.ParseLogLevel(l.Level); err != nil {
		return goerr.Wrap(err, "invalid logger config", goerr.T(model.ErrTagInvalidConfig))
	}
	if _, err := logging.ParseFormat(l.Format); err != nil {
		return goerr.Wrap(err, "invalid logger config", goerr.T(model.ErrTagInvalidConfig))
	}
	return nil
}
