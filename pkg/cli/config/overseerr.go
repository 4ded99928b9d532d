package config

import (
	"log/slog"
	"time"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/service/overseerr"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Overseerr holds the remote service connection configuration
type Overseerr struct {
	URL            string
	APIKey         string
	APIRevision    string
	FlagsFile      string
	RequestTimeout time.Duration
}

// Flags returns CLI flags for Overseerr configuration
func (o *Overseerr) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "url",
			Usage:       "Overseerr base URL (e.g. http://localhost:5055)",
			Category:    "Overseerr",
			Sources:     cli.EnvVars("OVERSEERR_URL"),
			Destination: &o.URL,
		},
		&cli.StringFlag{
			Name:        "api-key",
			Usage:       "Overseerr API key",
			Category:    "Overseerr",
			Sources:     cli.EnvVars("OVERSEERR_API_KEY"),
			Destination: &o.APIKey,
		},
		&cli.StringFlag{
			Name:        "api-revision",
			Usage:       "Write path for notification settings (settings: POST /user/{id}/settings/notifications, user: PUT /user/{id})",
			Category:    "Overseerr",
			Value:       types.APIRevisionSettings.String(),
			Sources:     cli.EnvVars("OVERSEERR_API_REVISION"),
			Destination: &o.APIRevision,
		},
		&cli.StringFlag{
			Name:        "flags-file",
			Usage:       "YAML file replacing the built-in notification flag table",
			Category:    "Overseerr",
			Sources:     cli.EnvVars("OVERSEERR_FLAGS_FILE"),
			Destination: &o.FlagsFile,
		},
		&cli.DurationFlag{
			Name:        "request-timeout",
			Usage:       "Deadline of each API request",
			Category:    "Overseerr",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("OVERSEERR_REQUEST_TIMEOUT"),
			Destination: &o.RequestTimeout,
		},
	}
}

// Validate validates the connection configuration
func (o *Overseerr) Validate() error {
	if o.URL == "" {
		return goerr.New("Overseerr URL is required (--url or OVERSEERR_URL)", goerr.T(model.ErrTagInvalidConfig))
	}
	if o.APIKey == "" {
		return goerr.New("Overseerr API key is required (--api-key or OVERSEERR_API_KEY)", goerr.T(model.ErrTagInvalidConfig))
	}
	if !types.APIRevision(o.APIRevision).IsValid() {
		return goerr.New("invalid API revision",
			goerr.V("revision", o.APIRevision),
			goerr.T(model.ErrTagInvalidConfig))
	}
	if o.RequestTimeout <= 0 {
		return goerr.New("request timeout must be positive",
			goerr.V("timeout", o.RequestTimeout),
			goerr.T(model.ErrTagInvalidConfig))
	}
	return nil
}

// Configure creates the Overseerr client
func (o *Overseerr) Configure() (*overseerr.Client, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return overseerr.New(o.URL, o.APIKey,
		overseerr.WithAPIRevision(types.APIRevision(o.APIRevision)),
		overseerr.WithTimeout(o.RequestTimeout),
	)
}

// FlagTable returns the flag table from --flags-file, or the built-in
// table of the API revision
func (o *Overseerr) FlagTable() (*model.FlagTable, error) {
	if o.FlagsFile != "" {
		return LoadFlagTableFromFile(o.FlagsFile)
	}
	return model.DefaultFlagTable(types.APIRevision(o.APIRevision))
}

// LogValue returns structured log value
func (o Overseerr) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", o.URL),
		slog.Bool("has_api_key", o.APIKey != ""),
		slog.String("api_revision", o.APIRevision),
		slog.String("flags_file", o.FlagsFile),
		slog.Duration("request_timeout", o.RequestTimeout),
	)
}
