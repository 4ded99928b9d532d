package config

import (
	"log/slog"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Server holds sandbox server configuration
type Server struct {
	Addr    string
	Users   int
	APIKey  string
	Version string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:5055",
			Sources:     cli.EnvVars("OVERSEERR_SANDBOX_ADDR"),
			Destination: &s.Addr,
		},
		&cli.IntFlag{
			Name:        "users",
			Usage:       "Number of accounts to seed",
			Value:       44,
			Sources:     cli.EnvVars("OVERSEERR_SANDBOX_USERS"),
			Destination: &s.Users,
		},
		&cli.StringFlag{
			Name:        "api-key",
			Usage:       "API key required on every /api/v1 request (empty disables the check)",
			Sources:     cli.EnvVars("OVERSEERR_SANDBOX_API_KEY"),
			Destination: &s.APIKey,
		},
		&cli.StringFlag{
			Name:        "server-version",
			Usage:       "Version reported by /api/v1/status",
			Value:       "1.33.2-sandbox",
			Destination: &s.Version,
		},
	}
}

// Validate validates the sandbox configuration
func (s *Server) Validate() error {
	if s.Addr == "" {
		return goerr.New("server address is required", goerr.T(model.ErrTagInvalidConfig))
	}
	if s.Users < 0 {
		return goerr.New("user count must not be negative",
			goerr.V("users", s.Users),
			goerr.T(model.ErrTagInvalidConfig))
	}
	return nil
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Int("users", s.Users),
		slog.Bool("has_api_key", s.APIKey != ""),
		slog.String("version", s.Version),
	)
}
