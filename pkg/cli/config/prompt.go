package config

import (
	"io"
	"log/slog"
	"time"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/utils/prompt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Prompt holds interactive prompt configuration
type Prompt struct {
	Timeout time.Duration
}

// Flags returns CLI flags for Prompt configuration
func (p *Prompt) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "prompt-timeout",
			Usage:       "Time each question waits before taking its default (0 waits forever)",
			Category:    "Prompt",
			Value:       60 * time.Second,
			Sources:     cli.EnvVars("OVERSEERR_BULK_PROMPT_TIMEOUT"),
			Destination: &p.Timeout,
		},
	}
}

// Validate validates the prompt configuration
func (p *Prompt) Validate() error {
	if p.Timeout < 0 {
		return goerr.New("prompt timeout must not be negative",
			goerr.V("timeout", p.Timeout),
			goerr.T(model.ErrTagInvalidConfig))
	}
	return nil
}

// Configure creates the prompter reading in and writing out
func (p *Prompt) Configure(in io.Reader, out io.Writer, opts ...prompt.Option) (*prompt.Prompter, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	opts = append([]prompt.Option{prompt.WithTimeout(p.Timeout)}, opts...)
	return prompt.New(in, out, opts...), nil
}

// LogValue returns structured log value
func (p Prompt) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Duration("timeout", p.Timeout),
	)
}
