package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/cli/config"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdin, os.Stdout, os.Stderr)
}

// run wires the application to the given streams. Prompts and the report
// go to stdout, logs go to stderr.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var loggerCfg config.Logger
	logger := slog.Default()

	app := &cli.Command{
		Name:      "overseerr-bulk",
		Usage:     "Bulk-set the email notification settings of every Overseerr user",
		Version:   buildVersion().GitVersion,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Configure logger
			configured, err := loggerCfg.Configure(stderr)
			if err != nil {
				return nil, err
			}

			logger = configured
			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdSync(),
			cmdSandbox(),
			cmdVersion(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		apperr.Handle(ctxlog.With(ctx, logger), err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
