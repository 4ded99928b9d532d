package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/cli/config"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/usecase"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/utils/prompt"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// promptOptions is appended to the prompter options of the sync command
var promptOptions []prompt.Option

func cmdSync() *cli.Command {
	var (
		overseerrCfg config.Overseerr
		promptCfg    config.Prompt
		slackCfg     config.Slack
	)

	flags := joinFlags(
		overseerrCfg.Flags(),
		promptCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "sync",
		Usage: "Apply one email notification mask to every user",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			root := c.Root()

			logger.Debug("Sync configuration",
				"overseerr", overseerrCfg,
				"prompt", promptCfg,
				"slack", slackCfg,
			)

			client, err := overseerrCfg.Configure()
			if err != nil {
				return err
			}

			flagTable, err := overseerrCfg.FlagTable()
			if err != nil {
				return err
			}

			notifier, err := slackCfg.ConfigureOptional(logger)
			if err != nil {
				return err
			}

			prompter, err := promptCfg.Configure(root.Reader, root.Writer, promptOptions...)
			if err != nil {
				return err
			}
			if !prompter.Interactive() {
				logger.Info("Input is not a terminal, every question takes its default")
			}

			opts, err := selectOptions(ctx, prompter, flagTable)
			if err != nil {
				return err
			}

			reporter := usecase.NewReporter(root.Writer)
			if err := reporter.RenderPlan(flagTable, opts); err != nil {
				return err
			}

			// Confirmation defaults to yes only when nothing will be sent
			if !prompter.YesNo(ctx, "Apply these settings to all users?", opts.DryRun) {
				fmt.Fprintln(root.Writer, "Cancelled, no changes were made.")
				logger.Info("Run cancelled by operator")
				return nil
			}

			ucOpts := []usecase.BulkSyncOption{usecase.WithReporter(reporter)}
			if notifier != nil {
				ucOpts = append(ucOpts, usecase.WithNotifier(notifier))
			}

			report, err := usecase.NewBulkSync(client, flagTable, ucOpts...).Run(ctx, opts)
			if err != nil {
				return err
			}

			if report.Summary.ExitCode() != 0 {
				return goerr.Wrap(model.ErrUpdatesFailed, "run finished with failures",
					goerr.V("run_id", report.Summary.RunID),
					goerr.V("failed", report.Summary.FailureCount))
			}
			return nil
		},
	}
}

// selectOptions asks for the flag set, test mode and verbosity
func selectOptions(ctx context.Context, p *prompt.Prompter, flags *model.FlagTable) (model.SyncOptions, error) {
	selected := flags.Defaults()
	question := fmt.Sprintf("Use the default notification set (%s)?", strings.Join(model.Names(selected), ", "))

	if !p.YesNo(ctx, question, true) {
		selected = nil
		for _, f := range flags.Flags {
			if p.YesNo(ctx, fmt.Sprintf("Enable %s notifications?", f.Name), f.Default) {
				selected = append(selected, f)
			}
		}
	}

	opts := model.SyncOptions{
		Mask:    model.Encode(selected...),
		DryRun:  p.YesNo(ctx, "Run in test mode (nothing is sent)?", true),
		Verbose: p.YesNo(ctx, "Show every user as it is processed?", false),
	}
	if err := opts.Validate(flags); err != nil {
		return model.SyncOptions{}, err
	}
	return opts, nil
}
