package usecase

import (
	"context"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/interfaces"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// BulkSync runs one synchronization: enumerate, apply, summarize, report
type BulkSync struct {
	client     interfaces.Overseerr
	flags      *model.FlagTable
	enumerator *UserEnumerator
	driver     *SyncDriver
	reporter   *Reporter
	notifier   interfaces.Notifier
}

// BulkSyncOption configures BulkSync
type BulkSyncOption func(*BulkSync)

// WithNotifier delivers the run report after each run
func WithNotifier(notifier interfaces.Notifier) BulkSyncOption {
	return func(b *BulkSync) {
		b.notifier = notifier
	}
}

// WithReporter sets the reporter rendering the outcome
func WithReporter(reporter *Reporter) BulkSyncOption {
	return func(b *BulkSync) {
		b.reporter = reporter
	}
}

// NewBulkSync creates a new BulkSync
func NewBulkSync(client interfaces.Overseerr, flags *model.FlagTable, opts ...BulkSyncOption) *BulkSync {
	b := &BulkSync{
		client:     client,
		flags:      flags,
		enumerator: NewUserEnumerator(client),
		driver:     NewSyncDriver(client),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run executes one synchronization run. An enumeration failure aborts the
// run before any user is touched. Per-user failures are part of the report,
// not of the returned error.
func (b *BulkSync) Run(ctx context.Context, opts model.SyncOptions) (*model.RunReport, error) {
	if err := opts.Validate(b.flags); err != nil {
		return nil, goerr.Wrap(err, "invalid sync options")
	}

	runID := types.NewRunID()
	logger := ctxlog.From(ctx).With("run_id", runID.String())
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Starting bulk synchronization", "options", opts)

	status, err := b.client.GetStatus(ctx)
	if err != nil {
		logger.Warn("Failed to get Overseerr status, continuing", "error", err)
	} else {
		logger.Info("Connected to Overseerr",
			"version", status.Version,
			"commit", status.CommitTag,
		)
	}

	users, err := b.enumerator.FetchAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("Users enumerated", "count", len(users))

	results := b.driver.Apply(ctx, users, opts)

	summary := model.Summarize(results)
	summary.RunID = runID
	summary.TestMode = opts.DryRun

	report := &model.RunReport{
		Summary: summary,
		Results: results,
	}

	logger.Info("Bulk synchronization finished", "summary", summary)
	for _, r := range model.Failed(results) {
		logger.Error("User update failed",
			"user_id", r.UserID,
			"email", r.Email,
			"error", r.Error,
		)
	}

	if b.reporter != nil {
		if err := b.reporter.Render(summary, results, b.flags); err != nil {
			return report, err
		}
	}

	if b.notifier != nil {
		if err := b.notifier.NotifyRun(ctx, report); err != nil {
			logger.Warn("Failed to send run notification", "error", err)
		}
	}

	return report, nil
}
