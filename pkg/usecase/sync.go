package usecase

import (
	"context"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/interfaces"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

// SyncDriver applies the target mask to each user, one call at a time
type SyncDriver struct {
	client interfaces.Overseerr
}

// NewSyncDriver creates a new SyncDriver
func NewSyncDriver(client interfaces.Overseerr) *SyncDriver {
	return &SyncDriver{
		client: client,
	}
}

// Apply updates every user in order and returns one result per user.
// A failing user is recorded and the loop moves on.
func (d *SyncDriver) Apply(ctx context.Context, users []model.RemoteUser, opts model.SyncOptions) []model.UpdateResult {
	logger := ctxlog.From(ctx)
	results := make([]model.UpdateResult, 0, len(users))

	for i, user := range users {
		err := d.client.UpdateEmailNotifications(ctx, user, opts.Mask, opts.DryRun)
		result := model.NewUpdateResult(user, opts.Mask, opts.DryRun, err)
		results = append(results, result)

		if err != nil {
			logger.Warn("Failed to update user",
				"index", i,
				"user_id", user.ID,
				"email", user.Email,
				"error", err,
			)
			continue
		}

		attrs := []any{
			"index", i,
			"user_id", user.ID,
			"email", user.Email,
			"mask", opts.Mask.Int(),
			"permissions", result.PermissionCount,
			"simulated", result.Simulated,
		}
		if opts.Verbose {
			logger.Info("Updated user", attrs...)
		} else {
			logger.Debug("Updated user", attrs...)
		}
	}

	return results
}
