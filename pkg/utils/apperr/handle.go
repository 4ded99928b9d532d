package apperr

import (
	"context"
	"errors"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs the error that ended a command
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	logger := ctxlog.From(ctx)

	switch {
	case errors.Is(err, model.ErrUpdatesFailed):
		// Per-user failures were already logged and reported
		logger.Warn("run finished with failed updates")
	case goerr.HasTag(err, model.ErrTagInvalidConfig):
		logger.Error("invalid configuration", "error", err)
	case goerr.HasTag(err, model.ErrTagEnumeration):
		logger.Error("failed to enumerate users, no user was modified", "error", err)
	default:
		logger.Error("application error", "error", err)
	}
}
