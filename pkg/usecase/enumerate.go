package usecase

import (
	"context"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/interfaces"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultPageSize is the number of users requested per listing call
const DefaultPageSize = 50

// UserEnumerator retrieves the complete user population page by page
type UserEnumerator struct {
	client   interfaces.Overseerr
	pageSize int
}

// NewUserEnumerator creates a new UserEnumerator
func NewUserEnumerator(client interfaces.Overseerr) *UserEnumerator {
	return &UserEnumerator{
		client:   client,
		pageSize: DefaultPageSize,
	}
}

// FetchAllUsers returns every user in listing order, or nothing at all.
// A failed page discards what was already collected.
func (e *UserEnumerator) FetchAllUsers(ctx context.Context) ([]model.RemoteUser, error) {
	logger := ctxlog.From(ctx)

	var users []model.RemoteUser
	for page := 0; ; page++ {
		skip := page * e.pageSize

		resp, err := e.client.ListUsers(ctx, e.pageSize, skip)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to enumerate users",
				goerr.V("page", page),
				goerr.V("skip", skip),
				goerr.V("collected", len(users)),
				goerr.T(model.ErrTagEnumeration))
		}

		if len(resp.Results) == 0 {
			break
		}
		users = append(users, resp.Results...)

		logger.Debug("Fetched user page",
			"page", page,
			"count", len(resp.Results),
			"pages", resp.Pages,
		)

		if resp.Pages > 0 && page+1 >= resp.Pages {
			break
		}
	}

	return users, nil
}
