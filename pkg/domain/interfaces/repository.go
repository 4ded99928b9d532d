package interfaces

import (
	"context"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
)

// AccountStore holds the accounts served by the sandbox server
type AccountStore interface {
	// ListAccounts returns a page of accounts ordered by ID and the total count
	ListAccounts(ctx context.Context, skip, take int) ([]*model.AccountRecord, int, error)

	// GetAccount retrieves an account by ID
	GetAccount(ctx context.Context, id types.UserID) (*model.AccountRecord, error)

	// SaveAccount creates or replaces an account
	SaveAccount(ctx context.Context, account *model.AccountRecord) error

	// UpdateEmailSettings sets the email notification settings of an account
	UpdateEmailSettings(ctx context.Context, id types.UserID, enabled bool, mask model.NotificationMask) (*model.AccountRecord, error)
}
