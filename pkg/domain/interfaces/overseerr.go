package interfaces

//go:generate moq -out mocks/overseerr_mock.go -pkg mocks . Overseerr Notifier

import (
	"context"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
)

// Overseerr defines the remote operations the synchronization engine needs
type Overseerr interface {
	// ListUsers returns one page of the user listing
	ListUsers(ctx context.Context, take, skip int) (*model.UserPage, error)

	// UpdateEmailNotifications sets the email notification mask of a user.
	// Under dryRun the write is simulated and nothing is transmitted.
	UpdateEmailNotifications(ctx context.Context, user model.RemoteUser, mask model.NotificationMask, dryRun bool) error

	// GetStatus returns the remote service status
	GetStatus(ctx context.Context) (*model.ServerStatus, error)
}

// Notifier delivers the outcome of a run to an external channel
type Notifier interface {
	NotifyRun(ctx context.Context, report *model.RunReport) error
}
