package model

import (
	"time"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
)

// RemoteUser is the per-run snapshot of an Overseerr account
type RemoteUser struct {
	ID          types.UserID `json:"id"`
	Email       string       `json:"email"`
	DisplayName string       `json:"displayName,omitempty"`
}

// UserPage is one page of the paginated user listing
type UserPage struct {
	Results []RemoteUser
	Pages   int // 0 when the service did not report page metadata
}

// ServerStatus is the remote service status payload
type ServerStatus struct {
	Version   string `json:"version"`
	CommitTag string `json:"commitTag"`
}

// AccountRecord is an account held by the sandbox server together with
// its email notification settings
type AccountRecord struct {
	ID           types.UserID
	Email        string
	DisplayName  string
	EmailEnabled bool
	EmailMask    NotificationMask
	UpdatedAt    time.Time
}

// NewAccountRecord creates a new AccountRecord
func NewAccountRecord(id types.UserID, email, displayName string) *AccountRecord {
	return &AccountRecord{
		ID:          id,
		Email:       email,
		DisplayName: displayName,
		UpdatedAt:   time.Now(),
	}
}

// ToRemoteUser returns the listing view of the record
func (a *AccountRecord) ToRemoteUser() RemoteUser {
	return RemoteUser{
		ID:          a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
	}
}
