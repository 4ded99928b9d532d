package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/interfaces"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements AccountStore interface with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	accounts map[types.UserID]*model.AccountRecord
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.AccountStore {
	return &Memory{
		accounts: make(map[types.UserID]*model.AccountRecord),
	}
}

// ListAccounts returns a page of accounts ordered by ID and the total count
func (m *Memory) ListAccounts(ctx context.Context, skip, take int) ([]*model.AccountRecord, int, error) {
	if skip < 0 || take < 0 {
		return nil, 0, goerr.New("invalid page range",
			goerr.V("skip", skip),
			goerr.V("take", take))
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]types.UserID, 0, len(m.accounts))
	for id := range m.accounts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	total := len(ids)
	if skip >= total {
		return []*model.AccountRecord{}, total, nil
	}
	end := total
	if take > 0 && skip+take < total {
		end = skip + take
	}

	accounts := make([]*model.AccountRecord, 0, end-skip)
	for _, id := range ids[skip:end] {
		// Return copies to prevent external modification
		accountCopy := *m.accounts[id]
		accounts = append(accounts, &accountCopy)
	}

	return accounts, total, nil
}

// GetAccount retrieves an account by ID
func (m *Memory) GetAccount(ctx context.Context, id types.UserID) (*model.AccountRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, exists := m.accounts[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrAccountNotFound, "failed to get account", goerr.V("id", id))
	}

	accountCopy := *account
	return &accountCopy, nil
}

// SaveAccount creates or replaces an account
func (m *Memory) SaveAccount(ctx context.Context, account *model.AccountRecord) error {
	if account == nil {
		return goerr.New("account is nil")
	}
	if account.ID <= 0 {
		return goerr.New("account ID must be positive", goerr.V("id", account.ID))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	accountCopy := *account
	m.accounts[account.ID] = &accountCopy
	return nil
}

// UpdateEmailSettings sets the email notification settings of an account
func (m *Memory) UpdateEmailSettings(ctx context.Context, id types.UserID, enabled bool, mask model.NotificationMask) (*model.AccountRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, exists := m.accounts[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrAccountNotFound, "failed to update email settings", goerr.V("id", id))
	}

	account.EmailEnabled = enabled
	account.EmailMask = mask
	account.UpdatedAt = time.Now()

	accountCopy := *account
	return &accountCopy, nil
}

// Seed fills the store with count accounts numbered from 1
func Seed(ctx context.Context, store interfaces.AccountStore, count int) error {
	for i := 1; i <= count; i++ {
		account := model.NewAccountRecord(
			types.UserID(i),
			fmt.Sprintf("user%03d@example.com", i),
			fmt.Sprintf("User %03d", i),
		)
		if err := store.SaveAccount(ctx, account); err != nil {
			return goerr.Wrap(err, "failed to seed account", goerr.V("id", i))
		}
	}
	return nil
}
