package usecase_test

import (
	"context"
	"testing"

	controller "github.com/jimmyre420/overseerr-bulk-user-modify/pkg/controller/http"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/interfaces/mocks"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func pagedListing(users []model.RemoteUser, pages int) func(ctx context.Context, take, skip int) (*model.UserPage, error) {
	return func(ctx context.Context, take, skip int) (*model.UserPage, error) {
		if skip >= len(users) {
			return &model.UserPage{Results: []model.RemoteUser{}, Pages: pages}, nil
		}
		end := skip + take
		if end > len(users) {
			end = len(users)
		}
		return &model.UserPage{Results: users[skip:end], Pages: pages}, nil
	}
}

func TestFetchAllUsers(t *testing.T) {
	t.Run("three pages in order", func(t *testing.T) {
		client := &mocks.OverseerrMock{ListUsersFunc: pagedListing(makeUsers(110), 3)}

		users, err := usecase.NewUserEnumerator(client).FetchAllUsers(testContext())
		gt.NoError(t, err)
		gt.A(t, users).Length(110)
		for i, u := range users {
			gt.Equal(t, u.ID, types.UserID(i+1))
		}

		calls := client.ListUsersCalls()
		gt.A(t, calls).Length(3)
		for i, c := range calls {
			gt.Equal(t, c.Take, usecase.DefaultPageSize)
			gt.Equal(t, c.Skip, i*usecase.DefaultPageSize)
		}
	})

	t.Run("failing second page returns nothing", func(t *testing.T) {
		listing := pagedListing(makeUsers(110), 3)
		client := &mocks.OverseerrMock{
			ListUsersFunc: func(ctx context.Context, take, skip int) (*model.UserPage, error) {
				if skip == 50 {
					return nil, goerr.New("boom", goerr.T(model.ErrTagAPI))
				}
				return listing(ctx, take, skip)
			},
		}

		users, err := usecase.NewUserEnumerator(client).FetchAllUsers(testContext())
		gt.Error(t, err)
		gt.True(t, users == nil)
		gt.B(t, goerr.HasTag(err, model.ErrTagEnumeration)).True()
		gt.V(t, goerr.Values(err)["page"]).Equal(1)
		gt.A(t, client.ListUsersCalls()).Length(2)
	})

	t.Run("stops on empty page without page count", func(t *testing.T) {
		client := &mocks.OverseerrMock{ListUsersFunc: pagedListing(makeUsers(100), 0)}

		users, err := usecase.NewUserEnumerator(client).FetchAllUsers(testContext())
		gt.NoError(t, err)
		gt.A(t, users).Length(100)
		// Two full pages, then the empty one that ends the listing
		gt.A(t, client.ListUsersCalls()).Length(3)
	})

	t.Run("page count stops before an extra request", func(t *testing.T) {
		client := &mocks.OverseerrMock{ListUsersFunc: pagedListing(makeUsers(100), 2)}

		users, err := usecase.NewUserEnumerator(client).FetchAllUsers(testContext())
		gt.NoError(t, err)
		gt.A(t, users).Length(100)
		gt.A(t, client.ListUsersCalls()).Length(2)
	})

	t.Run("empty first page wins over page count", func(t *testing.T) {
		client := &mocks.OverseerrMock{ListUsersFunc: pagedListing(nil, 1)}

		users, err := usecase.NewUserEnumerator(client).FetchAllUsers(testContext())
		gt.NoError(t, err)
		gt.A(t, users).Length(0)
		gt.A(t, client.ListUsersCalls()).Length(1)
	})

	t.Run("against the sandbox", func(t *testing.T) {
		env := newSandboxEnv(t, 110)

		users, err := usecase.NewUserEnumerator(env.client).FetchAllUsers(testContext())
		gt.NoError(t, err)
		gt.A(t, users).Length(110)
		gt.Equal(t, users[0].Email, "user001@example.com")
		gt.Equal(t, users[109].ID, types.UserID(110))
	})

	t.Run("sandbox failure on second page", func(t *testing.T) {
		env := newSandboxEnv(t, 110, controller.WithFailingPages(50))

		users, err := usecase.NewUserEnumerator(env.client).FetchAllUsers(testContext())
		gt.Error(t, err)
		gt.A(t, users).Length(0)
		gt.B(t, goerr.HasTag(err, model.ErrTagEnumeration)).True()
		gt.B(t, goerr.HasTag(err, model.ErrTagAPI)).True()
	})
}
