package usecase_test

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"

	controller "github.com/jimmyre420/overseerr-bulk-user-modify/pkg/controller/http"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/interfaces"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/repository"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/service/overseerr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
)

const testAPIKey = "test-api-key"

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return ctxlog.With(context.Background(), logger)
}

func makeUsers(n int) []model.RemoteUser {
	users := make([]model.RemoteUser, 0, n)
	for i := 1; i <= n; i++ {
		users = append(users, model.RemoteUser{ID: types.UserID(i)})
	}
	return users
}

// sandboxEnv is an Overseerr sandbox reachable over HTTP with a client bound to it
type sandboxEnv struct {
	server *controller.Server
	store  interfaces.AccountStore
	client *overseerr.Client
}

func newSandboxEnv(t *testing.T, users int, opts ...controller.Option) *sandboxEnv {
	t.Helper()
	ctx := testContext()

	store := repository.NewMemory()
	gt.NoError(t, repository.Seed(ctx, store, users)).Required()

	opts = append([]controller.Option{controller.WithAPIKey(testAPIKey)}, opts...)
	server, err := controller.NewServer(ctx, ":0", store, opts...)
	gt.NoError(t, err).Required()

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	client, err := overseerr.New(ts.URL, testAPIKey)
	gt.NoError(t, err).Required()

	return &sandboxEnv{server: server, store: store, client: client}
}

func getTestFlagTable(t *testing.T) *model.FlagTable {
	t.Helper()
	table, err := model.DefaultFlagTable(types.APIRevisionSettings)
	gt.NoError(t, err).Required()
	return table
}
