package apperr_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestHandle(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		wantLevel string
		wantMsg   string
	}{
		{
			name:      "failed updates",
			err:       goerr.Wrap(model.ErrUpdatesFailed, "run failed"),
			wantLevel: "WARN",
			wantMsg:   "run finished with failed updates",
		},
		{
			name:      "invalid config",
			err:       goerr.New("bad flag", goerr.T(model.ErrTagInvalidConfig)),
			wantLevel: "ERROR",
			wantMsg:   "invalid configuration",
		},
		{
			name:      "enumeration",
			err:       goerr.New("page failed", goerr.T(model.ErrTagEnumeration)),
			wantLevel: "ERROR",
			wantMsg:   "failed to enumerate users, no user was modified",
		},
		{
			name:      "other",
			err:       goerr.New("unexpected"),
			wantLevel: "ERROR",
			wantMsg:   "application error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			ctx := ctxlog.With(context.Background(), logger)

			apperr.Handle(ctx, tc.err)

			var entry map[string]any
			gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			gt.Equal(t, entry["level"], any(tc.wantLevel))
			gt.Equal(t, entry["msg"], any(tc.wantMsg))
		})
	}

	t.Run("nil error logs nothing", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
		apperr.Handle(ctx, nil)
		gt.Equal(t, buf.Len(), 0)
	})
}
