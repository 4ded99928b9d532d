package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	controller "github.com/jimmyre420/overseerr-bulk-user-modify/pkg/controller/http"
	"github.com/m-mizutani/gt"
)

func TestRequireAPIKey(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	testCases := []struct {
		name     string
		key      string
		given    string
		expected int
	}{
		{name: "matching key", key: "secret", given: "secret", expected: http.StatusOK},
		{name: "wrong key", key: "secret", given: "other", expected: http.StatusForbidden},
		{name: "missing key", key: "secret", given: "", expected: http.StatusForbidden},
		{name: "check disabled", key: "", given: "", expected: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := controller.RequireAPIKey(tc.key)(next)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
			if tc.given != "" {
				req.Header.Set(controller.HeaderAPIKey, tc.given)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			gt.Equal(t, w.Code, tc.expected)
		})
	}
}

func TestServerRejectsMissingAPIKey(t *testing.T) {
	server, _ := newTestServer(t, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusForbidden)
	gt.S(t, w.Body.String()).Contains("invalid API key")
}

func TestLoggingMiddleware(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	handler := controller.LoggingMiddleware(context.Background())(next)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	gt.B(t, called).True()
	gt.Equal(t, w.Code, http.StatusTeapot)
}
