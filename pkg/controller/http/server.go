package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/interfaces"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const defaultVersion = "1.33.2-sandbox"

// Server is an in-memory stand-in for the Overseerr API, used to rehearse
// a run end to end
type Server struct {
	*http.Server
	router chi.Router
	store  interfaces.AccountStore

	apiKey       string
	version      string
	withPageInfo bool
	failingUsers map[int]bool
	failingSkips map[int]bool

	countMu sync.Mutex
	counts  map[string]int
}

// Option configures the Server
type Option func(*Server)

// WithAPIKey requires the key on every /api/v1 request
func WithAPIKey(key string) Option {
	return func(s *Server) {
		s.apiKey = key
	}
}

// WithVersion sets the version reported by /api/v1/status
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithFailingUsers makes every write to the given users fail with 500
func WithFailingUsers(ids ...int) Option {
	return func(s *Server) {
		for _, id := range ids {
			s.failingUsers[id] = true
		}
	}
}

// WithFailingPages makes the user listing fail with 500 at the given offsets
func WithFailingPages(skips ...int) Option {
	return func(s *Server) {
		for _, skip := range skips {
			s.failingSkips[skip] = true
		}
	}
}

// WithoutPageInfo omits pagination metadata from the user listing
func WithoutPageInfo() Option {
	return func(s *Server) {
		s.withPageInfo = false
	}
}

// NewServer creates a new sandbox server
func NewServer(ctx context.Context, addr string, store interfaces.AccountStore, opts ...Option) (*Server, error) {
	if store == nil {
		return nil, goerr.New("account store is required")
	}

	s := &Server{
		store:        store,
		version:      defaultVersion,
		withPageInfo: true,
		failingUsers: make(map[int]bool),
		failingSkips: make(map[int]bool),
		counts:       make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(s.countRequests)
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(RequireAPIKey(s.apiKey))

		r.Get("/status", s.handleStatus)

		r.Route("/user", func(r chi.Router) {
			r.Get("/", s.handleListUsers)
			r.Get("/{id}", s.handleGetUser)
			r.Put("/{id}", s.handleUpdateUser)
			r.Get("/{id}/settings/notifications", s.handleGetNotificationSettings)
			r.Post("/{id}/settings/notifications", s.handleUpdateNotificationSettings)
		})
	})

	s.router = router
	s.Server = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	return s, nil
}

// RequestCount returns how many requests with the method reached the server
func (s *Server) RequestCount(method string) int {
	s.countMu.Lock()
	defer s.countMu.Unlock()
	return s.counts[method]
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.countMu.Lock()
		s.counts[r.Method]++
		s.countMu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "overseerr-sandbox",
	})
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	if status >= http.StatusInternalServerError {
		ctxlog.From(r.Context()).Warn("Sandbox request failed", "error", err, "status", status)
	}

	writeJSON(w, r, status, map[string]string{
		"error": message,
	})
}
