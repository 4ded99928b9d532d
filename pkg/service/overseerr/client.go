package overseerr

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/interfaces"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// HeaderAPIKey carries the static API key on every request
	HeaderAPIKey = "X-Api-Key"

	defaultTimeout = 30 * time.Second
)

// simulatedResponse is returned for state-changing calls under dry run
var simulatedResponse = json.RawMessage(`{"success":true}`)

// Client talks to the Overseerr REST API
type Client struct {
	baseURL    string
	apiKey     string
	revision   types.APIRevision
	httpClient *http.Client
}

var _ interfaces.Overseerr = (*Client)(nil)

// Option configures the Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the deadline of every request
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithAPIRevision selects the write path for notification settings
func WithAPIRevision(revision types.APIRevision) Option {
	return func(c *Client) {
		c.revision = revision
	}
}

// New creates a new Overseerr client
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid Overseerr URL",
			goerr.V("url", baseURL),
			goerr.T(model.ErrTagInvalidConfig))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("Overseerr URL must be http or https",
			goerr.V("url", baseURL),
			goerr.T(model.ErrTagInvalidConfig))
	}
	if apiKey == "" {
		return nil, goerr.New("API key is required", goerr.T(model.ErrTagInvalidConfig))
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		revision:   types.APIRevisionSettings,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	if !c.revision.IsValid() {
		return nil, goerr.New("unknown API revision",
			goerr.V("revision", c.revision),
			goerr.T(model.ErrTagInvalidConfig))
	}

	return c, nil
}

// Revision returns the API revision the client writes with
func (c *Client) Revision() types.APIRevision {
	return c.revision
}

// Call issues one request against the API. Under dry run, anything other
// than GET is logged and answered with a synthetic success body instead of
// being sent.
func (c *Client) Call(ctx context.Context, method, endpoint string, body any, dryRun bool) (json.RawMessage, error) {
	logger := ctxlog.From(ctx)

	var payload []byte
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to marshal request body",
				goerr.V("method", method),
				goerr.V("endpoint", endpoint))
		}
		payload = raw
	}

	if dryRun && method != http.MethodGet {
		logger.Info("[TEST MODE] request not sent",
			"method", method,
			"endpoint", endpoint,
			"payload", string(payload),
		)
		return simulatedResponse, nil
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request",
			goerr.V("method", method),
			goerr.V("endpoint", endpoint),
			goerr.T(model.ErrTagTransport))
	}
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "request to Overseerr failed",
			goerr.V("method", method),
			goerr.V("endpoint", endpoint),
			goerr.T(model.ErrTagTransport))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body",
			goerr.V("method", method),
			goerr.V("endpoint", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.T(model.ErrTagTransport))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.New("unexpected response status",
			goerr.V("method", method),
			goerr.V("endpoint", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
			goerr.T(model.ErrTagAPI))
	}

	logger.Debug("Overseerr request completed",
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
	)

	return json.RawMessage(respBody), nil
}
