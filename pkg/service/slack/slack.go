package slack

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/interfaces"
	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Notifier posts run reports to a Slack incoming webhook
type Notifier struct {
	webhookURL string
	httpClient *http.Client
}

var _ interfaces.Notifier = (*Notifier)(nil)

// Option configures the Notifier
type Option func(*Notifier)

// WithHTTPClient replaces the HTTP client used to call the webhook
func WithHTTPClient(httpClient *http.Client) Option {
	return func(n *Notifier) {
		n.httpClient = httpClient
	}
}

// New creates a new Slack webhook notifier
func New(webhookURL string, opts ...Option) (*Notifier, error) {
	u, err := url.Parse(webhookURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, goerr.New("invalid Slack webhook URL",
			goerr.V("scheme", schemeOf(u)),
			goerr.T(model.ErrTagInvalidConfig))
	}

	n := &Notifier{
		webhookURL: webhookURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// NotifyRun posts the summary and failed users of a run
func (n *Notifier) NotifyRun(ctx context.Context, report *model.RunReport) error {
	if report == nil {
		return goerr.New("run report is nil")
	}

	msg := BuildRunMessage(report)
	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.httpClient, msg); err != nil {
		return goerr.Wrap(err, "failed to post Slack webhook",
			goerr.V("run_id", report.Summary.RunID))
	}

	ctxlog.From(ctx).Debug("Run report posted to Slack", "run_id", report.Summary.RunID)
	return nil
}

func schemeOf(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.Scheme
}
