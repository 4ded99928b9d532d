package config

import (
	"log/slog"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/interfaces"
	slackSvc "github.com/jimmyre420/overseerr-bulk-user-modify/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	WebhookURL string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook receiving the run report",
			Category:    "Slack",
			Sources:     cli.EnvVars("OVERSEERR_BULK_SLACK_WEBHOOK_URL"),
			Destination: &s.WebhookURL,
		},
	}
}

// IsConfigured checks if a webhook is set
func (s *Slack) IsConfigured() bool {
	return s.WebhookURL != ""
}

// ConfigureOptional creates the notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) (interfaces.Notifier, error) {
	if !s.IsConfigured() {
		logger.Debug("Slack webhook not configured, run reports will not be posted")
		return nil, nil
	}

	notifier, err := slackSvc.New(s.WebhookURL)
	if err != nil {
		return nil, err
	}
	logger.Info("Slack webhook notifier enabled")
	return notifier, nil
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_webhook_url", s.WebhookURL != ""),
	)
}
