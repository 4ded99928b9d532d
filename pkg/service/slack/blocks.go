package slack

import (
	"fmt"
	"strings"

	"github.com/jimmyre420/overseerr-bulk-user-modify/pkg/domain/model"
	"github.com/slack-go/slack"
)

// maxFailedUsers caps the failed users listed in one message
const maxFailedUsers = 20

// GetOutcomeEmoji returns emoji based on the run outcome
func GetOutcomeEmoji(summary model.RunSummary) string {
	switch {
	case summary.FailureCount > 0:
		return "🚨"
	case summary.TestMode:
		return "🧪"
	default:
		return "✅"
	}
}

// formatSummaryText is the plain-text fallback of the run message
func formatSummaryText(summary model.RunSummary) string {
	mode := "live"
	if summary.TestMode {
		mode = "test mode"
	}
	return fmt.Sprintf("%s Overseerr email notification sync (%s): %d users, %d succeeded, %d failed",
		GetOutcomeEmoji(summary), mode, summary.TotalUsers, summary.SuccessCount, summary.FailureCount)
}

// BuildRunMessage builds the webhook message for a run report
func BuildRunMessage(report *model.RunReport) *slack.WebhookMessage {
	summary := report.Summary

	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "Overseerr email notification sync", true, false),
		),
		slack.NewSectionBlock(nil, []*slack.TextBlockObject{
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Run*\n`%s`", summary.RunID), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Mode*\n%s", modeText(summary)), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Users*\n%d", summary.TotalUsers), false, false),
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Result*\n%d ok / %d failed", summary.SuccessCount, summary.FailureCount), false, false),
		}, nil),
	}

	if failed := model.Failed(report.Results); len(failed) > 0 {
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType, formatFailedUsers(failed), false, false),
				nil, nil,
			),
		)
	}

	return &slack.WebhookMessage{
		Text:   formatSummaryText(summary),
		Blocks: &slack.Blocks{BlockSet: blocks},
	}
}

func modeText(summary model.RunSummary) string {
	if summary.TestMode {
		return "🧪 Test mode (nothing sent)"
	}
	return "Live"
}

func formatFailedUsers(failed []model.UpdateResult) string {
	var b strings.Builder
	b.WriteString("*Failed users*\n")
	for i, r := range failed {
		if i == maxFailedUsers {
			fmt.Fprintf(&b, "…and %d more\n", len(failed)-maxFailedUsers)
			break
		}
		fmt.Fprintf(&b, "• %s (id %s): %s\n", r.Email, r.UserID, r.Error)
	}
	return b.String()
}
