package slack

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/interfaces"
	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
)

const (
	webhookUsername = "Tenant artifact action"
	webhookIcon     = ":package:"
)

type notifier struct {
	webhookURL string
}

// NewNotifier creates a Slack notifier posting to an incoming webhook.
func NewNotifier(webhookURL string) interfaces.SlackNotifier {
	return &notifier{webhookURL: webhookURL}
}

// Announce posts the release announcement. The webhook endpoint must answer
// 200; anything else is an error.
func (n *notifier) Announce(ctx context.Context, announcement model.ReleaseAnnouncement) error {
	msg := &slack.WebhookMessage{
		Username:  webhookUsername,
		IconEmoji: webhookIcon,
		Text:      announcement.Text(),
	}

	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to send Slack notification",
			goerr.V("tenant", announcement.TenantName),
			goerr.V("version", announcement.Version),
		)
	}

	return nil
}
