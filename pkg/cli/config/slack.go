package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/types"
)

// Slack holds Slack notification configuration
type Slack struct {
	Notifications    bool
	Webhook          string
	Details          string
	ReleaseNotesPath string
	CustomTenantName string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "slack-notifications",
			Usage:       "Enable Slack notifications",
			Destination: &c.Notifications,
			Sources:     cli.EnvVars("INPUT_SLACK_NOTIFICATIONS"),
		},
		&cli.StringFlag{
			Name:        "slack-webhook",
			Usage:       "Slack incoming webhook URL (required with --slack-notifications)",
			Destination: &c.Webhook,
			Sources:     cli.EnvVars("INPUT_SLACK_WEBHOOK"),
		},
		&cli.StringFlag{
			Name:        "slack-message-details",
			Usage:       "Additional detail line appended to the Slack message",
			Destination: &c.Details,
			Sources:     cli.EnvVars("INPUT_SLACK_MESSAGE_DETAILS"),
		},
		&cli.StringFlag{
			Name:        "slack-message-release-notes-path",
			Usage:       "Path to the release notes file, relative to the repository root",
			Destination: &c.ReleaseNotesPath,
			Sources:     cli.EnvVars("INPUT_SLACK_MESSAGE_RELEASE_NOTES_PATH"),
		},
		&cli.StringFlag{
			Name:        "custom-tenant-name",
			Usage:       "Tenant display name override for the Slack message",
			Destination: &c.CustomTenantName,
			Sources:     cli.EnvVars("INPUT_CUSTOM_TENANT_NAME"),
		},
	}
}

// Validate checks that notifications have a webhook to post to.
func (c *Slack) Validate() error {
	if c.Notifications && c.Webhook == "" {
		return goerr.New("slack_webhook is required when slack_notifications is enabled",
			goerr.T(types.TagInvalidConfig))
	}
	return nil
}
