package interfaces

import (
	"context"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
)

// SlackNotifier posts release announcements to an incoming webhook.
type SlackNotifier interface {
	Announce(ctx context.Context, announcement model.ReleaseAnnouncement) error
}
