package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
)

// Announce posts the release to Slack when notifications are enabled.
// Delivery failure is fatal: by this point all mutations already happened
// and stay in place, but the run must report that the announcement is
// missing.
func (uc *UseCase) Announce(ctx context.Context, version string) error {
	logger := ctxlog.From(ctx)

	if !uc.cfg.SlackEnabled {
		logger.Debug("Slack notifications disabled, skipping announcement")
		return nil
	}

	tenantName := uc.cfg.CustomTenantName
	if tenantName == "" {
		tenantName = uc.bctx.TenantName()
	}

	announcement := model.ReleaseAnnouncement{
		TenantName:       tenantName,
		Repository:       uc.bctx.Repository,
		Version:          version,
		ReleaseNotesPath: uc.cfg.SlackReleaseNotesPath,
		Details:          uc.cfg.SlackDetails,
	}

	if err := uc.notifier.Announce(ctx, announcement); err != nil {
		return err
	}

	logger.Info("Posted release announcement", "tenant", tenantName, "version", version)
	return nil
}
