package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/edenlabllc/tenant-artifact-action/pkg/cli/config"
	gitinfra "github.com/edenlabllc/tenant-artifact-action/pkg/infra/git"
	githubinfra "github.com/edenlabllc/tenant-artifact-action/pkg/infra/github"
	"github.com/edenlabllc/tenant-artifact-action/pkg/infra/rmk"
	slackinfra "github.com/edenlabllc/tenant-artifact-action/pkg/infra/slack"
	"github.com/edenlabllc/tenant-artifact-action/pkg/usecase"
)

func cmdRelease() *cli.Command {
	var (
		actionsCfg config.Actions
		githubCfg  config.GitHub
		releaseCfg config.Release
		slackCfg   config.Slack
		tenantCfg  config.Tenant
		rmkCfg     config.RMK
	)

	flags := actionsCfg.Flags()
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, releaseCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, tenantCfg.Flags()...)
	flags = append(flags, rmkCfg.Flags()...)

	return &cli.Command{
		Name:    "release",
		Aliases: []string{"r"},
		Usage:   "Run a single release pass for the triggering push",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := slackCfg.Validate(); err != nil {
				return err
			}
			if err := rmk.ValidateVersion(rmkCfg.Version); err != nil {
				return err
			}

			bctx := actionsCfg.Context()
			logger.Info("Starting release pass",
				slog.String("repository", bctx.Repository),
				slog.String("ref", bctx.Ref),
				slog.String("sha", bctx.SHA),
			)

			gitClient, err := gitinfra.NewClient(".", githubCfg.Token)
			if err != nil {
				return err
			}

			host, err := githubinfra.NewClient(githubCfg.Token)
			if err != nil {
				return err
			}

			notifier := slackinfra.NewNotifier(slackCfg.Webhook)
			installer := rmk.NewInstaller(rmk.WithToken(githubCfg.Token))

			uc, err := usecase.NewRelease(gitClient, host, notifier, installer, usecase.Config{
				ArtifactVersion:       releaseCfg.ArtifactVersion,
				Autotag:               releaseCfg.Autotag,
				PushTag:               releaseCfg.PushTag,
				MajorVersionBranch:    releaseCfg.MajorVersionBranch,
				TenantEnvironments:    tenantCfg.Environments,
				TenantWorkflowFile:    tenantCfg.WorkflowFile,
				SlackEnabled:          slackCfg.Notifications,
				SlackReleaseNotesPath: slackCfg.ReleaseNotesPath,
				SlackDetails:          slackCfg.Details,
				CustomTenantName:      slackCfg.CustomTenantName,
				RMKInstall:            rmkCfg.Install,
				RMKVersion:            rmkCfg.Version,
			}, bctx)
			if err != nil {
				return err
			}

			return uc.Run(ctx)
		},
	}
}
