package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/interfaces"
	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
)

// Config is the full release-run configuration, constructed once at process
// start. No component reads the process environment after this point.
type Config struct {
	ArtifactVersion    string // Explicit version, bypasses derivation
	Autotag            bool   // Derive the version from the merge commit and tag
	PushTag            bool   // Force tag/release creation without autotag
	MajorVersionBranch string // Opt-in alternate version-suffix pattern

	TenantEnvironments string // Newline-separated "tenant=env1,env2" entries
	TenantWorkflowFile string // Workflow file dispatched per tenant

	SlackEnabled          bool
	SlackReleaseNotesPath string
	SlackDetails          string
	CustomTenantName      string // Overrides the tenant display name in Slack

	RMKInstall bool
	RMKVersion string

	AssetPath string // Dependency manifest attached to releases
}

// DefaultTenantWorkflowFile is dispatched when no workflow file input is set.
const DefaultTenantWorkflowFile = "project-update.yaml"

const (
	serviceIdentityName  = "github-actions"
	serviceIdentityEmail = "github-actions@github.com"

	stagingBranch    = "staging"
	productionBranch = "production"
)

// UseCase runs a single release pass. It satisfies
// interfaces.ReleaseUseCase; the intermediate steps are exported so each can
// be exercised on its own.
type UseCase struct {
	git       interfaces.GitClient
	host      interfaces.ReleaseHost
	notifier  interfaces.SlackNotifier
	installer interfaces.RMKInstaller

	cfg     Config
	bctx    model.BranchContext
	pattern *model.VersionPattern
}

// NewRelease wires the release use case. Configuration problems (a malformed
// major version branch) fail here, before any Git or API call is made.
func NewRelease(
	git interfaces.GitClient,
	host interfaces.ReleaseHost,
	notifier interfaces.SlackNotifier,
	installer interfaces.RMKInstaller,
	cfg Config,
	bctx model.BranchContext,
) (*UseCase, error) {
	pattern, err := model.NewVersionPattern(bctx.Owner, cfg.MajorVersionBranch, bctx.Branch())
	if err != nil {
		return nil, err
	}

	if cfg.TenantWorkflowFile == "" {
		cfg.TenantWorkflowFile = DefaultTenantWorkflowFile
	}
	if cfg.AssetPath == "" {
		cfg.AssetPath = model.ReleaseAssetPath
	}

	return &UseCase{
		git:       git,
		host:      host,
		notifier:  notifier,
		installer: installer,
		cfg:       cfg,
		bctx:      bctx,
		pattern:   pattern,
	}, nil
}

// Run executes the whole pass: resolve, publish, install RMK, fan out to
// tenants, announce. Failures after the tag push never roll back earlier
// mutations.
func (uc *UseCase) Run(ctx context.Context) error {
	logger := ctxlog.From(ctx)

	decision, err := uc.Resolve(ctx)
	if err != nil {
		return err
	}
	logger.Info("Resolved release version",
		"version", decision.Version,
		"kind", string(decision.Kind),
	)

	result, err := uc.Publish(ctx, decision)
	if err != nil {
		return err
	}
	if result.Skipped {
		logger.Info("Skipped tag and release creation", "reason", result.SkipReason)
	}

	if uc.cfg.RMKInstall {
		if err := uc.installer.Install(ctx, uc.cfg.RMKVersion); err != nil {
			return err
		}
	}

	results := uc.NotifyTenants(ctx, decision.Version)
	for _, r := range results {
		if r.Err != nil {
			logger.Error("Tenant notification failed",
				"tenant", r.Target.Tenant,
				"environment", r.Target.Environment,
				"error", r.Err,
			)
		}
	}

	return uc.Announce(ctx, decision.Version)
}
