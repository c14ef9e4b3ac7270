package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/types"
)

// NotifyTenants dispatches the update workflow in every tenant bootstrap
// repository listed in the configuration.
//
// Policy: collect-and-continue. A failing tenant is recorded in its result
// and the remaining tenants are still notified; the caller decides what to
// do with the failures.
func (uc *UseCase) NotifyTenants(ctx context.Context, version string) []model.TenantResult {
	logger := ctxlog.From(ctx)

	if uc.bctx.Branch() != productionBranch {
		logger.Info("Skip tenant environments update", "branch", uc.bctx.Branch())
		return nil
	}

	targets := model.ParseTenantMappings(uc.cfg.TenantEnvironments)
	if len(targets) == 0 {
		logger.Info("Skip tenant environments update, no targets configured")
		return nil
	}

	project := uc.bctx.RepoName()
	results := make([]model.TenantResult, 0, len(targets))

	for _, target := range targets {
		inputs := map[string]any{
			"project_dependency_name":    project,
			"project_dependency_version": version,
		}

		err := uc.host.DispatchWorkflow(ctx, uc.bctx.Owner, target.RepositoryName(), uc.cfg.TenantWorkflowFile, target.Environment, inputs)
		if err != nil {
			err = goerr.Wrap(err, "failed to notify tenant",
				goerr.T(types.TagTenantNotification),
				goerr.V("tenant", target.Tenant),
				goerr.V("environment", target.Environment),
			)
		} else {
			logger.Info("Updated project dependency in tenant repository",
				"tenant", target.Tenant,
				"environment", target.Environment,
				"repository", target.Repository(uc.bctx.Owner),
				"project", project,
				"version", version,
				"workflow", uc.cfg.TenantWorkflowFile,
			)
		}

		results = append(results, model.TenantResult{Target: target, Err: err})
	}

	return results
}
