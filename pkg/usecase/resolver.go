package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/types"
)

// Resolve produces the single release decision for this run.
//
// Order matters: the baseline tag and ref checks run first so that
// misconfigured repositories fail before anything else, the explicit version
// short-circuits derivation entirely, and the release-exists check only
// applies to derived versions.
func (uc *UseCase) Resolve(ctx context.Context) (model.ReleaseDecision, error) {
	logger := ctxlog.From(ctx)

	tags, err := uc.git.ListTags(ctx)
	if err != nil {
		return model.ReleaseDecision{}, err
	}

	baseline := model.LatestValidTag(tags, uc.pattern)
	if baseline == "" {
		return model.ReleaseDecision{}, goerr.New(
			"at least one version tag is required in the repository, tag a commit of the default branch manually before running the workflow",
			goerr.T(types.TagNoBaselineVersion),
		)
	}
	logger.Info("Found latest version tag", "tag", baseline)

	if uc.bctx.Branch() == "" {
		return model.ReleaseDecision{}, goerr.New(
			"only pushes to branches are supported, check the workflow's on.push section",
			goerr.T(types.TagUnsupportedRef),
			goerr.V("ref", uc.bctx.Ref),
		)
	}

	if uc.cfg.ArtifactVersion != "" {
		return model.ReleaseDecision{
			Kind:    model.DecisionUseProvided,
			Version: uc.cfg.ArtifactVersion,
		}, nil
	}

	subject, err := uc.git.HeadCommitSubject(ctx)
	if err != nil {
		return model.ReleaseDecision{}, err
	}
	logger.Info("Git commit message", "subject", subject)

	version, err := uc.pattern.MatchMergeSubject(subject)
	if err != nil {
		return model.ReleaseDecision{}, goerr.Wrap(err, "failed to derive version for branch",
			goerr.V("branch", uc.bctx.Branch()),
		)
	}

	_, found, err := uc.host.GetReleaseByTag(ctx, uc.bctx.Owner, uc.bctx.RepoName(), version)
	if err != nil {
		return model.ReleaseDecision{}, err
	}
	if found {
		return model.ReleaseDecision{}, goerr.New(
			"release already exists on the host, increase the version following SemVer and create a new release",
			goerr.T(types.TagReleaseExists),
			goerr.V("version", version),
		)
	}

	return model.ReleaseDecision{
		Kind:    model.DecisionDerived,
		Version: version,
	}, nil
}
