package usecase

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/ctxlog"
	"gopkg.in/yaml.v3"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
)

// Publish creates the Git tag and the host release for the resolved version.
//
// Tag creation and push always precede release creation: the release
// references the tag by name and must never exist for an unpushed tag. Both
// the tag and the release are idempotent so that re-running after a partial
// publish converges without error.
func (uc *UseCase) Publish(ctx context.Context, decision model.ReleaseDecision) (model.PublishResult, error) {
	logger := ctxlog.From(ctx)
	result := model.PublishResult{Version: decision.Version}

	if !uc.cfg.Autotag && !uc.cfg.PushTag {
		result.Skipped = true
		result.SkipReason = "neither autotag nor push_tag is enabled"
		return result, nil
	}

	if !uc.supportedBranch() && uc.cfg.ArtifactVersion == "" {
		result.Skipped = true
		result.SkipReason = "neither on staging, production nor major version branch"
		return result, nil
	}

	spec := model.ReleaseSpec{Version: decision.Version, TargetSHA: uc.bctx.SHA}

	logger.Info("Configure Git committer identity",
		"name", serviceIdentityName,
		"email", serviceIdentityEmail,
	)
	if err := uc.git.SetIdentity(ctx, serviceIdentityName, serviceIdentityEmail); err != nil {
		return result, err
	}

	alreadyExists, err := uc.git.CreateTag(ctx, spec.Version, spec.TagMessage())
	if err != nil {
		return result, err
	}
	if alreadyExists {
		logger.Warn("Tag already exists, skipping tag creation", "tag", spec.Version)
	} else {
		logger.Info("Created Git tag", "tag", spec.Version)
		result.TagCreated = true
	}

	if err := uc.git.PushTag(ctx, spec.Version); err != nil {
		return result, err
	}
	logger.Info("Pushed tag to origin", "tag", spec.Version)

	owner, repo := uc.bctx.Owner, uc.bctx.RepoName()

	existing, found, err := uc.host.GetReleaseByTag(ctx, owner, repo, spec.Version)
	if err != nil {
		return result, err
	}
	if found {
		logger.Info("Release already exists, skipping creation",
			"tag", spec.Version,
			"release", existing.GetName(),
		)
		return result, nil
	}

	release, err := uc.host.CreateRelease(ctx, owner, repo, spec)
	if err != nil {
		return result, err
	}
	result.ReleaseCreated = true
	logger.Info("Created release", "tag", spec.Version, "release", release.GetName())

	uploaded, err := uc.attachAsset(ctx, release.GetID())
	if err != nil {
		return result, err
	}
	result.AssetUploaded = uploaded

	return result, nil
}

func (uc *UseCase) supportedBranch() bool {
	branch := uc.bctx.Branch()
	if branch == stagingBranch || branch == productionBranch {
		return true
	}
	return uc.cfg.MajorVersionBranch != "" && branch == uc.cfg.MajorVersionBranch
}

// attachAsset uploads the dependency manifest when it exists in the working
// tree. A missing manifest is logged and skipped, never fatal.
func (uc *UseCase) attachAsset(ctx context.Context, releaseID int64) (bool, error) {
	logger := ctxlog.From(ctx)

	data, err := os.ReadFile(uc.cfg.AssetPath)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("Asset file not found, skipping asset upload", "path", uc.cfg.AssetPath)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var manifest map[string]any
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		logger.Warn("Asset file is not valid YAML, uploading as-is",
			"path", uc.cfg.AssetPath,
			"error", err,
		)
	} else {
		logger.Info("Attaching dependency manifest",
			"path", uc.cfg.AssetPath,
			"entries", len(manifest),
		)
	}

	if err := uc.host.UploadReleaseAsset(ctx, uc.bctx.Owner, uc.bctx.RepoName(), releaseID, uc.cfg.AssetPath); err != nil {
		return false, err
	}

	return true, nil
}
