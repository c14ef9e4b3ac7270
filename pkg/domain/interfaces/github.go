package interfaces

import (
	"context"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
	"github.com/google/go-github/v75/github"
)

// ReleaseHost defines operations against the external release host.
type ReleaseHost interface {
	// GetReleaseByTag looks up a release by tag name. A missing release is
	// reported as found=false with a nil error; any other host failure is an
	// error tagged types.TagHostUnavailable.
	GetReleaseByTag(ctx context.Context, owner, repo, tag string) (release *github.RepositoryRelease, found bool, err error)

	// CreateRelease publishes a release built from spec: not a draft,
	// not a prerelease, targeting the recorded commit.
	CreateRelease(ctx context.Context, owner, repo string, spec model.ReleaseSpec) (*github.RepositoryRelease, error)

	// UploadReleaseAsset attaches a local file to an existing release.
	UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, path string) error

	// DispatchWorkflow triggers a workflow file in the named repository with
	// the given ref and inputs.
	DispatchWorkflow(ctx context.Context, owner, repo, workflowFile string, ref string, inputs map[string]any) error
}
