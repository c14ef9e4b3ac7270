package github

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/interfaces"
	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/types"
)

type client struct {
	gh *github.Client
}

// Option configures the client, mainly for tests.
type Option func(*github.Client) error

// WithBaseURL points the client at an alternate API endpoint.
func WithBaseURL(base string) Option {
	return func(gh *github.Client) error {
		u, err := url.Parse(base)
		if err != nil {
			return goerr.Wrap(err, "invalid base URL", goerr.V("base", base))
		}
		gh.BaseURL = u
		gh.UploadURL = u
		return nil
	}
}

// NewClient creates a release host client authenticated with a personal
// access token.
func NewClient(token string, opts ...Option) (interfaces.ReleaseHost, error) {
	gh := github.NewClient(nil).WithAuthToken(token)

	for _, opt := range opts {
		if err := opt(gh); err != nil {
			return nil, err
		}
	}

	return &client{gh: gh}, nil
}

// GetReleaseByTag looks up a release by tag. "Not found" is a normal outcome
// (found=false, nil error); every other failure is tagged host_unavailable
// and treated as fatal by callers.
func (c *client) GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, bool, error) {
	release, resp, err := c.gh.Repositories.GetReleaseByTag(ctx, owner, repo, tag)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, false, nil
		}
		return nil, false, goerr.Wrap(err, "failed to check release existence",
			goerr.T(types.TagHostUnavailable),
			goerr.V("repository", owner+"/"+repo),
			goerr.V("tag", tag),
		)
	}

	return release, true, nil
}

// CreateRelease publishes a release named "Artifact version - <version>",
// targeting the recorded commit, neither draft nor prerelease.
func (c *client) CreateRelease(ctx context.Context, owner, repo string, spec model.ReleaseSpec) (*github.RepositoryRelease, error) {
	release, _, err := c.gh.Repositories.CreateRelease(ctx, owner, repo, &github.RepositoryRelease{
		TagName:         github.Ptr(spec.Version),
		Name:            github.Ptr(spec.Name()),
		Body:            github.Ptr(spec.Body()),
		TargetCommitish: github.Ptr(spec.TargetSHA),
		Draft:           github.Ptr(false),
		Prerelease:      github.Ptr(false),
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create release",
			goerr.T(types.TagHostUnavailable),
			goerr.V("repository", owner+"/"+repo),
			goerr.V("tag", spec.Version),
		)
	}

	return release, nil
}

// UploadReleaseAsset attaches a local file to the release.
func (c *client) UploadReleaseAsset(ctx context.Context, owner, repo string, releaseID int64, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return goerr.Wrap(err, "failed to open release asset", goerr.V("path", path))
	}
	defer f.Close()

	_, _, err = c.gh.Repositories.UploadReleaseAsset(ctx, owner, repo, releaseID, &github.UploadOptions{
		Name: filepath.Base(path),
	}, f)
	if err != nil {
		return goerr.Wrap(err, "failed to upload release asset",
			goerr.T(types.TagHostUnavailable),
			goerr.V("path", path),
		)
	}

	return nil
}

// DispatchWorkflow triggers a workflow file by name in the target repository.
func (c *client) DispatchWorkflow(ctx context.Context, owner, repo, workflowFile, ref string, inputs map[string]any) error {
	_, err := c.gh.Actions.CreateWorkflowDispatchEventByFileName(ctx, owner, repo, workflowFile,
		github.CreateWorkflowDispatchEventRequest{
			Ref:    ref,
			Inputs: inputs,
		})
	if err != nil {
		return goerr.Wrap(err, "failed to dispatch workflow",
			goerr.T(types.TagHostUnavailable),
			goerr.V("repository", owner+"/"+repo),
			goerr.V("workflow", workflowFile),
			goerr.V("ref", ref),
		)
	}

	return nil
}
