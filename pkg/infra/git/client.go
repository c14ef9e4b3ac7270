package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/goerr/v2"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/interfaces"
	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/types"
)

type client struct {
	repo *gogit.Repository
	auth *githttp.BasicAuth

	taggerName  string
	taggerEmail string
}

// NewClient opens the Git repository at path. The token authenticates tag
// pushes over HTTPS; it may be empty when the remote URL already carries
// credentials.
func NewClient(path, token string) (interfaces.GitClient, error) {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open git repository", goerr.V("path", path))
	}

	c := &client{repo: repo}
	if token != "" {
		c.auth = &githttp.BasicAuth{Username: "x-access-token", Password: token}
	}

	return c, nil
}

// ListTags lists all tags with the committer time of the commit each tag
// resolves to. Annotated tags are peeled to their target commit.
func (c *client) ListTags(ctx context.Context) ([]model.TagInfo, error) {
	iter, err := c.repo.Tags()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list tags")
	}

	var tags []model.TagInfo
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		when, ok := c.resolveCommitTime(ref.Hash())
		if !ok {
			// Tag points at a non-commit object (tree, blob); irrelevant here.
			return nil
		}
		tags = append(tags, model.TagInfo{
			Name:      ref.Name().Short(),
			CreatedAt: when,
		})
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to iterate tags")
	}

	return tags, nil
}

func (c *client) resolveCommitTime(hash plumbing.Hash) (time.Time, bool) {
	if tagObj, err := c.repo.TagObject(hash); err == nil {
		if commit, err := tagObj.Commit(); err == nil {
			return commit.Committer.When, true
		}
		return tagObj.Tagger.When, true
	}

	if commit, err := c.repo.CommitObject(hash); err == nil {
		return commit.Committer.When, true
	}

	return time.Time{}, false
}

// HeadCommitSubject returns the first line of the HEAD commit message.
func (c *client) HeadCommitSubject(ctx context.Context) (string, error) {
	head, err := c.repo.Head()
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve HEAD")
	}

	commit, err := c.repo.CommitObject(head.Hash())
	if err != nil {
		return "", goerr.Wrap(err, "failed to read HEAD commit", goerr.V("hash", head.Hash().String()))
	}

	subject, _, _ := strings.Cut(strings.TrimSpace(commit.Message), "\n")
	return strings.TrimSpace(subject), nil
}

// SetIdentity sets user.name and user.email in the local repository
// configuration and uses the same identity for tag objects created later.
func (c *client) SetIdentity(ctx context.Context, name, email string) error {
	cfg, err := c.repo.Config()
	if err != nil {
		return goerr.Wrap(err, "failed to read repository config")
	}

	cfg.User.Name = name
	cfg.User.Email = email

	if err := c.repo.SetConfig(cfg); err != nil {
		return goerr.Wrap(err, "failed to write repository config")
	}

	c.taggerName = name
	c.taggerEmail = email
	return nil
}

// CreateTag creates an annotated tag at HEAD. An existing tag with the same
// name is reported via alreadyExists, not as an error, so that re-runs after
// a partial publish converge.
func (c *client) CreateTag(ctx context.Context, name, message string) (bool, error) {
	head, err := c.repo.Head()
	if err != nil {
		return false, goerr.Wrap(err, "failed to resolve HEAD", goerr.T(types.TagTagOperation))
	}

	_, err = c.repo.CreateTag(name, head.Hash(), &gogit.CreateTagOptions{
		Message: message,
		Tagger: &object.Signature{
			Name:  c.taggerName,
			Email: c.taggerEmail,
			When:  time.Now(),
		},
	})
	if errors.Is(err, gogit.ErrTagExists) {
		return true, nil
	}
	if err != nil {
		return false, goerr.Wrap(err, "failed to create tag",
			goerr.T(types.TagTagOperation), goerr.V("tag", name))
	}

	return false, nil
}

// PushTag force-pushes the tag refspec to origin.
func (c *client) PushTag(ctx context.Context, name string) error {
	refSpec := gitconfig.RefSpec(fmt.Sprintf("+refs/tags/%s:refs/tags/%s", name, name))

	err := c.repo.PushContext(ctx, &gogit.PushOptions{
		RemoteName: "origin",
		RefSpecs:   []gitconfig.RefSpec{refSpec},
		Auth:       c.auth,
		Force:      true,
	})
	if errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return nil
	}
	if err != nil {
		return goerr.Wrap(err, "failed to push tag to origin",
			goerr.T(types.TagTagOperation), goerr.V("tag", name))
	}

	return nil
}
