package git_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/m-mizutani/gt"

	gitinfra "github.com/edenlabllc/tenant-artifact-action/pkg/infra/git"
)

// initTestRepo creates a repository with one commit and returns its path.
func initTestRepo(t *testing.T, commitMessage string) (string, *gogit.Repository) {
	t.Helper()
	dir := t.TempDir()

	repo := gt.R1(gogit.PlainInit(dir, false)).NoError(t)
	wt := gt.R1(repo.Worktree()).NoError(t)

	gt.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("readme"), 0600))
	gt.R1(wt.Add("README.md")).NoError(t)

	gt.R1(wt.Commit(commitMessage, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	})).NoError(t)

	return dir, repo
}

func TestClient_HeadCommitSubject(t *testing.T) {
	dir, _ := initTestRepo(t, "Merge pull request #42 from org/release/v1.4.0\n\nextra body line")

	client := gt.R1(gitinfra.NewClient(dir, "")).NoError(t)

	subject := gt.R1(client.HeadCommitSubject(t.Context())).NoError(t)
	gt.Value(t, subject).Equal("Merge pull request #42 from org/release/v1.4.0")
}

func TestClient_ListTags(t *testing.T) {
	dir, repo := initTestRepo(t, "initial commit")

	head := gt.R1(repo.Head()).NoError(t)

	// One lightweight and one annotated tag.
	gt.R1(repo.CreateTag("v1.0.0", head.Hash(), nil)).NoError(t)
	gt.R1(repo.CreateTag("v1.1.0", head.Hash(), &gogit.CreateTagOptions{
		Message: "Release v1.1.0",
		Tagger: &object.Signature{
			Name:  "tester",
			Email: "tester@example.com",
			When:  time.Now(),
		},
	})).NoError(t)

	client := gt.R1(gitinfra.NewClient(dir, "")).NoError(t)

	tags := gt.R1(client.ListTags(t.Context())).NoError(t)
	gt.Number(t, len(tags)).Equal(2)

	names := map[string]bool{}
	for _, tag := range tags {
		names[tag.Name] = true
		gt.Value(t, tag.CreatedAt.IsZero()).Equal(false)
	}
	gt.Value(t, names["v1.0.0"]).Equal(true)
	gt.Value(t, names["v1.1.0"]).Equal(true)
}

func TestClient_CreateTag(t *testing.T) {
	dir, _ := initTestRepo(t, "initial commit")

	client := gt.R1(gitinfra.NewClient(dir, "")).NoError(t)
	gt.NoError(t, client.SetIdentity(t.Context(), "github-actions", "github-actions@github.com"))

	alreadyExists := gt.R1(client.CreateTag(t.Context(), "v1.4.0", "Release v1.4.0")).NoError(t)
	gt.Value(t, alreadyExists).Equal(false)

	// Re-creating the same tag reports existence instead of failing.
	alreadyExists = gt.R1(client.CreateTag(t.Context(), "v1.4.0", "Release v1.4.0")).NoError(t)
	gt.Value(t, alreadyExists).Equal(true)
}

func TestClient_SetIdentity(t *testing.T) {
	dir, repo := initTestRepo(t, "initial commit")

	client := gt.R1(gitinfra.NewClient(dir, "")).NoError(t)
	gt.NoError(t, client.SetIdentity(t.Context(), "github-actions", "github-actions@github.com"))

	cfg := gt.R1(repo.Config()).NoError(t)
	gt.Value(t, cfg.User.Name).Equal("github-actions")
	gt.Value(t, cfg.User.Email).Equal("github-actions@github.com")
}
