package interfaces

import (
	"context"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
)

// GitClient defines operations on the local Git working tree.
type GitClient interface {
	// ListTags lists all tags with the creation time of the commit each one
	// points at.
	ListTags(ctx context.Context) ([]model.TagInfo, error)

	// HeadCommitSubject returns the first line of the HEAD commit message.
	HeadCommitSubject(ctx context.Context) (string, error)

	// SetIdentity sets the local committer user.name and user.email.
	SetIdentity(ctx context.Context, name, email string) error

	// CreateTag creates an annotated tag at HEAD. Returns alreadyExists=true
	// (and no error) when the tag is already present.
	CreateTag(ctx context.Context, name, message string) (alreadyExists bool, err error)

	// PushTag force-pushes the tag to the default remote so that a re-run
	// after a partial publish converges.
	PushTag(ctx context.Context, name string) error
}
