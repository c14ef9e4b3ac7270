package model

import "strings"

const branchRefPrefix = "refs/heads/"

// BranchContext is the triggering CI context, sourced once at process start
// and read-only afterwards.
type BranchContext struct {
	Owner      string // Repository owner (organization or user)
	Repository string // Full repository name, e.g. "org/service"
	Ref        string // Full Git ref, e.g. "refs/heads/production"
	RefName    string // Short ref name
	SHA        string // Commit SHA of the triggering push
}

// RepoName returns the repository name without the owner prefix.
func (c BranchContext) RepoName() string {
	return strings.TrimPrefix(c.Repository, c.Owner+"/")
}

// Branch returns the branch name when the run was triggered by a branch
// push, or "" for any other ref kind (tags, PR merge refs).
func (c BranchContext) Branch() string {
	if !strings.HasPrefix(c.Ref, branchRefPrefix) {
		return ""
	}
	return strings.TrimPrefix(c.Ref, branchRefPrefix)
}

// TenantName returns the tenant display name for announcements: the
// repository name up to the first dot, e.g. "acme" for "acme.service.infra".
func (c BranchContext) TenantName() string {
	name, _, _ := strings.Cut(c.RepoName(), ".")
	return name
}
