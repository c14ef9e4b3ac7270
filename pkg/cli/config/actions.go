package config

import (
	"github.com/urfave/cli/v3"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
)

// Actions holds the ambient CI context of the triggering run. It is bound
// once from the GITHUB_* environment and never read again.
type Actions struct {
	Repository string
	Owner      string
	Ref        string
	RefName    string
	SHA        string
}

// Flags returns CLI flags for the CI context
func (c *Actions) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-repository",
			Usage:       "Full repository name, e.g. org/service",
			Required:    true,
			Destination: &c.Repository,
			Sources:     cli.EnvVars("GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "github-repository-owner",
			Usage:       "Repository owner",
			Required:    true,
			Destination: &c.Owner,
			Sources:     cli.EnvVars("GITHUB_REPOSITORY_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-ref",
			Usage:       "Full Git ref of the triggering push",
			Required:    true,
			Destination: &c.Ref,
			Sources:     cli.EnvVars("GITHUB_REF"),
		},
		&cli.StringFlag{
			Name:        "github-ref-name",
			Usage:       "Short ref name of the triggering push",
			Required:    true,
			Destination: &c.RefName,
			Sources:     cli.EnvVars("GITHUB_REF_NAME"),
		},
		&cli.StringFlag{
			Name:        "github-sha",
			Usage:       "Commit SHA of the triggering push",
			Required:    true,
			Destination: &c.SHA,
			Sources:     cli.EnvVars("GITHUB_SHA"),
		},
	}
}

// Context converts the bound values into the read-only branch context.
func (c *Actions) Context() model.BranchContext {
	return model.BranchContext{
		Owner:      c.Owner,
		Repository: c.Repository,
		Ref:        c.Ref,
		RefName:    c.RefName,
		SHA:        c.SHA,
	}
}
