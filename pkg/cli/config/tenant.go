package config

import "github.com/urfave/cli/v3"

// Tenant holds tenant fan-out configuration
type Tenant struct {
	Environments string
	WorkflowFile string
}

// Flags returns CLI flags for tenant fan-out configuration
func (c *Tenant) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "update-tenant-environments",
			Usage:       "Newline-separated 'tenant=env1,env2' entries to notify after a production release",
			Destination: &c.Environments,
			Sources:     cli.EnvVars("INPUT_UPDATE_TENANT_ENVIRONMENTS"),
		},
		&cli.StringFlag{
			Name:        "update-tenant-workflow-file",
			Usage:       "Workflow file with an on.workflow_dispatch trigger in each tenant repository",
			Value:       "project-update.yaml",
			Destination: &c.WorkflowFile,
			Sources:     cli.EnvVars("INPUT_UPDATE_TENANT_WORKFLOW_FILE"),
		},
	}
}
