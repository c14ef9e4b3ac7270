package config

import "github.com/urfave/cli/v3"

// Release holds versioning and tagging configuration
type Release struct {
	ArtifactVersion    string
	Autotag            bool
	PushTag            bool
	MajorVersionBranch string
}

// Flags returns CLI flags for release configuration
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "artifact-version",
			Usage:       "Explicit artifact version, bypasses commit-message derivation",
			Destination: &c.ArtifactVersion,
			Sources:     cli.EnvVars("INPUT_ARTIFACT_VERSION"),
		},
		&cli.BoolFlag{
			Name:        "autotag",
			Usage:       "Derive the version from the merge commit and create tag and release",
			Destination: &c.Autotag,
			Sources:     cli.EnvVars("INPUT_AUTOTAG"),
		},
		&cli.BoolFlag{
			Name:        "push-tag",
			Usage:       "Force tag and release creation even without autotag",
			Destination: &c.PushTag,
			Sources:     cli.EnvVars("INPUT_PUSH_TAG"),
		},
		&cli.StringFlag{
			Name:        "major-version-branch",
			Usage:       "Long-lived branch maintaining an older major version ('<name>-v<major>')",
			Destination: &c.MajorVersionBranch,
			Sources:     cli.EnvVars("INPUT_MAJOR_VERSION_BRANCH"),
		},
	}
}
