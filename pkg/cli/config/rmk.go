package config

import "github.com/urfave/cli/v3"

// RMK holds RMK CLI installation configuration
type RMK struct {
	Install bool
	Version string
}

// Flags returns CLI flags for RMK configuration
func (c *RMK) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "rmk-install",
			Usage:       "Install and initialize the RMK CLI",
			Value:       true,
			Destination: &c.Install,
			Sources:     cli.EnvVars("INPUT_RMK_INSTALL"),
		},
		&cli.StringFlag{
			Name:        "rmk-version",
			Usage:       "RMK version to install (v0.45.0 or newer)",
			Value:       "latest",
			Destination: &c.Version,
			Sources:     cli.EnvVars("INPUT_RMK_VERSION"),
		},
	}
}
