package interfaces

import "context"

// RMKInstaller installs and initializes the RMK release-management CLI.
type RMKInstaller interface {
	// Install downloads the installer script, runs it for the requested
	// version and initializes the RMK configuration.
	Install(ctx context.Context, version string) error
}
