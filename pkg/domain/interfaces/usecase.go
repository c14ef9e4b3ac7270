package interfaces

import "context"

// ReleaseUseCase runs the whole release pass: resolve the version, publish
// the tag and release, install RMK, fan out to tenants and announce.
type ReleaseUseCase interface {
	Run(ctx context.Context) error
}
