package model

import "fmt"

// ReleaseAssetPath is the fixed dependency-manifest file attached to every
// release when present in the working tree.
const ReleaseAssetPath = "project.yaml"

// ReleaseSpec is a validated request to publish one release. Built once from
// the resolved version and the triggering commit; the host client turns it
// into API calls.
type ReleaseSpec struct {
	Version   string // Tag name, e.g. "v1.4.0"
	TargetSHA string // Commit the release points at
}

// TagMessage is the annotated tag message.
func (s ReleaseSpec) TagMessage() string {
	return fmt.Sprintf("Release %s", s.Version)
}

// Name is the release title on the host.
func (s ReleaseSpec) Name() string {
	return fmt.Sprintf("Artifact version - %s", s.Version)
}

// Body is the release description, pointing at the dependency manifest
// shipped as an asset.
func (s ReleaseSpec) Body() string {
	return fmt.Sprintf("All dependency versions for the artifact version: `%s` are described in the asset file: `%s`",
		s.Version, ReleaseAssetPath)
}

// PublishResult reports what the publisher actually did, distinguishing the
// idempotent re-run paths from first-time creation.
type PublishResult struct {
	Version        string
	TagCreated     bool // false when the tag already existed
	ReleaseCreated bool // false when the release already existed
	AssetUploaded  bool
	Skipped        bool // gate declined the whole operation
	SkipReason     string
}

// TenantResult is the outcome of one workflow dispatch.
type TenantResult struct {
	Target TenantTarget
	Err    error
}
