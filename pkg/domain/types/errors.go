package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying every failure the action can surface. Tags are
// attached with goerr.T() at the point of failure and checked with
// goerr.HasTag by callers and tests.
var (
	// TagInvalidConfig marks bad inputs detected before any Git or API call,
	// e.g. a malformed major version branch name or a missing required value.
	TagInvalidConfig = goerr.NewTag("invalid_config")

	// TagInvalidCommitMessage marks a HEAD commit subject that does not match
	// the expected PR merge format.
	TagInvalidCommitMessage = goerr.NewTag("invalid_commit_message")

	// TagNoBaselineVersion marks a repository with no existing version tag.
	TagNoBaselineVersion = goerr.NewTag("no_baseline_version")

	// TagUnsupportedRef marks a run triggered by something other than a
	// branch push.
	TagUnsupportedRef = goerr.NewTag("unsupported_ref")

	// TagReleaseExists marks a derived version whose release already exists
	// on the host.
	TagReleaseExists = goerr.NewTag("release_exists")

	// TagHostUnavailable marks auth, rate-limit or transport failures from
	// the release host. Never retried.
	TagHostUnavailable = goerr.NewTag("host_unavailable")

	// TagTagOperation marks non-idempotent Git tag or push failures.
	TagTagOperation = goerr.NewTag("tag_operation")

	// TagTenantNotification marks a per-tenant dispatch failure. Non-fatal by
	// default: the run collects these and continues.
	TagTenantNotification = goerr.NewTag("tenant_notification")
)
