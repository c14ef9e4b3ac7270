package model

// DecisionKind tells how the release version was obtained.
type DecisionKind string

const (
	// DecisionUseProvided means the version came from the artifact_version
	// input and commit-message derivation was skipped.
	DecisionUseProvided DecisionKind = "use_provided"

	// DecisionDerived means the version was parsed from the HEAD commit
	// subject and verified absent on the release host.
	DecisionDerived DecisionKind = "derived"
)

// ReleaseDecision is the single resolution produced per run; it drives every
// subsequent step. Failure outcomes are returned as tagged errors instead.
type ReleaseDecision struct {
	Kind    DecisionKind
	Version string
}
