package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// majorBranchRegex is the accepted shape of a major version branch name,
// e.g. "legacy-v2".
var majorBranchRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+-v\d+$`)

// VersionPattern selects which version tag shapes are accepted for the
// current run. On a configured major version branch only
// vMAJOR.MINOR.PATCH-<branch> is accepted; everywhere else
// vMAJOR.MINOR.PATCH with an optional -rc suffix.
type VersionPattern struct {
	owner      string
	tagRegex   *regexp.Regexp
	mergeRegex *regexp.Regexp
	formats    []string
}

// NewVersionPattern validates the major version branch name (when set) and
// returns the pattern active for currentBranch. owner scopes the merge
// commit subjects the pattern accepts.
func NewVersionPattern(owner, majorVersionBranch, currentBranch string) (*VersionPattern, error) {
	majorVersionBranch = strings.TrimSpace(majorVersionBranch)

	if majorVersionBranch != "" && !majorBranchRegex.MatchString(majorVersionBranch) {
		return nil, goerr.New("invalid major_version_branch format, expected '<name>-v<major>'",
			goerr.T(types.TagInvalidConfig),
			goerr.V("major_version_branch", majorVersionBranch),
		)
	}

	// Error guidance always lists every configured shape, even though only a
	// subset is accepted on the current branch.
	formats := []string{"vX.Y.Z", "vX.Y.Z-rc"}
	if majorVersionBranch != "" {
		formats = append(formats, "vX.Y.Z-"+majorVersionBranch)
	}

	inner := `v\d+\.\d+\.\d+(?:-rc)?`
	if majorVersionBranch != "" && currentBranch == majorVersionBranch {
		inner = `v\d+\.\d+\.\d+-` + regexp.QuoteMeta(majorVersionBranch)
	}

	return &VersionPattern{
		owner:    owner,
		tagRegex: regexp.MustCompile(`^` + inner + `$`),
		mergeRegex: regexp.MustCompile(
			`^Merge pull request #[0-9]+ from ` + regexp.QuoteMeta(owner) + `/(release|hotfix)/(` + inner + `)$`,
		),
		formats: formats,
	}, nil
}

// MatchTag reports whether name is a valid version tag for this pattern.
// Full-string match, never substring.
func (p *VersionPattern) MatchTag(name string) bool {
	return p.tagRegex.MatchString(name)
}

// Formats lists the accepted version shapes, used for error guidance.
func (p *VersionPattern) Formats() []string {
	return p.formats
}

// MatchMergeSubject extracts the version from a PR merge commit subject of
// the form "Merge pull request #N from <owner>/(release|hotfix)/<version>".
// The whole subject must match; anything else fails with guidance listing
// the accepted formats.
func (p *VersionPattern) MatchMergeSubject(subject string) (string, error) {
	m := p.mergeRegex.FindStringSubmatch(subject)
	if m == nil {
		return "", goerr.New(
			fmt.Sprintf("invalid commit message, expected a PR merge from release/<version> or hotfix/<version> where <version> is one of: %s",
				strings.Join(p.formats, ", ")),
			goerr.T(types.TagInvalidCommitMessage),
			goerr.V("subject", subject),
			goerr.V("owner", p.owner),
		)
	}

	return m[2], nil
}
