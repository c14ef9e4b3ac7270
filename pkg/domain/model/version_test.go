package model_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/model"
	"github.com/edenlabllc/tenant-artifact-action/pkg/domain/types"
)

func TestNewVersionPattern_MajorBranchValidation(t *testing.T) {
	tests := []struct {
		name        string
		majorBranch string
		wantErr     bool
	}{
		{name: "empty is allowed", majorBranch: "", wantErr: false},
		{name: "valid name-v-major shape", majorBranch: "legacy-v2", wantErr: false},
		{name: "underscores and digits allowed", majorBranch: "old_api1-v10", wantErr: false},
		{name: "missing version suffix", majorBranch: "legacy", wantErr: true},
		{name: "missing v prefix on major", majorBranch: "legacy-2", wantErr: true},
		{name: "non-numeric major", majorBranch: "legacy-vX", wantErr: true},
		{name: "slash not allowed", majorBranch: "release/legacy-v2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := model.NewVersionPattern("org", tt.majorBranch, "production")
			if tt.wantErr {
				gt.Error(t, err)
				gt.Value(t, goerr.HasTag(err, types.TagInvalidConfig)).Equal(true)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestVersionPattern_MatchTag(t *testing.T) {
	tests := []struct {
		name        string
		majorBranch string
		branch      string
		tag         string
		want        bool
	}{
		{name: "plain version", tag: "v1.2.3", want: true},
		{name: "rc suffix", tag: "v1.2.3-rc", want: true},
		{name: "beta suffix rejected", tag: "v1.2.3-beta", want: false},
		{name: "missing v prefix", tag: "1.2.3", want: false},
		{name: "leading text rejected", tag: "xv1.2.3", want: false},
		{name: "trailing text rejected", tag: "v1.2.3x", want: false},
		{name: "two-part version rejected", tag: "v1.2", want: false},
		{
			name:        "major branch suffix on major branch",
			majorBranch: "legacy-v2",
			branch:      "legacy-v2",
			tag:         "v2.9.1-legacy-v2",
			want:        true,
		},
		{
			name:        "plain version rejected on major branch",
			majorBranch: "legacy-v2",
			branch:      "legacy-v2",
			tag:         "v2.9.1",
			want:        false,
		},
		{
			name:        "rc rejected on major branch",
			majorBranch: "legacy-v2",
			branch:      "legacy-v2",
			tag:         "v2.9.1-rc",
			want:        false,
		},
		{
			name:        "major suffix rejected off the major branch",
			majorBranch: "legacy-v2",
			branch:      "production",
			tag:         "v2.9.1-legacy-v2",
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			branch := tt.branch
			if branch == "" {
				branch = "production"
			}
			pattern := gt.R1(model.NewVersionPattern("org", tt.majorBranch, branch)).NoError(t)
			gt.Value(t, pattern.MatchTag(tt.tag)).Equal(tt.want)
		})
	}
}

func TestVersionPattern_MatchMergeSubject(t *testing.T) {
	tests := []struct {
		name        string
		majorBranch string
		branch      string
		owner       string
		subject     string
		want        string
		wantErr     bool
	}{
		{
			name:    "release branch merge",
			owner:   "org",
			subject: "Merge pull request #42 from org/release/v1.4.0",
			want:    "v1.4.0",
		},
		{
			name:    "hotfix branch merge",
			owner:   "org",
			subject: "Merge pull request #7 from org/hotfix/v1.4.1",
			want:    "v1.4.1",
		},
		{
			name:    "rc version",
			owner:   "org",
			subject: "Merge pull request #3 from org/release/v2.0.0-rc",
			want:    "v2.0.0-rc",
		},
		{
			name:    "wrong owner",
			owner:   "org",
			subject: "Merge pull request #42 from other/release/v1.4.0",
			wantErr: true,
		},
		{
			name:    "wrong branch type",
			owner:   "org",
			subject: "Merge pull request #42 from org/feature/v1.4.0",
			wantErr: true,
		},
		{
			name:    "non-numeric PR number",
			owner:   "org",
			subject: "Merge pull request #abc from org/release/v1.4.0",
			wantErr: true,
		},
		{
			name:    "trailing text rejected",
			owner:   "org",
			subject: "Merge pull request #42 from org/release/v1.4.0 again",
			wantErr: true,
		},
		{
			name:    "leading text rejected",
			owner:   "org",
			subject: "Revert Merge pull request #42 from org/release/v1.4.0",
			wantErr: true,
		},
		{
			name:    "beta suffix rejected",
			owner:   "org",
			subject: "Merge pull request #42 from org/release/v1.4.0-beta",
			wantErr: true,
		},
		{
			name:        "major branch version on major branch",
			majorBranch: "legacy-v2",
			branch:      "legacy-v2",
			owner:       "org",
			subject:     "Merge pull request #9 from org/release/v2.9.1-legacy-v2",
			want:        "v2.9.1-legacy-v2",
		},
		{
			name:        "plain version rejected on major branch",
			majorBranch: "legacy-v2",
			branch:      "legacy-v2",
			owner:       "org",
			subject:     "Merge pull request #9 from org/release/v2.9.1",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			branch := tt.branch
			if branch == "" {
				branch = "production"
			}
			pattern := gt.R1(model.NewVersionPattern(tt.owner, tt.majorBranch, branch)).NoError(t)

			got, err := pattern.MatchMergeSubject(tt.subject)
			if tt.wantErr {
				gt.Error(t, err)
				gt.Value(t, goerr.HasTag(err, types.TagInvalidCommitMessage)).Equal(true)
				return
			}

			gt.NoError(t, err)
			gt.Value(t, got).Equal(tt.want)
		})
	}
}

func TestVersionPattern_MismatchGuidanceListsAllFormats(t *testing.T) {
	pattern := gt.R1(model.NewVersionPattern("org", "legacy-v2", "legacy-v2")).NoError(t)

	_, err := pattern.MatchMergeSubject("Merge pull request #9 from org/release/v2.9.1")
	gt.Error(t, err)

	for _, format := range []string{"vX.Y.Z", "vX.Y.Z-rc", "vX.Y.Z-legacy-v2"} {
		gt.Value(t, strings.Contains(err.Error(), format)).Equal(true)
	}
	gt.Value(t, pattern.Formats()).Equal([]string{"vX.Y.Z", "vX.Y.Z-rc", "vX.Y.Z-legacy-v2"})
}
