package model

import "fmt"

const githubServerURL = "https://github.com"

// ReleaseAnnouncement carries everything needed to compose the Slack message
// for a published release.
type ReleaseAnnouncement struct {
	TenantName       string // Display name, e.g. "acme"
	Repository       string // Full repository name, e.g. "org/acme.service"
	Version          string // Released version tag
	ReleaseNotesPath string // Path to release notes, relative to repo root
	Details          string // Optional free-form detail line
}

// Text renders the Slack message body in mrkdwn.
func (a ReleaseAnnouncement) Text() string {
	repoURL := fmt.Sprintf("%s/%s", githubServerURL, a.Repository)
	releaseLink := fmt.Sprintf("%s/tree/%s|%s", repoURL, a.Version, a.Version)
	notesURL := fmt.Sprintf("%s/blob/%s/%s", repoURL, a.Version, a.ReleaseNotesPath)

	msg := fmt.Sprintf("*Released a new version of %s*: <%s>\n*Release notes*: %s\n",
		a.TenantName, releaseLink, notesURL)
	if a.Details != "" {
		msg += fmt.Sprintf("*Details*: %s", a.Details)
	}

	return msg
}
