package model

import "time"

// TagInfo is a repository tag paired with the creation time of the commit it
// points at.
type TagInfo struct {
	Name      string
	CreatedAt time.Time
}

// LatestValidTag returns the name of the most recently created tag fully
// matching the pattern, or "" when no tag matches. Tags sharing a creation
// timestamp keep their input order, so the later input entry wins the tie.
// An empty result is not an error: it only means no baseline version exists.
func LatestValidTag(tags []TagInfo, pattern *VersionPattern) string {
	var latest string
	var latestAt time.Time

	for _, tag := range tags {
		if !pattern.MatchTag(tag.Name) {
			continue
		}
		if latest == "" || !tag.CreatedAt.Before(latestAt) {
			latest = tag.Name
			latestAt = tag.CreatedAt
		}
	}

	return latest
}
