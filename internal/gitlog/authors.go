package gitlog

import (
	"sort"
	"strings"
	"time"
)

// AuthorStat summarizes one author's activity across the scanned commits.
type AuthorStat struct {
	Name        string
	Email       string
	Commits     int
	FirstCommit time.Time
	LastCommit  time.Time
}

// CollectAuthors folds commits into per-author stats, keyed by lower-cased
// email. The result is sorted by commit count descending, then by email so
// ties are deterministic.
func CollectAuthors(commits []Commit) []AuthorStat {
	byEmail := make(map[string]*AuthorStat)

	for _, c := range commits {
		email := strings.ToLower(c.Email)

		if stat, ok := byEmail[email]; ok {
			stat.Commits++
			if c.Timestamp.After(stat.LastCommit) {
				stat.LastCommit = c.Timestamp
			}
			if c.Timestamp.Before(stat.FirstCommit) {
				stat.FirstCommit = c.Timestamp
			}
		} else {
			byEmail[email] = &AuthorStat{
				Name:        c.Author,
				Email:       email,
				Commits:     1,
				FirstCommit: c.Timestamp,
				LastCommit:  c.Timestamp,
			}
		}
	}

	stats := make([]AuthorStat, 0, len(byEmail))
	for _, stat := range byEmail {
		stats = append(stats, *stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Commits != stats[j].Commits {
			return stats[i].Commits > stats[j].Commits
		}
		return stats[i].Email < stats[j].Email
	})

	return stats
}
