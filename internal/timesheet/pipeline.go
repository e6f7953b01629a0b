// Package timesheet turns a flat list of commit-derived log entries into a
// plausible time-spent-per-commit estimate. The heuristic: a work session
// ends at the commit timestamp and began either a configured start-up time
// earlier, or at the previous commit's timestamp if that is sooner.
package timesheet

import (
	"sort"
	"time"

	"github.com/rohankatakam/gitsheet/internal/models"
)

// FilterAuthor keeps entries whose author equals the target exactly.
// Case-sensitive, no normalization, order preserved.
func FilterAuthor(entries []models.LogEntry, author string) []models.LogEntry {
	out := make([]models.LogEntry, 0, len(entries))
	for _, e := range entries {
		if e.Author == author {
			out = append(out, e)
		}
	}
	return out
}

// FixDurations sorts entries chronologically and caps each entry's duration
// at the elapsed time since the previous entry. Dense bursts of commits are
// never each charged the full start-up time; isolated commits keep theirs.
// The earliest entry has no predecessor and keeps its duration unchanged.
func FixDurations(entries []models.LogEntry) []models.LogEntry {
	sorted := make([]models.LogEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EndDate.Before(sorted[j].EndDate)
	})

	if len(sorted) == 0 {
		return sorted
	}

	out := make([]models.LogEntry, 0, len(sorted))
	out = append(out, sorted[0])

	for _, pair := range pairs(sorted) {
		prev, cur := pair[0], pair[1]
		// Whole seconds, fractional part truncated.
		gap := float64(cur.EndDate.Sub(prev.EndDate) / time.Second)
		out = append(out, cur.WithDuration(min(cur.Duration, gap)))
	}

	return out
}

// DropShort removes entries whose duration is one second or less. Those come
// from simultaneous or rapid-fire commits (often across repositories at the
// same instant) and are noise, not work. Survivors keep their order.
func DropShort(entries []models.LogEntry) []models.LogEntry {
	out := make([]models.LogEntry, 0, len(entries))
	for _, e := range entries {
		if e.Duration > 1 {
			out = append(out, e)
		}
	}
	return out
}

// pairs yields every consecutive pair of the input, in order:
// pairs([1,2,3,4]) == [(1,2),(2,3),(3,4)]. Fewer than two items yields nil.
func pairs[T any](xs []T) [][2]T {
	if len(xs) < 2 {
		return nil
	}
	out := make([][2]T, 0, len(xs)-1)
	for i := 1; i < len(xs); i++ {
		out = append(out, [2]T{xs[i-1], xs[i]})
	}
	return out
}

// Build runs the full pipeline over extracted entries: author filter,
// duration fixing, short-entry dropping, title cleaning. Each stage consumes
// the complete output of the previous one; FixDurations in particular needs
// the whole list because it sorts. The only possible error is a bad title
// expression.
func Build(entries []models.LogEntry, author string, exps []string) ([]models.LogEntry, error) {
	logs := FilterAuthor(entries, author)
	logs = FixDurations(logs)
	logs = DropShort(logs)
	return CleanTitles(logs, exps)
}
