package models

import (
	"strconv"
	"time"
)

// LogEntry represents one inferred unit of work derived from a single commit.
// Entries are values: transformations never mutate an entry in place, they
// build a patched copy with WithDuration or WithTitle.
type LogEntry struct {
	Title    string    `json:"title"`
	Author   string    `json:"author"`
	Duration float64   `json:"duration"` // seconds, always >= 0
	EndDate  time.Time `json:"end_date"`
	Repo     string    `json:"repo"`
}

// WithDuration returns a copy of the entry with the duration replaced.
func (e LogEntry) WithDuration(seconds float64) LogEntry {
	e.Duration = seconds
	return e
}

// WithTitle returns a copy of the entry with the title replaced.
func (e LogEntry) WithTitle(title string) LogEntry {
	e.Title = title
	return e
}

// Fields returns the CSV header, in the order Record renders values.
func Fields() []string {
	return []string{"title", "author", "duration", "end_date", "repo"}
}

// Record renders the entry as one CSV row. Duration is a plain number
// (no exponent, no trailing zeros) and the end date is RFC 3339.
func (e LogEntry) Record() []string {
	return []string{
		e.Title,
		e.Author,
		strconv.FormatFloat(e.Duration, 'f', -1, 64),
		e.EndDate.Format(time.RFC3339),
		e.Repo,
	}
}
