// Package gitlog reads commit history out of local Git repositories by
// shelling out to the git executable and parsing a pretty-format log.
package gitlog

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/rohankatakam/gitsheet/internal/models"
)

// Commit is the raw parse of one git log record.
type Commit struct {
	SHA       string
	Author    string
	Email     string
	Timestamp time.Time
	Message   string
}

// Field and record separators for the git pretty format. Control characters
// keep multi-line commit messages intact through parsing.
const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"

	logFormat = "%H%x1f%an%x1f%ae%x1f%aI%x1f%B%x1e"
)

// VerifyRepo checks that the given path is a Git repository. Uses
// git rev-parse --git-dir so bare repositories pass too.
func VerifyRepo(ctx context.Context, repoPath string) error {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--git-dir")
	cmd.Dir = repoPath
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("not a git repository: %s: %w (output: %s)", repoPath, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// ExtractCommits returns every commit reachable from any ref of the
// repository, exactly once. Commits reachable from several branches are
// deduplicated by SHA.
func ExtractCommits(ctx context.Context, repoPath string) ([]Commit, error) {
	if err := VerifyRepo(ctx, repoPath); err != nil {
		return nil, err
	}

	refs, err := listRefs(ctx, repoPath)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var commits []Commit

	for _, ref := range refs {
		refCommits, err := logRef(ctx, repoPath, ref)
		if err != nil {
			return nil, err
		}
		for _, c := range refCommits {
			if seen[c.SHA] {
				continue
			}
			seen[c.SHA] = true
			commits = append(commits, c)
		}
	}

	return commits, nil
}

// Entries converts commits into provisional log entries. Every entry starts
// at the configured start-up duration; the fixing stage refines it later.
// The repo label is the base name of the repository path.
func Entries(commits []Commit, startUp float64, repoPath string) []models.LogEntry {
	repo := filepath.Base(filepath.Clean(repoPath))
	entries := make([]models.LogEntry, 0, len(commits))
	for _, c := range commits {
		entries = append(entries, models.LogEntry{
			Title:    c.Message,
			Author:   c.Author,
			Duration: startUp,
			EndDate:  c.Timestamp,
			Repo:     repo,
		})
	}
	return entries
}

// listRefs enumerates all refs (branches, tags, remotes) of the repository.
func listRefs(ctx context.Context, repoPath string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "for-each-ref", "--format=%(refname)")
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("git for-each-ref failed in %s: %w (stderr: %s)", repoPath, err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("git for-each-ref failed in %s: %w", repoPath, err)
	}

	var refs []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			refs = append(refs, line)
		}
	}
	return refs, nil
}

// logRef runs git log for a single ref and parses its output.
func logRef(ctx context.Context, repoPath, ref string) ([]Commit, error) {
	cmd := exec.CommandContext(ctx, "git", "log",
		"--pretty=format:"+logFormat,
		ref)
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("git log %s failed in %s: %w (stderr: %s)", ref, repoPath, err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("git log %s failed in %s: %w", ref, repoPath, err)
	}

	return parseLogOutput(string(output))
}

// parseLogOutput splits the raw git log output into commits. Records are
// terminated by 0x1e, fields separated by 0x1f:
// SHA, author name, author email, author date (ISO strict), full message.
func parseLogOutput(output string) ([]Commit, error) {
	var commits []Commit

	for _, record := range strings.Split(output, recordSep) {
		// git log emits a newline between records; the leading whitespace is
		// framing, not part of the message.
		record = strings.TrimLeft(record, "\r\n")
		if record == "" {
			continue
		}

		parts := strings.SplitN(record, fieldSep, 5)
		if len(parts) != 5 {
			return nil, fmt.Errorf("malformed git log record: %q", record)
		}

		timestamp, err := time.Parse(time.RFC3339, parts[3])
		if err != nil {
			return nil, fmt.Errorf("malformed commit date %q for %s: %w", parts[3], parts[0], err)
		}

		commits = append(commits, Commit{
			SHA:       parts[0],
			Author:    parts[1],
			Email:     parts[2],
			Timestamp: timestamp,
			Message:   parts[4],
		})
	}

	return commits, nil
}
