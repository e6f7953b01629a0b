package timesheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rohankatakam/gitsheet/internal/models"
)

// CleanTitles reduces every entry's title to a single clean line. Expressions
// are tried in order against the full original title (multi-line mode); the
// first one that matches wins and the new title is its first captured group,
// trimmed. If none match, the first line of the title is kept. Empty
// expressions are skipped. A malformed expression fails the whole run.
func CleanTitles(entries []models.LogEntry, exps []string) ([]models.LogEntry, error) {
	res, err := compileTitleExps(exps)
	if err != nil {
		return nil, err
	}

	out := make([]models.LogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.WithTitle(cleanTitle(e.Title, res)))
	}
	return out, nil
}

// compileTitleExps compiles the usable expressions in multi-line mode so ^
// and $ match line boundaries inside commit messages.
func compileTitleExps(exps []string) ([]*regexp.Regexp, error) {
	var res []*regexp.Regexp
	for _, exp := range exps {
		if exp == "" {
			continue
		}
		re, err := regexp.Compile("(?m)" + exp)
		if err != nil {
			return nil, fmt.Errorf("invalid title expression %q: %w", exp, err)
		}
		if re.NumSubexp() < 1 {
			return nil, fmt.Errorf("title expression %q has no capture group", exp)
		}
		res = append(res, re)
	}
	return res, nil
}

func cleanTitle(title string, res []*regexp.Regexp) string {
	for _, re := range res {
		if m := re.FindStringSubmatch(title); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	first, _, _ := strings.Cut(title, "\n")
	return strings.TrimSpace(first)
}
